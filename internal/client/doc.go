// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the previous session when one is stored locally, falls back to
// the login screens otherwise, and then runs the notes screen until the user
// quits. Logging out returns to the login screens.
package client
