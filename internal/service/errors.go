// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Server-side errors.
var (
	ErrInvalidDataProvided      = errors.New("invalid data provided")
	ErrInvalidDocumentStructure = errors.New("invalid document structure")
	ErrInvalidQuery             = errors.New("invalid query")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrNoUserID                 = errors.New("no user ID provided")

	ErrSessionExpiredOrInvalid = errors.New("session is expired or invalid")
	ErrTokenCreationFailed     = errors.New("session secret creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	// ErrNotAuthenticated is returned when an operation needs an
	// authenticated identity and none is available.
	ErrNotAuthenticated = errors.New("not authenticated")
)
