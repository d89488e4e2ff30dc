// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// Screens is the interactive part of the client.
type Screens interface {
	// LoginFlow blocks until the user is authenticated.
	LoginFlow(ctx context.Context) (models.Identity, error)
	// MainLoop blocks until the user quits or logs out.
	MainLoop(ctx context.Context, identity models.Identity) (logout bool, err error)
}
