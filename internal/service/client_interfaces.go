// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService is the client-side façade over the remote account
// service. It owns the session secret: the backend adapter and the local
// session store are only ever changed through it.
type ClientAuthService interface {
	// Register creates an account with a server-generated ID and then logs in
	// with the same credentials. An account created before a failed login is
	// not rolled back.
	Register(ctx context.Context, email, password, name string) (models.Session, error)

	// Login opens a session and makes it current. Failing to persist the
	// session locally is logged and does not fail the login.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// CurrentUser returns the identity of the current session. A missing or
	// rejected session is reported as (zero, false, nil); any other failure
	// is returned.
	CurrentUser(ctx context.Context) (models.Identity, bool, error)

	// Authenticated is CurrentUser with an absent identity reported as
	// ErrNotAuthenticated.
	Authenticated(ctx context.Context) (models.Identity, error)

	// Logout destroys the current session. Local state is cleared only when
	// the remote call succeeds.
	Logout(ctx context.Context) error

	// RestoreSession makes a previously persisted, unexpired session current.
	// It reports whether one was found and does not contact the server.
	RestoreSession(ctx context.Context) (bool, error)

	// IsLoggedIn reports whether CurrentUser resolves an identity.
	IsLoggedIn(ctx context.Context) bool
}

// ClientNoteService manages the notes of an explicitly passed identity.
// An identity without an ID fails with ErrNotAuthenticated before any
// network call. Failures are logged and returned unchanged; nothing is
// retried.
type ClientNoteService interface {
	Create(ctx context.Context, identity models.Identity, content string) (models.Note, error)

	// List returns every note of identity, newest first.
	List(ctx context.Context, identity models.Identity) ([]models.Note, error)

	// Update replaces the content of note id. CreatedAt is kept.
	Update(ctx context.Context, identity models.Identity, id, content string) (models.Note, error)

	Delete(ctx context.Context, identity models.Identity, id string) error
}
