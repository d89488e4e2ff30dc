// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository keeps the current session of the client between
// runs. It holds at most one session.
type LocalSessionRepository interface {
	// SaveSession replaces the stored session.
	SaveSession(ctx context.Context, session models.Session) error

	// LoadSession returns the stored session or [ErrLocalSessionNotFound].
	LoadSession(ctx context.Context) (models.Session, error)

	// ClearSession forgets the stored session. Clearing an empty store is
	// not an error.
	ClearSession(ctx context.Context) error
}
