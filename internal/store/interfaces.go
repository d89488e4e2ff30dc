// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists server-side accounts.
type UserRepository interface {
	// CreateUser stores a new account and returns it as persisted.
	// Returns [ErrUserAlreadyExists] on a duplicate id or email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by email, ignoring case.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by id.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// SessionRepository persists server-side sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, sessionID string) (models.Session, error)

	// DeleteSession removes a session owned by userID.
	// Returns [ErrSessionNotFound] when nothing was removed.
	DeleteSession(ctx context.Context, sessionID, userID string) error

	// DeleteExpiredSessions removes every session expired at now and
	// returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// DocumentRepository persists owner-scoped documents of collections.
// A document owned by another user behaves exactly like a missing one.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc models.Document) (models.Document, error)
	GetDocument(ctx context.Context, ref models.CollectionRef, documentID, ownerID string) (models.Document, error)
	ListDocuments(ctx context.Context, ref models.CollectionRef, ownerID string, queries []models.Query) ([]models.Document, error)

	// UpdateDocument shallow-merges data into the stored document.
	UpdateDocument(ctx context.Context, ref models.CollectionRef, documentID, ownerID string, data map[string]any, updatedAt time.Time) (models.Document, error)
	DeleteDocument(ctx context.Context, ref models.CollectionRef, documentID, ownerID string) error
}
