// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService owns accounts and email/password sessions.
type AccountService interface {
	// CreateAccount registers a user. req.UserID of "" or [models.UniqueID]
	// lets the service generate the ID.
	CreateAccount(ctx context.Context, req models.AccountCreateRequest) (models.User, error)

	// CreateSession checks the credentials and opens a session. The returned
	// session carries its secret.
	CreateSession(ctx context.Context, req models.SessionCreateRequest) (models.Session, error)

	// ParseSession resolves a session secret into a live session.
	ParseSession(ctx context.Context, secret string) (models.Session, error)

	GetAccount(ctx context.Context, userID string) (models.User, error)
	DeleteSession(ctx context.Context, userID, sessionID string) error

	// DeleteExpiredSessions removes sessions past their expiry and returns
	// how many were removed.
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// DocumentService owns the documents of every collection. All operations are
// scoped to ownerID: documents of other users behave as missing.
type DocumentService interface {
	CreateDocument(ctx context.Context, ref models.CollectionRef, ownerID string, req models.DocumentCreateRequest) (models.Document, error)
	ListDocuments(ctx context.Context, ref models.CollectionRef, ownerID string, queries []models.Query) (models.DocumentList, error)
	GetDocument(ctx context.Context, ref models.CollectionRef, ownerID, documentID string) (models.Document, error)

	// UpdateDocument merges req.Data into the stored data, key by key.
	UpdateDocument(ctx context.Context, ref models.CollectionRef, ownerID, documentID string, req models.DocumentUpdateRequest) (models.Document, error)
	DeleteDocument(ctx context.Context, ref models.CollectionRef, ownerID, documentID string) error
}

// AppInfoService exposes build and version information of the server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces identifiers for new accounts, sessions and documents.
type IDGenerator interface {
	Generate() string
}
