// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter translates the client's local call shapes into requests to
// the remote account and document API.
//
// [AccountAdapter] covers account creation and email/password sessions;
// [DocumentAdapter] covers documents of a collection. The package ships one
// HTTP/REST implementation of both ([NewHTTPBackendAdapter]).
//
// Every failure is returned as a [*RemoteError]. Its class is matched with
// [errors.Is] against the sentinels in errors.go (e.g. [ErrUnauthorized] for
// 401, [ErrNetwork] when no response arrived).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// AccountAdapter talks to the remote account service. The session secret
// held by the adapter authenticates every call except account and session
// creation.
type AccountAdapter interface {
	// SetSession stores the session secret attached to subsequent requests.
	// An empty secret makes the adapter anonymous.
	SetSession(secret string)

	// Session returns the secret currently held, or "".
	Session() string

	// CreateAccount registers a new account. req.UserID may be
	// [models.UniqueID] to let the service pick the ID.
	CreateAccount(ctx context.Context, req models.AccountCreateRequest) (models.User, error)

	// CreateEmailPasswordSession logs in and returns the new session
	// including its secret. It does not store the secret.
	CreateEmailPasswordSession(ctx context.Context, email, password string) (models.Session, error)

	// GetAccount returns the account of the current session.
	GetAccount(ctx context.Context) (models.User, error)

	// DeleteSession destroys the given session; [models.CurrentSessionID]
	// addresses the session the adapter is authenticated with.
	DeleteSession(ctx context.Context, sessionID string) error
}

// DocumentAdapter talks to the remote document store.
type DocumentAdapter interface {
	// CreateDocument stores data as a new document with the given ID.
	CreateDocument(ctx context.Context, ref models.CollectionRef, documentID string, data any) (models.Document, error)

	// ListDocuments returns the documents matching queries, in the order the
	// queries request.
	ListDocuments(ctx context.Context, ref models.CollectionRef, queries ...models.Query) (models.DocumentList, error)

	// GetDocument returns a single document.
	GetDocument(ctx context.Context, ref models.CollectionRef, documentID string) (models.Document, error)

	// UpdateDocument merges data into the stored document and returns the
	// result.
	UpdateDocument(ctx context.Context, ref models.CollectionRef, documentID string, data any) (models.Document, error)

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, ref models.CollectionRef, documentID string) error
}

// BackendAdapter is the full remote surface used by the client.
type BackendAdapter interface {
	AccountAdapter
	DocumentAdapter
}
