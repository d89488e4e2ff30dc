// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an account with the same email
	// (case-insensitive) or the same id is already stored.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a lookup by email or id matches no
	// account.
	ErrUserNotFound = errors.New("user was not found")

	// ErrSessionNotFound is returned when a session does not exist or belongs
	// to a different user.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrDocumentAlreadyExists is returned when a document id is already taken
	// inside the collection.
	ErrDocumentAlreadyExists = errors.New("document already exists")

	// ErrDocumentNotFound is returned when a document does not exist or is
	// not owned by the requesting user.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrUnsupportedQuery is returned when a list query uses a method the
	// store cannot translate to SQL.
	ErrUnsupportedQuery = errors.New("unsupported query")

	// ErrLocalSessionNotFound is returned by the client session store when no
	// session has been persisted yet.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
