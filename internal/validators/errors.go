// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("password must be between 8 and 256 characters")
	ErrInvalidName     = errors.New("name must be at most 128 characters")

	ErrInvalidDatabaseID   = errors.New("invalid database ID")
	ErrInvalidCollectionID = errors.New("invalid collection ID")
	ErrInvalidDocumentID   = errors.New("invalid document ID")
	ErrInvalidDocumentData = errors.New("document data must be a JSON object")
	ErrReservedAttribute   = errors.New("attribute names must not start with '$'")
	ErrEmptyAttribute      = errors.New("attribute name is required")
	ErrInvalidQuery        = errors.New("invalid query")
)
