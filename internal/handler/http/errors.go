// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Reasons an Authorization header is rejected by [Handler.auth]. They are
// only logged; the client always gets general_unauthorized_scope.
var (
	ErrEmptyAuthorizationHeader   = errors.New("missing authorization header")
	ErrInvalidAuthorizationHeader = errors.New("authorization header is not a bearer credential")
	ErrEmptyToken                 = errors.New("empty bearer secret")
)
