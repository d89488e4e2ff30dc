// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account, session and document requests before
// they reach the services. Failures wrap the sentinels in errors.go so the
// handlers can map them to 400 responses.
package validators

import "context"

// Validator checks a request value. When fields are given only those parts
// of the value are checked; an unknown value type yields
// ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
