// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CurrentSessionID addresses the session the request was authenticated with.
const CurrentSessionID = "current"

// SessionProviderEmail marks sessions created from email and password.
const SessionProviderEmail = "email"

// Session is a server-side authentication context created by login and
// destroyed by logout.
type Session struct {
	// ID is the session identifier ($id), also carried as the JWT "jti".
	ID string `json:"$id"`

	// UserID is the owner of the session.
	UserID string `json:"userId"`

	// Provider is always "email" for email/password sessions.
	Provider string `json:"provider"`

	// Secret is the signed bearer token for the session. Only returned by
	// the create-session call.
	Secret string `json:"secret,omitempty"`

	// Expire is the moment the session stops being accepted.
	Expire time.Time `json:"expire"`

	// CreatedAt is the session creation time.
	CreatedAt time.Time `json:"$createdAt"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !s.Expire.IsZero() && !now.Before(s.Expire)
}
