// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UniqueID is the placeholder identifier asking the backend to generate a
// fresh ID for a new account or document.
const UniqueID = "unique()"

// User is the server-side account record.
// PasswordHash must never leave the server.
type User struct {
	// ID is the stable account identifier ($id).
	ID string `json:"$id"`

	// Email is the unique login of the account.
	Email string `json:"email"`

	// Name is the display name shown in the client.
	Name string `json:"name"`

	// PasswordHash is the encoded Argon2id hash of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the account creation time.
	CreatedAt time.Time `json:"$createdAt"`

	// UpdatedAt is the last modification time of the account.
	UpdatedAt time.Time `json:"$updatedAt"`
}

// Identity returns the public principal of the account.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Identity is the authenticated user principal as seen by the client.
type Identity struct {
	ID    string `json:"$id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IsZero reports whether the identity is absent.
func (i Identity) IsZero() bool {
	return i.ID == ""
}

// AccountCreateRequest is the body of the create-account call.
type AccountCreateRequest struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SessionCreateRequest is the body of the create-email-password-session call.
type SessionCreateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
