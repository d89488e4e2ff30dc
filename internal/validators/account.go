// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Field names understood by [AccountValidator].
const (
	FieldUserID   = "user_id"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 256
	nameMaxLength     = 128
	emailMaxLength    = 320
)

// AccountValidator checks account and session creation requests.
type AccountValidator struct{}

// NewAccountValidator constructs an [AccountValidator].
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate accepts [models.AccountCreateRequest] and
// [models.SessionCreateRequest], by value or by pointer.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AccountCreateRequest:
		return v.validateAccountCreate(value, fields...)
	case *models.AccountCreateRequest:
		return v.validateAccountCreate(*value, fields...)

	case models.SessionCreateRequest:
		return v.validateSessionCreate(value, fields...)
	case *models.SessionCreateRequest:
		return v.validateSessionCreate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateAccountCreate(req models.AccountCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldEmail, FieldPassword, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID != "" && req.UserID != models.UniqueID && !utils.IsValidID(req.UserID) {
				return ErrInvalidUserID
			}
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			n := utf8.RuneCountInString(req.Password)
			if n < passwordMinLength || n > passwordMaxLength {
				return ErrInvalidPassword
			}
		case FieldName:
			if utf8.RuneCountInString(req.Name) > nameMaxLength {
				return ErrInvalidName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSessionCreate only checks shape; a short password is reported as
// invalid credentials by the service, not as a validation error.
func (v *AccountValidator) validateSessionCreate(req models.SessionCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if req.Password == "" || utf8.RuneCountInString(req.Password) > passwordMaxLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail accepts a bare address only: "Ann <a@x.com>" is rejected.
func isValidEmail(email string) bool {
	if email == "" || len(email) > emailMaxLength {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}
