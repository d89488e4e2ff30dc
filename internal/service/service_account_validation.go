// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// AccountValidationService rejects malformed account input before it
// reaches the wrapped AccountService.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) CreateAccount(ctx context.Context, req models.AccountCreateRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateAccount(ctx, req)
}

func (v *AccountValidationService) CreateSession(ctx context.Context, req models.SessionCreateRequest) (models.Session, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateSession(ctx, req)
}

func (v *AccountValidationService) ParseSession(ctx context.Context, secret string) (models.Session, error) {
	if secret == "" {
		return models.Session{}, ErrSessionExpiredOrInvalid
	}

	return v.inner.ParseSession(ctx, secret)
}

func (v *AccountValidationService) GetAccount(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrNoUserID
	}

	return v.inner.GetAccount(ctx, userID)
}

func (v *AccountValidationService) DeleteSession(ctx context.Context, userID, sessionID string) error {
	if userID == "" {
		return ErrNoUserID
	}
	if sessionID == "" {
		return fmt.Errorf("%w: empty session ID", ErrInvalidDataProvided)
	}

	return v.inner.DeleteSession(ctx, userID, sessionID)
}

func (v *AccountValidationService) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	return v.inner.DeleteExpiredSessions(ctx)
}

func (v *AccountValidationService) Wrap(wrapped AccountService) AccountService {
	v.inner = wrapped
	return v
}
