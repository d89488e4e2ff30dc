// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientAuthService struct {
	adapter adapter.AccountAdapter

	// sessions is optional; without it sessions last for one run.
	sessions store.LocalSessionRepository

	now func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(accountAdapter adapter.AccountAdapter, sessions store.LocalSessionRepository, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:  accountAdapter,
		sessions: sessions,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, email, password, name string) (models.Session, error) {
	_, err := a.adapter.CreateAccount(ctx, models.AccountCreateRequest{
		UserID:   models.UniqueID,
		Email:    email,
		Password: password,
		Name:     name,
	})
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Register").Msg("account creation failed")
		return models.Session{}, err
	}

	return a.Login(ctx, email, password)
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	session, err := a.adapter.CreateEmailPasswordSession(ctx, email, password)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Msg("session creation failed")
		return models.Session{}, err
	}

	a.adapter.SetSession(session.Secret)

	if a.sessions != nil {
		if err = a.sessions.SaveSession(ctx, session); err != nil {
			a.logger.Warn().Err(err).Str("func", "*clientAuthService.Login").Msg("session is not persisted locally")
		}
	}

	return session, nil
}

func (a *clientAuthService) CurrentUser(ctx context.Context) (models.Identity, bool, error) {
	if a.adapter.Session() == "" {
		return models.Identity{}, false, nil
	}

	user, err := a.adapter.GetAccount(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		a.logger.Debug().Str("func", "*clientAuthService.CurrentUser").Msg("session was rejected by the server")
		a.dropSession(ctx)
		return models.Identity{}, false, nil
	}
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.CurrentUser").Msg("account lookup failed")
		return models.Identity{}, false, err
	}

	return user.Identity(), true, nil
}

func (a *clientAuthService) Authenticated(ctx context.Context) (models.Identity, error) {
	identity, ok, err := a.CurrentUser(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	if !ok {
		return models.Identity{}, ErrNotAuthenticated
	}

	return identity, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.adapter.DeleteSession(ctx, models.CurrentSessionID); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Logout").Msg("session deletion failed")
		return err
	}

	a.dropSession(ctx)
	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (bool, error) {
	if a.sessions == nil {
		return false, nil
	}

	session, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return false, nil
	}
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.RestoreSession").Msg("local session load failed")
		return false, err
	}

	if session.Secret == "" || session.Expired(a.now()) {
		a.dropSession(ctx)
		return false, nil
	}

	a.adapter.SetSession(session.Secret)
	return true, nil
}

func (a *clientAuthService) IsLoggedIn(ctx context.Context) bool {
	_, ok, _ := a.CurrentUser(ctx)
	return ok
}

// dropSession forgets the current session in the adapter and on disk.
func (a *clientAuthService) dropSession(ctx context.Context) {
	a.adapter.SetSession("")

	if a.sessions == nil {
		return
	}
	if err := a.sessions.ClearSession(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.dropSession").Msg("local session is not cleared")
	}
}
