// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/models"
)

type App struct {
	services *service.ClientServices
	screens  Screens
	closer   io.Closer

	logger *logger.Logger
}

// NewApp wires the client runtime. closer, when not nil, is closed by
// [App.Close].
func NewApp(services *service.ClientServices, screens Screens, closer io.Closer, logger *logger.Logger) *App {
	return &App{
		services: services,
		screens:  screens,
		closer:   closer,
		logger:   logger,
	}
}

func (a *App) Run() error {
	return a.run(context.Background())
}

func (a *App) run(ctx context.Context) error {
	for {
		identity, err := a.authenticate(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.screens.MainLoop(ctx, identity)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
		a.logger.Info().Str("user_id", identity.ID).Msg("user logged out")
	}
}

// authenticate resumes the stored session when the server still accepts it
// and shows the login screens otherwise.
func (a *App) authenticate(ctx context.Context) (models.Identity, error) {
	auth := a.services.AuthService

	restored, err := auth.RestoreSession(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("restore session failed")
	}

	if restored {
		identity, ok, err := auth.CurrentUser(ctx)
		switch {
		case err != nil:
			a.logger.Warn().Err(err).Msg("resolve restored session failed")
		case ok:
			a.logger.Info().Str("user_id", identity.ID).Msg("session restored")
			return identity, nil
		}
	}

	return a.screens.LoginFlow(ctx)
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
