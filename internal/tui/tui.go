// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the terminal screens of the note keeper client with
// Bubble Tea: the auth screen with its login and register tabs, and the
// notes screen with the list, the editor and the delete confirmation.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUserQuit    = errors.New("user quit the program")
	ErrNoServices  = errors.New("client services are not provided")
	errWrongResult = errors.New("unexpected final model")
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	run    func(tea.Model) (tea.Model, error)
	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}

	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		run:       runProgram,
		logger:    logger,
	}, nil
}

// LoginFlow shows the auth screen until the user logs in or registers, and
// returns the identity of the new session.
func (t *TUI) LoginFlow(ctx context.Context) (models.Identity, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	finalModel, err := t.run(NewRootModel(pages, pageMenu, t.buildInfo))
	if err != nil {
		return models.Identity{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Identity{}, errWrongResult
	}
	if result.quitByUser {
		return models.Identity{}, ErrUserQuit
	}

	t.logger.Info().Str("user_id", result.identity.ID).Msg("user authenticated")
	return result.identity, nil
}

// MainLoop shows the notes of identity. It reports whether the user logged
// out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, identity models.Identity) (logout bool, err error) {
	model := newNotesModel(ctx, t.services, identity)

	finalModel, err := t.run(model)
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(notesModel)
	if !ok {
		return false, errWrongResult
	}
	return result.logout, nil
}

func runProgram(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithAltScreen()).Run()
}
