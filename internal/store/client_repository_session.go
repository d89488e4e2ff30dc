// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// localSessionRepository stores the client session in a single-row SQLite
// table. Timestamps are kept as text in the wire timestamp format.
type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSessionRepository constructs a [LocalSessionRepository] on top of
// the client database.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, saveLocalSession,
		session.ID,
		session.UserID,
		session.Secret,
		formatOptionalTimestamp(session.Expire),
		formatOptionalTimestamp(session.CreatedAt),
	)
	if err != nil {
		log.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var (
		session   models.Session
		expire    string
		createdAt string
	)
	err := l.DB.QueryRowContext(ctx, loadLocalSession).
		Scan(&session.ID, &session.UserID, &session.Secret, &expire, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*localSessionRepository.LoadSession").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if session.Expire, err = parseOptionalTimestamp(expire); err != nil {
		return models.Session{}, fmt.Errorf("%w: expire: %w", ErrScanningRow, err)
	}
	if session.CreatedAt, err = parseOptionalTimestamp(createdAt); err != nil {
		return models.Session{}, fmt.Errorf("%w: created_at: %w", ErrScanningRow, err)
	}
	session.Provider = models.SessionProviderEmail

	return session, nil
}

func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, clearLocalSession); err != nil {
		log.Err(err).Str("func", "*localSessionRepository.ClearSession").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func formatOptionalTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return models.FormatTimestamp(t)
}

func parseOptionalTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return models.ParseTimestamp(s)
}
