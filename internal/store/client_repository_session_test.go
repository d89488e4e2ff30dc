// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var localSessionColumns = []string{"id", "user_id", "secret", "expire", "created_at"}

func newTestLocalSessionRepo(t *testing.T) (LocalSessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewLocalSessionRepository(&DB{DB: db, logger: logger.Nop(), dialect: dialectSQLite}, logger.Nop()), mock
}

func TestLocalSessionRepository_SaveSession(t *testing.T) {
	created := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	session := models.Session{ID: "s-1", UserID: "u-1", Secret: "jwt", CreatedAt: created, Expire: created.Add(time.Hour)}

	repo, mock := newTestLocalSessionRepo(t)
	mock.ExpectExec("INSERT INTO sessions").
		WithArgs("s-1", "u-1", "jwt", "2026-05-01T09:00:00.000Z", "2026-05-01T08:00:00.000Z").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveSession(context.Background(), session))
	assert.NoError(t, mock.ExpectationsWereMet())

	repo, mock = newTestLocalSessionRepo(t)
	mock.ExpectExec("INSERT INTO sessions").WillReturnError(errors.New("disk full"))
	assert.ErrorIs(t, repo.SaveSession(context.Background(), session), ErrExecutingStatement)
}

func TestLocalSessionRepository_LoadSession(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		repo, mock := newTestLocalSessionRepo(t)
		mock.ExpectQuery("FROM sessions").
			WillReturnRows(sqlmock.NewRows(localSessionColumns).
				AddRow("s-1", "u-1", "jwt", "2026-05-01T09:00:00.000Z", ""))

		got, err := repo.LoadSession(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "jwt", got.Secret)
		assert.Equal(t, time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC), got.Expire)
		assert.True(t, got.CreatedAt.IsZero())
	})

	t.Run("empty", func(t *testing.T) {
		repo, mock := newTestLocalSessionRepo(t)
		mock.ExpectQuery("FROM sessions").WillReturnRows(sqlmock.NewRows(localSessionColumns))

		_, err := repo.LoadSession(context.Background())
		assert.ErrorIs(t, err, ErrLocalSessionNotFound)
	})

	t.Run("corrupt timestamp", func(t *testing.T) {
		repo, mock := newTestLocalSessionRepo(t)
		mock.ExpectQuery("FROM sessions").
			WillReturnRows(sqlmock.NewRows(localSessionColumns).AddRow("s-1", "u-1", "jwt", "yesterday", ""))

		_, err := repo.LoadSession(context.Background())
		assert.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestLocalSessionRepository_ClearSession(t *testing.T) {
	repo, mock := newTestLocalSessionRepo(t)
	mock.ExpectExec("DELETE FROM sessions").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.NoError(t, repo.ClearSession(context.Background()))
}

// TestClientStorages_SQLiteRoundTrip runs against a real database file.
func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "client.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: path}}, logger.Nop())
	if err != nil {
		t.Skipf("sqlite is not available: %v", err)
	}
	t.Cleanup(func() { _ = storages.Close() })

	repo := storages.SessionRepository

	_, err = repo.LoadSession(ctx)
	require.ErrorIs(t, err, ErrLocalSessionNotFound)

	first := models.Session{ID: "s-1", UserID: "u-1", Secret: "one", Expire: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)}
	second := models.Session{ID: "s-2", UserID: "u-1", Secret: "two"}

	require.NoError(t, repo.SaveSession(ctx, first))
	require.NoError(t, repo.SaveSession(ctx, second))

	got, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "s-2", got.ID)
	assert.Equal(t, "two", got.Secret)
	assert.True(t, got.Expire.IsZero())

	require.NoError(t, repo.ClearSession(ctx))
	require.NoError(t, repo.ClearSession(ctx))

	_, err = repo.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}
