// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// accountService is the concrete implementation of AccountService.
// Passwords are stored as Argon2id hashes; session secrets are HS256 JWTs
// whose "jti" must name a row of the sessions table.
type accountService struct {
	users    store.UserRepository
	sessions store.SessionRepository
	hasher   crypto.PasswordHasher
	ids      IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify session secrets.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued secret.
	// Secrets whose issuer does not match this value are rejected.
	tokenIssuer string

	// sessionDuration controls how long a new session remains valid.
	sessionDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAccountService constructs an AccountService from the user and session
// repositories and the security parameters of cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAccountService(users store.UserRepository, sessions store.SessionRepository, hasher crypto.PasswordHasher,
	ids IDGenerator, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		users:           users,
		sessions:        sessions,
		hasher:          hasher,
		ids:             ids,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		sessionDuration: cfg.SessionDuration,
		now:             time.Now,
		logger:          logger,
	}
}

// CreateAccount hashes the password and persists the account.
//
// Returns store.ErrUserAlreadyExists (wrapped) if the email is taken.
func (s *accountService) CreateAccount(ctx context.Context, req models.AccountCreateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	userID := req.UserID
	if userID == "" || userID == models.UniqueID {
		userID = s.ids.Generate()
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*accountService.CreateAccount").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := s.timestamp()
	user, err := s.users.CreateUser(ctx, models.User{
		ID:           userID,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Err(err).Str("func", "*accountService.CreateAccount").Str("user_id", userID).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// CreateSession authenticates the credentials and opens a new session.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// that callers cannot probe for registered emails.
func (s *accountService) CreateSession(ctx context.Context, req models.SessionCreateRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.CreateSession").Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*accountService.CreateSession").Str("user_id", user.ID).Msg("stored password hash is unusable")
		return models.Session{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Info().Str("func", "*accountService.CreateSession").Str("user_id", user.ID).Msg("wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	now := s.timestamp()
	session := models.Session{
		ID:        s.ids.Generate(),
		UserID:    user.ID,
		Provider:  models.SessionProviderEmail,
		Expire:    now.Add(s.sessionDuration),
		CreatedAt: now,
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.ID, session.ID, now, s.sessionDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*accountService.CreateSession").Msg("session secret creation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = s.sessions.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("func", "*accountService.CreateSession").Str("user_id", user.ID).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	session.Secret = token.SignedString
	return session, nil
}

// ParseSession validates the secret and checks that the session it names
// still exists, belongs to the secret's subject and has not expired. Every
// such failure is normalised to ErrSessionExpiredOrInvalid.
func (s *accountService) ParseSession(ctx context.Context, secret string) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(secret, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*accountService.ParseSession").Msg("session secret rejected")
		return models.Session{}, ErrSessionExpiredOrInvalid
	}

	session, err := s.sessions.GetSession(ctx, token.SessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrSessionExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.ParseSession").Str("session_id", token.SessionID).Msg("session lookup failed")
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.UserID != token.UserID || session.Expired(s.now()) {
		return models.Session{}, ErrSessionExpiredOrInvalid
	}

	return session, nil
}

func (s *accountService) GetAccount(ctx context.Context, userID string) (models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountService.GetAccount").Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// DeleteSession removes one session of userID. Sessions of other users are
// reported as store.ErrSessionNotFound.
func (s *accountService) DeleteSession(ctx context.Context, userID, sessionID string) error {
	if err := s.sessions.DeleteSession(ctx, sessionID, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountService.DeleteSession").Str("session_id", sessionID).Msg("session deletion failed")
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}

func (s *accountService) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	deleted, err := s.sessions.DeleteExpiredSessions(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("expired sessions deletion failed: %w", err)
	}

	return deleted, nil
}

// timestamp returns the current time at the precision documents and
// sessions are reported with.
func (s *accountService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}
