// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/store"
	"github.com/MKhiriev/go-journal-keeper/internal/utils"
	"github.com/MKhiriev/go-journal-keeper/models"
)

type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

type idGenerator interface {
	Generate() string
}

// selfHostedIdentity implements [IdentityService] on top of PostgreSQL
// accounts and Redis sessions. A session secret is a signed JWT; Redis keeps
// the HMAC of every live token so that signing out everywhere revokes them.
type selfHostedIdentity struct {
	accounts store.AccountRepository
	sessions store.SessionStore
	hasher   passwordHasher
	ids      idGenerator

	signKey  string
	issuer   string
	duration time.Duration

	mu     sync.RWMutex
	secret string

	logger *logger.Logger
}

// NewSelfHostedIdentity constructs the self-hosted [IdentityService].
func NewSelfHostedIdentity(accounts store.AccountRepository, sessions store.SessionStore, cfg config.App, log *logger.Logger) IdentityService {
	return &selfHostedIdentity{
		accounts: accounts,
		sessions: sessions,
		hasher:   utils.NewPasswordHasher(),
		ids:      utils.NewUUIDGenerator(),
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		logger:   log,
	}
}

func (s *selfHostedIdentity) SetSecret(secret string) {
	s.mu.Lock()
	s.secret = secret
	s.mu.Unlock()
}

func (s *selfHostedIdentity) Secret() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.secret
}

func (s *selfHostedIdentity) Current(ctx context.Context) (models.Identity, error) {
	userID, err := s.authenticate(ctx)
	if err != nil {
		return models.Identity{}, err
	}

	account, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Identity{}, fmt.Errorf("%w: account of the session no longer exists", ErrUnauthorized)
		}
		s.logger.Err(err).Str("func", "*selfHostedIdentity.Current").Msg("error loading account")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrRemote, err)
	}

	return account.Identity(), nil
}

func (s *selfHostedIdentity) CreateAccount(ctx context.Context, email, password, name string) (models.Identity, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Err(err).Str("func", "*selfHostedIdentity.CreateAccount").Msg("error hashing password")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInternalServerError, err)
	}

	account, err := s.accounts.Create(ctx, models.Account{
		ID:           s.ids.Generate(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrAccountAlreadyExists) {
			return models.Identity{}, fmt.Errorf("%w: a user with the same email already exists", ErrConflict)
		}
		s.logger.Err(err).Str("func", "*selfHostedIdentity.CreateAccount").Msg("error creating account")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrRemote, err)
	}

	return account.Identity(), nil
}

func (s *selfHostedIdentity) CreateSession(ctx context.Context, email, password string) (models.Session, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Session{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		s.logger.Err(err).Str("func", "*selfHostedIdentity.CreateSession").Msg("error loading account")
		return models.Session{}, fmt.Errorf("%w: %w", ErrRemote, err)
	}

	ok, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		s.logger.Err(err).Str("func", "*selfHostedIdentity.CreateSession").Msg("stored password hash is unreadable")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInternalServerError, err)
	}
	if !ok {
		return models.Session{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, err := utils.GenerateJWTToken(s.issuer, account.ID, s.duration, s.signKey)
	if err != nil {
		s.logger.Err(err).Str("func", "*selfHostedIdentity.CreateSession").Msg("error signing session token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInternalServerError, err)
	}

	if err = s.sessions.Save(ctx, account.ID, s.sessionKey(token.SignedString), s.duration); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRemote, err)
	}

	s.SetSecret(token.SignedString)

	return models.Session{
		ID:     token.ID,
		UserID: account.ID,
		Secret: token.SignedString,
		Expire: token.ExpiresAt.Time,
	}, nil
}

func (s *selfHostedIdentity) DeleteAllSessions(ctx context.Context) error {
	userID, err := s.authenticate(ctx)
	if err != nil {
		return err
	}

	if err = s.sessions.DeleteAll(ctx, userID); err != nil {
		return fmt.Errorf("%w: %w", ErrRemote, err)
	}

	s.SetSecret("")
	return nil
}

// authenticate resolves the active secret to its user id.
func (s *selfHostedIdentity) authenticate(ctx context.Context) (string, error) {
	secret := s.Secret()
	if secret == "" {
		return "", fmt.Errorf("%w: no active session", ErrUnauthorized)
	}

	token, err := utils.ValidateAndParseJWTToken(secret, s.signKey, s.issuer)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "*selfHostedIdentity.authenticate").Msg("rejected session token")
		return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	userID, err := s.sessions.Get(ctx, s.sessionKey(secret))
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return "", fmt.Errorf("%w: session revoked", ErrUnauthorized)
		}
		return "", fmt.Errorf("%w: %w", ErrRemote, err)
	}
	if userID != token.UserID {
		return "", fmt.Errorf("%w: session does not belong to the token subject", ErrUnauthorized)
	}

	return userID, nil
}

func (s *selfHostedIdentity) sessionKey(secret string) string {
	return utils.HashString(secret, s.signKey)
}
