// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/store"
	"github.com/MKhiriev/go-abroad-journal/models"
)

type clientAuthService struct {
	accounts store.AccountRepository
	sessions store.SessionRepository
	now      func() time.Time
	cost     int

	logger *logger.Logger
}

// NewClientAuthService returns a [ClientAuthService] over the local account
// and session repositories.
func NewClientAuthService(accounts store.AccountRepository, sessions store.SessionRepository, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		accounts: accounts,
		sessions: sessions,
		now:      time.Now,
		cost:     bcrypt.DefaultCost,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := validateCredentials(credentials); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	name := strings.TrimSpace(credentials.Name)
	if name == "" {
		name = strings.TrimSpace(credentials.Email)
	}

	account, err := a.accounts.CreateAccount(ctx, models.Account{
		User:         models.User{Email: credentials.Email, Name: name},
		PasswordHash: string(hash),
		CreatedAt:    a.now().UTC(),
	})
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	if err = a.remember(ctx, account.User); err != nil {
		return models.User{}, err
	}

	a.logger.Info().Int64("user_id", account.UserID).Msg("account registered")
	return account.User, nil
}

// Authenticate implements [Authenticator]. It does not touch the session.
func (a *clientAuthService) Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := validateCredentials(credentials); err != nil {
		return models.User{}, err
	}

	account, err := a.accounts.FindAccountByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.User{}, ErrAuthFailed
	}
	if err != nil {
		return models.User{}, fmt.Errorf("authenticate: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(credentials.Password)); err != nil {
		return models.User{}, ErrAuthFailed
	}

	return account.User, nil
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	user, err := a.Authenticate(ctx, credentials)
	if err != nil {
		return models.User{}, err
	}

	if err = a.remember(ctx, user); err != nil {
		return models.User{}, err
	}

	a.logger.Info().Int64("user_id", user.UserID).Msg("signed in")
	return user, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.User, error) {
	session, err := a.sessions.GetSession(ctx)
	if err != nil {
		return models.User{}, err
	}

	account, err := a.accounts.FindAccountByID(ctx, session.UserID)
	if errors.Is(err, store.ErrAccountNotFound) {
		_ = a.sessions.DeleteSession(ctx)
		return models.User{}, store.ErrSessionNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("restore session: %w", err)
	}

	return account.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (a *clientAuthService) remember(ctx context.Context, user models.User) error {
	err := a.sessions.SaveSession(ctx, models.StoredSession{UserID: user.UserID, SignedInAt: a.now().UTC()})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func validateCredentials(credentials models.Credentials) error {
	if strings.TrimSpace(credentials.Email) == "" || credentials.Password == "" {
		return ErrInvalidCredentials
	}
	return nil
}
