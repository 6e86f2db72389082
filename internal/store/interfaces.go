// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-abroad-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists local journal accounts.
type AccountRepository interface {
	// CreateAccount inserts account and returns it with UserID and CreatedAt
	// set. Returns [ErrEmailAlreadyExists] on a duplicate email.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccountByEmail returns [ErrAccountNotFound] when no row matches.
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)

	// FindAccountByID returns [ErrAccountNotFound] when no row matches.
	FindAccountByID(ctx context.Context, userID int64) (models.Account, error)
}

// SessionRepository remembers the signed-in user between client runs. At
// most one session is stored.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.StoredSession) error
	// GetSession returns [ErrSessionNotFound] when nothing is stored.
	GetSession(ctx context.Context) (models.StoredSession, error)
	DeleteSession(ctx context.Context) error
}
