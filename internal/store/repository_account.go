// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/models"
)

type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository returns an [AccountRepository] over db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{db: db, logger: logger}
}

// CreateAccount implements [AccountRepository]. Emails are stored lower-cased.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	account.Email = normalizeEmail(account.Email)
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertAccountQuery(account.Email, account.Name, account.PasswordHash, account.CreatedAt)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&account.UserID); err != nil {
		if isUniqueViolation(err) {
			return models.Account{}, ErrEmailAlreadyExists
		}
		r.logger.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return account, nil
}

// FindAccountByEmail implements [AccountRepository].
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findOne(ctx, sq.Eq{"email": normalizeEmail(email)})
}

// FindAccountByID implements [AccountRepository].
func (r *accountRepository) FindAccountByID(ctx context.Context, userID int64) (models.Account, error) {
	return r.findOne(ctx, sq.Eq{"user_id": userID})
}

func (r *accountRepository) findOne(ctx context.Context, where sq.Eq) (models.Account, error) {
	query, args, err := buildSelectAccountQuery(where)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&account.UserID, &account.Email, &account.Name, &account.PasswordHash, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*accountRepository.findOne").Msg("error selecting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
