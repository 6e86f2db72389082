// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository returns a [SessionRepository] over db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{db: db, logger: logger}
}

// SaveSession implements [SessionRepository], replacing any stored session.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.StoredSession) error {
	query, args, err := buildUpsertSessionQuery(session.UserID, session.SignedInAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession implements [SessionRepository].
func (r *sessionRepository) GetSession(ctx context.Context) (models.StoredSession, error) {
	query, args, err := buildSelectSessionQuery()
	if err != nil {
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.StoredSession
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.UserID, &session.SignedInAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredSession{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error reading session")
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

// DeleteSession implements [SessionRepository]. Deleting when nothing is
// stored is not an error.
func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
