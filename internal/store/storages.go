// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-abroad-journal/internal/config"
	"github.com/MKhiriev/go-abroad-journal/internal/logger"
)

// ClientStorages groups the client's SQLite repositories.
type ClientStorages struct {
	Accounts AccountRepository
	Sessions SessionRepository

	db *DB
}

// NewClientStorages opens the SQLite database, migrates it and wires the
// repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	logger.Info().Msg("storages created")
	return &ClientStorages{
		Accounts: NewAccountRepository(db, logger),
		Sessions: NewSessionRepository(db, logger),
		db:       db,
	}, nil
}

// Close closes the database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
