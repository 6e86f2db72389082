// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	accountsTable = "accounts"
	sessionsTable = "sessions"

	// singleSessionID pins the sessions table to one row.
	singleSessionID = 1
)

var accountColumns = []string{"user_id", "email", "name", "password_hash", "created_at"}

func buildInsertAccountQuery(email, name, passwordHash string, createdAt time.Time) (string, []any, error) {
	return sq.Insert(accountsTable).
		Columns("email", "name", "password_hash", "created_at").
		Values(email, name, passwordHash, createdAt).
		Suffix("RETURNING user_id").
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildSelectAccountQuery(where sq.Eq) (string, []any, error) {
	return sq.Select(accountColumns...).
		From(accountsTable).
		Where(where).
		Limit(1).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildUpsertSessionQuery(userID int64, signedInAt time.Time) (string, []any, error) {
	return sq.Insert(sessionsTable).
		Columns("id", "user_id", "signed_in_at").
		Values(singleSessionID, userID, signedInAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id, signed_in_at = excluded.signed_in_at").
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildSelectSessionQuery() (string, []any, error) {
	return sq.Select("user_id", "signed_in_at").
		From(sessionsTable).
		Where(sq.Eq{"id": singleSessionID}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return sq.Delete(sessionsTable).
		Where(sq.Eq{"id": singleSessionID}).
		PlaceholderFormat(sq.Question).
		ToSql()
}
