// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrEntryNotFound is returned when a patch targets an id that is not in
	// the collection.
	ErrEntryNotFound = errors.New("diary entry not found")

	// ErrEmailAlreadyExists is returned when an account with the same email
	// is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSessionNotFound is returned when no session is remembered.
	ErrSessionNotFound = errors.New("session not found")
)

var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan row")
)
