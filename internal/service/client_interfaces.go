// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-abroad-journal/internal/store"
	"github.com/MKhiriev/go-abroad-journal/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// Authenticator verifies credentials and returns the matching identity, or
// an error wrapping [ErrAuthFailed].
type Authenticator interface {
	Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error)
}

// ClientAuthService manages local accounts and the remembered session.
type ClientAuthService interface {
	Authenticator

	// Register creates an account and signs it in.
	// Returns [store.ErrEmailAlreadyExists] for a taken email.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login authenticates and remembers the user for the next start.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// RestoreSession returns the remembered user.
	// Returns [store.ErrSessionNotFound] when nobody is remembered.
	RestoreSession(ctx context.Context) (models.User, error)

	// Logout forgets the remembered user.
	Logout(ctx context.Context) error
}

// ClientDiaryService is the session-scoped diary: it talks to the remote
// backend and keeps the in-memory collection in step.
type ClientDiaryService interface {
	// Load replaces the collection with the remote list. On failure the
	// collection is left as it was.
	Load(ctx context.Context) error

	// Create stores draft remotely and puts the result at the top of the
	// collection.
	Create(ctx context.Context, draft models.EntryDraft) (models.DiaryEntry, error)

	// Update sends patch for id and applies it locally on success. It fails
	// with [store.ErrEntryNotFound] before any network call when id is not
	// in the collection. The category is stored in the canonical form sent
	// to the backend.
	//
	// A load resolving while the request is in flight may drop id from the
	// collection. Update then returns [store.ErrEntryNotFound] although the
	// backend already applied the patch; reload to see it.
	Update(ctx context.Context, id string, patch models.EntryPatch) (models.DiaryEntry, error)

	// Get fetches one entry from the backend without touching the collection.
	Get(ctx context.Context, id string) (models.DiaryEntry, error)

	// Delete removes id remotely. The collection is not changed; callers
	// reload to see the result.
	Delete(ctx context.Context, id string) (string, error)

	Entries() []models.DiaryEntry
	State() store.CollectionState
}

// ClientCorrectionService requests grammar and style feedback.
type ClientCorrectionService interface {
	// Correct returns [ErrEmptyText] for blank text without calling out, and
	// [ErrCorrectionDisabled] when no proxy is configured.
	Correct(ctx context.Context, text string) (models.Correction, error)

	// Enabled reports whether a correction proxy is configured.
	Enabled() bool
}
