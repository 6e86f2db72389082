// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the state that lives between sign in and sign out.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-abroad-journal/internal/service"
	"github.com/MKhiriev/go-abroad-journal/models"
)

// ErrSessionClosed is returned by accessors after [Session.End].
var ErrSessionClosed = errors.New("session is closed")

// Session holds the signed-in user together with the services scoped to
// them. It is created on sign in and ended on sign out; nothing of it
// survives into the next session.
type Session struct {
	mu     sync.RWMutex
	user   models.User
	diary  service.ClientDiaryService
	corr   service.ClientCorrectionService
	closed bool
}

// New starts a session for user. correction may be nil.
func New(user models.User, diary service.ClientDiaryService, correction service.ClientCorrectionService) *Session {
	return &Session{
		user:  user,
		diary: diary,
		corr:  correction,
	}
}

// User returns the signed-in user. It stays readable after End.
func (s *Session) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user
}

// Diary returns the user's diary service.
func (s *Session) Diary() (service.ClientDiaryService, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrSessionClosed
	}
	return s.diary, nil
}

// Correction returns the correction service. A nil service with a nil error
// means correction is not configured.
func (s *Session) Correction() (service.ClientCorrectionService, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrSessionClosed
	}
	return s.corr, nil
}

// Load fetches the user's entries.
func (s *Session) Load(ctx context.Context) error {
	diary, err := s.Diary()
	if err != nil {
		return err
	}
	return diary.Load(ctx)
}

// Closed reports whether End was called.
func (s *Session) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.closed
}

// End tears the session down. Calling it twice is a no-op.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.diary = nil
	s.corr = nil
}
