// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-abroad-journal/internal/session"
	"github.com/MKhiriev/go-abroad-journal/internal/view"
	"github.com/MKhiriev/go-abroad-journal/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is what the runtime needs from the terminal interface.
type UI interface {
	// LoginFlow blocks until someone signs in. It returns tui.ErrUserQuit
	// when the user leaves instead.
	LoginFlow(ctx context.Context) (models.User, error)

	// MainLoop runs the main screen of sess and reports whether the user
	// signed out.
	MainLoop(ctx context.Context, sess *session.Session, views *view.Controller) (logout bool, err error)
}
