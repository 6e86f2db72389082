// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/service"
	"github.com/MKhiriev/go-abroad-journal/internal/session"
	"github.com/MKhiriev/go-abroad-journal/internal/store"
	"github.com/MKhiriev/go-abroad-journal/internal/tui"
	"github.com/MKhiriev/go-abroad-journal/internal/view"
	"github.com/MKhiriev/go-abroad-journal/models"
)

// App is the client runtime. It owns the active [session.Session]; there is
// at most one at a time.
type App struct {
	services *service.ClientServices
	ui       UI
	views    *view.Controller

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil {
		return nil, errors.New("client services are required")
	}
	if ui == nil {
		return nil, errors.New("ui is required")
	}

	return &App{
		services: services,
		ui:       ui,
		views:    view.NewController(),
		logger:   logger,
	}, nil
}

// Run signs a user in, runs their session and repeats after every sign
// out. It returns nil when the user quits.
func (a *App) Run(ctx context.Context) error {
	for {
		user, err := a.signIn(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.runSession(ctx, user)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.views.OnLogout()
		a.logger.Info().Int64("user_id", user.UserID).Msg("signed out")
	}
}

// signIn restores the remembered user or runs the login flow.
func (a *App) signIn(ctx context.Context) (models.User, error) {
	user, err := a.services.AuthService.RestoreSession(ctx)
	if err == nil {
		a.logger.Info().Int64("user_id", user.UserID).Msg("session restored")
		return user, nil
	}
	if !errors.Is(err, store.ErrSessionNotFound) {
		return models.User{}, fmt.Errorf("restore session: %w", err)
	}

	return a.ui.LoginFlow(ctx)
}

func (a *App) runSession(ctx context.Context, user models.User) (bool, error) {
	sess := session.New(user, a.services.NewDiary(user), a.services.NewCorrection(user))
	defer sess.End()

	a.views.OnLogin()
	logout, err := a.ui.MainLoop(ctx, sess, a.views)
	if err != nil {
		return false, fmt.Errorf("main loop: %w", err)
	}
	return logout, nil
}
