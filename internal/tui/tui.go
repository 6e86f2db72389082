// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of the journal client.
//
// It runs two bubbletea programs: the sign-in flow ([TUI.LoginFlow]) and the
// tabbed main screen ([TUI.MainLoop]) for one session.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/service"
	"github.com/MKhiriev/go-abroad-journal/internal/session"
	"github.com/MKhiriev/go-abroad-journal/internal/view"
	"github.com/MKhiriev/go-abroad-journal/models"
)

// ErrUserQuit is returned when the user leaves the program.
var ErrUserQuit = errors.New("user quit")

// TUI runs the client screens.
type TUI struct {
	auth      service.ClientAuthService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns the terminal UI over auth.
func New(auth service.ClientAuthService, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{auth: auth, buildInfo: buildInfo, logger: logger}
}

// LoginFlow shows the menu, login and register screens until someone signs
// in, and returns that user.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.auth),
		pageRegister: NewRegisterModel(ctx, t.auth),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.user, nil
}

// MainLoop runs the main screen for sess. It reports logout=true when the
// user asked to sign out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, sess *session.Session, views *view.Controller) (logout bool, err error) {
	model, err := newMainLoopModel(ctx, sess, views, t.logger)
	if err != nil {
		return false, err
	}

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
