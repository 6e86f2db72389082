// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/mock"
	"github.com/MKhiriev/go-abroad-journal/internal/service"
	"github.com/MKhiriev/go-abroad-journal/internal/session"
	"github.com/MKhiriev/go-abroad-journal/internal/store"
	"github.com/MKhiriev/go-abroad-journal/internal/tui"
	"github.com/MKhiriev/go-abroad-journal/internal/view"
	"github.com/MKhiriev/go-abroad-journal/models"
)

// fakeUI replays scripted results.
type fakeUI struct {
	logins   []models.User
	loginErr error
	logouts  []bool

	sessions []*session.Session
	views    []view.View
}

func (f *fakeUI) LoginFlow(context.Context) (models.User, error) {
	if f.loginErr != nil {
		return models.User{}, f.loginErr
	}
	if len(f.logins) == 0 {
		return models.User{}, tui.ErrUserQuit
	}
	user := f.logins[0]
	f.logins = f.logins[1:]
	return user, nil
}

func (f *fakeUI) MainLoop(_ context.Context, sess *session.Session, views *view.Controller) (bool, error) {
	f.sessions = append(f.sessions, sess)
	f.views = append(f.views, views.Active())
	views.Select(view.List)

	logout := f.logouts[0]
	f.logouts = f.logouts[1:]
	return logout, nil
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockClientAuthService) {
	t.Helper()
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	app, err := NewApp(&service.ClientServices{AuthService: auth}, ui, logger.Nop())
	require.NoError(t, err)
	return app, auth
}

func TestApp_RestoredSessionSkipsLogin(t *testing.T) {
	ui := &fakeUI{logouts: []bool{false}}
	app, auth := newTestApp(t, ui)

	auth.EXPECT().RestoreSession(gomock.Any()).Return(models.User{UserID: 3}, nil)

	require.NoError(t, app.Run(context.Background()))

	require.Len(t, ui.sessions, 1)
	assert.Equal(t, int64(3), ui.sessions[0].User().UserID)
	assert.True(t, ui.sessions[0].Closed(), "session ends with the main loop")
}

func TestApp_LogoutEndsSessionAndShowsLogin(t *testing.T) {
	ui := &fakeUI{
		logins:  []models.User{{UserID: 2}},
		logouts: []bool{true, false},
	}
	app, auth := newTestApp(t, ui)

	gomock.InOrder(
		auth.EXPECT().RestoreSession(gomock.Any()).Return(models.User{UserID: 1}, nil),
		auth.EXPECT().Logout(gomock.Any()).Return(nil),
		auth.EXPECT().RestoreSession(gomock.Any()).Return(models.User{}, store.ErrSessionNotFound),
	)

	require.NoError(t, app.Run(context.Background()))

	require.Len(t, ui.sessions, 2)
	assert.Equal(t, int64(1), ui.sessions[0].User().UserID)
	assert.Equal(t, int64(2), ui.sessions[1].User().UserID)
	assert.True(t, ui.sessions[0].Closed())
	_, err := ui.sessions[0].Diary()
	assert.ErrorIs(t, err, session.ErrSessionClosed)

	assert.Equal(t, []view.View{view.Home, view.Home}, ui.views, "logout resets the view")
}

func TestApp_QuitFromLogin(t *testing.T) {
	ui := &fakeUI{}
	app, auth := newTestApp(t, ui)

	auth.EXPECT().RestoreSession(gomock.Any()).Return(models.User{}, store.ErrSessionNotFound)

	assert.NoError(t, app.Run(context.Background()))
	assert.Empty(t, ui.sessions)
}

func TestApp_Errors(t *testing.T) {
	t.Run("restore", func(t *testing.T) {
		app, auth := newTestApp(t, &fakeUI{})
		boom := errors.New("db locked")
		auth.EXPECT().RestoreSession(gomock.Any()).Return(models.User{}, boom)

		assert.ErrorIs(t, app.Run(context.Background()), boom)
	})

	t.Run("login flow", func(t *testing.T) {
		boom := errors.New("tty")
		app, auth := newTestApp(t, &fakeUI{loginErr: boom})
		auth.EXPECT().RestoreSession(gomock.Any()).Return(models.User{}, store.ErrSessionNotFound)

		assert.ErrorIs(t, app.Run(context.Background()), boom)
	})

	t.Run("logout", func(t *testing.T) {
		app, auth := newTestApp(t, &fakeUI{logouts: []bool{true}})
		boom := errors.New("io")
		auth.EXPECT().RestoreSession(gomock.Any()).Return(models.User{UserID: 1}, nil)
		auth.EXPECT().Logout(gomock.Any()).Return(boom)

		assert.ErrorIs(t, app.Run(context.Background()), boom)
	})
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, logger.Nop())
	assert.Error(t, err)

	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	_, err = NewApp(&service.ClientServices{AuthService: auth}, nil, logger.Nop())
	assert.Error(t, err)
}
