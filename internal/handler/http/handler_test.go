// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-abroad-journal/internal/config"
	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/mock"
	"github.com/MKhiriev/go-abroad-journal/internal/service"
	"github.com/MKhiriev/go-abroad-journal/internal/utils"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-abroad-journal"
	testOrigin  = "http://localhost:3000"
)

type testHandler struct {
	*Handler

	correction *mock.MockCorrectionService
	appInfo    *mock.MockAppInfoService
}

func testConfig() *config.ServerConfig {
	return &config.ServerConfig{
		App: config.ServerApp{
			Version:      "1.0.0",
			TokenSignKey: testSignKey,
			TokenIssuer:  testIssuer,
		},
		Server: config.ServerListener{
			HTTPAddress:        "localhost:0",
			RequestTimeout:     5 * time.Second,
			CORSAllowedOrigins: []string{testOrigin},
		},
	}
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	correction := mock.NewMockCorrectionService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	services := &service.Services{CorrectionService: correction, AppInfoService: appInfo}

	return &testHandler{
		Handler:    NewHandler(services, testConfig(), logger.Nop()),
		correction: correction,
		appInfo:    appInfo,
	}
}

// signedToken returns an "Authorization" header value accepted by the
// test handler.
func signedToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, userID, time.Minute, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

func TestNewHandler(t *testing.T) {
	cfg := testConfig()
	services := &service.Services{}

	h := NewHandler(services, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Equal(t, cfg.App, h.tokens)
	assert.Equal(t, cfg.Server, h.listener)
	assert.NotNil(t, h.ids)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "empty text", err: service.ErrEmptyText, want: http.StatusBadRequest},
		{name: "wrapped empty text", err: wrap(service.ErrEmptyText), want: http.StatusBadRequest},
		{name: "model failure", err: service.ErrCorrectionFailed, want: http.StatusInternalServerError},
		{name: "unknown", err: assert.AnError, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusTeapot)
	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = w.Write([]byte(" world"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 11, w.size)
	assert.Same(t, rec, w.Unwrap())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte(strings.Repeat("x", 3)))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 3, w.size)
}
