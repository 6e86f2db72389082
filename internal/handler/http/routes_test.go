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

	"github.com/MKhiriev/go-abroad-journal/internal/utils"
	"github.com/MKhiriev/go-abroad-journal/models"
)

func TestInit_RegistersRoutes(t *testing.T) {
	router := newTestHandler(t).Init()

	patterns := make(map[string][]string)
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			patterns[route.Pattern] = append(patterns[route.Pattern], method)
		}
	}

	assert.Equal(t, []string{http.MethodGet}, patterns["/api/version"])
	assert.Equal(t, []string{http.MethodPost}, patterns["/api/correction"])
}

func TestRouter_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		authHeader func(t *testing.T) string
		setup      func(h *testHandler)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "version without token",
			method: http.MethodGet,
			path:   "/api/version",
			setup: func(h *testHandler) {
				h.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
			},
			wantStatus: http.StatusOK,
			wantBody:   "1.0.0",
		},
		{
			name:       "correction without token",
			method:     http.MethodPost,
			path:       "/api/correction",
			body:       `{"text":"hi"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "{\"error\":\"empty `Authorization` header\"}",
		},
		{
			name:       "correction with malformed header",
			method:     http.MethodPost,
			path:       "/api/correction",
			body:       `{"text":"hi"}`,
			authHeader: func(*testing.T) string { return "Token abc" },
			wantStatus: http.StatusUnauthorized,
			wantBody:   "{\"error\":\"invalid `Authorization` header\"}",
		},
		{
			name:   "correction with foreign token",
			method: http.MethodPost,
			path:   "/api/correction",
			body:   `{"text":"hi"}`,
			authHeader: func(t *testing.T) string {
				token, err := utils.GenerateJWTToken("someone-else", 1, time.Minute, testSignKey)
				require.NoError(t, err)
				return "Bearer " + token.SignedString
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"invalid or expired token"}`,
		},
		{
			name:   "correction with token signed by another key",
			method: http.MethodPost,
			path:   "/api/correction",
			body:   `{"text":"hi"}`,
			authHeader: func(t *testing.T) string {
				token, err := utils.GenerateJWTToken(testIssuer, 1, time.Minute, "other-key")
				require.NoError(t, err)
				return "Bearer " + token.SignedString
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"invalid or expired token"}`,
		},
		{
			name:       "correction with valid token",
			method:     http.MethodPost,
			path:       "/api/correction",
			body:       `{"text":"hi"}`,
			authHeader: func(t *testing.T) string { return signedToken(t, 42) },
			setup: func(h *testHandler) {
				h.correction.EXPECT().Correct(gomock.Any(), "hi").Return(models.Correction{CorrectedText: "Hi.", Feedback: "- punctuation"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"correctedText":"Hi.","feedback":"- punctuation"}`,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/diaries",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Not Found"}`,
		},
		{
			name:       "wrong method on known route",
			method:     http.MethodGet,
			path:       "/api/correction",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Not Found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(h)
			}

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.authHeader != nil {
				req.Header.Set("Authorization", tt.authHeader(t))
			}
			rec := httptest.NewRecorder()

			h.Init().ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if strings.HasPrefix(tt.wantBody, "{") {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			} else {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestRouter_AuthPutsUserIDIntoContext(t *testing.T) {
	h := newTestHandler(t)

	var gotUserID int64
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, ok = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/correction", nil))
	req.Header.Set("Authorization", signedToken(t, 7))
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, ok)
	assert.Equal(t, int64(7), gotUserID)
}

func TestRouter_CORSPreflight(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		wantAllowed string
	}{
		{name: "allowed origin", origin: testOrigin, wantAllowed: testOrigin},
		{name: "foreign origin", origin: "http://evil.example", wantAllowed: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(t).Init()

			req := httptest.NewRequest(http.MethodOptions, "/api/correction", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
