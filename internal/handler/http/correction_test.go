// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-abroad-journal/internal/service"
	"github.com/MKhiriev/go-abroad-journal/models"
)

func wrap(err error) error {
	return fmt.Errorf("wrapped: %w", err)
}

func TestCorrect_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(h *testHandler)
		wantStatus int
		wantBody   string
	}{
		{
			name: "corrected text returned as is",
			body: `{"text":"I goes to school"}`,
			setup: func(h *testHandler) {
				h.correction.EXPECT().
					Correct(gomock.Any(), "I goes to school").
					Return(models.Correction{CorrectedText: "I go to school", Feedback: "- verb agreement"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"correctedText":"I go to school","feedback":"- verb agreement"}`,
		},
		{
			name:       "missing text",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Text is required"}`,
		},
		{
			name:       "empty text",
			body:       `{"text":""}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Text is required"}`,
		},
		{
			name: "blank text rejected by service",
			body: `{"text":"   "}`,
			setup: func(h *testHandler) {
				h.correction.EXPECT().Correct(gomock.Any(), "   ").Return(models.Correction{}, service.ErrEmptyText)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Text is required"}`,
		},
		{
			name:       "body is not JSON",
			body:       `text=hello`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to get AI correction."}`,
		},
		{
			name: "model failure hides details",
			body: `{"text":"hello"}`,
			setup: func(h *testHandler) {
				h.correction.EXPECT().
					Correct(gomock.Any(), "hello").
					Return(models.Correction{}, wrap(service.ErrCorrectionFailed))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to get AI correction."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(h)
			}

			req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/correction", strings.NewReader(tt.body)))
			rec := httptest.NewRecorder()

			h.correct(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
