// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/utils"
	"github.com/MKhiriev/go-abroad-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, serverURL string) DiaryGateway {
	t.Helper()
	g, err := NewHTTPDiaryGateway(serverURL, time.Second, logger.Nop())
	require.NoError(t, err)
	return g
}

const recordJSON = `{"diary_id":7,"user_id":1,"title":"Day 1","text":"hello","corrected_text":"","category_id":2,"latitude":35.0,"longitude":139.0,"created_at":"2024-04-01T00:00:00Z"}`

func TestNewHTTPDiaryGateway_InvalidAddress(t *testing.T) {
	_, err := NewHTTPDiaryGateway("", time.Second, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPDiaryGateway("http://", time.Second, logger.Nop())
	assert.Error(t, err)
}

func TestNewHTTPDiaryGateway_BareHostPort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"diaries":[],"count":0}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.Listener.Addr().String())
	_, err := g.List(context.Background())
	require.NoError(t, err)
}

// ── List ────────────────────────────────────────────────────────────────────

func TestList_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/diaries", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(TraceIDHeader))

		_, _ = w.Write([]byte(`{"diaries":[` + recordJSON + `],"count":1}`))
	}))
	defer srv.Close()

	list, err := newTestGateway(t, srv.URL).List(context.Background())
	require.NoError(t, err)

	require.Len(t, list.Diaries, 1)
	assert.Equal(t, 1, list.Count)
	got := list.Diaries[0]
	assert.Equal(t, int64(7), got.DiaryID)
	assert.Equal(t, int64(2), got.CategoryID)
	require.NotNil(t, got.Latitude)
	assert.InDelta(t, 35.0, *got.Latitude, 1e-9)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), got.CreatedAt.UTC())
}

func TestList_NullCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"diaries":[{"diary_id":1,"latitude":null,"created_at":"2024-04-01T00:00:00Z"}],"count":1}`))
	}))
	defer srv.Close()

	list, err := newTestGateway(t, srv.URL).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Diaries, 1)
	assert.Nil(t, list.Diaries[0].Latitude)
	assert.Nil(t, list.Diaries[0].Longitude)
}

func TestList_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	_, err := newTestGateway(t, srv.URL).List(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.Contains(t, err.Error(), "500 Internal Server Error")
	assert.Contains(t, err.Error(), "boom")
}

func TestList_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	_, err := newTestGateway(t, srv.URL).List(context.Background())

	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.ErrorIs(t, err, ErrNetworkFailure)
}

func TestList_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestGateway(t, url).List(context.Background())

	assert.ErrorIs(t, err, ErrNetworkFailure)
}

func TestList_PropagatesTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-42", r.Header.Get(TraceIDHeader))
		_, _ = w.Write([]byte(`{"diaries":[],"count":0}`))
	}))
	defer srv.Close()

	ctx := utils.WithTraceID(context.Background(), "trace-42")
	_, err := newTestGateway(t, srv.URL).List(ctx)
	require.NoError(t, err)
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/diary/7", r.URL.Path)
		_, _ = w.Write([]byte(recordJSON))
	}))
	defer srv.Close()

	rec, err := newTestGateway(t, srv.URL).Get(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "Day 1", rec.Title)
}

func TestGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestGateway(t, srv.URL).Get(context.Background(), "99")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.Contains(t, err.Error(), "404 Not Found")
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestCreate_SendsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/diary", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, float64(1), body["user_id"])
		assert.Equal(t, "Day 2", body["title"])
		assert.Equal(t, "world", body["text"])
		assert.Equal(t, float64(1), body["category_id"])
		assert.NotContains(t, body, "latitude")
		assert.NotContains(t, body, "longitude")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"diary_id":8,"user_id":1,"title":"Day 2","text":"world","category_id":1,"created_at":"2024-04-02T09:00:00Z"}`))
	}))
	defer srv.Close()

	categoryID := int64(1)
	rec, err := newTestGateway(t, srv.URL).Create(context.Background(), models.CreateRecordRequest{
		UserID:     1,
		Title:      "Day 2",
		Text:       "world",
		CategoryID: &categoryID,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(8), rec.DiaryID)
}

func TestCreate_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"title required"}`))
	}))
	defer srv.Close()

	_, err := newTestGateway(t, srv.URL).Create(context.Background(), models.CreateRecordRequest{})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "title required")
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestUpdate_SendsPartialPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/diary/7", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"New"}`, string(raw))

		_, _ = w.Write([]byte(recordJSON))
	}))
	defer srv.Close()

	title := "New"
	_, err := newTestGateway(t, srv.URL).Update(context.Background(), "7", models.UpdateRecordRequest{Title: &title})
	require.NoError(t, err)
}

func TestUpdate_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestGateway(t, srv.URL).Update(context.Background(), "7", models.UpdateRecordRequest{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/diary/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"deleted"}`))
	}))
	defer srv.Close()

	resp, err := newTestGateway(t, srv.URL).Delete(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "deleted", resp.Message)
}

func TestDelete_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := newTestGateway(t, srv.URL).Delete(context.Background(), "7")
	require.NoError(t, err)
	assert.Empty(t, resp.Message)
}

func TestDelete_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestGateway(t, srv.URL).Delete(context.Background(), "7")
	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestDelete_OtherStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestGateway(t, srv.URL).Delete(context.Background(), "7")
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "503")
}
