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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req chatCompletionRequest
		require.NoError(t, json.Unmarshal(raw, &req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "prompt text", req.Messages[0].Content)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"correctedText\":\"a\",\"feedback\":\"b\"}"}}]}`))
	}))
	defer srv.Close()

	a, err := NewHTTPLanguageModelAdapter(srv.URL+"/v1", "sk-test", "gpt-4o-mini", time.Second, logger.Nop())
	require.NoError(t, err)

	content, err := a.Complete(context.Background(), "prompt text")
	require.NoError(t, err)
	assert.JSONEq(t, `{"correctedText":"a","feedback":"b"}`, content)
}

func TestComplete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	a, err := NewHTTPLanguageModelAdapter(srv.URL, "k", "m", time.Second, logger.Nop())
	require.NoError(t, err)

	content, err := a.Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestComplete_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer srv.Close()

	a, err := NewHTTPLanguageModelAdapter(srv.URL, "bad", "m", time.Second, logger.Nop())
	require.NoError(t, err)

	_, err = a.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
