// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP boundaries of the journal: the
// remote diary backend, the correction proxy, and (on the proxy side) the
// hosted language model.
//
// Every transport error and every non-2xx response is reported as an error
// wrapping [ErrNetworkFailure]; status specific sentinels such as
// [ErrNotFound] wrap it as well, so callers can match either with errors.Is.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-abroad-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DiaryGateway is the HTTP boundary to the external diary backend. It does
// no retries and keeps no state between calls.
type DiaryGateway interface {
	// List fetches every record, in backend order.
	List(ctx context.Context) (models.ListRecordsResponse, error)

	// Get fetches one record by id.
	Get(ctx context.Context, id string) (models.Record, error)

	// Create stores a new record and returns it with server-assigned fields.
	Create(ctx context.Context, req models.CreateRecordRequest) (models.Record, error)

	// Update sends a partial record and returns the stored result.
	Update(ctx context.Context, id string, req models.UpdateRecordRequest) (models.Record, error)

	// Delete removes a record and returns the backend's confirmation.
	Delete(ctx context.Context, id string) (models.DeleteRecordResponse, error)
}

// CorrectionAdapter calls the correction proxy on behalf of a signed-in user.
type CorrectionAdapter interface {
	// Correct submits text for grammar and style feedback. token is the
	// bearer JWT sent in the Authorization header.
	Correct(ctx context.Context, token string, text string) (models.Correction, error)
}

// LanguageModelAdapter talks to an OpenAI-compatible chat completions API.
type LanguageModelAdapter interface {
	// Complete sends a single user prompt and asks for a JSON object reply.
	// It returns the raw message content of the first choice.
	Complete(ctx context.Context, prompt string) (string, error)
}
