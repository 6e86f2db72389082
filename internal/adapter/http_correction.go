// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/utils"
	"github.com/MKhiriev/go-abroad-journal/models"
)

type httpCorrectionAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPCorrectionAdapter returns a [CorrectionAdapter] for the proxy at
// baseURL.
func NewHTTPCorrectionAdapter(baseURL string, timeout time.Duration, log *logger.Logger) (CorrectionAdapter, error) {
	client, err := newRestClient(baseURL, timeout, log)
	if err != nil {
		return nil, fmt.Errorf("invalid correction address: %w", err)
	}

	return &httpCorrectionAdapter{client: client, logger: log}, nil
}

// Correct implements [CorrectionAdapter] via POST /api/correction.
func (a *httpCorrectionAdapter) Correct(ctx context.Context, token string, text string) (models.Correction, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(models.CorrectionRequest{Text: text}).
		Post("/api/correction")
	if err != nil {
		return models.Correction{}, transportError("request correction", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Correction{}, err
	}

	var correction models.Correction
	if err = decode(resp.Body(), &correction); err != nil {
		return models.Correction{}, fmt.Errorf("decode correction: %w", err)
	}

	return correction, nil
}
