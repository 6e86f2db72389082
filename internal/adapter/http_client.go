// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/utils"
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the per-request trace id.
const TraceIDHeader = "X-Trace-ID"

// newRestClient builds the resty client shared by all adapters: JSON
// content type, base URL, timeout, and a trace id on every request.
func newRestClient(rawBaseURL string, timeout time.Duration, log *logger.Logger) (*utils.HTTPClient, error) {
	baseURL, err := normalizeBaseURL(rawBaseURL)
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient(baseURL, timeout)
	client.SetHeader("Content-Type", "application/json")

	ids := utils.NewUUIDGenerator()
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		traceID, ok := utils.GetTraceIDFromContext(r.Context())
		if !ok {
			traceID = ids.Generate()
		}
		r.SetHeader(TraceIDHeader, traceID)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Str("trace_id", resp.Request.Header.Get(TraceIDHeader)).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("outbound request")
		return nil
	})

	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
