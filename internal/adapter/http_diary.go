// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/utils"
	"github.com/MKhiriev/go-abroad-journal/models"
	"github.com/go-resty/resty/v2"
)

type httpDiaryGateway struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPDiaryGateway returns a [DiaryGateway] rooted at baseURL. A bare
// host:port is accepted and treated as http.
func NewHTTPDiaryGateway(baseURL string, timeout time.Duration, log *logger.Logger) (DiaryGateway, error) {
	client, err := newRestClient(baseURL, timeout, log)
	if err != nil {
		return nil, fmt.Errorf("invalid diary address: %w", err)
	}

	return &httpDiaryGateway{client: client, logger: log}, nil
}

// List implements [DiaryGateway] via GET /api/diaries.
func (g *httpDiaryGateway) List(ctx context.Context) (models.ListRecordsResponse, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		Get("/api/diaries")
	if err != nil {
		return models.ListRecordsResponse{}, transportError("list diaries", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ListRecordsResponse{}, err
	}

	var list models.ListRecordsResponse
	if err = decode(resp.Body(), &list); err != nil {
		return models.ListRecordsResponse{}, fmt.Errorf("decode list response: %w", err)
	}

	return list, nil
}

// Get implements [DiaryGateway] via GET /api/diary/{id}.
func (g *httpDiaryGateway) Get(ctx context.Context, id string) (models.Record, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/api/diary/{id}")
	if err != nil {
		return models.Record{}, transportError("get diary", err)
	}

	return decodeRecord(resp)
}

// Create implements [DiaryGateway] via POST /api/diary.
func (g *httpDiaryGateway) Create(ctx context.Context, req models.CreateRecordRequest) (models.Record, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/diary")
	if err != nil {
		return models.Record{}, transportError("create diary", err)
	}

	return decodeRecord(resp)
}

// Update implements [DiaryGateway] via PUT /api/diary/{id}.
func (g *httpDiaryGateway) Update(ctx context.Context, id string, req models.UpdateRecordRequest) (models.Record, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetBody(req).
		Put("/api/diary/{id}")
	if err != nil {
		return models.Record{}, transportError("update diary", err)
	}

	return decodeRecord(resp)
}

// Delete implements [DiaryGateway] via DELETE /api/diary/{id}.
func (g *httpDiaryGateway) Delete(ctx context.Context, id string) (models.DeleteRecordResponse, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/api/diary/{id}")
	if err != nil {
		return models.DeleteRecordResponse{}, transportError("delete diary", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteRecordResponse{}, err
	}

	var deleted models.DeleteRecordResponse
	if len(resp.Body()) == 0 {
		return deleted, nil
	}
	if err = decode(resp.Body(), &deleted); err != nil {
		return models.DeleteRecordResponse{}, fmt.Errorf("decode delete response: %w", err)
	}

	return deleted, nil
}

func decodeRecord(resp *resty.Response) (models.Record, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	var record models.Record
	if err := decode(resp.Body(), &record); err != nil {
		return models.Record{}, fmt.Errorf("decode record: %w", err)
	}

	return record, nil
}

func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
