// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateRecordRequest is the body of POST /api/diary.
type CreateRecordRequest struct {
	UserID     int64    `json:"user_id"`
	Title      string   `json:"title"`
	Text       string   `json:"text"`
	CategoryID *int64   `json:"category_id,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// UpdateRecordRequest is the body of PUT /api/diary/{id}.
// Only non-nil fields are sent, so the backend applies a partial update.
type UpdateRecordRequest struct {
	UserID     *int64   `json:"user_id,omitempty"`
	Title      *string  `json:"title,omitempty"`
	Text       *string  `json:"text,omitempty"`
	CategoryID *int64   `json:"category_id,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// CorrectionRequest is the body sent to the correction endpoint.
type CorrectionRequest struct {
	Text string `json:"text"`
}
