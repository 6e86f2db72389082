// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Record is one diary row as the remote diary backend represents it.
//
// Latitude and Longitude are pointers so that a coordinate missing from the
// payload is not confused with 0.
type Record struct {
	DiaryID       int64     `json:"diary_id"`
	UserID        int64     `json:"user_id"`
	Title         string    `json:"title"`
	Text          string    `json:"text"`
	CorrectedText string    `json:"corrected_text"`
	CategoryID    int64     `json:"category_id"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	CreatedAt     time.Time `json:"created_at"`
}
