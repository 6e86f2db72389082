// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data shapes shared by every layer of the journal:
// the domain [DiaryEntry] the UI works with, the wire [Record] exchanged with
// the diary backend, and the request/response envelopes around them.
package models

import (
	"fmt"
	"time"
)

// DateLayout is the layout of [DiaryEntry.Date]: a calendar date with no
// time component.
const DateLayout = "2006-01-02"

// DiaryEntry is one diary entry as the client sees it.
//
// ID is assigned by the backend and never changes afterwards. CreatedAt is
// fixed at creation; UpdatedAt only moves forward across local edits.
type DiaryEntry struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Date         string    `json:"date"`
	Category     string    `json:"category"`
	Location     *Location `json:"location,omitempty"`
	AICorrection string    `json:"aiCorrection,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Location is where an entry was written.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// NewLocation builds a Location whose Address is derived from the coordinates.
func NewLocation(latitude, longitude float64) *Location {
	return &Location{
		Latitude:  latitude,
		Longitude: longitude,
		Address:   FormatAddress(latitude, longitude),
	}
}

// FormatAddress renders coordinates as the human-readable address shown
// next to an entry.
func FormatAddress(latitude, longitude float64) string {
	return fmt.Sprintf("緯度: %.6f, 経度: %.6f", latitude, longitude)
}

// EntryDraft is what the composer submits before the backend has assigned
// an identifier.
type EntryDraft struct {
	Title    string
	Content  string
	Date     string
	Category string
	Location *Location
}

// EntryPatch describes an edit of an existing entry. Nil fields are left
// untouched.
type EntryPatch struct {
	Title    *string
	Category *string
	Content  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.Title == nil && p.Category == nil && p.Content == nil
}
