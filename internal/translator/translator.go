// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package translator converts between the diary backend's wire records and
// the client's domain entries. Every function is pure and never fails:
// malformed category strings fall back to [models.DefaultCategoryID].
package translator

import (
	"strconv"

	"github.com/MKhiriev/go-abroad-journal/models"
)

// ToDomain maps a backend record to a diary entry.
//
// The entry date is the UTC calendar date of created_at, and both CreatedAt
// and UpdatedAt take created_at since the backend keeps no update time. A
// location is set only when both coordinates are present.
func ToDomain(record models.Record) models.DiaryEntry {
	entry := models.DiaryEntry{
		ID:           strconv.FormatInt(record.DiaryID, 10),
		Title:        record.Title,
		Content:      record.Text,
		Date:         record.CreatedAt.UTC().Format(models.DateLayout),
		Category:     strconv.FormatInt(record.CategoryID, 10),
		AICorrection: record.CorrectedText,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.CreatedAt,
	}

	if record.Latitude != nil && record.Longitude != nil {
		entry.Location = models.NewLocation(*record.Latitude, *record.Longitude)
	}

	return entry
}

// ToDomainList maps records in order.
func ToDomainList(records []models.Record) []models.DiaryEntry {
	entries := make([]models.DiaryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, ToDomain(r))
	}
	return entries
}

// ToRemoteCreatePayload builds the create body for draft owned by ownerID.
// Coordinates are omitted when the draft has no location.
func ToRemoteCreatePayload(draft models.EntryDraft, ownerID int64) models.CreateRecordRequest {
	categoryID := models.ParseCategoryID(draft.Category)

	payload := models.CreateRecordRequest{
		UserID:     ownerID,
		Title:      draft.Title,
		Text:       draft.Content,
		CategoryID: &categoryID,
	}

	if draft.Location != nil {
		lat, lng := draft.Location.Latitude, draft.Location.Longitude
		payload.Latitude = &lat
		payload.Longitude = &lng
	}

	return payload
}

// ToRemoteUpdatePayload builds a partial update body holding only the
// fields present in patch.
func ToRemoteUpdatePayload(patch models.EntryPatch) models.UpdateRecordRequest {
	var payload models.UpdateRecordRequest

	if patch.Title != nil {
		title := *patch.Title
		payload.Title = &title
	}
	if patch.Content != nil {
		text := *patch.Content
		payload.Text = &text
	}
	if patch.Category != nil {
		categoryID := models.ParseCategoryID(*patch.Category)
		payload.CategoryID = &categoryID
	}

	return payload
}
