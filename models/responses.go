// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ListRecordsResponse is returned by GET /api/diaries. The backend decides
// the order of Diaries; clients keep it as is.
type ListRecordsResponse struct {
	Diaries []Record `json:"diaries"`
	Count   int      `json:"count"`
}

// DeleteRecordResponse is returned by DELETE /api/diary/{id}.
type DeleteRecordResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON error body written by the correction proxy.
type ErrorResponse struct {
	Error string `json:"error"`
}
