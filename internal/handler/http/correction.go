// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-abroad-journal/internal/app"
	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/utils"
	"github.com/MKhiriev/go-abroad-journal/models"
)

// correct answers {correctedText, feedback} for the submitted text. Failure
// details stay in the log; clients see only the app.Msg* bodies.
func (h *Handler) correct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	log.Info().Msg("AI correction API was called")

	var req models.CorrectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("error decoding correction request")
		utils.WriteError(w, app.MsgCorrectionFailed, http.StatusInternalServerError)
		return
	}
	if req.Text == "" {
		utils.WriteError(w, app.MsgTextRequired, http.StatusBadRequest)
		return
	}

	correction, err := h.services.CorrectionService.Correct(r.Context(), req.Text)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("error in AI correction API")
		if status == http.StatusBadRequest {
			utils.WriteError(w, app.MsgTextRequired, status)
			return
		}
		utils.WriteError(w, app.MsgCorrectionFailed, status)
		return
	}

	utils.WriteJSON(w, correction, http.StatusOK)
}
