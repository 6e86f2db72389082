// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-abroad-journal/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyText:          http.StatusBadRequest,
	service.ErrCorrectionFailed:   http.StatusInternalServerError,
	service.ErrEmptyModelResponse: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
