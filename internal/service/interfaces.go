// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-abroad-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CorrectionService produces grammar and style corrections with a language
// model.
type CorrectionService interface {
	// Correct returns [ErrEmptyText] for blank text and an error wrapping
	// [ErrCorrectionFailed] for any model failure.
	Correct(ctx context.Context, text string) (models.Correction, error)
}

// AppInfoService reports build information of the proxy.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
