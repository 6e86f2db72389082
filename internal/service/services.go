// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-abroad-journal/internal/adapter"
	"github.com/MKhiriev/go-abroad-journal/internal/config"
	"github.com/MKhiriev/go-abroad-journal/internal/logger"
)

// Services holds the correction proxy's services.
type Services struct {
	CorrectionService CorrectionService
	AppInfoService    AppInfoService
}

// NewServices wires the proxy services.
func NewServices(model adapter.LanguageModelAdapter, cfg config.ServerApp, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		CorrectionService: NewCorrectionService(model, logger),
		AppInfoService:    appInfo,
	}, nil
}
