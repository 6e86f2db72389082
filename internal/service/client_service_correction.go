// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-abroad-journal/internal/adapter"
	"github.com/MKhiriev/go-abroad-journal/internal/config"
	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/utils"
	"github.com/MKhiriev/go-abroad-journal/models"
)

type clientCorrectionService struct {
	adapter adapter.CorrectionAdapter
	owner   models.User
	token   config.ClientApp

	logger *logger.Logger
}

// NewClientCorrectionService returns the correction client for owner.
// A nil correction adapter disables the feature.
func NewClientCorrectionService(correction adapter.CorrectionAdapter, owner models.User, tokenCfg config.ClientApp, logger *logger.Logger) ClientCorrectionService {
	return &clientCorrectionService{
		adapter: correction,
		owner:   owner,
		token:   tokenCfg,
		logger:  logger,
	}
}

func (s *clientCorrectionService) Enabled() bool {
	return s.adapter != nil
}

func (s *clientCorrectionService) Correct(ctx context.Context, text string) (models.Correction, error) {
	if strings.TrimSpace(text) == "" {
		return models.Correction{}, ErrEmptyText
	}
	if !s.Enabled() {
		return models.Correction{}, ErrCorrectionDisabled
	}

	token, err := utils.GenerateJWTToken(s.token.TokenIssuer, s.owner.UserID, s.token.TokenDuration, s.token.TokenSignKey)
	if err != nil {
		return models.Correction{}, fmt.Errorf("sign correction token: %w", err)
	}

	correction, err := s.adapter.Correct(ctx, token.SignedString, text)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientCorrectionService.Correct").Msg("error requesting correction")
		return models.Correction{}, fmt.Errorf("request correction: %w", mapAdapterError(err))
	}

	return correction, nil
}
