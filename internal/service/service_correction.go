// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-abroad-journal/internal/adapter"
	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/models"
)

const correctionPromptTemplate = `
      You are an expert English grammar and style corrector.
      Your task is to correct the given text and provide feedback.
      Please return your response as a single JSON object with two keys:
      1. "correctedText": A string containing the fully corrected version of the text.
      2. "feedback": A string containing a brief, bulleted list of the key improvements.

      Do not include any text outside of the JSON object.

      The text to correct is:
      "%s"
    `

type correctionService struct {
	model adapter.LanguageModelAdapter

	logger *logger.Logger
}

// NewCorrectionService returns a [CorrectionService] backed by model.
func NewCorrectionService(model adapter.LanguageModelAdapter, logger *logger.Logger) CorrectionService {
	return &correctionService{model: model, logger: logger}
}

func (s *correctionService) Correct(ctx context.Context, text string) (models.Correction, error) {
	if strings.TrimSpace(text) == "" {
		return models.Correction{}, ErrEmptyText
	}

	content, err := s.model.Complete(ctx, buildCorrectionPrompt(text))
	if err != nil {
		return models.Correction{}, fmt.Errorf("%w: %w", ErrCorrectionFailed, err)
	}
	if strings.TrimSpace(content) == "" {
		return models.Correction{}, fmt.Errorf("%w: %w", ErrCorrectionFailed, ErrEmptyModelResponse)
	}

	var correction models.Correction
	if err = json.Unmarshal([]byte(content), &correction); err != nil {
		return models.Correction{}, fmt.Errorf("%w: decode model reply: %w", ErrCorrectionFailed, err)
	}

	return correction, nil
}

func buildCorrectionPrompt(text string) string {
	return fmt.Sprintf(correctionPromptTemplate, text)
}
