// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/utils"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string             `json:"model"`
	Messages       []chatMessage      `json:"messages"`
	ResponseFormat chatResponseFormat `json:"response_format"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type httpLanguageModelAdapter struct {
	client *utils.HTTPClient
	model  string
	logger *logger.Logger
}

// NewHTTPLanguageModelAdapter returns a [LanguageModelAdapter] for an
// OpenAI-compatible API rooted at baseURL (for example
// https://api.openai.com/v1). apiKey is sent as a bearer token.
func NewHTTPLanguageModelAdapter(baseURL, apiKey, model string, timeout time.Duration, log *logger.Logger) (LanguageModelAdapter, error) {
	client, err := newRestClient(baseURL, timeout, log)
	if err != nil {
		return nil, fmt.Errorf("invalid model address: %w", err)
	}
	client.SetAuthToken(apiKey)

	return &httpLanguageModelAdapter{client: client, model: model, logger: log}, nil
}

// Complete implements [LanguageModelAdapter] via POST /chat/completions.
// An empty choice list yields an empty string and no error.
func (a *httpLanguageModelAdapter) Complete(ctx context.Context, prompt string) (string, error) {
	body := chatCompletionRequest{
		Model:          a.model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: chatResponseFormat{Type: "json_object"},
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", transportError("chat completion", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var completion chatCompletionResponse
	if err = decode(resp.Body(), &completion); err != nil {
		return "", fmt.Errorf("decode chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}

	return completion.Choices[0].Message.Content, nil
}
