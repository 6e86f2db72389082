// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-abroad-journal/internal/config"
	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/service"
	"github.com/MKhiriev/go-abroad-journal/internal/utils"
)

// Handler serves the correction proxy API.
type Handler struct {
	services *service.Services

	// tokens holds the key and issuer correction tokens are checked against.
	tokens config.ServerApp
	// listener carries the request timeout and allowed CORS origins.
	listener config.ServerListener

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		tokens:   cfg.App,
		listener: cfg.Server,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
