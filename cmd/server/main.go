// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-abroad-journal/internal/adapter"
	"github.com/MKhiriev/go-abroad-journal/internal/config"
	"github.com/MKhiriev/go-abroad-journal/internal/handler"
	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/server"
	"github.com/MKhiriev/go-abroad-journal/internal/service"
	"github.com/MKhiriev/go-abroad-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("journal-correction-proxy")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("model", cfg.Model.Name).
		Strs("cors_allowed_origins", cfg.Server.CORSAllowedOrigins).
		Msg("received configs")

	model, err := adapter.NewHTTPLanguageModelAdapter(cfg.Model.BaseURL, cfg.Model.APIKey, cfg.Model.Name, cfg.Server.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating language model adapter")
	}

	services, err := service.NewServices(model, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}
