// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-abroad-journal/internal/adapter"
	"github.com/MKhiriev/go-abroad-journal/internal/client"
	"github.com/MKhiriev/go-abroad-journal/internal/config"
	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/service"
	"github.com/MKhiriev/go-abroad-journal/internal/store"
	"github.com/MKhiriev/go-abroad-journal/internal/tui"
	"github.com/MKhiriev/go-abroad-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("journal-client", cfg.LogFile)
	ctx := context.Background()

	diaryGateway, err := adapter.NewHTTPDiaryGateway(cfg.Adapter.DiaryAddress, cfg.Adapter.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create diary gateway")
	}

	var correction adapter.CorrectionAdapter
	if cfg.Adapter.CorrectionAddress != "" {
		correction, err = adapter.NewHTTPCorrectionAdapter(cfg.Adapter.CorrectionAddress, cfg.Adapter.RequestTimeout, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create correction adapter")
		}
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, diaryGateway, correction, cfg.App, log)
	ui := tui.New(services.AuthService, buildInfo, log)

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		localStorage.Close()
		os.Exit(1)
	}
}
