// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the settings the client needs for signing correction
// tokens.
type ClientApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ClientAdapter holds the client's outbound addresses and timeout.
type ClientAdapter struct {
	// DiaryAddress is the diary backend base URL.
	DiaryAddress string
	// CorrectionAddress is the correction proxy base URL, possibly empty.
	CorrectionAddress string
	// RequestTimeout bounds each outbound request.
	RequestTimeout time.Duration
}

// ClientDB holds the local SQLite settings.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the client's view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	LogFile string
}

// GetClientConfig builds the structured config and maps the client fields.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Adapter: ClientAdapter{
			DiaryAddress:      cfg.Adapter.DiaryAddress,
			CorrectionAddress: cfg.Adapter.CorrectionAddress,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
		LogFile: cfg.LogFile,
	}
}
