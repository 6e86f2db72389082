// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds token validation and version settings of the proxy.
type ServerApp struct {
	Version      string
	TokenSignKey string
	TokenIssuer  string
}

// ServerListener is where and how the proxy serves HTTP.
type ServerListener struct {
	HTTPAddress        string
	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
}

// ServerModel is the language model the proxy forwards text to.
type ServerModel struct {
	BaseURL string
	APIKey  string
	Name    string
}

// ServerConfig is the correction proxy's view of [StructuredConfig].
type ServerConfig struct {
	App    ServerApp
	Server ServerListener
	Model  ServerModel
}

// GetServerConfig builds the structured config and maps the proxy fields.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			Version:      cfg.App.Version,
			TokenSignKey: cfg.App.TokenSignKey,
			TokenIssuer:  cfg.App.TokenIssuer,
		},
		Server: ServerListener{
			HTTPAddress:        cfg.Server.HTTPAddress,
			RequestTimeout:     cfg.Server.RequestTimeout,
			CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		},
		Model: ServerModel{
			BaseURL: cfg.Model.BaseURL,
			APIKey:  cfg.Model.APIKey,
			Name:    cfg.Model.Name,
		},
	}
}
