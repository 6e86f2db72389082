// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for JSON/YAML files.
// Durations are written as strings like "10s".
type StructuredFileConfig struct {
	App struct {
		Version       string   `json:"version" yaml:"version"`
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
	} `json:"app" yaml:"app"`

	Adapter struct {
		DiaryAddress      string   `json:"diary_address" yaml:"diary_address"`
		CorrectionAddress string   `json:"correction_address" yaml:"correction_address"`
		RequestTimeout    Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress        string   `json:"address" yaml:"address"`
		RequestTimeout     Duration `json:"request_timeout" yaml:"request_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins"`
	} `json:"server" yaml:"server"`

	Model struct {
		BaseURL string `json:"base_url" yaml:"base_url"`
		APIKey  string `json:"api_key" yaml:"api_key"`
		Name    string `json:"name" yaml:"name"`
	} `json:"model" yaml:"model"`

	LogFile string `json:"log_file" yaml:"log_file"`
}

// Duration is a time.Duration that reads from and writes to a string.
type Duration time.Duration

// parseFile reads a config file. Files ending in .yaml or .yml are parsed
// as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	default:
		err = json.Unmarshal(data, &fileCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return fileCfg.toStructured(), nil
}

func (c *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       c.App.Version,
			TokenSignKey:  c.App.TokenSignKey,
			TokenIssuer:   c.App.TokenIssuer,
			TokenDuration: time.Duration(c.App.TokenDuration),
		},
		Adapter: Adapter{
			DiaryAddress:      c.Adapter.DiaryAddress,
			CorrectionAddress: c.Adapter.CorrectionAddress,
			RequestTimeout:    time.Duration(c.Adapter.RequestTimeout),
		},
		Storage: Storage{DB: DB{DSN: c.Storage.DB.DSN}},
		Server: Server{
			HTTPAddress:        c.Server.HTTPAddress,
			RequestTimeout:     time.Duration(c.Server.RequestTimeout),
			CORSAllowedOrigins: c.Server.CORSAllowedOrigins,
		},
		Model: Model{
			BaseURL: c.Model.BaseURL,
			APIKey:  c.Model.APIKey,
			Name:    c.Model.Name,
		},
		LogFile: c.LogFile,
	}
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.set(s)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.set(s)
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) set(s string) error {
	if s == "" {
		*d = 0
		return nil
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}
