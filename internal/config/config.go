// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the merged configuration shared by both binaries.
// Struct tags drive caarlos0/env: envPrefix is applied to nested env names.
type StructuredConfig struct {
	// App holds token and versioning settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the addresses of the remote services the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the client's local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the correction proxy's listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Model holds the hosted language model used by the correction proxy.
	Model Model `envPrefix:"MODEL_"`

	// LogFile is where the client writes its log.
	// Env: LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// FilePath is the optional JSON/YAML config file.
	// Env: CONFIG, flags: -c / -config
	FilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey is the HMAC key shared by client and proxy for signing
	// correction tokens. Keep it secret.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of correction tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a correction token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Adapter holds outbound addresses of the client.
type Adapter struct {
	// DiaryAddress is the base URL of the diary backend.
	// Env: ADAPTER_DIARY_ADDRESS
	DiaryAddress string `env:"DIARY_ADDRESS"`

	// CorrectionAddress is the base URL of the correction proxy. Empty
	// disables the correction feature.
	// Env: ADAPTER_CORRECTION_ADDRESS
	CorrectionAddress string `env:"CORRECTION_ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB is the SQLite database holding local accounts and the saved session.
type DB struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds the correction proxy listener settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of one inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSAllowedOrigins lists origins allowed to call the proxy from a
	// browser. Comma separated in the environment.
	// Env: SERVER_CORS_ALLOWED_ORIGINS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Model describes an OpenAI-compatible chat completions endpoint.
type Model struct {
	// BaseURL is the API root, e.g. https://api.openai.com/v1.
	// Env: MODEL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is sent as a bearer token. Keep it secret.
	// Env: MODEL_API_KEY
	APIKey string `env:"API_KEY"`

	// Name is the model identifier.
	// Env: MODEL_NAME
	Name string `env:"NAME"`
}

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       "dev",
			TokenIssuer:   "go-abroad-journal",
			TokenDuration: 15 * time.Minute,
		},
		Adapter: Adapter{
			DiaryAddress:   "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Storage: Storage{DB: DB{DSN: "journal.db"}},
		Server: Server{
			HTTPAddress:    "localhost:8081",
			RequestTimeout: 30 * time.Second,
		},
		Model: Model{
			BaseURL: "https://api.openai.com/v1",
			Name:    "gpt-4o-mini",
		},
	}
}

// GetStructuredConfig loads and merges every source into one config.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv(".env").
		withFlags(os.Args[1:]).
		withFile().
		build()
}
