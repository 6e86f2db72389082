// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args with a dedicated flag set.
//
// Flags:
//
//	-c/-config        JSON or YAML config file path
//	-d                SQLite database file
//	-diary            diary backend base URL
//	-correction       correction proxy base URL
//	-request-timeout  outbound request timeout (e.g. "10s")
//	-a                proxy listen address in form [host]:[port]
//	-token-sign-key   correction token signing key
//	-token-issuer     correction token issuer
//	-token-duration   correction token lifetime (e.g. "15m")
//	-model-url        language model API base URL
//	-model-key        language model API key
//	-model            language model name
//	-log-file         client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("journal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		listenAddress     NetAddress
		configPath        string
		dsn               string
		diaryAddress      string
		correctionAddress string
		requestTimeout    time.Duration
		tokenSignKey      string
		tokenIssuer       string
		tokenDuration     time.Duration
		modelURL          string
		modelKey          string
		modelName         string
		logFile           string
	)

	fs.Var(&listenAddress, "a", "Net address host:port")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&dsn, "d", "", "SQLite database file")
	fs.StringVar(&diaryAddress, "diary", "", "Diary backend base URL")
	fs.StringVar(&correctionAddress, "correction", "", "Correction proxy base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 15m)")
	fs.StringVar(&modelURL, "model-url", "", "Language model API base URL")
	fs.StringVar(&modelKey, "model-key", "", "Language model API key")
	fs.StringVar(&modelName, "model", "", "Language model name")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Adapter: Adapter{
			DiaryAddress:      diaryAddress,
			CorrectionAddress: correctionAddress,
			RequestTimeout:    requestTimeout,
		},
		Storage: Storage{DB: DB{DSN: dsn}},
		Server: Server{
			HTTPAddress:    listenAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Model: Model{
			BaseURL: modelURL,
			APIKey:  modelKey,
			Name:    modelName,
		},
		LogFile:  logFile,
		FilePath: configPath,
	}, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. An empty host listens on every interface; any other
// host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
