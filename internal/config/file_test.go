// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{
		"app": {"version": "2.0.0", "token_duration": "20m"},
		"adapter": {"diary_address": "http://diary.test", "request_timeout": "4s"},
		"storage": {"db": {"dsn": "file.db"}},
		"server": {"address": ":8082", "cors_allowed_origins": ["http://a.test"]},
		"model": {"name": "gpt-file"},
		"log_file": "file.log"
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, 20*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "http://diary.test", cfg.Adapter.DiaryAddress)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":8082", cfg.Server.HTTPAddress)
	assert.Equal(t, []string{"http://a.test"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "gpt-file", cfg.Model.Name)
	assert.Equal(t, "file.log", cfg.LogFile)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeConfigFile(t, "config.yml", `
adapter:
  correction_address: http://proxy.test
  request_timeout: 2s
server:
  request_timeout: 1m
model:
  base_url: http://model.test/v1
  api_key: sk-yaml
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "http://proxy.test", cfg.Adapter.CorrectionAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://model.test/v1", cfg.Model.BaseURL)
	assert.Equal(t, "sk-yaml", cfg.Model.APIKey)
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := parseFile(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parseFile(writeConfigFile(t, "bad.json", "{"))
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := parseFile(writeConfigFile(t, "bad.yaml", "adapter:\n  request_timeout: soon\n"))
		assert.Error(t, err)
	})
}

func TestDuration_Marshal(t *testing.T) {
	d := Duration(90 * time.Second)

	j, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(j))

	y, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "1m30s\n", string(y))

	var back Duration
	require.NoError(t, json.Unmarshal(j, &back))
	assert.Equal(t, d, back)
}
