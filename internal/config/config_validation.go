// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
)

// validate checks cross-source consistency of the merged config. Role
// specific requirements live in the client and server views.
func (c *StructuredConfig) validate() error {
	if c.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}
	if c.Adapter.RequestTimeout < 0 || c.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (c *ClientConfig) validate() error {
	var errs []error

	if err := validateBaseURL(c.Adapter.DiaryAddress); err != nil {
		errs = append(errs, fmt.Errorf("%w: diary address: %w", ErrInvalidAdapterConfigs, err))
	}
	if c.Adapter.CorrectionAddress != "" {
		if err := validateBaseURL(c.Adapter.CorrectionAddress); err != nil {
			errs = append(errs, fmt.Errorf("%w: correction address: %w", ErrInvalidAdapterConfigs, err))
		}
		if c.App.TokenSignKey == "" {
			errs = append(errs, fmt.Errorf("%w: token sign key is required with a correction address", ErrInvalidAppConfigs))
		}
	}
	if c.Adapter.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs))
	}
	if c.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty database dsn", ErrInvalidStorageConfigs))
	}

	return errors.Join(errs...)
}

func (c *ServerConfig) validate() error {
	var errs []error

	if c.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs))
	}
	if c.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs))
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs))
	}
	if err := validateBaseURL(c.Model.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("%w: base url: %w", ErrInvalidModelConfigs, err))
	}
	if c.Model.APIKey == "" {
		errs = append(errs, fmt.Errorf("%w: empty api key", ErrInvalidModelConfigs))
	}
	if c.Model.Name == "" {
		errs = append(errs, fmt.Errorf("%w: empty model name", ErrInvalidModelConfigs))
	}

	return errors.Join(errs...)
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return errors.New("empty url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}

	return nil
}
