// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")
	ErrInvalidAppConfigs     = errors.New("invalid app configs")
	ErrInvalidServerConfigs  = errors.New("invalid server configs")
	ErrInvalidModelConfigs   = errors.New("invalid model configs")
)
