// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the journal
// client and the correction proxy.
//
// Sources are applied in this order, later non-zero fields overriding
// earlier ones:
//  1. built-in defaults
//  2. environment variables (a ".env" file is loaded first when present)
//  3. command-line flags
//  4. a JSON or YAML config file whose path comes from CONFIG or -c
//
// [GetClientConfig] and [GetServerConfig] return the validated views used by
// the two binaries.
package config
