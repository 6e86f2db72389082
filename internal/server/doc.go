// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the correction proxy's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
