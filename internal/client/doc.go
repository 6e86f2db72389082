// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores or establishes a session, runs the main screen for it and
// tears it down on sign out, looping until the user quits.
package client
