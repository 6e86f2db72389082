// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the client's state: the in-memory [DiaryCollection]
// of the current session, and the SQLite database holding local accounts
// and the remembered session.
package store
