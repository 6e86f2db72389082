// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors written by the auth middleware.
var (
	// ErrEmptyAuthorizationHeader means the request has no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidToken covers bad signatures, wrong issuers and expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)
