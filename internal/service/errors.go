// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrAuthFailed is returned for an unknown email or a wrong password.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrInvalidCredentials is returned when email or password is missing.
	ErrInvalidCredentials = errors.New("email and password are required")

	// ErrEmptyText is returned when correction is asked for blank text.
	ErrEmptyText = errors.New("text is required")

	// ErrCorrectionDisabled is returned when no correction proxy is set up.
	ErrCorrectionDisabled = errors.New("correction is not configured")

	// ErrInvalidEntryID is returned for an empty entry id.
	ErrInvalidEntryID = errors.New("invalid entry id")

	// ErrUnauthorized is returned when a remote service rejects our token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrCorrectionFailed wraps every failure of the model round trip.
	ErrCorrectionFailed = errors.New("failed to get AI correction")

	// ErrEmptyModelResponse is returned when the model replies with nothing.
	ErrEmptyModelResponse = errors.New("no response content from language model")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
