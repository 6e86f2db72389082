// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains application-layer message strings shared by the
// correction proxy's handlers and middleware.
//
// Msg* constants are written into HTTP response bodies. Keeping them in one
// place keeps the wording the browser and terminal clients match on stable.
package app

const (
	// MsgTextRequired is returned when the correction request has no text.
	MsgTextRequired = "Text is required"

	// MsgCorrectionFailed is returned for every failure behind the
	// correction endpoint, including undecodable request bodies.
	MsgCorrectionFailed = "Failed to get AI correction."

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "Not Found"
)
