// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the correction proxy.
//
// It exposes route wiring, request handlers and the middleware chain used by
// the REST API. Request tracing, access logging, CORS and bearer token
// authentication are handled here before requests reach the service layer.
package http
