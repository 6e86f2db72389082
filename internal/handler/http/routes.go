// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Tracing, logging and CORS apply to every route;
// the correction route also requires a bearer token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withCORS())
	router.Use(middleware.Compress(5, "application/json"))
	if h.listener.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.listener.RequestTimeout))
	}

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/correction", h.correct)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
