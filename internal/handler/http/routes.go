// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const userIDParam = "userID"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.ownerOnly)
		r.Get("/api/users/{userID}/settings", h.getSettings)
		r.Put("/api/users/{userID}/settings", h.putSettings)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
