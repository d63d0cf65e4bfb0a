// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi responds with HTTP 405 Method Not Allowed whenever a request path
// matches a registered route but the HTTP method is not handled. This
// handler answers HTTP 404 Not Found instead, hiding the existence of the
// route from callers that use an unsupported method.
//
// Routes are matched through [chi.Mux.Match], so parameterised patterns such
// as "/api/users/{id}/role" are handled like static ones. If the method IS
// registered for the path, the request is forwarded to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
