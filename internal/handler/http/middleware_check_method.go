// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant for router.MethodNotAllowed. Instead of chi's 405
// it answers 404 when the matched route does not serve the requested method,
// so unsupported methods do not reveal which paths exist.
//
// Only exact route patterns are compared with the request path; wildcard
// routes such as /api/sparc/* never match and always yield 404.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range walkRoutes(router) {
			if route.pattern != r.URL.Path {
				continue
			}
			if _, ok := route.methods[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		w.WriteHeader(http.StatusNotFound)
	}
}

type routeMethods struct {
	pattern string
	methods map[string]struct{}
}

// walkRoutes flattens router, including mounted sub-routers, into
// pattern/method pairs.
func walkRoutes(router *chi.Mux) []routeMethods {
	byPattern := make(map[string]map[string]struct{})
	var order []string

	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if _, ok := byPattern[route]; !ok {
			byPattern[route] = make(map[string]struct{})
			order = append(order, route)
		}
		byPattern[route][method] = struct{}{}
		return nil
	})

	out := make([]routeMethods, 0, len(order))
	for _, pattern := range order {
		out = append(out, routeMethods{pattern: pattern, methods: byPattern[pattern]})
	}
	return out
}
