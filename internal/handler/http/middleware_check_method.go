// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
// A request whose method is not registered for the matched route gets
// 404 instead of chi's default 405, so unsupported methods do not reveal
// which paths exist. Only exact top-level leaf patterns are compared;
// mounted subrouters register every method and are skipped.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if routeHandlesMethod(router.Routes(), r.URL.Path, r.Method) {
			router.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	}
}

func routeHandlesMethod(routes []chi.Route, path, method string) bool {
	for _, route := range routes {
		if route.SubRoutes != nil || route.Pattern != path {
			continue
		}
		_, ok := route.Handlers[method]
		return ok
	}
	return false
}
