// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed]. A known path requested with a method it does
// not serve is answered like an unknown route: 404 general_route_not_found
// instead of chi's 405, so callers cannot probe which paths exist.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod())
func CheckHTTPMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method is not served by route")

		utils.WriteError(w, http.StatusNotFound, models.ErrorTypeGeneralRouteNotFound, app.MsgRouteNotFound)
	}
}
