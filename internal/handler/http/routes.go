package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const documentsRoute = "/databases/{databaseId}/collections/{collectionId}/documents"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod())

	router.Handle("/metrics", h.metrics.handler())

	router.Route("/v1", func(r chi.Router) {
		r.Get("/health/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.checkProject)

			// routes without authorization
			r.Group(func(r chi.Router) {
				r.Use(h.rateLimit)
				r.Post("/account", h.createAccount)
				r.Post("/account/sessions/email", h.createSession)
			})

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/account", h.getAccount)
				r.Delete("/account/sessions/{sessionId}", h.deleteSession)

				r.Route(documentsRoute, func(r chi.Router) {
					r.Post("/", h.createDocument)
					r.Get("/", h.listDocuments)
					r.Get("/{documentId}", h.getDocument)
					r.Patch("/{documentId}", h.updateDocument)
					r.Delete("/{documentId}", h.deleteDocument)
				})
			})
		})
	})

	return router
}
