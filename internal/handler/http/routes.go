package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Timeout(h.requestTimeout))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/content/{token}", h.serveContentLink)
		r.Handle("/metrics", h.metrics)
	})

	router.Route("/api/quarantine", func(r chi.Router) {
		r.Use(h.auth)
		r.Use(withRequestDecompression)
		r.Use(middleware.Compress(5, "application/json"))

		r.With(h.contentIntegrity).Post("/", h.store)
		r.Get("/", h.listRecords)
		r.Post("/sweep", h.sweep)
		r.Get("/{id}", h.getMetadata)
		r.Patch("/{id}/status", h.updateStatus)
		r.Post("/{id}/link", h.signedLink)
		r.Get("/{id}/content", h.retrieveContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
