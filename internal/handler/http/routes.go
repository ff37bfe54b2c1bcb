package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the chi router with the middleware chain and the /api routes:
//
//	GET   /api/version
//	GET   /api/config
//	PATCH /api/config
//	GET   /api/sparc/*
//
// A known path requested with another method answers 404.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)
		r.Get("/config", h.getConfig)
		r.Patch("/config", h.patchConfig)
		r.Get("/sparc/*", h.proxySparc)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
