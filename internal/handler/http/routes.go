package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	changelogRoute = "/api/changelog"
	healthRoute    = "/api/health"
	versionRoute   = "/api/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get(healthRoute, h.health)
		r.Get(versionRoute, h.getServerVersion)
	})

	// changelog routes, owner id comes from the bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Put(changelogRoute, h.pushChangeLog)
		r.Get(changelogRoute, h.pullChangeLog)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
