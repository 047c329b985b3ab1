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

	router.Group(func(r chi.Router) {
		r.Get("/api/sync/stats", h.getSyncStats)
		r.Post("/api/sync/queue", h.enqueueChange)
		r.Post("/api/sync/run", h.runSync)
		r.Post("/api/sync/pull", h.runPullSync)
		r.Delete("/api/sync/failed", h.clearFailedItems)
	})

	router.Get("/api/health", h.health)

	return router
}
