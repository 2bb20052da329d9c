package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/messages", func(r chi.Router) {
		r.Post("/", h.createMessage)
		r.Get("/", h.listStoredMessages)
		r.Get("/decrypted", h.listDecryptedMessages)
		r.Get("/{id}", h.getMessage)
	})

	return router
}
