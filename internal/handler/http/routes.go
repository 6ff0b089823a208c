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

	// routes without authorization
	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// routes with authorization
	router.Route("/api/books", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", h.createBook)
		r.Get("/", h.listBooks)
		r.Get("/user", h.listOwnBooks)
		r.Delete("/{id}", h.deleteBook)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
