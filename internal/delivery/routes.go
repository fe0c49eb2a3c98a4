package delivery

import (
	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, h *AskHandler) {
	r.Route("/", func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			RequestIDMiddleware,
		)

		pr.Get("/", h.Root)
		pr.Get("/health", h.Health)
		pr.Post("/ask", h.Ask)
	})
}
