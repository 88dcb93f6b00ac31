package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"quotemint/go_backend/internal/app/config"
	"quotemint/go_backend/internal/app/http/handlers"
	"quotemint/go_backend/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, log *logrus.Logger, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(log))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(cfg.InternalToken))

		r.Post("/quotes/generate-pdf", h.GenerateQuotePDF)
		r.Post("/orgs/join-request", h.SendJoinRequest)
	})

	return r
}
