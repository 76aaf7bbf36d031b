package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/venuehq/sms-dispatch/internal/handler"
)

func setupRouter(h *handler.Handler, registry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sms/send", h.SendSms)

		r.Route("/consents", func(r chi.Router) {
			r.Get("/", h.GetConsent)
			r.Post("/optin", h.OptIn)
			r.Post("/optout", h.OptOut)
		})

		r.Route("/numbers", func(r chi.Router) {
			r.Post("/", h.AssignNumber)
			r.Post("/{id}/release", h.ReleaseNumber)
		})

		r.Get("/history", h.GetSendHistory)
	})

	return r
}
