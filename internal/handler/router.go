package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/quote-service/internal/metrics"
	"github.com/Dan9191/quote-service/internal/middleware"
)

// NewRouter wires the routes and the middleware chain
func NewRouter(h *Handler, logger *logrus.Logger, m *metrics.Metrics) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover(logger), middleware.Logging(logger), middleware.Metrics(m))
	r.MethodNotAllowedHandler = http.HandlerFunc(h.MethodNotAllowed)

	// Probes
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/readyz", h.Ready).Methods(http.MethodGet)
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	// API routes stay on the root router: a PathPrefix subrouter reports a
	// method mismatch as 404
	r.HandleFunc("/api/quotes/generate", h.GenerateQuotes).Methods(http.MethodPost)
	r.HandleFunc("/api/lenders", h.ListLenders).Methods(http.MethodGet)

	return r
}
