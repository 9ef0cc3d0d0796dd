package api

import (
	"net/http"
	"route-directions/internal/api/handlers"
	"route-directions/internal/services"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// MetricsSource is the part of the metrics collector the router needs.
type MetricsSource interface {
	HTTPObserver
	Handler() http.Handler
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// m may be nil, in which case /metrics is not served.
func NewRouter(planner *services.Planner, logger *zap.Logger, m MetricsSource) http.Handler {
	r := mux.NewRouter()

	processHandler := &handlers.ProcessHandler{Planner: planner, Logger: logger}

	r.HandleFunc("/", handlers.Form).Methods(http.MethodGet)
	r.HandleFunc("/process", processHandler.Process).Methods(http.MethodGet)
	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	var observer HTTPObserver
	if m != nil {
		r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
		observer = m
	}

	recovery := gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(zap.NewStdLog(logger)),
	)

	return requestIDMiddleware(loggingMiddleware(logger, observer, recovery(r)))
}
