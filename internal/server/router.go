package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"calculator-service/internal/calculator"
	"calculator-service/internal/handlers"
	"calculator-service/internal/observability"
)

func NewRouter(logger *zap.Logger, calc *calculator.Handler) http.Handler {

	reg := observability.NewRegistry()
	httpMetrics := observability.NewHTTPMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.RecoverMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(httpMetrics.Middleware)
	r.Use(observability.LoggingMiddleware(logger))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler(reg))

	calculator.RegisterRoutes(r, calc)

	return r
}
