package main

import (
	"context"
	"errors"

	"calculator-service/internal/observability"

	"go.uber.org/zap"
)

// initTelemetry wires OTLP traces, metrics and logs when enabled. When
// disabled the global no-op providers stay in place and logger is returned
// unchanged. Add new domain providers here as the project grows.
func initTelemetry(ctx context.Context, cfg observability.TelemetryConfig, logger *zap.Logger) (*zap.Logger, func(context.Context) error, error) {
	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if !cfg.Enabled {
		return logger, shutdown, nil
	}

	res, err := observability.NewResource(ctx, cfg.ServiceName)
	if err != nil {
		return nil, nil, err
	}

	traceShutdown, err := observability.InitTracing(ctx, res)
	if err != nil {
		return nil, nil, err
	}
	shutdowns = append(shutdowns, traceShutdown)

	metricShutdown, err := observability.InitMetrics(ctx, res)
	if err != nil {
		_ = shutdown(ctx)
		return nil, nil, err
	}
	shutdowns = append(shutdowns, metricShutdown)

	teed, logShutdown, err := observability.InitLogging(ctx, res, cfg.ServiceName, logger)
	if err != nil {
		_ = shutdown(ctx)
		return nil, nil, err
	}
	shutdowns = append(shutdowns, logShutdown)

	return teed, shutdown, nil
}
