package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"calculator-service/internal/calculator"
	"calculator-service/internal/config"
	"calculator-service/internal/observability"
	"calculator-service/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "calculator",
		Short:         "Calculator microservice",
		Long:          `Serves arithmetic operations over HTTP GET and returns JSON results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configDir, cmd.Flags())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg)
		},
	}

	root.Flags().StringVar(&configDir, "config-dir", ".", "directory holding the optional .env file")
	root.Flags().String("port", "", "port to listen on (overrides SERVER_PORT)")
	root.Flags().String("log-dir", "", "directory for combined.log and error.log (overrides LOG_DIR)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return root
}

func run(ctx context.Context, cfg *config.Config) error {

	// Logger
	logger, closeLogger, err := observability.NewLogger(cfg.Log, cfg.Telemetry.ServiceName)
	if err != nil {
		return err
	}
	defer closeLogger()

	// Tracing, metrics and OTLP logs
	logger, shutdownTelemetry, err := initTelemetry(ctx, cfg.Telemetry, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	metrics, err := calculator.NewMetrics(nil)
	if err != nil {
		return err
	}

	// Router
	router := server.NewRouter(logger, calculator.NewHandler(logger, metrics))
	srv := server.New(cfg.Server, router)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("calculator microservice listening",
			zap.String("addr", srv.Addr),
			zap.String("version", version),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
