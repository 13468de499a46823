package observability

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	CombinedLogFile = "combined.log"
	ErrorLogFile    = "error.log"
)

// LogConfig configures the application logger.
type LogConfig struct {
	// Level is the minimum level for the console and combined sinks.
	Level string `mapstructure:"level" default:"info"`
	// Format is the console encoding: json or console.
	Format string `mapstructure:"format" default:"json"`
	// Dir holds combined.log and error.log. Empty disables file sinks.
	Dir string `mapstructure:"dir" default:"logs"`
}

// NewLogger builds the logger shared by the whole process. Records go to
// stdout, to <Dir>/combined.log (every enabled level) and to <Dir>/error.log
// (error and above). The returned close function flushes and releases the
// file sinks; call it once at shutdown.
func NewLogger(cfg LogConfig, service string) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.LevelKey = "level"
	encCfg.TimeKey = "time"
	encCfg.MessageKey = "message"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var consoleEnc zapcore.Encoder
	switch cfg.Format {
	case "console":
		c := encCfg
		c.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEnc = zapcore.NewConsoleEncoder(c)
	case "json", "":
		consoleEnc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEnc, zapcore.Lock(os.Stdout), level),
	}
	closers := []func(){}
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}

		combined, closeCombined, err := zap.Open(filepath.Join(cfg.Dir, CombinedLogFile))
		if err != nil {
			return nil, nil, fmt.Errorf("open combined log: %w", err)
		}
		closers = append(closers, closeCombined)

		errSink, closeErr, err := zap.Open(filepath.Join(cfg.Dir, ErrorLogFile))
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("open error log: %w", err)
		}
		closers = append(closers, closeErr)

		fileEnc := zapcore.NewJSONEncoder(encCfg)
		cores = append(cores,
			zapcore.NewCore(fileEnc, combined, level),
			zapcore.NewCore(fileEnc, errSink, zapcore.ErrorLevel),
		)
	}

	logger := zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.Fields(zap.String("service", service)),
	)

	return logger, func() {
		_ = logger.Sync()
		closeAll()
	}, nil
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx.
//
// ctx itself is embedded as zap.Any("context", ctx) so the otelzap bridge
// emits the record with the span context, populating the native TraceID and
// SpanID on the exported OTLP log record. The string fields keep stdout JSON
// greppable without an OTel-aware tool.
func LoggerWithTrace(logger *zap.Logger, ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return logger
	}

	return logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
