package calculator

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"calculator-service/internal/handlers"
	"calculator-service/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Handler serves the calculator endpoints. It holds no per-request state.
type Handler struct {
	logger  *zap.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// Option customises a Handler.
type Option func(*Handler)

// WithTracer replaces the global "calculator" tracer.
func WithTracer(t trace.Tracer) Option {
	return func(h *Handler) { h.tracer = t }
}

func NewHandler(logger *zap.Logger, metrics *Metrics, opts ...Option) *Handler {
	h := &Handler{
		logger:  logger,
		metrics: metrics,
		tracer:  otel.Tracer("calculator"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Operation returns the GET handler for op.
func (h *Handler) Operation(op Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.serve(w, r, op)
	}
}

// serve runs parse → validate → compute → log → respond for one request.
func (h *Handler) serve(w http.ResponseWriter, r *http.Request, op Operation) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(h.logger, ctx)
	requestID := observability.RequestIDFromContext(ctx)
	query := r.URL.Query()

	ctx, span := h.tracer.Start(ctx, fmt.Sprintf("calculator.%s", op),
		trace.WithAttributes(
			attribute.String("calculator.operation", string(op)),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	req, err := ParseRequest(op, query)
	if err != nil {
		h.fail(ctx, w, span, logger, op, query, err)
		return
	}

	span.SetAttributes(attribute.Float64Slice("calculator.operands", req.Operands))

	start := time.Now()
	res, err := req.Evaluate()
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		h.fail(ctx, w, span, logger, op, query, err)
		return
	}

	h.metrics.recordSuccess(ctx, op, elapsed, res.Result)
	if isFinite(res.Result) {
		span.SetAttributes(attribute.Float64("calculator.result", res.Result))
	}
	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info(fmt.Sprintf("New %s operation requested: %s", op, op.Expression(res.Operands, res.Result)),
		zap.String("operation", string(op)),
		zap.Float64s("operands", res.Operands),
		zap.Float64("result", res.Result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, span trace.Span, logger *zap.Logger, op Operation, query url.Values, err error) {
	ce := AsCalcError(err)

	fields := []zap.Field{zap.String("kind", ce.Kind.String())}
	for _, name := range op.Params() {
		fields = append(fields, zap.String(name, query.Get(name)))
	}

	observability.RecordError(ctx, span, logger, h.metrics.errors, string(op),
		ce.Message, err, ce.Kind.Status(), w, fields...)
}
