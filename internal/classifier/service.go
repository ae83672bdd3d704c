package classifier

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"parcelsort/internal/classifier/metrics"
	"parcelsort/internal/parcel"
	dErrors "parcelsort/pkg/domain-errors"
	"parcelsort/pkg/requestcontext"
)

const tracerName = "parcelsort/internal/classifier"

// Service validates raw measurements and classifies the resulting package.
// It holds only observability collaborators; the rules themselves are the
// pure functions in rules.go.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// NewService constructs a classifier service. logger and metrics may be nil.
func NewService(logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		logger:  logger,
		metrics: m,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Classify validates req and returns its classification. The only errors are
// invalid_dimension and invalid_mass; a valid package always classifies.
func (s *Service) Classify(ctx context.Context, req Request) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "classifier.Classify", trace.WithAttributes(
		attribute.Int("package.width", req.Width),
		attribute.Int("package.height", req.Height),
		attribute.Int("package.length", req.Length),
		attribute.Float64("package.mass", req.Mass),
	))
	defer span.End()
	start := time.Now()
	defer func() { s.metrics.ObserveEvaluateLatency(time.Since(start)) }()

	p, err := parcel.New(req.Width, req.Height, req.Length, req.Mass)
	if err != nil {
		code := dErrors.CodeOf(err)
		s.metrics.IncrementValidationFailure(string(code))
		span.SetStatus(codes.Error, string(code))
		s.logger.DebugContext(ctx, "package rejected at validation",
			"request_id", requestcontext.RequestID(ctx),
			"code", code,
			"error", err,
		)
		return nil, err
	}

	result := Evaluate(p)

	s.metrics.IncrementDecision(string(result.Decision))
	for _, f := range result.Classification.Flags() {
		s.metrics.IncrementFlag(f.String())
	}
	span.SetAttributes(
		attribute.String("package.decision", string(result.Decision)),
		attribute.StringSlice("package.classification", result.Classification.Strings()),
	)

	return &result, nil
}
