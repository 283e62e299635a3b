// Package dashboard implements the read-only analytics engine behind the
// approval dashboard. Every builder queries the data access ports, aggregates
// in memory and returns a finished view; nothing is written or cached.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"approvaldash/internal/dashboard/metrics"
	"approvaldash/internal/dashboard/ports"
	"approvaldash/pkg/requestcontext"
)

const tracerName = "approvaldash/dashboard"

// Clock returns the current instant.
type Clock func() time.Time

// Service builds dashboard views.
type Service struct {
	records ports.RecordStore
	types   ports.TypeStore
	nodes   ports.NodeStore
	users   ports.UserStore

	logger       *slog.Logger
	metrics      *metrics.Metrics
	tracer       trace.Tracer
	clock        Clock
	location     *time.Location
	denseHeatmap bool
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock overrides the request-scoped time source.
func WithClock(clock Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithLocation sets the zone used for calendar days and month boundaries.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithDenseHeatmap makes Heatmap emit every day of the window, including
// days without submissions at level 0.
func WithDenseHeatmap(dense bool) Option {
	return func(s *Service) {
		s.denseHeatmap = dense
	}
}

// New constructs a Service from its data access collaborators.
func New(records ports.RecordStore, types ports.TypeStore, nodes ports.NodeStore, users ports.UserStore, opts ...Option) (*Service, error) {
	if records == nil {
		return nil, errors.New("record store is required")
	}
	if types == nil {
		return nil, errors.New("type store is required")
	}
	if nodes == nil {
		return nil, errors.New("node store is required")
	}
	if users == nil {
		return nil, errors.New("user store is required")
	}

	s := &Service{
		records:  records,
		types:    types,
		nodes:    nodes,
		users:    users,
		location: time.Local,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s, nil
}

// NewFromStore constructs a Service backed by a single store implementation.
func NewFromStore(store ports.Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	return New(store, store, store, store, opts...)
}

// now resolves the current instant in the service location.
func (s *Service) now(ctx context.Context) time.Time {
	if s.clock != nil {
		return s.clock().In(s.location)
	}
	return requestcontext.Now(ctx).In(s.location)
}

// observe opens a span for a builder run. The returned func must be called
// with the builder's final error.
func (s *Service) observe(ctx context.Context, builder string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "dashboard."+builder, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		elapsed := time.Since(start)
		s.metrics.ObserveBuilder(builder, err, elapsed)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.logger.WarnContext(ctx, "dashboard builder failed",
				"builder", builder,
				"request_id", requestcontext.RequestID(ctx),
				"duration_ms", elapsed.Milliseconds(),
				"error", err,
			)
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}
