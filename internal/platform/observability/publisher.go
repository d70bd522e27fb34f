package observability

import (
	"context"
	"log/slog"

	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/core/ports"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "wandshop/internal/platform/observability/publisher"

// TransitionMetricName counts committed order transitions by target status.
const TransitionMetricName = "wandshop.orders.transitions"

// Publisher decorates an EventPublisher with a span per batch and a transition
// counter.
type Publisher struct {
	inner       ports.EventPublisher
	tracer      trace.Tracer
	logger      *slog.Logger
	transitions metric.Int64Counter
}

type Option func(*Publisher)

func WithTracer(tr trace.Tracer) Option {
	return func(p *Publisher) { p.tracer = tr }
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) { p.logger = logger }
}

func WithMeter(m metric.Meter) Option {
	return func(p *Publisher) {
		p.transitions, _ = m.Int64Counter(TransitionMetricName,
			metric.WithDescription("Number of committed order status transitions"))
	}
}

func NewPublisher(inner ports.EventPublisher, opts ...Option) *Publisher {
	if inner == nil {
		inner = ports.NopEventPublisher{}
	}
	p := &Publisher{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

func (p *Publisher) Publish(ctx context.Context, events ...order.ChangedEvent) error {
	ctx, span := p.tracer.Start(ctx, "EventPublisher.Publish", trace.WithAttributes(attribute.Int("events.count", len(events))))
	defer span.End()

	if p.transitions != nil {
		for _, e := range events {
			p.transitions.Add(ctx, 1, metric.WithAttributes(
				attribute.String("order.status", e.Status.String()),
				attribute.String("order.previous", e.Previous.String()),
			))
		}
	}

	if err := p.inner.Publish(ctx, events...); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if p.logger != nil {
			p.logger.LogAttrs(ctx, slog.LevelError, "failed to publish order events",
				slog.Int("events.count", len(events)),
				slog.String("error", err.Error()),
			)
		}
		return err
	}
	return nil
}

var _ ports.EventPublisher = (*Publisher)(nil)
