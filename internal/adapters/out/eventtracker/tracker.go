// Package eventtracker collects the aggregates a unit of work touched and hands their
// domain events to a publisher once the transaction has committed.
package eventtracker

import (
	"context"
	"log/slog"
	"slices"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/core/ports"
)

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// Tracker is not safe for concurrent use; every unit of work owns one.
type Tracker struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
	tracked   []trackedAggregate
}

func New(publisher ports.EventPublisher, logger *slog.Logger) *Tracker {
	if publisher == nil {
		publisher = ports.NopEventPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{publisher: publisher, logger: logger}
}

// TrackAggregate registers an aggregate written in the current transaction.
// Tracking the same aggregate twice keeps one entry.
func (t *Tracker) TrackAggregate(id kernel.UUID, aggregate any) {
	if slices.ContainsFunc(t.tracked, func(ta trackedAggregate) bool { return ta.ID.IsEqual(id) }) {
		return
	}
	t.tracked = append(t.tracked, trackedAggregate{ID: id, Aggregate: aggregate})
}

// Reset forgets tracked aggregates without publishing, e.g. on rollback. Events stay on
// the aggregates.
func (t *Tracker) Reset() {
	t.tracked = nil
}

// Flush publishes the pending order events of every tracked aggregate and clears them.
// The transaction is already committed, so a publishing failure is logged and the
// events are dropped.
func (t *Tracker) Flush(ctx context.Context) {
	defer t.Reset()

	var events []order.ChangedEvent
	var published []*order.Order
	for _, ta := range t.tracked {
		o, ok := ta.Aggregate.(*order.Order)
		if !ok || len(o.DomainEvents()) == 0 {
			continue
		}
		events = append(events, o.DomainEvents()...)
		published = append(published, o)
	}
	if len(events) == 0 {
		return
	}

	if err := t.publisher.Publish(ctx, events...); err != nil {
		t.logger.WarnContext(ctx, "failed to publish order events",
			"count", len(events),
			"error", err,
		)
	}
	for _, o := range published {
		o.ClearDomainEvents()
	}
}
