package ports

import (
	"context"

	"wandshop/internal/core/domain/model/order"
)

// EventPublisher delivers order events after the transaction that raised them commits.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.ChangedEvent) error
}

// NopEventPublisher discards events. Used when no broker is configured.
type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, ...order.ChangedEvent) error {
	return nil
}
