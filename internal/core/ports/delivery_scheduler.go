package ports

import (
	"context"
	"time"

	"wandshop/internal/core/domain/model/kernel"
)

// DeliveryScheduler arranges a one-shot Dispatched -> Delivered transition after delay.
// Scheduling is best effort; the fired task re-reads the order and does nothing
// unless it is still Dispatched.
type DeliveryScheduler interface {
	ScheduleDelivery(ctx context.Context, orderID kernel.UUID, delay time.Duration) error
}
