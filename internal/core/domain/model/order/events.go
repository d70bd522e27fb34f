package order

import (
	"time"

	"wandshop/internal/core/domain/model/kernel"
)

// ChangedEvent is raised whenever an order is created or changes status.
// Previous is Unknown for creation.
type ChangedEvent struct {
	OrderID    kernel.UUID
	WizardID   kernel.UUID
	WandID     kernel.UUID
	Previous   Status
	Status     Status
	OccurredAt time.Time
}
