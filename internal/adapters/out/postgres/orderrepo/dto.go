// Package orderrepo persists order aggregates with GORM.
package orderrepo

import (
	"time"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row layout of the orders table. At most one order per wand may be
// in an active status; the partial unique index is created by postgres.Migrate.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WizardID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	WandID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	PaymentRef     string     `gorm:"type:varchar(255);not null"`
	Provider       int        `gorm:"type:smallint;not null"`
	Address        string     `gorm:"type:varchar(512);not null"`
	TrackingNumber *string    `gorm:"type:varchar(12);uniqueIndex"`
	CreatedAt      time.Time  `gorm:"not null;index"`
	DispatchedAt   *time.Time `gorm:"index"`
	Status         int        `gorm:"type:smallint;not null;index"`
	Completed      bool       `gorm:"not null;default:false"`
	Review         *string    `gorm:"type:text"`
	Version        int        `gorm:"not null;default:0"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	dto := OrderDTO{
		ID:           s.ID.Bytes(),
		WizardID:     s.WizardID.Bytes(),
		WandID:       s.WandID.Bytes(),
		PaymentRef:   s.PaymentRef,
		Provider:     int(s.Provider),
		Address:      s.Address,
		CreatedAt:    s.CreatedAt,
		DispatchedAt: s.DispatchedAt,
		Status:       int(s.Status),
		Completed:    s.Completed,
		Version:      s.Version,
	}
	if s.TrackingNumber != "" {
		dto.TrackingNumber = &s.TrackingNumber
	}
	if s.Review != "" {
		dto.Review = &s.Review
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	wizardID, err := kernel.UUIDFromBytes(dto.WizardID[:])
	if err != nil {
		return nil, err
	}
	wandID, err := kernel.UUIDFromBytes(dto.WandID[:])
	if err != nil {
		return nil, err
	}

	s := order.Snapshot{
		ID:         id,
		WizardID:   wizardID,
		WandID:     wandID,
		PaymentRef: dto.PaymentRef,
		Provider:   order.Provider(dto.Provider),
		Address:    dto.Address,
		CreatedAt:  dto.CreatedAt,
		Status:     order.Status(dto.Status),
		Completed:  dto.Completed,
		Version:    dto.Version,
	}
	if dto.DispatchedAt != nil {
		at := dto.DispatchedAt.UTC()
		s.DispatchedAt = &at
	}
	if dto.TrackingNumber != nil {
		s.TrackingNumber = *dto.TrackingNumber
	}
	if dto.Review != nil {
		s.Review = *dto.Review
	}
	return order.RestoreOrder(s)
}
