// Package wandrepo persists wand inventory records with GORM.
package wandrepo

import (
	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/wand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WandDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Wood        string          `gorm:"type:varchar(100);not null"`
	Core        string          `gorm:"type:varchar(100);not null"`
	Length      decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	Flexibility string          `gorm:"type:varchar(100)"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status      int             `gorm:"type:smallint;not null;index:wands_allocatable_idx,priority:1"`
	ReservedBy  *uuid.UUID      `gorm:"type:uuid;index:wands_allocatable_idx,priority:2"`
	Version     int             `gorm:"not null;default:0"`
}

func (WandDTO) TableName() string {
	return "wands"
}

func fromDomain(w *wand.Wand) WandDTO {
	d := w.Details()
	dto := WandDTO{
		ID:          w.ID().Bytes(),
		Name:        d.Name,
		Wood:        d.Wood,
		Core:        d.Core,
		Length:      d.Length,
		Flexibility: d.Flexibility,
		Price:       d.Price,
		Status:      int(w.Status()),
		Version:     w.Version(),
	}
	if id := w.ReservedBy(); id != nil {
		raw := id.Bytes()
		dto.ReservedBy = &raw
	}
	return dto
}

func toDomain(dto WandDTO) (*wand.Wand, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var reservedBy *kernel.UUID
	if dto.ReservedBy != nil {
		orderID, idErr := kernel.UUIDFromBytes(dto.ReservedBy[:])
		if idErr != nil {
			return nil, idErr
		}
		reservedBy = &orderID
	}

	return wand.RestoreWand(id, wand.Details{
		Name:        dto.Name,
		Wood:        dto.Wood,
		Core:        dto.Core,
		Length:      dto.Length,
		Flexibility: dto.Flexibility,
		Price:       dto.Price,
	}, wand.Status(dto.Status), reservedBy, dto.Version)
}
