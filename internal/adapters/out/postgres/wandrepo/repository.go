package wandrepo

import (
	"context"
	"errors"
	"fmt"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/wand"
	"wandshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWandRepository implements ports.WandRepository using GORM.
type GormWandRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormWandRepository(db *gorm.DB, tracker aggregateTracker) *GormWandRepository {
	return &GormWandRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormWandRepository) Add(ctx context.Context, aggregate *wand.Wand) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update is the conditional claim: the row is written only if nobody changed it
// since it was read, so of two orders racing for one wand only the first commits
// its reservation.
func (r *GormWandRepository) Update(ctx context.Context, aggregate *wand.Wand) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&WandDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&WandDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("wand", aggregate.ID().String())
		}
		return errs.NewConcurrentModificationError("wand", aggregate.ID().String())
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormWandRepository) Get(ctx context.Context, id kernel.UUID) (*wand.Wand, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WandDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wand", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormWandRepository) CountAllocatable(ctx context.Context) (int, error) {
	var count int64
	if err := r.allocatable(ctx).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *GormWandRepository) GetAllocatableAt(ctx context.Context, offset int) (*wand.Wand, error) {
	if offset < 0 {
		return nil, errs.NewValueIsOutOfRangeError("offset", offset, 0, "count of allocatable wands")
	}

	var dtos []WandDTO
	if err := r.allocatable(ctx).Order("id").Offset(offset).Limit(1).Find(&dtos).Error; err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, errs.NewObjectNotFoundError("wand", fmt.Sprintf("allocatable #%d", offset))
	}

	return toDomain(dtos[0])
}

func (r *GormWandRepository) allocatable(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&WandDTO{}).
		Where("status = ? AND reserved_by IS NULL", int(wand.Available))
}
