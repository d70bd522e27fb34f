package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// ActiveWandIndex is the partial unique index that keeps one active order per wand.
const ActiveWandIndex = "orders_active_wand_uidx"

const uniqueViolation = "23505"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order. Another active order on the same wand violates the
// partial unique index and is reported as an allocation conflict.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapWriteError(aggregate, err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column of the order conditioned on its version.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return mapWriteError(aggregate, result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewConcurrentModificationError("order", aggregate.ID().String())
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetAllByStatuses(ctx context.Context, statuses []order.Status) ([]*order.Order, error) {
	query := r.db.WithContext(ctx)
	if len(statuses) > 0 {
		codes := lo.Map(statuses, func(s order.Status, _ int) int64 { return int64(s) })
		query = query.Where("status = ANY(?)", pq.Array(codes))
	}
	return r.find(query)
}

func (r *GormOrderRepository) GetAllDispatchedBefore(ctx context.Context, t time.Time) ([]*order.Order, error) {
	return r.find(r.db.WithContext(ctx).Where("status = ? AND dispatched_at < ?", int(order.Dispatched), t))
}

func (r *GormOrderRepository) GetAllByWizard(ctx context.Context, wizardID kernel.UUID) ([]*order.Order, error) {
	return r.find(r.db.WithContext(ctx).Where("wizard_id = ?", wizardID.Bytes()))
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func mapWriteError(aggregate *order.Order, err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return err
	}
	if pqErr.Constraint == ActiveWandIndex {
		return errs.NewAllocationConflictError(aggregate.WandID().String(), err)
	}
	return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("duplicate %s: %w", pqErr.Constraint, err))
}
