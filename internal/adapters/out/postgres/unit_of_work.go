// Package postgres provides the GORM implementation of the Unit of Work and the
// schema migration for the wand shop.
//
// Basic transaction management:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx) // no-op after Commit
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.WandRepository().Update(ctx, w); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Every aggregate written through the repositories is tracked; after a successful
// commit the order events they raised are handed to the publisher.
package postgres

import (
	"context"
	"log/slog"

	"wandshop/internal/adapters/out/eventtracker"
	"wandshop/internal/adapters/out/postgres/answerrepo"
	"wandshop/internal/adapters/out/postgres/orderrepo"
	"wandshop/internal/adapters/out/postgres/wandrepo"
	"wandshop/internal/adapters/out/postgres/wizardrepo"
	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger,
	}
}

// Create produces a new UnitOfWork with its own transaction state and tracker.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		tracker: eventtracker.New(f.publisher, f.logger),
	}
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	tracker *eventtracker.Tracker
}

// Begin starts a transaction. Calling it twice keeps the running transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction and publishes the events of the tracked aggregates.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.tracker.Reset()
		return err
	}

	uow.tracker.Flush(ctx)
	return nil
}

// Rollback discards the transaction. Without an open transaction, e.g. after Commit,
// it does nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracker.Reset()
	return err
}

// OrderRepository runs inside the open transaction, or on the pool when there is none.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) WandRepository() ports.WandRepository {
	return wandrepo.NewGormWandRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AnswerRepository() ports.AnswerRepository {
	return answerrepo.NewGormAnswerRepository(uow.conn())
}

func (uow *GormUnitOfWork) WizardRepository() ports.WizardRepository {
	return wizardrepo.NewGormWizardRepository(uow.conn())
}

// TrackAggregate registers an aggregate written in this unit of work. Writes made
// without a transaction are committed already and publish right away.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.tracker.TrackAggregate(id, aggregate)
	if uow.tx == nil {
		uow.tracker.Flush(context.Background())
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
