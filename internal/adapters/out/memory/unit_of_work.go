package memory

import (
	"context"
	"errors"
	"log/slog"

	"wandshop/internal/adapters/out/eventtracker"
	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/ports"
)

var ErrNoTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func NewUnitOfWorkFactory(store *Store, publisher ports.EventPublisher, logger *slog.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:   f.store,
		tracker: eventtracker.New(f.publisher, f.logger),
	}
}

// UnitOfWork works on a private copy of the store between Begin and Commit.
// Repositories obtained from it read and write that copy while a transaction is
// open and the committed state otherwise.
type UnitOfWork struct {
	store   *Store
	tracker *eventtracker.Tracker
	working *state
}

// Begin blocks until no other transaction is open or ctx is done. Calling it twice
// keeps the running transaction.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.working != nil {
		return nil
	}
	if err := uow.store.acquire(ctx); err != nil {
		return err
	}
	uow.working = uow.store.snapshot()
	return nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.working == nil {
		return ErrNoTransaction
	}

	uow.store.publish(uow.working)
	uow.working = nil
	uow.store.release()

	uow.tracker.Flush(ctx)
	return nil
}

// Rollback discards the working copy. Without an open transaction it does nothing.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.working == nil {
		return nil
	}

	uow.working = nil
	uow.store.release()
	uow.tracker.Reset()
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) WandRepository() ports.WandRepository {
	return &WandRepository{uow: uow}
}

func (uow *UnitOfWork) AnswerRepository() ports.AnswerRepository {
	return &AnswerRepository{uow: uow}
}

func (uow *UnitOfWork) WizardRepository() ports.WizardRepository {
	return &WizardRepository{uow: uow}
}

func (uow *UnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.tracker.TrackAggregate(id, aggregate)
}

func (uow *UnitOfWork) read(fn func(*state)) {
	if uow.working != nil {
		fn(uow.working)
		return
	}
	uow.store.read(fn)
}

// write applies fn to the working copy, or commits it on its own when no transaction
// is open. fn must check before it mutates.
func (uow *UnitOfWork) write(ctx context.Context, fn func(*state) error) error {
	if uow.working != nil {
		return fn(uow.working)
	}
	return uow.store.autoCommit(ctx, fn)
}

// afterWrite tracks the aggregate, publishing right away for auto-committed writes.
func (uow *UnitOfWork) afterWrite(ctx context.Context, id kernel.UUID, aggregate any) {
	uow.tracker.TrackAggregate(id, aggregate)
	if uow.working == nil {
		uow.tracker.Flush(ctx)
	}
}
