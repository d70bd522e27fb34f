package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Client code drives the lifecycle
// explicitly: Begin, repository calls, then Commit or Rollback. Rollback after a
// successful Commit is a no-op, so handlers may defer it unconditionally.
//
// Repositories obtained before Begin operate outside any transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	WandRepository() WandRepository
	AnswerRepository() AnswerRepository
	WizardRepository() WizardRepository
}
