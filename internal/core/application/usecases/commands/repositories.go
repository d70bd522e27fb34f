// Package commands contains the business operations that change state. Every
// handler follows the same shape: validate the command, open a unit of work, load
// aggregates, apply domain behavior, persist, commit.
package commands

import (
	"context"

	"wandshop/internal/core/ports"
)

// Unit of Work interfaces scoped to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	WandRepoFactory interface {
		WandRepository() ports.WandRepository
	}

	AnswerRepoFactory interface {
		AnswerRepository() ports.AnswerRepository
	}

	WizardRepoFactory interface {
		WizardRepository() ports.WizardRepository
	}

	// OrderUoW is used by transitions that leave the wand untouched.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderWandUoW is used by transitions that move order and wand in lockstep.
	OrderWandUoW interface {
		TxManager
		OrderRepoFactory
		WandRepoFactory
	}

	OrderWandUoWFactory interface {
		Create() OrderWandUoW
	}

	// UoW spans every repository. Used by order creation, quiz answers and the
	// wizard cascade.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   wizard, err := uow.WizardRepository().Get(ctx, wizardID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		WandRepoFactory
		AnswerRepoFactory
		WizardRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
