package ports

import (
	"context"

	"wandshop/internal/core/domain/model/kernel"
)

// Finder is the generic entity lookup every repository provides. A missing entity
// yields errs.ObjectNotFoundError so callers can map it to "not found" uniformly.
type Finder[T any] interface {
	Get(ctx context.Context, id kernel.UUID) (T, error)
}
