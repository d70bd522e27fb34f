package queries

import (
	"errors"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetWandQueryIsNotConstructed = errors.New(
		"GetWandQuery must be created via NewGetWandQuery constructor",
	)
)

type GetWandQuery struct {
	wandID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetWandQuery(wandID kernel.UUID) (GetWandQuery, error) {
	if err := wandID.Validate(); err != nil {
		return GetWandQuery{}, err
	}
	return GetWandQuery{wandID: wandID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetWandQuery) Validate() error {
	return q.guard.Validate(ErrGetWandQueryIsNotConstructed)
}

func (q GetWandQuery) WandID() kernel.UUID {
	return q.wandID
}

// GetWandQueryResponse is the catalogue view of a wand. Reserved tells whether an
// open order currently claims it; the claiming order itself is not exposed.
type GetWandQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Wood        string
	Core        string
	Length      decimal.Decimal
	Flexibility string
	Price       decimal.Decimal
	Status      string
	Reserved    bool
}
