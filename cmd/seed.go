package cmd

import (
	"context"
	"errors"
	"fmt"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/wand"
	"wandshop/internal/core/domain/model/wizard"
	"wandshop/internal/core/ports"
	"wandshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DemoWizardID is the wizard created by SeedCatalog, usable for local orders.
var DemoWizardID = kernel.MustUUID("5f0c3f6e-8f1d-4a8e-9a57-2b5c0d3c1a01")

type catalogueEntry struct {
	id     string
	wood   string
	core   string
	length string
	flex   string
	price  string
}

var catalogue = []catalogueEntry{
	{"0b9e1c2a-0000-4000-8000-000000000001", "Holly", "Phoenix feather", "11", "Supple", "7.00"},
	{"0b9e1c2a-0000-4000-8000-000000000002", "Vine", "Dragon heartstring", "10.75", "Springy", "9.50"},
	{"0b9e1c2a-0000-4000-8000-000000000003", "Willow", "Unicorn hair", "14", "Swishy", "8.25"},
	{"0b9e1c2a-0000-4000-8000-000000000004", "Yew", "Phoenix feather", "13.5", "Unyielding", "12.00"},
	{"0b9e1c2a-0000-4000-8000-000000000005", "Elder", "Thestral tail hair", "15", "Unbending", "99.99"},
}

// SeedCatalog adds the demo wizard and wand catalogue. Entries that already exist
// are left alone, so it is safe on every start.
func SeedCatalog(ctx context.Context, factory ports.UnitOfWorkFactory) (int, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.WizardRepository().Get(ctx, DemoWizardID); errors.Is(err, errs.ErrObjectNotFound) {
		w, wizErr := wizard.NewWizard(DemoWizardID, "Demo Wizard", "demo@wandshop.local")
		if wizErr != nil {
			return 0, wizErr
		}
		if wizErr = uow.WizardRepository().Add(ctx, w); wizErr != nil {
			return 0, wizErr
		}
	} else if err != nil {
		return 0, err
	}

	added := 0
	for _, e := range catalogue {
		id := kernel.MustUUID(e.id)
		_, err := uow.WandRepository().Get(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return 0, err
		}

		w, err := wand.NewWand(id, wand.Details{
			Name:        fmt.Sprintf("%s and %s", e.wood, e.core),
			Wood:        e.wood,
			Core:        e.core,
			Length:      decimal.RequireFromString(e.length),
			Flexibility: e.flex,
			Price:       decimal.RequireFromString(e.price),
		})
		if err != nil {
			return 0, err
		}
		if err = uow.WandRepository().Add(ctx, w); err != nil {
			return 0, err
		}
		added++
	}

	return added, uow.Commit(ctx)
}
