// Package wizard holds the customer record as far as order lookup and cascade
// deletion need it.
package wizard

import (
	"errors"
	"net/mail"
	"strings"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/pkg/errs"
	"wandshop/internal/pkg/guard"
)

var ErrWizardIsNotConstructed = errors.New("Wizard must be created via NewWizard constructor")

type Wizard struct {
	id    kernel.UUID
	name  string
	email string
	guard guard.ConstructorGuard
}

func NewWizard(id kernel.UUID, name, email string) (*Wizard, error) {
	w := &Wizard{guard: guard.NewConstructorGuard()}

	name = strings.TrimSpace(name)
	var nameErr, emailErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("wizard name")
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		emailErr = errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	if err := errors.Join(id.Validate(), nameErr, emailErr); err != nil {
		return nil, err
	}

	w.id = id
	w.name = name
	w.email = addr.Address
	return w, nil
}

func (w *Wizard) Validate() error {
	if w == nil {
		return ErrWizardIsNotConstructed
	}
	return w.guard.Validate(ErrWizardIsNotConstructed)
}

func (w *Wizard) ID() kernel.UUID { return w.id }
func (w *Wizard) Name() string    { return w.name }
func (w *Wizard) Email() string   { return w.email }
