package commands_test

import (
	"context"
	"time"

	"wandshop/internal/core/application/usecases/commands"
	"wandshop/internal/core/domain/model/answer"
	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/core/domain/model/wand"
	"wandshop/internal/core/domain/model/wizard"
	"wandshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) GetAllByStatuses(ctx context.Context, statuses []order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, statuses)
	list, _ := args.Get(0).([]*order.Order)
	return list, args.Error(1)
}

func (m *MockOrderRepository) GetAllDispatchedBefore(ctx context.Context, t time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, t)
	list, _ := args.Get(0).([]*order.Order)
	return list, args.Error(1)
}

func (m *MockOrderRepository) GetAllByWizard(ctx context.Context, wizardID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, wizardID)
	list, _ := args.Get(0).([]*order.Order)
	return list, args.Error(1)
}

type MockWandRepository struct{ mock.Mock }

func (m *MockWandRepository) Get(ctx context.Context, id kernel.UUID) (*wand.Wand, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*wand.Wand)
	return w, args.Error(1)
}

func (m *MockWandRepository) Add(ctx context.Context, w *wand.Wand) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWandRepository) Update(ctx context.Context, w *wand.Wand) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWandRepository) CountAllocatable(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockWandRepository) GetAllocatableAt(ctx context.Context, offset int) (*wand.Wand, error) {
	args := m.Called(ctx, offset)
	w, _ := args.Get(0).(*wand.Wand)
	return w, args.Error(1)
}

type MockAnswerRepository struct{ mock.Mock }

func (m *MockAnswerRepository) Get(ctx context.Context, id kernel.UUID) (*answer.Answer, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*answer.Answer)
	return a, args.Error(1)
}

func (m *MockAnswerRepository) Add(ctx context.Context, a *answer.Answer) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAnswerRepository) DeleteAllByWizard(ctx context.Context, wizardID kernel.UUID) (int, error) {
	args := m.Called(ctx, wizardID)
	return args.Int(0), args.Error(1)
}

type MockWizardRepository struct{ mock.Mock }

func (m *MockWizardRepository) Get(ctx context.Context, id kernel.UUID) (*wizard.Wizard, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*wizard.Wizard)
	return w, args.Error(1)
}

func (m *MockWizardRepository) Add(ctx context.Context, w *wizard.Wizard) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWizardRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW satisfies every unit of work shape the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) WandRepository() ports.WandRepository {
	return m.Called().Get(0).(ports.WandRepository)
}

func (m *MockUoW) AnswerRepository() ports.AnswerRepository {
	return m.Called().Get(0).(ports.AnswerRepository)
}

func (m *MockUoW) WizardRepository() ports.WizardRepository {
	return m.Called().Get(0).(ports.WizardRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockOrderWandUoWFactory struct{ mock.Mock }

func (m *MockOrderWandUoWFactory) Create() commands.OrderWandUoW {
	return m.Called().Get(0).(commands.OrderWandUoW)
}

type MockReviewModerator struct{ mock.Mock }

func (m *MockReviewModerator) IsSafe(ctx context.Context, text string) (bool, error) {
	args := m.Called(ctx, text)
	return args.Bool(0), args.Error(1)
}

type MockDeliveryScheduler struct{ mock.Mock }

func (m *MockDeliveryScheduler) ScheduleDelivery(ctx context.Context, orderID kernel.UUID, delay time.Duration) error {
	return m.Called(ctx, orderID, delay).Error(0)
}
