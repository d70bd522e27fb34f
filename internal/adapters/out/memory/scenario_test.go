package memory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wandshop/internal/adapters/out/memory"
	"wandshop/internal/core/application/usecases/commands"
	"wandshop/internal/core/application/usecases/queries"
	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/core/domain/model/wand"
	"wandshop/internal/core/domain/model/wizard"
	"wandshop/internal/core/ports"
	"wandshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type uowFactory func() commands.UoW

func (f uowFactory) Create() commands.UoW { return f() }

type orderUoWFactory func() commands.OrderUoW

func (f orderUoWFactory) Create() commands.OrderUoW { return f() }

type orderWandUoWFactory func() commands.OrderWandUoW

func (f orderWandUoWFactory) Create() commands.OrderWandUoW { return f() }

type scheduledDelivery struct {
	orderID kernel.UUID
	delay   time.Duration
}

type recordingScheduler struct {
	mu        sync.Mutex
	scheduled []scheduledDelivery
}

func (s *recordingScheduler) ScheduleDelivery(_ context.Context, orderID kernel.UUID, delay time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled = append(s.scheduled, scheduledDelivery{orderID: orderID, delay: delay})
	return nil
}

type verdictModerator struct {
	safe bool
}

func (m verdictModerator) IsSafe(context.Context, string) (bool, error) {
	return m.safe, nil
}

// OrderScenarioSuite drives the command handlers end to end over the in-memory store.
type OrderScenarioSuite struct {
	suite.Suite

	factory   *memory.UnitOfWorkFactory
	scheduler *recordingScheduler
	publisher *recordingPublisher

	wizard  *wizard.Wizard
	a, b, c *wand.Wand
}

func (s *OrderScenarioSuite) SetupTest() {
	ctx := context.Background()
	s.publisher = &recordingPublisher{}
	s.factory = memory.NewUnitOfWorkFactory(memory.NewStore(), s.publisher, nil)
	s.scheduler = &recordingScheduler{}

	t := s.T()
	s.wizard = newWizard(t)
	s.a = newWand(t, "00000000-0000-0000-0000-00000000000a")
	s.b = newWand(t, "00000000-0000-0000-0000-00000000000b")
	s.c = newWand(t, "00000000-0000-0000-0000-00000000000c")

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.WizardRepository().Add(ctx, s.wizard))
	for _, w := range []*wand.Wand{s.c, s.a, s.b} {
		s.Require().NoError(uow.WandRepository().Add(ctx, w))
	}
	s.Require().NoError(uow.Commit(ctx))
}

func (s *OrderScenarioSuite) uow() commands.UoW { return s.factory.Create() }

func (s *OrderScenarioSuite) uows() uowFactory { return uowFactory(s.uow) }

func (s *OrderScenarioSuite) orderUoWs() orderUoWFactory {
	return func() commands.OrderUoW { return s.factory.Create() }
}

func (s *OrderScenarioSuite) orderWandUoWs() orderWandUoWFactory {
	return func() commands.OrderWandUoW { return s.factory.Create() }
}

func (s *OrderScenarioSuite) repos() ports.UnitOfWork { return s.factory.Create() }

func (s *OrderScenarioSuite) getOrder(id kernel.UUID) *order.Order {
	o, err := s.repos().OrderRepository().Get(context.Background(), id)
	s.Require().NoError(err)
	return o
}

func (s *OrderScenarioSuite) getWand(id kernel.UUID) *wand.Wand {
	w, err := s.repos().WandRepository().Get(context.Background(), id)
	s.Require().NoError(err)
	return w
}

func (s *OrderScenarioSuite) createFromScore(score int) kernel.UUID {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderFromScoreCommand(id, s.wizard.ID(), score, "pi_scenario", "Gringotts", "4 Privet Drive")
	s.Require().NoError(err)
	s.Require().NoError(commands.NewCreateOrderCommandHandler(s.uows()).Handle(context.Background(), cmd))
	return id
}

func (s *OrderScenarioSuite) TestFullLifecycle() {
	ctx := context.Background()

	orderID := s.createFromScore(7)
	o := s.getOrder(orderID)
	s.Equal(order.Pending, o.Status())
	s.True(o.WandID().IsEqual(s.b.ID()), "7 mod 3 selects the second wand")
	b := s.getWand(s.b.ID())
	s.Equal(wand.Available, b.Status())
	s.Require().NotNil(b.ReservedBy())

	pay, _ := commands.NewPayOrderCommand(orderID)
	s.Require().NoError(commands.NewPayOrderCommandHandler(s.orderWandUoWs()).Handle(ctx, pay))
	s.Equal(order.Paid, s.getOrder(orderID).Status())
	s.Equal(wand.Sold, s.getWand(s.b.ID()).Status())

	dispatch, _ := commands.NewDispatchOrderCommand(orderID)
	h := commands.NewDispatchOrderCommandHandler(s.orderUoWs(), s.scheduler, time.Minute, discardLogger())
	s.Require().NoError(h.Handle(ctx, dispatch))
	o = s.getOrder(orderID)
	s.Equal(order.Dispatched, o.Status())
	s.Require().NotNil(o.TrackingNumber())
	s.Regexp(`^TRK-[A-Z0-9]{8}$`, o.TrackingNumber().String())
	s.Require().Len(s.scheduler.scheduled, 1)
	s.True(s.scheduler.scheduled[0].orderID.IsEqual(orderID))
	s.Equal(time.Minute, s.scheduler.scheduled[0].delay)

	cancel, _ := commands.NewCancelOrderCommand(orderID)
	s.Require().NoError(commands.NewCancelOrderCommandHandler(s.orderWandUoWs()).Handle(ctx, cancel))
	s.Equal(order.Cancelled, s.getOrder(orderID).Status())
	b = s.getWand(s.b.ID())
	s.Equal(wand.Available, b.Status())
	s.Nil(b.ReservedBy())

	statuses := make([]order.Status, 0, len(s.publisher.events))
	for _, e := range s.publisher.events {
		statuses = append(statuses, e.Status)
	}
	s.Equal([]order.Status{order.Pending, order.Paid, order.Dispatched, order.Cancelled}, statuses)
}

func (s *OrderScenarioSuite) TestDeliveryCompletionAndReview() {
	ctx := context.Background()
	orderID := s.createFromScore(3)

	pay, _ := commands.NewPayOrderCommand(orderID)
	s.Require().NoError(commands.NewPayOrderCommandHandler(s.orderWandUoWs()).Handle(ctx, pay))
	dispatch, _ := commands.NewDispatchOrderCommand(orderID)
	s.Require().NoError(commands.NewDispatchOrderCommandHandler(s.orderUoWs(), s.scheduler, 0, discardLogger()).Handle(ctx, dispatch))

	sweep, _ := commands.NewDeliverOverdueOrdersCommand(time.Now().Add(time.Second))
	delivered, err := commands.NewDeliverOverdueOrdersCommandHandler(s.orderUoWs()).Handle(ctx, sweep)
	s.Require().NoError(err)
	s.Equal(1, delivered)

	again, err := commands.NewDeliverOverdueOrdersCommandHandler(s.orderUoWs()).Handle(ctx, sweep)
	s.Require().NoError(err)
	s.Zero(again)

	complete, _ := commands.NewCompleteOrderCommand(orderID)
	s.Require().NoError(commands.NewCompleteOrderCommandHandler(s.orderUoWs()).Handle(ctx, complete))
	s.True(s.getOrder(orderID).Completed())

	review, _ := commands.NewSubmitReviewCommand(orderID, "It chose me.")
	err = commands.NewSubmitReviewCommandHandler(s.orderUoWs(), verdictModerator{safe: false}).Handle(ctx, review)
	s.Require().ErrorIs(err, errs.ErrContentRejected)
	s.Nil(s.getOrder(orderID).Review())

	s.Require().NoError(commands.NewSubmitReviewCommandHandler(s.orderUoWs(), verdictModerator{safe: true}).Handle(ctx, review))
	s.Equal("It chose me.", s.getOrder(orderID).Review().String())

	err = commands.NewSubmitReviewCommandHandler(s.orderUoWs(), verdictModerator{safe: true}).Handle(ctx, review)
	s.Require().ErrorIs(err, errs.ErrInvalidState)
}

func (s *OrderScenarioSuite) TestConcurrentCreatesOnOneWand() {
	const attempts = 8
	handler := commands.NewCreateOrderCommandHandler(s.uows())

	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), s.wizard.ID(), s.a.ID(), "pi_race", "Owl", "The Leaky Cauldron")
			if err != nil {
				results[i] = err
				return
			}
			results[i] = handler.Handle(context.Background(), cmd)
		}()
	}
	wg.Wait()

	var succeeded int
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, errs.ErrAllocationConflict)
	}
	s.Equal(1, succeeded)

	list, err := queries.NewListOrdersQueryHandler(s.repos().OrderRepository()).Handle(context.Background(), mustListQuery(s.T()))
	s.Require().NoError(err)
	s.Len(list, 1)
}

// startingLine holds transactions back until every racer has arrived.
type startingLine struct {
	racers  int32
	arrived atomic.Int32
	open    chan struct{}
}

func newStartingLine(racers int32) *startingLine {
	return &startingLine{racers: racers, open: make(chan struct{})}
}

func (l *startingLine) wait() {
	if l.arrived.Add(1) == l.racers {
		close(l.open)
	}
	<-l.open
}

type gatedUoW struct {
	commands.UoW
	line *startingLine
}

func (u gatedUoW) Begin(ctx context.Context) error {
	u.line.wait()
	return u.UoW.Begin(ctx)
}

func (s *OrderScenarioSuite) TestConcurrentScoreCreatesOnLastWand() {
	ctx := context.Background()
	for _, w := range []*wand.Wand{s.b, s.c} {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), s.wizard.ID(), w.ID(), "pi_hold", "Owl", "Spinner's End")
		s.Require().NoError(err)
		s.Require().NoError(commands.NewCreateOrderCommandHandler(s.uows()).Handle(ctx, cmd))
	}

	const racers = 2
	line := newStartingLine(racers)
	handler := commands.NewCreateOrderCommandHandler(uowFactory(func() commands.UoW {
		return gatedUoW{UoW: s.uow(), line: line}
	}))

	var wg sync.WaitGroup
	results := make([]error, racers)
	for i := range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewCreateOrderFromScoreCommand(kernel.NewUUID(), s.wizard.ID(), 7, "pi_race", "Gringotts", "Shell Cottage")
			if err != nil {
				results[i] = err
				return
			}
			results[i] = handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	var succeeded int
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, errs.ErrAllocationConflict)
	}
	s.Equal(1, succeeded)

	a := s.getWand(s.a.ID())
	s.NotNil(a.ReservedBy())
}

func (s *OrderScenarioSuite) TestAllocationExhaustsInventory() {
	s.createFromScore(1)
	s.createFromScore(1)
	s.createFromScore(1)

	cmd, err := commands.NewCreateOrderFromScoreCommand(kernel.NewUUID(), s.wizard.ID(), 1, "pi_x", "Stripe", "Godric's Hollow")
	s.Require().NoError(err)
	err = commands.NewCreateOrderCommandHandler(s.uows()).Handle(context.Background(), cmd)
	s.ErrorIs(err, errs.ErrNoInventory)
}

func (s *OrderScenarioSuite) TestDeleteWizardCascade() {
	ctx := context.Background()
	pendingID := s.createFromScore(1)
	paidID := s.createFromScore(1)

	answerCmd, _ := commands.NewSubmitAnswerCommand(kernel.NewUUID(), kernel.NewUUID(), s.wizard.ID(), 5)
	s.Require().NoError(commands.NewSubmitAnswerCommandHandler(s.uows()).Handle(ctx, answerCmd))

	pay, _ := commands.NewPayOrderCommand(paidID)
	s.Require().NoError(commands.NewPayOrderCommandHandler(s.orderWandUoWs()).Handle(ctx, pay))

	del, _ := commands.NewDeleteWizardCommand(s.wizard.ID())
	err := commands.NewDeleteWizardCommandHandler(s.uows()).Handle(ctx, del)
	s.Require().ErrorIs(err, errs.ErrInvalidState)
	s.Equal(order.Pending, s.getOrder(pendingID).Status(), "blocked cascade changes nothing")

	cancel, _ := commands.NewCancelOrderCommand(paidID)
	s.Require().NoError(commands.NewCancelOrderCommandHandler(s.orderWandUoWs()).Handle(ctx, cancel))
	s.Require().NoError(commands.NewDeleteWizardCommandHandler(s.uows()).Handle(ctx, del))

	_, err = s.repos().WizardRepository().Get(ctx, s.wizard.ID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
	_, err = s.repos().OrderRepository().Get(ctx, pendingID)
	s.ErrorIs(err, errs.ErrObjectNotFound)
	_, err = s.repos().AnswerRepository().Get(ctx, answerCmd.AnswerID())
	s.ErrorIs(err, errs.ErrObjectNotFound)

	n, err := s.repos().WandRepository().CountAllocatable(ctx)
	s.Require().NoError(err)
	s.Equal(3, n, "every claim was released")
}

func TestOrderScenarioSuite(t *testing.T) {
	suite.Run(t, new(OrderScenarioSuite))
}

func mustListQuery(t *testing.T, statuses ...string) queries.ListOrdersQuery {
	t.Helper()
	q, err := queries.NewListOrdersQuery(statuses...)
	require.NoError(t, err)
	return q
}

func TestListOrdersQuery_OverMemoryStore(t *testing.T) {
	ctx := t.Context()
	repo := newFactory(nil).Create().OrderRepository()
	paid := newOrder(t, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, paid.Pay())
	require.NoError(t, repo.Add(ctx, paid))
	require.NoError(t, repo.Add(ctx, newOrder(t, kernel.NewUUID(), kernel.NewUUID())))

	handler := queries.NewListOrdersQueryHandler(repo)

	list, err := handler.Handle(ctx, mustListQuery(t, "paid", "PAID"))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Paid", list[0].Status)
	assert.Nil(t, list[0].TrackingNumber)

	empty, err := handler.Handle(ctx, mustListQuery(t, "Refunded"))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
