package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	postgres_adapter "wandshop/internal/adapters/out/postgres"
	"wandshop/internal/adapters/out/postgres/pgtest"
	"wandshop/internal/core/domain/model/answer"
	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/core/domain/model/wand"
	"wandshop/internal/core/domain/model/wizard"
	"wandshop/internal/core/ports"
	"wandshop/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []order.ChangedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...order.ChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) statuses() []order.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]order.Status, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Status)
	}
	return out
}

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *recordingPublisher
	factory   ports.UnitOfWorkFactory

	wizard *wizard.Wizard
	wand   *wand.Wand
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	// Migrate twice: the schema setup must be repeatable on every start.
	suite.Require().NoError(postgres_adapter.Migrate(context.Background(), db))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.publisher = &recordingPublisher{}
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx := context.Background()
	uow := suite.factory.Create()

	w, err := wizard.NewWizard(kernel.NewUUID(), gofakeit.Name(), gofakeit.Email())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WizardRepository().Add(ctx, w))
	suite.wizard = w

	wd, err := wand.NewWand(kernel.NewUUID(), wand.Details{
		Name:  gofakeit.BeerName(),
		Wood:  "Holly",
		Core:  "Phoenix feather",
		Price: decimal.RequireFromString("7.00"),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WandRepository().Add(ctx, wd))
	suite.wand = wd
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	addr, err := kernel.NewAddress(gofakeit.Street())
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), suite.wizard.ID(), suite.wand.ID(), "pi_"+gofakeit.LetterN(8), order.Stripe, addr, time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().NoError(uow.Rollback(ctx), "rollback without a transaction is a no-op")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(uow.Rollback(ctx), "rollback after commit is a no-op")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndWandTogetherAndPublishes() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o := suite.newOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(suite.wand.Reserve(o.ID()))
	suite.Require().NoError(uow.WandRepository().Update(ctx, suite.wand))
	suite.Require().NoError(o.Pay())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(suite.wand.Sell(o.ID()))
	suite.Require().NoError(uow.WandRepository().Update(ctx, suite.wand))

	suite.Empty(suite.publisher.statuses(), "nothing is published before commit")
	suite.Require().NoError(uow.Commit(ctx))
	suite.Equal([]order.Status{order.Pending, order.Paid}, suite.publisher.statuses())
	suite.Empty(o.DomainEvents())

	fresh := suite.factory.Create()
	stored, err := fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, stored.Status())
	storedWand, err := fresh.WandRepository().Get(ctx, suite.wand.ID())
	suite.Require().NoError(err)
	suite.Equal(wand.Sold, storedWand.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWritesAndEvents() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o := suite.newOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	_, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Empty(suite.publisher.statuses())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentTransactions_OneActiveOrderPerWand() {
	ctx := context.Background()
	first, second := suite.factory.Create(), suite.factory.Create()

	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(first.OrderRepository().Add(ctx, suite.newOrder()))
	suite.Require().NoError(first.Commit(ctx))

	suite.Require().NoError(second.Begin(ctx))
	err := second.OrderRepository().Add(ctx, suite.newOrder())
	suite.Require().ErrorIs(err, errs.ErrAllocationConflict)
	suite.Require().NoError(second.Rollback(ctx))

	all, err := suite.factory.Create().OrderRepository().GetAllByStatuses(ctx, nil)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_PublishesImmediately() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o := suite.newOrder()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Equal([]order.Status{order.Pending}, suite.publisher.statuses())

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWizardCascade_ForeignKeysRequireDependentsFirst() {
	ctx := context.Background()
	uow := suite.factory.Create()

	a, err := answer.NewAnswer(kernel.NewUUID(), 5, kernel.NewUUID(), suite.wizard.ID(), suite.wand.ID(), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.AnswerRepository().Add(ctx, a))

	suite.Require().Error(uow.WizardRepository().Delete(ctx, suite.wizard.ID()), "answers still reference the wizard")

	suite.Require().NoError(uow.Begin(ctx))
	n, err := uow.AnswerRepository().DeleteAllByWizard(ctx, suite.wizard.ID())
	suite.Require().NoError(err)
	suite.Equal(1, n)
	suite.Require().NoError(uow.WizardRepository().Delete(ctx, suite.wizard.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	_, err = suite.factory.Create().WizardRepository().Get(ctx, suite.wizard.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
