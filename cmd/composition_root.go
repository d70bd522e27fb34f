package cmd

import (
	"log/slog"
	"time"

	httpin "wandshop/internal/adapters/in/http"
	"wandshop/internal/core/application/usecases/commands"
	"wandshop/internal/core/application/usecases/queries"
	"wandshop/internal/core/ports"
)

// CompositionRoot builds use case handlers over one storage backend. The
// delivery scheduler is settable after construction because the cron and temporal
// schedulers themselves need the deliver handler.
type CompositionRoot struct {
	uowFactory ports.UnitOfWorkFactory
	scheduler  ports.DeliveryScheduler
	moderator  ports.ReviewModerator
	delay      time.Duration
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	uowFactory ports.UnitOfWorkFactory,
	moderator ports.ReviewModerator,
	logger *slog.Logger,
) *CompositionRoot {
	return &CompositionRoot{
		uowFactory: uowFactory,
		moderator:  moderator,
		delay:      configs.DeliveryDelay,
		logger:     logger,
	}
}

func (c *CompositionRoot) SetDeliveryScheduler(scheduler ports.DeliveryScheduler) {
	c.scheduler = scheduler
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderWandUoW())
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.orderWandUoW())
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.orderUoW(), c.scheduler, c.delay, c.logger)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateDeliverOverdueOrdersCommandHandler() commands.DeliverOverdueOrdersCommandHandler {
	return commands.NewDeliverOverdueOrdersCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderWandUoW())
}

func (c *CompositionRoot) CreateRefundOrderCommandHandler() commands.RefundOrderCommandHandler {
	return commands.NewRefundOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	return commands.NewSubmitReviewCommandHandler(c.orderUoW(), c.moderator)
}

func (c *CompositionRoot) CreateSubmitAnswerCommandHandler() commands.SubmitAnswerCommandHandler {
	return commands.NewSubmitAnswerCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateDeleteWizardCommandHandler() commands.DeleteWizardCommandHandler {
	return commands.NewDeleteWizardCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetWandQueryHandler() queries.GetWandQueryHandler {
	return queries.NewGetWandQueryHandler(c.uowFactory.Create().WandRepository())
}

func (c *CompositionRoot) CreateGetAnswerQueryHandler() queries.GetAnswerQueryHandler {
	return queries.NewGetAnswerQueryHandler(c.uowFactory.Create().AnswerRepository())
}

// CreateHTTPServer wires every handler into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:   c.CreateCreateOrderCommandHandler(),
		UpdateOrder:   c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:   c.CreateDeleteOrderCommandHandler(),
		PayOrder:      c.CreatePayOrderCommandHandler(),
		DispatchOrder: c.CreateDispatchOrderCommandHandler(),
		CompleteOrder: c.CreateCompleteOrderCommandHandler(),
		CancelOrder:   c.CreateCancelOrderCommandHandler(),
		RefundOrder:   c.CreateRefundOrderCommandHandler(),
		SubmitReview:  c.CreateSubmitReviewCommandHandler(),
		SubmitAnswer:  c.CreateSubmitAnswerCommandHandler(),
		DeleteWizard:  c.CreateDeleteWizardCommandHandler(),
		GetOrder:      c.CreateGetOrderQueryHandler(),
		ListOrders:    c.CreateListOrdersQueryHandler(),
		GetWand:       c.CreateGetWandQueryHandler(),
		GetAnswer:     c.CreateGetAnswerQueryHandler(),
	})
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderWandUoW() commands.OrderWandUoWFactory {
	return FuncOrderWandUoWFactory(func() commands.OrderWandUoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderWandUoWFactory func() commands.OrderWandUoW

func (f FuncOrderWandUoWFactory) Create() commands.OrderWandUoW {
	return f()
}
