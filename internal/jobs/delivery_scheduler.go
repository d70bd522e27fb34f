package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"wandshop/internal/core/application/usecases/commands"
	"wandshop/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

type DeliverOrderHandler interface {
	Handle(ctx context.Context, cmd commands.DeliverOrderCommand) error
}

// DeliveryScheduler implements ports.DeliveryScheduler with in-process one-shot
// cron entries. Pending timers are lost on restart; OverdueDeliveryJob covers them.
type DeliveryScheduler struct {
	handler DeliverOrderHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewDeliveryScheduler(handler DeliverOrderHandler, logger *slog.Logger) *DeliveryScheduler {
	logger = logger.With("component", "delivery_scheduler")
	return &DeliveryScheduler{
		handler: handler,
		cron:    cron.New(cron.WithChain(cron.Recover(cronLogger(logger)))),
		logger:  logger,
	}
}

func (s *DeliveryScheduler) Start() error {
	s.cron.Start()
	s.logger.Info("Delivery scheduler started")
	return nil
}

// Stop waits for deliveries already firing. Timers that have not fired are dropped.
func (s *DeliveryScheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Delivery scheduler stopped", "dropped", len(s.cron.Entries()))
}

func (s *DeliveryScheduler) ScheduleDelivery(ctx context.Context, orderID kernel.UUID, delay time.Duration) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	var mu sync.Mutex
	var entry cron.EntryID

	mu.Lock()
	defer mu.Unlock()
	entry = s.cron.Schedule(&onceAt{at: time.Now().Add(delay)}, cron.FuncJob(func() {
		mu.Lock()
		id := entry
		mu.Unlock()
		defer s.cron.Remove(id)

		s.deliver(orderID)
	}))

	s.logger.DebugContext(ctx, "Delivery scheduled", "order_id", orderID.String(), "delay", delay)
	return nil
}

func (s *DeliveryScheduler) deliver(orderID kernel.UUID) {
	ctx := context.Background()
	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Scheduled delivery failed", "order_id", orderID.String(), "error", err)
		return
	}

	err = s.handler.Handle(ctx, cmd)
	switch {
	case errors.Is(err, commands.ErrOrderNotDispatched):
		s.logger.InfoContext(ctx, "Order no longer dispatched, delivery skipped", "order_id", orderID.String())
	case err != nil:
		s.logger.ErrorContext(ctx, "Scheduled delivery failed", "order_id", orderID.String(), "error", err)
	default:
		s.logger.InfoContext(ctx, "Order delivered", "order_id", orderID.String())
	}
}

// onceAt fires a single time, immediately if at is already past. cron asks for
// the next time once when the entry is added and again after each run, and never
// runs an entry whose next time is zero.
type onceAt struct {
	at    time.Time
	asked bool
}

func (s *onceAt) Next(time.Time) time.Time {
	if s.asked {
		return time.Time{}
	}
	s.asked = true
	return s.at
}
