package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wandshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type OverdueDeliveryHandler interface {
	Handle(ctx context.Context, cmd commands.DeliverOverdueOrdersCommand) (int, error)
}

// OverdueDeliveryJob periodically delivers orders that stayed Dispatched longer
// than the delivery delay, recovering timers lost on restart.
type OverdueDeliveryJob struct {
	handler  OverdueDeliveryHandler
	delay    time.Duration
	interval time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOverdueDeliveryJob(handler OverdueDeliveryHandler, delay, interval time.Duration, logger *slog.Logger) *OverdueDeliveryJob {
	logger = logger.With("component", "overdue_delivery_job")
	return &OverdueDeliveryJob{
		handler:  handler,
		delay:    delay,
		interval: interval,
		now:      time.Now,
		cron:     cron.New(cron.WithChain(cron.Recover(cronLogger(logger)))),
		logger:   logger,
	}
}

// Start begins the sweep. The first run happens one interval after Start.
func (j *OverdueDeliveryJob) Start() error {
	if j.interval <= 0 {
		return fmt.Errorf("overdue delivery interval must be positive, got %s", j.interval)
	}
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Overdue delivery job started", "interval", j.interval)
	return nil
}

// RunOnce performs a single sweep.
func (j *OverdueDeliveryJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewDeliverOverdueOrdersCommand(j.now().Add(-j.delay))
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue delivery job failed", "error", err)
		return
	}

	delivered, err := j.handler.Handle(ctx, cmd)
	if delivered > 0 {
		j.logger.InfoContext(ctx, "Overdue orders delivered", "count", delivered)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue delivery job failed", "error", err)
	}
}

func (j *OverdueDeliveryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Overdue delivery job stopped")
}

func cronLogger(logger *slog.Logger) cron.Logger {
	return cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))
}
