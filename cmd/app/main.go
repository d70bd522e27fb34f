package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wandshop/cmd"
	httpin "wandshop/internal/adapters/in/http"
	"wandshop/internal/adapters/out/kafka"
	"wandshop/internal/adapters/out/memory"
	"wandshop/internal/adapters/out/moderation"
	"wandshop/internal/adapters/out/postgres"
	"wandshop/internal/adapters/out/temporal"
	"wandshop/internal/core/ports"
	"wandshop/internal/jobs"
	"wandshop/internal/platform/observability"

	"github.com/labstack/gommon/log"
	"github.com/tmc/langchaingo/llms/openai"
)

const serviceName = "wandshop"

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	instruments, shutdownTelemetry, err := observability.Init(ctx, observability.Options{
		ServiceName:  serviceName,
		Environment:  configs.Environment,
		OTLPEndpoint: configs.OTLPEndpoint,
		LogLevel:     configs.LogLevel,
	})
	if err != nil {
		log.Fatalf("init telemetry: %v", err)
	}
	logger := instruments.Logger
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Error("telemetry shutdown failed", "error", err)
		}
	}()

	publisher, closePublisher := newEventPublisher(configs, instruments)
	defer closePublisher()

	uowFactory := newUnitOfWorkFactory(ctx, configs, publisher, logger)
	if configs.SeedCatalog {
		added, err := cmd.SeedCatalog(ctx, uowFactory)
		if err != nil {
			log.Fatalf("seed catalogue: %v", err)
		}
		logger.Info("catalogue seeded", "wands_added", added, "demo_wizard", cmd.DemoWizardID.String())
	}

	app := cmd.NewCompositionRoot(configs, uowFactory, newModerator(configs, logger), logger)

	cronScheduler, stopTemporal := newDeliveryScheduler(configs, app, instruments)
	defer stopTemporal()

	jobManager := jobs.NewJobManager(
		jobs.NewOverdueDeliveryJob(app.CreateDeliverOverdueOrdersCommandHandler(), configs.DeliveryDelay, configs.SweepInterval, logger),
		cronScheduler,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func newUnitOfWorkFactory(ctx context.Context, configs cmd.Config, publisher ports.EventPublisher, logger *slog.Logger) ports.UnitOfWorkFactory {
	if !configs.UsesPostgres() {
		logger.Warn("DB_HOST is not set, using the in-memory store")
		return memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, logger)
	}

	db, err := postgres.Open(postgres.DSN(
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
	))
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	if err = postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	return postgres.NewGormUnitOfWorkFactory(db, publisher, logger)
}

func newEventPublisher(configs cmd.Config, instruments *observability.Instruments) (ports.EventPublisher, func()) {
	var inner ports.EventPublisher = ports.NopEventPublisher{}
	closer := func() {}

	if len(configs.KafkaBrokers) > 0 {
		p, err := kafka.NewPublisher(configs.KafkaBrokers, configs.KafkaOrderChangedTopic, instruments.Logger)
		if err != nil {
			log.Fatalf("create kafka publisher: %v", err)
		}
		inner, closer = p, p.Close
	}

	return observability.NewPublisher(inner,
		observability.WithTracer(instruments.Tracer("wandshop.events")),
		observability.WithMeter(instruments.Meter("wandshop.events")),
		observability.WithLogger(instruments.Logger),
	), closer
}

func newModerator(configs cmd.Config, logger *slog.Logger) ports.ReviewModerator {
	if configs.OpenAIToken == "" {
		logger.Warn("OPENAI_API_KEY is not set, every review will be refused")
		return moderation.Unavailable{}
	}

	llm, err := openai.New(openai.WithToken(configs.OpenAIToken), openai.WithModel(configs.OpenAIModel))
	if err != nil {
		log.Fatalf("create openai client: %v", err)
	}
	moderator, err := moderation.NewLLMModerator(llm, logger)
	if err != nil {
		log.Fatalf("create moderator: %v", err)
	}
	return moderator
}

// newDeliveryScheduler sets up durable temporal delivery when configured and the
// in-process cron scheduler otherwise. The cron scheduler is returned for the job
// manager to run; it is nil in temporal mode.
func newDeliveryScheduler(configs cmd.Config, app *cmd.CompositionRoot, instruments *observability.Instruments) (*jobs.DeliveryScheduler, func()) {
	if configs.TemporalHostPort == "" {
		scheduler := jobs.NewDeliveryScheduler(app.CreateDeliverOrderCommandHandler(), instruments.Logger)
		app.SetDeliveryScheduler(scheduler)
		return scheduler, func() {}
	}

	c, err := temporal.Dial(configs.TemporalHostPort, configs.TemporalNamespace, instruments.Logger, instruments.Tracer("wandshop.temporal"))
	if err != nil {
		log.Fatalf("dial temporal: %v", err)
	}
	w := temporal.NewWorker(c, temporal.NewActivities(app.CreateDeliverOrderCommandHandler()))
	if err = w.Start(); err != nil {
		log.Fatalf("start temporal worker: %v", err)
	}
	app.SetDeliveryScheduler(temporal.NewScheduler(c))

	return nil, func() {
		w.Stop()
		c.Close()
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port int, logger *slog.Logger) {
	doc, err := httpin.LoadContract(ctx)
	if err != nil {
		log.Fatalf("load api contract: %v", err)
	}
	e, err := httpin.NewEcho(app.CreateHTTPServer(), doc, logger)
	if err != nil {
		log.Fatalf("build http server: %v", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("http server listening", "port", port)
	if err = e.Start(fmt.Sprintf("0.0.0.0:%d", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server stopped", "error", err)
	}
}
