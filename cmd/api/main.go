package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/intervention-desk/internal/api/http"
	"github.com/spec-kit/intervention-desk/internal/api/http/handlers"
	"github.com/spec-kit/intervention-desk/internal/config"
	"github.com/spec-kit/intervention-desk/internal/directory"
	"github.com/spec-kit/intervention-desk/internal/events"
	"github.com/spec-kit/intervention-desk/internal/observability"
	"github.com/spec-kit/intervention-desk/internal/service"
	"github.com/spec-kit/intervention-desk/internal/store"
	"github.com/spec-kit/intervention-desk/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	blob, err := newBlobStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to init store backend", zap.Error(err))
	}
	defer blob.Close()

	dir, err := directory.Load(cfg.Directory.RosterFile)
	if err != nil {
		logger.Fatal("failed to load directory", zap.Error(err))
	}
	logger.Info("directory loaded", zap.Int("people", dir.Size()))

	ticketStore := store.NewTicketStore(blob, logger)
	dispatcher := events.NewInMemoryDispatcher()

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	ticketService := service.NewTicketService(service.TicketDependencies{
		Store:      ticketStore,
		Directory:  dir,
		Dispatcher: dispatcher,
	})

	if cfg.Store.SeedDemo {
		count, err := ticketService.SeedDemoData(ctx)
		if err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
		if count == 0 {
			logger.Info("demo seeding skipped, store already has tickets")
		}
	}

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, ticketStore, metrics),
		Directory: handlers.NewDirectoryHandler(dir),
		Tickets:   handlers.NewTicketsHandler(ticketService),
		Reports:   handlers.NewReportsHandler(ticketService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func newBlobStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.BlobStore, error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		return store.NewRedisBlob(cfg.Redis, cfg.Store.Key, logger), nil
	case config.BackendPostgres:
		return store.NewPostgresBlob(ctx, cfg.Postgres, cfg.Store.Key, logger)
	case config.BackendMemory:
		return store.NewMemoryBlob(), nil
	default:
		logger.Info("using file store backend", zap.String("path", cfg.Store.FilePath))
		return store.NewFileBlob(cfg.Store.FilePath), nil
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
