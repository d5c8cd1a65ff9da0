package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ryobiguy/timesheet/internal/api"
	"github.com/ryobiguy/timesheet/internal/config"
	"github.com/ryobiguy/timesheet/internal/redis"
	"github.com/ryobiguy/timesheet/internal/service"
	"github.com/ryobiguy/timesheet/internal/storage/postgres"
	"github.com/ryobiguy/timesheet/internal/workers"
	"github.com/ryobiguy/timesheet/pkg/logger"
)

type Components struct {
	logger      *slog.Logger
	HttpServer  *api.Server
	Postgres    *postgres.Postgres
	Redis       *redis.Redis
	Outbox      *redis.Outbox
	Reprocessor *workers.Reprocessor
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	jobsiteCache := redis.NewJobsiteCache(redisClient)
	outbox := redis.NewOutbox(redisClient.Client, cfg.Outbox.Key)

	ingestionSvc := service.NewIngestionService(
		storage.Jobsite,
		storage.Assignment,
		storage.Event,
		storage.Entry,
		jobsiteCache,
		outbox,
		logger,
		cfg.Cache.JobsiteTTL,
	)
	entrySvc := service.NewEntryService(storage.Entry, logger)
	disputeSvc := service.NewDisputeService(storage.Dispute, storage.Entry, logger)
	summarySvc := service.NewSummaryService(storage.Summary, storage.Entry, logger)
	jobsiteSvc := service.NewJobsiteService(storage.Jobsite)
	assignmentSvc := service.NewAssignmentService(storage.Assignment, storage.Jobsite)

	srv := service.NewService(ingestionSvc, entrySvc, disputeSvc, summarySvc, jobsiteSvc, assignmentSvc)

	reprocessor := workers.NewReprocessor(logger, cfg.Outbox, outbox, ingestionSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	return &Components{
		logger:      logger,
		HttpServer:  httpServer,
		Postgres:    storage,
		Redis:       redisClient,
		Outbox:      outbox,
		Reprocessor: reprocessor,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
