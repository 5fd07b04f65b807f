package components

import (
	"context"
	"log/slog"
	"os"
	"time"

	"swiftaid/internal/api"
	"swiftaid/internal/config"
	"swiftaid/internal/console"
	"swiftaid/internal/session"
	"swiftaid/internal/upstream"
	"swiftaid/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Redis      *session.Redis
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	apiClient := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logger)
	logger.Info("Initialized upstream client", slog.String("base_url", cfg.Upstream.BaseURL))

	var (
		redisClient *session.Redis
		selections  session.SelectionStore
	)
	if cfg.Redis.Addr != "" {
		logger.Info("Initializing Redis")
		var err error
		redisClient, err = session.NewRedis(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		selections = session.NewRedisStore(redisClient, cfg.Session.SelectionTTL)
	} else {
		logger.Info("Redis not configured, selections held in memory")
		selections = session.NewMemoryStore(cfg.Session.SelectionTTL)
	}

	fleetSvc := console.NewFleetService(apiClient, logger)
	caseSvc := console.NewCaseService(apiClient, selections, logger)
	profileSvc := console.NewProfileService(apiClient, logger)
	resolvedSvc := console.NewResolvedService(apiClient, logger)

	svc := console.NewService(fleetSvc, caseSvc, profileSvc, resolvedSvc)

	httpServer := api.NewServer(cfg, logger, svc)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Redis:      redisClient,
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
	c.logger.Info("Shutting down components")

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
