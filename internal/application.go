package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
)

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, closeCache, err := newEngine(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeCache()

	addr := conf.HTTPAddr()
	log.Info("Starting HTTP server", "addr", addr)

	if err = rest.Start(ctx, addr, rest.NewRouter(logger, engine)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")
	return nil
}

func newEngine(ctx context.Context, logger *slog.Logger, conf *config.Config) (*usecase.Engine, func(), error) {
	log := logger.With("component", "app")

	if !conf.Redis.Enabled {
		log.Info("Move cache disabled")
		return usecase.NewEngine(logger, nil), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	log.Info("Move cache enabled", "addr", conf.Redis.GetRedisAddr(), "ttl", conf.Redis.TTL)

	closeCache := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	moveRepo := repository.NewMoveRepository(redisStorage.Connection, conf.Redis.TTL)

	return usecase.NewEngine(logger, moveRepo), closeCache, nil
}
