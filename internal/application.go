package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/renderer"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - plays one match on the given console streams.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var snapshots repository.MatchRepository

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		snapshots = repository.NewMatchRepository(redisStorage.Connection, conf.Redis.SnapshotTTL)
		log.Info("live match snapshots enabled", "addr", conf.Redis.GetRedisAddr())
	}

	board := renderer.NewConsole(out, conf.Renderer.CellWidth, conf.Renderer.CellHeight, conf.Renderer.ClearScreen)
	view := renderer.Multi(board, renderer.NewLog(logger))

	gameController := tictactoe.NewGameController(entity.NewMatch(), view)

	matchManager := usecase.NewMatchManager(logger, gameController, snapshots)

	if err := console.New(logger, matchManager, view, in, out).Start(ctx); err != nil {
		return fmt.Errorf("match ended early: %w", err)
	}

	return nil
}
