package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type gameControllerDep interface {
	RequestMove(row, col int) (tictactoe.Result, error)
	Match() entity.Match
}

type snapshotRepoDep interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	DeleteByID(ctx context.Context, id string) error
}

type MatchManager struct {
	logger     *slog.Logger
	controller gameControllerDep
	snapshots  snapshotRepoDep
}

// NewMatchManager drives one match. snapshots may be nil when no live copy is kept.
func NewMatchManager(logger *slog.Logger, controller gameControllerDep, snapshots snapshotRepoDep) *MatchManager {
	if snapshots == nil {
		snapshots = noopSnapshots{}
	}

	return &MatchManager{
		logger:     logger.With("component", "match_manager"),
		controller: controller,
		snapshots:  snapshots,
	}
}

func (that *MatchManager) Start(ctx context.Context) {
	match := that.controller.Match()

	that.logger.Info("match started", "match_id", match.ID)
	that.saveSnapshot(ctx, &match)
}

// MakeMove applies a move for the active player. Validation errors are returned
// unchanged so the caller can match them with errors.Is.
func (that *MatchManager) MakeMove(ctx context.Context, row, col int) (tictactoe.Result, error) {
	log := that.logger.With("method", "MakeMove")

	result, err := that.controller.RequestMove(row, col)
	if err != nil {
		log.Debug("move rejected", "row", row, "col", col, "error", err)
		return result, fmt.Errorf("failed make move: %w", err)
	}

	match := that.controller.Match()

	log.Debug("move committed",
		"match_id", match.ID,
		"player", result.Player.String(),
		"row", row,
		"col", col,
		"status", result.Status,
	)

	if result.IsFinished() {
		that.finish(ctx, &match)
		return result, nil
	}

	that.saveSnapshot(ctx, &match)

	return result, nil
}

func (that *MatchManager) Match() entity.Match {
	return that.controller.Match()
}

func (that *MatchManager) saveSnapshot(ctx context.Context, match *entity.Match) {
	if err := that.snapshots.CreateOrUpdate(ctx, match); err != nil {
		that.logger.Error("failed to save match snapshot", "match_id", match.ID, "error", err)
	}
}

// finish drops the live snapshot; finished matches are not kept.
func (that *MatchManager) finish(ctx context.Context, match *entity.Match) {
	if err := that.snapshots.DeleteByID(ctx, match.ID); err != nil {
		that.logger.Error("failed to delete match snapshot", "match_id", match.ID, "error", err)
	}

	that.logger.Info("match finished",
		"match_id", match.ID,
		"status", match.Status,
		"winner", match.Winner.String(),
		"moves", match.Moves,
	)
}

type noopSnapshots struct{}

func (noopSnapshots) CreateOrUpdate(context.Context, *entity.Match) error { return nil }

func (noopSnapshots) DeleteByID(context.Context, string) error { return nil }
