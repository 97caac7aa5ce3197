package renderer

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Log records move events at debug level. It draws nothing.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger.With("component", "renderer")}
}

func (that *Log) Render() {}

func (that *Log) AddMove(row, col int, player entity.Cell, committed bool) {
	that.logger.Debug("move added",
		"row", row,
		"col", col,
		"player", player.String(),
		"committed", committed,
	)
}
