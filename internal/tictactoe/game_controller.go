package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type rendererDep interface {
	AddMove(row, col int, player entity.Cell, committed bool)
}

// Result describes a committed move and the state it left the match in.
type Result struct {
	Row    int
	Col    int
	Player entity.Cell
	Status string
	Winner entity.Cell
}

func (that Result) IsFinished() bool {
	return entity.IsTerminal(that.Status)
}

type GameController struct {
	match    *entity.Match
	renderer rendererDep
}

func NewGameController(match *entity.Match, renderer rendererDep) *GameController {
	return &GameController{
		match:    match,
		renderer: renderer,
	}
}

// Match returns a copy of the current match.
func (that *GameController) Match() entity.Match {
	return *that.match
}

// RequestMove places the active symbol at (row, col) and advances the turn.
func (that *GameController) RequestMove(row, col int) (Result, error) {
	if that.match.IsFinished() {
		return Result{}, apperror.ErrGameFinished
	}

	if err := that.validateMove(row, col); err != nil {
		return Result{}, fmt.Errorf("invalid move (%d, %d): %w", row, col, err)
	}

	player := that.match.Active
	that.match.Board[row][col] = player
	that.match.Moves++
	that.renderer.AddMove(row, col, player, true)

	that.updateGameStatus(row, col)

	return Result{
		Row:    row,
		Col:    col,
		Player: player,
		Status: that.match.Status,
		Winner: that.match.Winner,
	}, nil
}

// validateMove - checks the range first, then the target cell.
func (that *GameController) validateMove(row, col int) error {
	if !entity.InRange(row, col) {
		return apperror.ErrOutOfRange
	}

	if that.match.Board[row][col] != entity.Empty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - win takes precedence over draw.
func (that *GameController) updateGameStatus(row, col int) {
	that.match.Status = entity.StatusEvaluating

	switch {
	case that.CheckWin(row, col):
		that.match.Status = entity.StatusWon
		that.match.Winner = that.match.Active
	case that.CheckDraw():
		that.match.Status = entity.StatusDrawn
	default:
		that.match.Active = that.match.Active.Opponent()
		that.match.Status = entity.StatusAwaitingMove
	}
}

// CheckWin reports whether the active symbol fills the row or column through
// (row, col) or either diagonal. Both diagonals are checked on every move.
// Coordinates off the board never win.
func (that *GameController) CheckWin(row, col int) bool {
	if !entity.InRange(row, col) {
		return false
	}

	b := &that.match.Board
	s := that.match.Active

	return (b[row][0] == s && b[row][1] == s && b[row][2] == s) ||
		(b[0][col] == s && b[1][col] == s && b[2][col] == s) ||
		(b[0][0] == s && b[1][1] == s && b[2][2] == s) ||
		(b[0][2] == s && b[1][1] == s && b[2][0] == s)
}

// CheckDraw reports whether no empty cell is left.
func (that *GameController) CheckDraw() bool {
	return that.match.Board.Count(entity.Empty) == 0
}
