package entity

import "github.com/google/uuid"

const BoardSize = 3

const (
	StatusAwaitingMove = "awaiting_move"
	StatusEvaluating   = "evaluating"
	StatusWon          = "won"
	StatusDrawn        = "drawn"
)

// Board is a row-major 3x3 grid.
type Board [BoardSize][BoardSize]Cell

type Match struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Active Cell   `json:"active"`
	Status string `json:"status"`
	Winner Cell   `json:"winner"`
	Moves  int    `json:"moves"`
}

// NewMatch returns a match with an empty board and Cross to move.
func NewMatch() *Match {
	return &Match{
		ID:     uuid.NewString(),
		Active: Cross,
		Status: StatusAwaitingMove,
	}
}

func (that *Match) IsFinished() bool {
	return IsTerminal(that.Status)
}

func (that *Match) IsAwaitingMove() bool {
	return that.Status == StatusAwaitingMove
}

// Count returns how many cells hold the given symbol.
func (that *Board) Count(symbol Cell) int {
	n := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == symbol {
				n++
			}
		}
	}
	return n
}

// IsTerminal reports whether no further move is accepted in status.
func IsTerminal(status string) bool {
	return status == StatusWon || status == StatusDrawn
}

func InRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
