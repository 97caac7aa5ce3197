package renderer

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// Renderer draws the board from the move events it is given.
type Renderer interface {
	Render()
	AddMove(row, col int, player entity.Cell, committed bool)
}

// Square is one cell of the view model.
type Square struct {
	Mark      entity.Cell
	Committed bool
}

// View is the renderer's own copy of the board, built only from AddMove events.
type View struct {
	Squares [entity.BoardSize][entity.BoardSize]Square
}

// Apply registers a move. Committed squares never change again; pending ones
// are replaced by any later move on the same square.
func (that *View) Apply(row, col int, player entity.Cell, committed bool) bool {
	if !entity.InRange(row, col) {
		return false
	}

	square := &that.Squares[row][col]
	if square.Committed {
		return false
	}

	square.Mark = player
	square.Committed = committed

	return true
}

type multi []Renderer

// Multi fans every call out to all given renderers in order.
func Multi(renderers ...Renderer) Renderer {
	return multi(renderers)
}

func (that multi) Render() {
	for _, r := range that {
		r.Render()
	}
}

func (that multi) AddMove(row, col int, player entity.Cell, committed bool) {
	for _, r := range that {
		r.AddMove(row, col, player, committed)
	}
}
