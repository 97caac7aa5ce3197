package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	mockedTictactoe "github.com/rocketscienceinc/tictactoe-console/mocks/tictactoe"
)

type countingRenderer struct {
	moves int
}

func (that *countingRenderer) AddMove(int, int, entity.Cell, bool) {
	that.moves++
}

type move struct {
	row, col int
}

func play(t *testing.T, controller *GameController, moves ...move) Result {
	t.Helper()

	var (
		result Result
		err    error
	)

	for _, m := range moves {
		result, err = controller.RequestMove(m.row, m.col)
		require.NoError(t, err)
	}

	return result
}

func TestNewGameController(t *testing.T) {
	// Given: a new match
	match := entity.NewMatch()

	// When: a controller is created for it
	controller := NewGameController(match, &countingRenderer{})

	// Then: the board is empty and Cross is to move
	actual := controller.Match()
	assert.Equal(t, entity.Board{}, actual.Board)
	assert.Equal(t, entity.Cross, actual.Active)
	assert.Equal(t, entity.StatusAwaitingMove, actual.Status)
}

func TestGameController_RequestMove(t *testing.T) {
	t.Run("Valid move commits the symbol and flips the player", func(t *testing.T) {
		// Given: a new match and a renderer expecting exactly one move
		renderer := mockedTictactoe.NewMockrendererDep(t)
		controller := NewGameController(entity.NewMatch(), renderer)

		renderer.EXPECT().
			AddMove(1, 2, entity.Cross, true).
			Return().
			Once()

		// When: Cross plays (1, 2)
		result, err := controller.RequestMove(1, 2)

		// Then: the cell holds Cross and Circle is to move
		require.NoError(t, err)
		assert.Equal(t, Result{Row: 1, Col: 2, Player: entity.Cross, Status: entity.StatusAwaitingMove}, result)

		match := controller.Match()
		assert.Equal(t, entity.Cross, match.Board[1][2])
		assert.Equal(t, entity.Circle, match.Active)
		assert.Equal(t, 1, match.Moves)
	})

	t.Run("Out of range move fails and leaves the match unchanged", func(t *testing.T) {
		// Given: a new match; the renderer must not be called
		renderer := mockedTictactoe.NewMockrendererDep(t)
		controller := NewGameController(entity.NewMatch(), renderer)
		before := controller.Match()

		// When: a move at (3, 1) is requested
		_, err := controller.RequestMove(3, 1)

		// Then: ErrOutOfRange is returned and the same player is still to move
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
		assert.Equal(t, before, controller.Match())
	})

	t.Run("Negative coordinates are out of range", func(t *testing.T) {
		controller := NewGameController(entity.NewMatch(), &countingRenderer{})

		_, err := controller.RequestMove(0, -1)

		require.ErrorIs(t, err, apperror.ErrOutOfRange)
	})

	t.Run("Occupied cell fails and leaves the match unchanged", func(t *testing.T) {
		// Given: Cross has played (0, 0)
		renderer := &countingRenderer{}
		controller := NewGameController(entity.NewMatch(), renderer)
		play(t, controller, move{0, 0})
		before := controller.Match()

		// When: Circle requests (0, 0)
		_, err := controller.RequestMove(0, 0)

		// Then: ErrCellOccupied is returned, Circle is still to move and nothing was rendered
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, controller.Match())
		assert.Equal(t, entity.Circle, controller.Match().Active)
		assert.Equal(t, 1, renderer.moves)
	})

	t.Run("Move after the match is won fails", func(t *testing.T) {
		// Given: a won match
		controller := NewGameController(&entity.Match{
			Board: entity.Board{
				{entity.Cross, entity.Cross, entity.Cross},
				{entity.Circle, entity.Circle, entity.Empty},
				{entity.Empty, entity.Empty, entity.Empty},
			},
			Active: entity.Cross,
			Winner: entity.Cross,
			Status: entity.StatusWon,
		}, &countingRenderer{})

		// When: another move is requested
		_, err := controller.RequestMove(2, 2)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.Empty, controller.Match().Board[2][2])
	})

	t.Run("Move after a draw fails", func(t *testing.T) {
		controller := NewGameController(&entity.Match{Status: entity.StatusDrawn}, &countingRenderer{})

		_, err := controller.RequestMove(0, 0)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGameController_Scenarios(t *testing.T) {
	t.Run("Cross completes the top row", func(t *testing.T) {
		// Given: a new match
		controller := NewGameController(entity.NewMatch(), &countingRenderer{})

		// When: Cross plays row 0 while Circle plays (1,0) and (1,1)
		result := play(t, controller, move{0, 0}, move{1, 0}, move{0, 1}, move{1, 1}, move{0, 2})

		// Then: Cross wins on its third move
		assert.Equal(t, entity.StatusWon, result.Status)
		assert.Equal(t, entity.Cross, result.Winner)
		assert.True(t, result.IsFinished())
		assert.Equal(t, entity.Cross, controller.Match().Active)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a new match
		controller := NewGameController(entity.NewMatch(), &countingRenderer{})

		// When: the board is filled without three in a row
		//  X O X
		//  X O O
		//  O X X
		result := play(t, controller,
			move{0, 0}, move{0, 1}, move{0, 2}, move{1, 1}, move{2, 1},
			move{2, 0}, move{1, 0}, move{1, 2}, move{2, 2},
		)

		// Then: the match is drawn and nobody won
		assert.Equal(t, entity.StatusDrawn, result.Status)
		assert.Equal(t, entity.Empty, result.Winner)
		assert.True(t, controller.CheckDraw())
	})

	t.Run("Crosses on both diagonals win before the board fills", func(t *testing.T) {
		// Given: a new match
		controller := NewGameController(entity.NewMatch(), &countingRenderer{})

		// When: Cross takes (0,0), (0,2), (1,1) and (2,0)
		result := play(t, controller,
			move{0, 0}, move{0, 1}, move{0, 2}, move{1, 0}, move{1, 1}, move{1, 2}, move{2, 0},
		)

		// Then: the anti-diagonal ends the match on the seventh move
		assert.Equal(t, entity.StatusWon, result.Status)
		assert.Equal(t, entity.Cross, result.Winner)
		assert.Equal(t, 7, controller.Match().Moves)
	})
}

func TestGameController_WinLines(t *testing.T) {
	lines := map[string][3]move{
		"row 0":         {{0, 0}, {0, 1}, {0, 2}},
		"row 1":         {{1, 0}, {1, 1}, {1, 2}},
		"row 2":         {{2, 0}, {2, 1}, {2, 2}},
		"column 0":      {{0, 0}, {1, 0}, {2, 0}},
		"column 1":      {{0, 1}, {1, 1}, {2, 1}},
		"column 2":      {{0, 2}, {1, 2}, {2, 2}},
		"main diagonal": {{0, 0}, {1, 1}, {2, 2}},
		"anti-diagonal": {{0, 2}, {1, 1}, {2, 0}},
	}

	for name, line := range lines {
		for _, symbol := range []entity.Cell{entity.Cross, entity.Circle} {
			t.Run(name+" "+symbol.String(), func(t *testing.T) {
				// Given: two cells of the line hold the active symbol
				match := entity.NewMatch()
				match.Active = symbol
				match.Board[line[0].row][line[0].col] = symbol
				match.Board[line[1].row][line[1].col] = symbol
				controller := NewGameController(match, &countingRenderer{})

				// When: the third cell is played
				result, err := controller.RequestMove(line[2].row, line[2].col)

				// Then: the move wins
				require.NoError(t, err)
				assert.Equal(t, entity.StatusWon, result.Status)
				assert.Equal(t, symbol, result.Winner)
			})
		}
	}
}

func TestGameController_WinBeforeDraw(t *testing.T) {
	// Given: one empty cell left that completes the main diagonal for Cross
	//  X O X
	//  O X O
	//  O X _
	match := entity.NewMatch()
	match.Board = entity.Board{
		{entity.Cross, entity.Circle, entity.Cross},
		{entity.Circle, entity.Cross, entity.Circle},
		{entity.Circle, entity.Cross, entity.Empty},
	}
	controller := NewGameController(match, &countingRenderer{})

	// When: Cross fills the last cell
	result, err := controller.RequestMove(2, 2)

	// Then: the full board is reported as a win, not a draw
	require.NoError(t, err)
	assert.Equal(t, entity.StatusWon, result.Status)
	assert.Equal(t, entity.Cross, result.Winner)
	assert.True(t, controller.CheckDraw())
}

func TestGameController_CheckWin(t *testing.T) {
	t.Run("Diagonals are checked for cells off the diagonal", func(t *testing.T) {
		// Given: a main diagonal of crosses
		match := entity.NewMatch()
		match.Board = entity.Board{
			{entity.Cross, entity.Empty, entity.Empty},
			{entity.Empty, entity.Cross, entity.Empty},
			{entity.Empty, entity.Empty, entity.Cross},
		}
		controller := NewGameController(match, &countingRenderer{})

		// Then: the check anchored on (0, 1) still sees it
		assert.True(t, controller.CheckWin(0, 1))
	})

	t.Run("Only the active symbol counts", func(t *testing.T) {
		// Given: a completed row of circles while Cross is active
		match := entity.NewMatch()
		match.Board[1] = [3]entity.Cell{entity.Circle, entity.Circle, entity.Circle}
		controller := NewGameController(match, &countingRenderer{})

		// Then: no win is reported for Cross
		assert.False(t, controller.CheckWin(1, 1))
	})

	t.Run("Coordinates off the board never win", func(t *testing.T) {
		// Given: a completed top row of crosses while Cross is active
		match := entity.NewMatch()
		match.Board[0] = [3]entity.Cell{entity.Cross, entity.Cross, entity.Cross}
		controller := NewGameController(match, &countingRenderer{})

		// Then: out of range anchors report no win instead of panicking
		for _, m := range []move{{3, 0}, {0, -1}, {-1, 2}, {1, 3}} {
			assert.NotPanics(t, func() {
				assert.False(t, controller.CheckWin(m.row, m.col), "(%d, %d)", m.row, m.col)
			})
		}
	})
}

func TestResult_IsFinished(t *testing.T) {
	// Then: a result is finished exactly when its status is terminal
	for _, status := range []string{entity.StatusAwaitingMove, entity.StatusEvaluating, entity.StatusWon, entity.StatusDrawn} {
		assert.Equal(t, entity.IsTerminal(status), Result{Status: status}.IsFinished(), status)
	}

	assert.True(t, Result{Status: entity.StatusDrawn}.IsFinished())
	assert.False(t, Result{Status: entity.StatusAwaitingMove}.IsFinished())
}

func TestGameController_CheckDraw(t *testing.T) {
	controller := NewGameController(entity.NewMatch(), &countingRenderer{})
	assert.False(t, controller.CheckDraw())

	play(t, controller, move{0, 0})
	assert.False(t, controller.CheckDraw())
}

func TestGameController_RandomGames(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) //nolint: gosec // deterministic test data

	for game := 0; game < 200; game++ {
		renderer := &countingRenderer{}
		controller := NewGameController(entity.NewMatch(), renderer)

		var result Result
		for !result.IsFinished() {
			before := controller.Match()

			row, col := rng.Intn(4), rng.Intn(4)
			var err error
			result, err = controller.RequestMove(row, col)
			after := controller.Match()

			if err != nil {
				// rejected moves never change the match
				require.Equal(t, before, after)
				continue
			}

			// strict alternation starting with Cross
			crosses, circles := after.Board.Count(entity.Cross), after.Board.Count(entity.Circle)
			require.True(t, crosses == circles || crosses == circles+1, "crosses %d circles %d", crosses, circles)

			// occupied cells keep their symbol
			for r := range entity.BoardSize {
				for c := range entity.BoardSize {
					if before.Board[r][c] != entity.Empty {
						require.Equal(t, before.Board[r][c], after.Board[r][c])
					}
				}
			}

			require.Equal(t, after.Moves, renderer.moves)
		}

		_, err := controller.RequestMove(0, 0)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	}
}
