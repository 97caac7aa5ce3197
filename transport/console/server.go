package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type uMatch interface {
	Start(ctx context.Context)
	MakeMove(ctx context.Context, row, col int) (tictactoe.Result, error)
	Match() entity.Match
}

type boardRenderer interface {
	Render()
}

type Server struct {
	logger   *slog.Logger
	uMatch   uMatch
	renderer boardRenderer

	in  *bufio.Reader
	out io.Writer
}

func New(logger *slog.Logger, uMatch uMatch, renderer boardRenderer, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger:   logger.With("component", "console"),
		uMatch:   uMatch,
		renderer: renderer,

		in:  bufio.NewReader(in),
		out: out,
	}
}

// Start - plays the match until it is won or drawn.
func (that *Server) Start(ctx context.Context) error {
	that.uMatch.Start(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("match interrupted: %w", err)
		}

		that.renderer.Render()

		match := that.uMatch.Match()
		that.println(fmt.Sprintf("Player %s, make your move", match.Active))

		result, err := that.handleTurn(ctx)
		if err != nil {
			return err
		}

		if result.IsFinished() {
			that.renderer.Render()
			that.println(outcome(result))

			return nil
		}
	}
}

func outcome(result tictactoe.Result) string {
	if result.Status == entity.StatusWon {
		return fmt.Sprintf("Player %s wins!", result.Winner)
	}

	return "It's a draw!"
}

func (that *Server) println(line string) {
	fmt.Fprintln(that.out, line)
}
