package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	rowPrompt    = "Enter Row (0, 1, 2): "
	columnPrompt = "Enter Column (0, 1, 2): "

	msgParse    = "Invalid input, enter a number."
	msgRange    = "Invalid move, enter values between 0 and 2."
	msgOccupied = "Invalid move, cell is already occupied."
)

// handleTurn - asks the active player for a move until one is accepted.
func (that *Server) handleTurn(ctx context.Context) (tictactoe.Result, error) {
	log := that.logger.With("method", "handleTurn")

	for {
		row, col, err := that.readMove()
		if err == nil {
			var result tictactoe.Result
			if result, err = that.uMatch.MakeMove(ctx, row, col); err == nil {
				return result, nil
			}
		}

		message, ok := recoverable(err)
		if !ok {
			return tictactoe.Result{}, err
		}

		log.Debug("input rejected", "error", err)
		that.println(message)
	}
}

// readMove - reads a row and then a column. A bad row skips the column prompt.
func (that *Server) readMove() (int, int, error) {
	row, err := that.readCoordinate(rowPrompt)
	if err != nil {
		return 0, 0, err
	}

	col, err := that.readCoordinate(columnPrompt)
	if err != nil {
		return 0, 0, err
	}

	return row, col, nil
}

func (that *Server) readCoordinate(prompt string) (int, error) {
	fmt.Fprint(that.out, prompt)

	line, isPrefix, err := that.in.ReadLine()
	if err != nil {
		return 0, readError(err)
	}

	if isPrefix {
		if err = that.discardLine(); err != nil {
			return 0, err
		}

		return 0, fmt.Errorf("%w: line longer than %d bytes", apperror.ErrParse, that.in.Size())
	}

	return ParseCoordinate(string(line))
}

// discardLine - drops the rest of a line that did not fit the read buffer.
func (that *Server) discardLine() error {
	for {
		_, isPrefix, err := that.in.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return readError(err)
		}

		if !isPrefix {
			return nil
		}
	}
}

func readError(err error) error {
	if errors.Is(err, io.EOF) {
		return apperror.ErrInputClosed
	}

	return fmt.Errorf("failed to read input: %w", err)
}

// recoverable maps the error kinds a player can fix to the message shown for them.
func recoverable(err error) (string, bool) {
	switch {
	case errors.Is(err, apperror.ErrParse):
		return msgParse, true
	case errors.Is(err, apperror.ErrOutOfRange):
		return msgRange, true
	case errors.Is(err, apperror.ErrCellOccupied):
		return msgOccupied, true
	default:
		return "", false
	}
}
