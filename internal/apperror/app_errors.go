package apperror

import "errors"

var (
	ErrParse        = errors.New("invalid input, not a number")
	ErrOutOfRange   = errors.New("coordinate out of range")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")
	ErrInputClosed  = errors.New("input closed before the game finished")
)
