package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidPosition  = fmt.Errorf("%w: position must be 1-9", ErrInvalidMove)
	ErrCellOccupied     = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrGameFinished     = errors.New("game is already finished")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInputClosed      = errors.New("input closed before a move was made")
)
