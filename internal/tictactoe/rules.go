package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// WinCombos - the 8 lines: rows, columns, diagonals.
var WinCombos = [8][3]entity.Position{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

// ValidateMove - parses raw input and checks the target cell is empty.
func ValidateMove(board *entity.Board, input string) (entity.Position, error) {
	pos, err := entity.ParsePosition(input)
	if err != nil {
		return 0, err
	}

	if cell, _ := board.CellAt(pos); cell != entity.EmptyCell {
		return 0, fmt.Errorf("%w: position %d", apperror.ErrCellOccupied, pos)
	}

	return pos, nil
}

// IsValidMove - true iff input is "1".."9" and the cell is empty.
func IsValidMove(board *entity.Board, input string) bool {
	_, err := ValidateMove(board, input)
	return err == nil
}

// ApplyMove - out of range positions are ignored.
func ApplyMove(board *entity.Board, pos entity.Position, cell entity.Cell) {
	board.Set(pos, cell)
}

// MakeTurn - validates and applies a move for cell, refusing moves on a finished board.
func MakeTurn(board *entity.Board, input string, cell entity.Cell) (entity.Position, error) {
	if CheckGameOver(board).IsFinished() {
		return 0, apperror.ErrGameFinished
	}

	pos, err := ValidateMove(board, input)
	if err != nil {
		return 0, fmt.Errorf("invalid turn: %w", err)
	}

	ApplyMove(board, pos, cell)

	return pos, nil
}

func IsWin(board *entity.Board, cell entity.Cell) bool {
	if cell == entity.EmptyCell {
		return false
	}

	for _, combo := range WinCombos {
		if lineOf(board, combo, cell) {
			return true
		}
	}

	return false
}

func IsTie(board *entity.Board) bool {
	return board.CountEmpty() == 0
}

// CheckGameOver - wins are checked before the tie, so a last move that
// completes a line on a full board is reported as a win.
func CheckGameOver(board *entity.Board) entity.Outcome {
	switch {
	case IsWin(board, entity.PlayerCell):
		return entity.PlayerWon
	case IsWin(board, entity.ComputerCell):
		return entity.ComputerWon
	case IsTie(board):
		return entity.Tie
	default:
		return entity.InProgress
	}
}

// IsGameOver - CheckGameOver with the message to display.
func IsGameOver(board *entity.Board) (bool, string) {
	outcome := CheckGameOver(board)
	return outcome.IsFinished(), outcome.Message()
}

func lineOf(board *entity.Board, combo [3]entity.Position, cell entity.Cell) bool {
	for _, pos := range combo {
		if got, _ := board.CellAt(pos); got != cell {
			return false
		}
	}

	return true
}
