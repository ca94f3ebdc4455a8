package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Cell - the content of one board slot.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerCell
	ComputerCell
)

const (
	BoardSize   = 3
	MinPosition = Position(1)
	MaxPosition = Position(BoardSize * BoardSize)

	rowSeparator  = "-+-+-"
	cellSeparator = "|"
)

// Position - user-facing 1-9 index into the board, row-major.
type Position int

// ParsePosition - accepts exactly "1".."9".
func ParsePosition(input string) (Position, error) {
	if len(input) != 1 || input[0] < '1' || input[0] > '9' {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, input)
	}

	return Position(input[0] - '0'), nil
}

func (that Position) IsValid() bool {
	return that >= MinPosition && that <= MaxPosition
}

// Coordinates - maps the position to (row, col). Only meaningful for valid positions.
func (that Position) Coordinates() (int, int) {
	index := int(that - MinPosition)
	return index / BoardSize, index % BoardSize
}

func (that Position) String() string {
	return strconv.Itoa(int(that))
}

// Board - a 3x3 grid, all cells EmptyCell on construction.
type Board [BoardSize][BoardSize]Cell

func NewBoard() *Board {
	return &Board{}
}

// CellAt - returns the cell at pos, false when pos is out of range.
func (that *Board) CellAt(pos Position) (Cell, bool) {
	if !pos.IsValid() {
		return EmptyCell, false
	}

	row, col := pos.Coordinates()
	return that[row][col], true
}

// Set - writes cell at pos, returns false and leaves the board untouched when pos is out of range.
func (that *Board) Set(pos Position, cell Cell) bool {
	if !pos.IsValid() {
		return false
	}

	row, col := pos.Coordinates()
	that[row][col] = cell

	return true
}

func (that *Board) EmptyPositions() []Position {
	positions := make([]Position, 0, MaxPosition)
	for pos := MinPosition; pos <= MaxPosition; pos++ {
		if cell, _ := that.CellAt(pos); cell == EmptyCell {
			positions = append(positions, pos)
		}
	}

	return positions
}

func (that *Board) CountEmpty() int {
	return len(that.EmptyPositions())
}

// Render - three rows of cells joined by "|", separated by "-+-+-".
func (that *Board) Render(symbols Symbols) string {
	rows := make([]string, 0, 2*BoardSize-1)
	for row := range BoardSize {
		if row > 0 {
			rows = append(rows, rowSeparator)
		}

		cells := make([]string, BoardSize)
		for col := range BoardSize {
			cells[col] = symbols.Of(that[row][col])
		}
		rows = append(rows, strings.Join(cells, cellSeparator))
	}

	return strings.Join(rows, "\n")
}

func (that *Board) String() string {
	return that.Render(DefaultSymbols)
}
