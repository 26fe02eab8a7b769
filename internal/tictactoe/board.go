package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
)

const (
	BoardSize = 3

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// winLines - the eight complete lines, scanned rows first, then columns,
// then the main diagonal, then the anti-diagonal.
var winLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a 3x3 grid of marks, row-major, each cell holding PlayerX,
// PlayerO or EmptyCell.
type Board [BoardSize][BoardSize]string

// Set - places a mark on the given cell. The board is left untouched if the
// cell is out of range or already occupied.
func (that *Board) Set(row, col int, mark string) error {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrInvalidCell, row, col)
	}

	if that[row][col] != EmptyCell {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrCellOccupied, row, col)
	}

	that[row][col] = mark

	return nil
}

// At - returns the mark on the given cell, EmptyCell for out-of-range input.
func (that *Board) At(row, col int) string {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return EmptyCell
	}

	return that[row][col]
}

// Winner - returns the mark occupying a complete line, or EmptyCell if no
// such line exists.
func (that *Board) Winner() string {
	for _, line := range winLines {
		a := that[line[0][0]][line[0][1]]
		b := that[line[1][0]][line[1][1]]
		c := that[line[2][0]][line[2][1]]

		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// IsFull - reports whether all nine cells are occupied.
func (that *Board) IsFull() bool {
	for row := range that {
		for _, cell := range that[row] {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Reset - clears all cells back to EmptyCell.
func (that *Board) Reset() {
	*that = Board{}
}

// EmptyCells - returns the coordinates of all empty cells in row-major order.
func (that *Board) EmptyCells() [][2]int {
	cells := make([][2]int, 0, BoardSize*BoardSize)
	for row := range that {
		for col, cell := range that[row] {
			if cell == EmptyCell {
				cells = append(cells, [2]int{row, col})
			}
		}
	}

	return cells
}
