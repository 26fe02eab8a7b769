package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Set(t *testing.T) {
	t.Run("Places a mark on an empty cell", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: X takes the top-left cell
		err := board.Set(0, 0, PlayerX)

		// Then: the cell holds X and nothing else changed
		require.NoError(t, err)
		assert.Equal(t, PlayerX, board.At(0, 0))
		assert.Len(t, board.EmptyCells(), 8)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board with X on the top-left cell
		var board Board
		require.NoError(t, board.Set(0, 0, PlayerX))

		expected := board

		// When: O tries to take the same cell
		err := board.Set(0, 0, PlayerO)

		// Then: ErrCellOccupied is returned and the board is untouched
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, expected, board)
	})

	t.Run("Error on out-of-range cell", func(t *testing.T) {
		// Given: an empty board
		var board Board
		expected := board

		// When/Then: every out-of-range coordinate is rejected without mutation
		for _, cell := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}, {-1, -1}, {3, 3}} {
			err := board.Set(cell[0], cell[1], PlayerX)
			require.ErrorIs(t, err, apperror.ErrInvalidCell)
			assert.Equal(t, expected, board)
		}
	})
}

func TestBoard_Winner(t *testing.T) {
	t.Run("Detects a completed row", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerX, PlayerX},
			{PlayerO, PlayerO, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		assert.Equal(t, PlayerX, board.Winner())
	})

	t.Run("Detects a completed column", func(t *testing.T) {
		board := Board{
			{PlayerO, PlayerX, EmptyCell},
			{PlayerO, PlayerX, EmptyCell},
			{PlayerO, EmptyCell, PlayerX},
		}

		assert.Equal(t, PlayerO, board.Winner())
	})

	t.Run("Detects the main diagonal", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerO, EmptyCell},
			{PlayerO, PlayerX, EmptyCell},
			{EmptyCell, EmptyCell, PlayerX},
		}

		assert.Equal(t, PlayerX, board.Winner())
	})

	t.Run("Detects the anti-diagonal", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerX, PlayerO},
			{PlayerX, PlayerO, EmptyCell},
			{PlayerO, EmptyCell, EmptyCell},
		}

		assert.Equal(t, PlayerO, board.Winner())
	})

	t.Run("No winner on an incomplete board", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerO, EmptyCell},
			{EmptyCell, PlayerX, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		assert.Equal(t, EmptyCell, board.Winner())
	})
}

func TestBoard_IsFull(t *testing.T) {
	// Given: an empty board
	var board Board
	assert.False(t, board.IsFull())

	// When: all nine cells are set, alternating marks
	mark := PlayerX
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			require.NoError(t, board.Set(row, col, mark))
			mark = ToggleMark(mark)
		}
	}

	// Then: the board reports full, and an intervening reset clears that
	assert.True(t, board.IsFull())

	board.Reset()
	assert.False(t, board.IsFull())
	assert.Equal(t, Board{}, board)
}

func TestBoard_EmptyCells(t *testing.T) {
	// Given: a board with two occupied cells
	board := Board{
		{PlayerX, EmptyCell, EmptyCell},
		{EmptyCell, PlayerO, EmptyCell},
		{EmptyCell, EmptyCell, EmptyCell},
	}

	// When: listing the empty cells
	cells := board.EmptyCells()

	// Then: the seven free cells come back in row-major order
	require.Len(t, cells, 7)
	assert.Equal(t, [2]int{0, 1}, cells[0])
	assert.Equal(t, [2]int{2, 2}, cells[6])
}

// countWinningMarks counts how many distinct marks hold a complete line.
func countWinningMarks(board *Board) int {
	winners := make(map[string]struct{})
	for _, line := range winLines {
		a := board[line[0][0]][line[0][1]]
		b := board[line[1][0]][line[1][1]]
		c := board[line[2][0]][line[2][1]]
		if a != EmptyCell && a == b && b == c {
			winners[a] = struct{}{}
		}
	}
	return len(winners)
}

func TestBoard_SingleWinnerUnderLegalPlay(t *testing.T) {
	// Given: a seeded random source
	rng := rand.New(rand.NewSource(42))

	// When: many games of alternating random legal play are run to the end
	for game := 0; game < 200; game++ {
		var board Board
		mark := PlayerX

		for Evaluate(&board) == EmptyCell {
			cells := board.EmptyCells()
			cell := cells[rng.Intn(len(cells))]
			require.NoError(t, board.Set(cell[0], cell[1], mark))
			mark = ToggleMark(mark)

			// Then: no reachable state ever has two winning marks
			require.LessOrEqual(t, countWinningMarks(&board), 1)
		}
	}
}
