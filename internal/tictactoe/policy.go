package tictactoe

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
)

// Policy picks a cell for the given mark on the given board. Policies must
// not be invoked on a board with no empty cell; they fail with
// apperror.ErrNoAvailableMoves rather than silently doing nothing.
type Policy interface {
	SelectMove(board *Board, aiMark string) (row, col int, err error)
}

// RandomPolicy picks uniformly among the empty cells.
type RandomPolicy struct {
	rng *rand.Rand
}

func NewRandomPolicy(rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

func (that *RandomPolicy) SelectMove(board *Board, _ string) (int, int, error) {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return 0, 0, apperror.ErrNoAvailableMoves
	}

	cell := cells[that.rng.Intn(len(cells))]

	return cell[0], cell[1], nil
}

// CenterFirstPolicy takes the center cell when it is free and otherwise
// falls back to a random empty cell.
type CenterFirstPolicy struct {
	random *RandomPolicy
}

func NewCenterFirstPolicy(rng *rand.Rand) *CenterFirstPolicy {
	return &CenterFirstPolicy{random: NewRandomPolicy(rng)}
}

func (that *CenterFirstPolicy) SelectMove(board *Board, aiMark string) (int, int, error) {
	const center = BoardSize / 2

	if board.At(center, center) == EmptyCell {
		return center, center, nil
	}

	return that.random.SelectMove(board, aiMark)
}

// MinimaxPolicy plays the game-theoretically optimal move, assuming optimal
// play by the opponent from that point forward.
type MinimaxPolicy struct{}

func NewMinimaxPolicy() *MinimaxPolicy {
	return &MinimaxPolicy{}
}

func (that *MinimaxPolicy) SelectMove(board *Board, aiMark string) (int, int, error) {
	// the search mutates and reverts a private copy, never the live board
	scratch := *board

	_, move := minimax(&scratch, aiMark, true)
	if move == nil {
		return 0, 0, apperror.ErrNoAvailableMoves
	}

	return move.row, move.col, nil
}
