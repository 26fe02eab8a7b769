package tictactoe

// cell is a board coordinate tracked during search.
type cell struct {
	row, col int
}

// minimax - exhaustive two-player zero-sum search over the remaining game
// tree. Scores are +1 when aiMark wins, -1 when the opponent wins and 0 for
// a tie, with no preference between faster and slower wins. The maximizing
// flag flips on every ply, starting true at aiMark's own ply, so aiMark is
// always the maximizing side regardless of which mark moves next on the
// real board.
//
// Hypothetical placements are reverted before returning, and ties between
// equally scored moves go to the first one visited in row-major order, so
// the chosen move is deterministic.
func minimax(board *Board, aiMark string, maximizing bool) (int, *cell) {
	switch result := Evaluate(board); {
	case result == aiMark:
		return 1, nil
	case result == PlayerTie:
		return 0, nil
	case result != EmptyCell:
		return -1, nil
	}

	mark := aiMark
	if !maximizing {
		mark = ToggleMark(aiMark)
	}

	// scores are bounded to [-1, 1], so 2 works as a sentinel
	bestScore := -2
	if !maximizing {
		bestScore = 2
	}

	var bestMove *cell

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if board[row][col] != EmptyCell {
				continue
			}

			board[row][col] = mark
			score, _ := minimax(board, aiMark, !maximizing)
			board[row][col] = EmptyCell

			if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
				bestScore = score
				bestMove = &cell{row: row, col: col}
			}
		}
	}

	return bestScore, bestMove
}
