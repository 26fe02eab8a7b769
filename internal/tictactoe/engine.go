package tictactoe

// Evaluate - the single source of truth for game-end detection. It returns
// PlayerX or PlayerO when that mark holds a complete line, PlayerTie when the
// board is full with no winner, and EmptyCell while the game is still ongoing.
// The controller and the minimax search both go through here.
func Evaluate(board *Board) string {
	if winner := board.Winner(); winner != EmptyCell {
		return winner
	}

	if board.IsFull() {
		return PlayerTie
	}

	return EmptyCell
}

// SelectMove - asks the policy for the AI's next cell on the given board.
func SelectMove(policy Policy, board *Board, aiMark string) (int, int, error) {
	return policy.SelectMove(board, aiMark)
}

// ToggleMark - returns the other player's mark.
func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
