package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	t.Run("Ongoing on an empty board", func(t *testing.T) {
		var board Board

		assert.Equal(t, EmptyCell, Evaluate(&board))
	})

	t.Run("Win when a mark holds a line", func(t *testing.T) {
		board := Board{
			{PlayerO, PlayerX, PlayerX},
			{PlayerO, PlayerX, EmptyCell},
			{PlayerO, EmptyCell, PlayerX},
		}

		assert.Equal(t, PlayerO, Evaluate(&board))
	})

	t.Run("Tie on a full board with no line", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerO, PlayerX},
			{PlayerX, PlayerO, PlayerO},
			{PlayerO, PlayerX, PlayerX},
		}

		assert.Equal(t, PlayerTie, Evaluate(&board))
	})

	t.Run("Win takes precedence over a full board", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerX, PlayerX},
			{PlayerO, PlayerO, PlayerX},
			{PlayerO, PlayerX, PlayerO},
		}

		assert.Equal(t, PlayerX, Evaluate(&board))
	})
}

func TestToggleMark(t *testing.T) {
	assert.Equal(t, PlayerO, ToggleMark(PlayerX))
	assert.Equal(t, PlayerX, ToggleMark(PlayerO))
}
