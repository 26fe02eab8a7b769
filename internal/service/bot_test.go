package service

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Random bot answers with a legal move", func(t *testing.T) {
		// Given: a random-mode game where X has opened and O is to move
		game := entity.NewGame("000", entity.ModeRandomAI)
		require.NoError(t, game.MakeTurn(tictactoe.PlayerX, 0, 0))

		botService := NewBotService(rand.New(rand.NewSource(1)))

		// When: the bot takes its turn
		err := botService.MakeTurn(game)

		// Then: exactly one O was placed and the turn is back with X
		require.NoError(t, err)
		require.Len(t, game.Moves, 2)
		assert.Equal(t, tictactoe.PlayerO, game.Moves[1].Player)
		assert.Equal(t, tictactoe.PlayerX, game.Turn)
	})

	t.Run("Center bot takes the free center", func(t *testing.T) {
		// Given: a center-mode game with the center still free
		game := entity.NewGame("000", entity.ModeCenterAI)
		require.NoError(t, game.MakeTurn(tictactoe.PlayerX, 0, 0))

		botService := NewBotService(rand.New(rand.NewSource(1)))

		// When: the bot takes its turn
		err := botService.MakeTurn(game)

		// Then: it picked (1,1)
		require.NoError(t, err)
		assert.Equal(t, tictactoe.PlayerO, game.Board.At(1, 1))
	})

	t.Run("Smart bot answers a corner opening with the center", func(t *testing.T) {
		// Given: a smart-mode game where X opened in the corner
		game := entity.NewGame("000", entity.ModeSmartAI)
		require.NoError(t, game.MakeTurn(tictactoe.PlayerX, 0, 0))

		botService := NewBotService(rand.New(rand.NewSource(1)))

		// When: the bot takes its turn
		err := botService.MakeTurn(game)

		// Then: only the center holds the corner opening to a draw
		require.NoError(t, err)
		assert.Equal(t, tictactoe.PlayerO, game.Board.At(1, 1))
	})

	t.Run("Error on player-vs-player mode", func(t *testing.T) {
		// Given: a PvP game, which has no bot
		game := entity.NewGame("000", entity.ModePvP)
		require.NoError(t, game.MakeTurn(tictactoe.PlayerX, 0, 0))

		botService := NewBotService(rand.New(rand.NewSource(1)))

		// When: the bot is asked to move anyway
		err := botService.MakeTurn(game)

		// Then: an ErrUnknownMode error should be returned
		require.ErrorIs(t, err, ErrUnknownMode)
	})
}
