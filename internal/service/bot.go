package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
)

var ErrUnknownMode = errors.New("unknown game mode")

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	rng *rand.Rand
}

// NewBotService - the random source is injected so tests can seed it.
func NewBotService(rng *rand.Rand) BotService {
	return &botService{rng: rng}
}

// MakeTurn - selects a cell for the bot with the policy matching the game's
// mode and applies it. Callers must guarantee the game is ongoing and that
// it is the bot's turn.
func (that *botService) MakeTurn(game *entity.Game) error {
	policy, err := that.policyFor(game.Mode)
	if err != nil {
		return err
	}

	row, col, err := tictactoe.SelectMove(policy, &game.Board, game.BotMark())
	if err != nil {
		return fmt.Errorf("bot failed to select move: %w", err)
	}

	if err = game.MakeTurn(game.BotMark(), row, col); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

func (that *botService) policyFor(mode string) (tictactoe.Policy, error) {
	switch mode {
	case entity.ModeRandomAI:
		return tictactoe.NewRandomPolicy(that.rng), nil
	case entity.ModeCenterAI:
		return tictactoe.NewCenterFirstPolicy(that.rng), nil
	case entity.ModeSmartAI:
		return tictactoe.NewMinimaxPolicy(), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
}
