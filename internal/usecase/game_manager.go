package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

type historyRepo interface {
	Insert(ctx context.Context, record *entity.GameRecord) error
	ListAll(ctx context.Context) ([]entity.GameRecord, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type sessionRepo interface {
	Save(ctx context.Context, game *entity.Game) error
	Current(ctx context.Context) (*entity.Game, error)
	Clear(ctx context.Context) error
}

type botService interface {
	MakeTurn(game *entity.Game) error
}

// GameManager drives one game at a time: it applies the human move,
// evaluates, lets the bot answer, and hands finished games off to the
// history store. It is the only writer of the live game.
type GameManager struct {
	logger *slog.Logger

	historyRepo historyRepo
	sessionRepo sessionRepo // nil when resume is not configured
	bot         botService

	game *entity.Game
}

func NewGameManager(logger *slog.Logger, historyRepo historyRepo, sessionRepo sessionRepo, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		historyRepo: historyRepo,
		sessionRepo: sessionRepo,
		bot:         bot,
	}
}

// NewGame - discards the current game, if any, and starts a fresh one in the
// given mode. Changing mode always goes through here, as the original UI
// resets the board on every mode switch.
func (that *GameManager) NewGame(ctx context.Context, mode string) *entity.Game {
	that.clearSession(ctx)

	that.game = entity.NewGame(uuid.NewString(), mode)

	return that.game
}

// CurrentGame - the live game, nil before the first NewGame or ResumeGame.
func (that *GameManager) CurrentGame() *entity.Game {
	return that.game
}

// ResumeGame - loads the saved in-flight game, if the session store is
// configured and holds one.
func (that *GameManager) ResumeGame(ctx context.Context) (*entity.Game, error) {
	if that.sessionRepo == nil {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.sessionRepo.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved game: %w", err)
	}

	if game.IsFinished() {
		that.clearSession(ctx)
		return nil, apperror.ErrNoActiveGames
	}

	that.game = game

	return game, nil
}

// MakeTurn - applies one human move for whichever mark is to move, then, if
// the game is still ongoing against a bot, lets the bot answer. A finished
// game is finalized into the history store; an unfinished one is saved to
// the session store.
func (that *GameManager) MakeTurn(ctx context.Context, row, col int) (*entity.Game, error) {
	game := that.game
	if game == nil {
		return nil, apperror.ErrNoActiveGames
	}

	if err := game.MakeTurn(game.Turn, row, col); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() && game.IsWithBot() && game.Turn == game.BotMark() {
		if err := that.bot.MakeTurn(game); err != nil {
			return game, fmt.Errorf("bot turn failed: %w", err)
		}
	}

	if game.IsFinished() {
		that.clearSession(ctx)

		if err := that.finalizeGame(ctx, game); err != nil {
			return game, err
		}

		return game, nil
	}

	that.saveSession(ctx, game)

	return game, nil
}

// History - all finished games, most recent first.
func (that *GameManager) History(ctx context.Context) ([]entity.GameRecord, error) {
	records, err := that.historyRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list game history: %w", err)
	}

	return records, nil
}

func (that *GameManager) DeleteHistory(ctx context.Context, ids []int64) error {
	if err := that.historyRepo.DeleteByIDs(ctx, ids); err != nil {
		return fmt.Errorf("failed to delete game history: %w", err)
	}

	return nil
}

func (that *GameManager) finalizeGame(ctx context.Context, game *entity.Game) error {
	record := game.Record(time.Now())

	if err := that.historyRepo.Insert(ctx, record); err != nil {
		return fmt.Errorf("failed to save finished game: %w", err)
	}

	that.logger.Info("game finished", "mode", record.Mode, "winner", record.Winner, "moves", len(record.Moves))

	return nil
}

// session failures only cost the resume feature, never the running game.
func (that *GameManager) saveSession(ctx context.Context, game *entity.Game) {
	if that.sessionRepo == nil {
		return
	}

	if err := that.sessionRepo.Save(ctx, game); err != nil {
		that.logger.Warn("could not save game session", "error", err)
	}
}

func (that *GameManager) clearSession(ctx context.Context) {
	if that.sessionRepo == nil {
		return
	}

	if err := that.sessionRepo.Clear(ctx); err != nil {
		that.logger.Warn("could not clear game session", "error", err)
	}
}
