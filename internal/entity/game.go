package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game modes as the original desktop build named them; the mode string is
// what ends up in persisted records.
const (
	ModeRandomAI = "Random AI"
	ModeCenterAI = "Center AI"
	ModeSmartAI  = "Smart AI"
	ModePvP      = "Player vs Player"
)

// Move is one ply: a cell plus the mark that took it.
type Move struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Player string `json:"player"`
}

// Game holds the state of one in-flight game: the board, whose turn it is,
// the selected mode and the ordered move history accumulated so far.
type Game struct {
	ID     string          `json:"id"`
	Mode   string          `json:"mode"`
	Board  tictactoe.Board `json:"board"`
	Turn   string          `json:"player_turn"`
	Winner string          `json:"winner"`
	Status string          `json:"status"`
	Moves  []Move          `json:"moves,omitempty"`
}

func NewGame(id, mode string) *Game {
	return &Game{
		ID:     id,
		Mode:   mode,
		Turn:   tictactoe.PlayerX,
		Status: StatusOngoing,
	}
}

// MakeTurn - applies one move for the given mark, records it in the move
// history and updates the game status. The game is left untouched on any
// validation failure.
func (that *Game) MakeTurn(playerMark string, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Set(row, col, playerMark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Moves = append(that.Moves, Move{Row: row, Col: col, Player: playerMark})
	that.Turn = tictactoe.ToggleMark(playerMark)

	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	switch winner := tictactoe.Evaluate(&that.Board); winner {
	// one player wins
	case tictactoe.PlayerX, tictactoe.PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case tictactoe.PlayerTie:
		that.Winner = tictactoe.PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continues
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsWithBot - reports whether the opponent is an AI policy rather than a
// second human.
func (that *Game) IsWithBot() bool {
	return that.Mode != ModePvP
}

// BotMark - the bot always answers with O; the human opens with X.
func (that *Game) BotMark() string {
	return tictactoe.PlayerO
}

// Record - finalizes the game into an immutable GameRecord for persistence.
// Must only be called on a finished game.
func (that *Game) Record(playedAt time.Time) *GameRecord {
	winner := that.Winner
	if winner == tictactoe.PlayerTie {
		winner = WinnerDraw
	}

	moves := make([]Move, len(that.Moves))
	copy(moves, that.Moves)

	return &GameRecord{
		Mode:     that.Mode,
		Winner:   winner,
		Moves:    moves,
		PlayedAt: playedAt.Format(RecordTimeLayout),
	}
}
