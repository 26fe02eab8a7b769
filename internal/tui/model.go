package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
)

type screen int

const (
	screenGame screen = iota
	screenHistory
)

// modes in the order the original combo box listed them.
var modes = []string{
	entity.ModeRandomAI,
	entity.ModeCenterAI,
	entity.ModeSmartAI,
	entity.ModePvP,
}

// Model is the terminal front end. It holds no game logic; every move and
// every history operation goes through the game manager.
type Model struct {
	ctx     context.Context
	manager *usecase.GameManager

	screen    screen
	cursorRow int
	cursorCol int
	modeIdx   int
	status    string

	history       []entity.GameRecord
	historyCursor int
	selected      map[int64]struct{}
}

func New(ctx context.Context, manager *usecase.GameManager, resumed bool) Model {
	model := Model{
		ctx:     ctx,
		manager: manager,

		cursorRow: 1,
		cursorCol: 1,
		selected:  make(map[int64]struct{}),
	}

	if game := manager.CurrentGame(); game != nil {
		for i, mode := range modes {
			if game.Mode == mode {
				model.modeIdx = i
			}
		}
	}

	if resumed {
		model.status = "Resumed unfinished game"
	}

	return model
}

func (that Model) Init() tea.Cmd {
	return nil
}

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return that, nil
	}

	if that.screen == screenHistory {
		return that.updateHistory(keyMsg)
	}

	return that.updateGame(keyMsg)
}

func (that Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return that, tea.Quit

	case "up", "k":
		if that.cursorRow > 0 {
			that.cursorRow--
		}
	case "down", "j":
		if that.cursorRow < tictactoe.BoardSize-1 {
			that.cursorRow++
		}
	case "left", "h":
		if that.cursorCol > 0 {
			that.cursorCol--
		}
	case "right", "l":
		if that.cursorCol < tictactoe.BoardSize-1 {
			that.cursorCol++
		}

	case "enter", " ":
		that.status = ""
		if _, err := that.manager.MakeTurn(that.ctx, that.cursorRow, that.cursorCol); err != nil {
			that.status = err.Error()
		}

	case "m":
		// mode change always starts a fresh game
		that.modeIdx = (that.modeIdx + 1) % len(modes)
		that.manager.NewGame(that.ctx, modes[that.modeIdx])
		that.status = fmt.Sprintf("Mode: %s", modes[that.modeIdx])

	case "r":
		that.manager.NewGame(that.ctx, modes[that.modeIdx])
		that.status = ""

	case "g":
		if err := that.loadHistory(); err != nil {
			that.status = err.Error()
			return that, nil
		}
		that.screen = screenHistory
	}

	return that, nil
}

func (that Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return that, tea.Quit

	case "esc", "q", "g":
		that.screen = screenGame
		that.status = ""

	case "up", "k":
		if that.historyCursor > 0 {
			that.historyCursor--
		}
	case "down", "j":
		if that.historyCursor < len(that.history)-1 {
			that.historyCursor++
		}

	case " ":
		if len(that.history) == 0 {
			break
		}
		id := that.history[that.historyCursor].ID
		if _, picked := that.selected[id]; picked {
			delete(that.selected, id)
		} else {
			that.selected[id] = struct{}{}
		}

	case "d":
		if len(that.selected) == 0 {
			that.status = "Select rows to delete first"
			break
		}

		ids := make([]int64, 0, len(that.selected))
		for id := range that.selected {
			ids = append(ids, id)
		}

		if err := that.manager.DeleteHistory(that.ctx, ids); err != nil {
			that.status = err.Error()
			break
		}

		that.selected = make(map[int64]struct{})
		that.historyCursor = 0
		if err := that.loadHistory(); err != nil {
			that.status = err.Error()
		} else {
			that.status = "Selected game(s) deleted"
		}

	case "r":
		if err := that.loadHistory(); err != nil {
			that.status = err.Error()
		}
	}

	return that, nil
}

func (that *Model) loadHistory() error {
	records, err := that.manager.History(that.ctx)
	if err != nil {
		return err
	}

	that.history = records
	if that.historyCursor >= len(records) {
		that.historyCursor = 0
	}

	return nil
}
