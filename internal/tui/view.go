package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	modeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("120"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	cursorCell  = cellStyle.BorderForeground(lipgloss.Color("205"))
	xMarkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	oMarkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true)
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	drawStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
	pickedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

func (that Model) View() string {
	if that.screen == screenHistory {
		return that.viewHistory()
	}

	return that.viewGame()
}

func (that Model) viewGame() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Welcome to Tic-Tac-Toe 🎮"))
	b.WriteString("\n")

	game := that.manager.CurrentGame()
	if game == nil {
		return b.String()
	}

	b.WriteString(modeStyle.Render("Mode: " + game.Mode))
	b.WriteString("\n\n")
	b.WriteString(that.renderBoard(game))
	b.WriteString("\n")

	switch {
	case game.IsFinished() && game.Winner != tictactoe.PlayerTie:
		b.WriteString(winStyle.Render(fmt.Sprintf("Player: %s Wins! 🎉", game.Winner)))
	case game.IsFinished():
		b.WriteString(drawStyle.Render("It's a Draw! 🤝"))
	default:
		b.WriteString(fmt.Sprintf("Turn: %s", game.Turn))
	}
	b.WriteString("\n")

	if that.status != "" {
		b.WriteString(statusStyle.Render(that.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("arrows move · enter place · m mode · r reset · g history · q quit"))

	return b.String()
}

func (that Model) renderBoard(game *entity.Game) string {
	rows := make([]string, 0, tictactoe.BoardSize)

	for row := 0; row < tictactoe.BoardSize; row++ {
		cells := make([]string, 0, tictactoe.BoardSize)

		for col := 0; col < tictactoe.BoardSize; col++ {
			mark := game.Board.At(row, col)

			label := " "
			switch mark {
			case tictactoe.PlayerX:
				label = xMarkStyle.Render(mark)
			case tictactoe.PlayerO:
				label = oMarkStyle.Render(mark)
			}

			style := cellStyle
			if row == that.cursorRow && col == that.cursorCol && !game.IsFinished() {
				style = cursorCell
			}

			cells = append(cells, style.Render(label))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (that Model) viewHistory() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Game History 📜"))
	b.WriteString("\n\n")

	if len(that.history) == 0 {
		b.WriteString("No games recorded yet.\n")
	}

	for i, record := range that.history {
		marker := "  "
		if i == that.historyCursor {
			marker = "> "
		}

		picked := " "
		if _, ok := that.selected[record.ID]; ok {
			picked = "*"
		}

		line := fmt.Sprintf("%s[%s] #%d  %-16s  %-5s  %s  %s",
			marker, picked, record.ID, record.Mode, record.Winner, formatMoves(record.Moves), record.PlayedAt)

		if i == that.historyCursor {
			line = pickedStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if that.status != "" {
		b.WriteString(statusStyle.Render(that.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space select · d delete · r refresh · esc back"))

	return b.String()
}

// formatMoves - renders a move history the way the original history table
// did: "X:(0,0), O:(1,1), ...".
func formatMoves(moves []entity.Move) string {
	parts := make([]string, 0, len(moves))
	for _, move := range moves {
		parts = append(parts, fmt.Sprintf("%s:(%d,%d)", move.Player, move.Row, move.Col))
	}

	return strings.Join(parts, ", ")
}
