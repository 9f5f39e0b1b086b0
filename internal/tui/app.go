package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trainload/internal/config"
	"trainload/internal/store"
)

// Screen identifiers
type Screen int

const (
	ScreenChart Screen = iota
	ScreenTable
)

// App is the root Bubble Tea model
type App struct {
	screen Screen

	// Screen models
	chart ChartModel
	table TableModel

	db *store.DB

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(db *store.DB, display config.DisplayConfig) *App {
	return &App{
		screen: ScreenChart,
		db:     db,
		chart:  NewChartModel(db, display.ChartDays),
		table:  NewTableModel(db),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.chart.Init(), a.table.Init())
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenChart
			return a, nil
		case "2":
			a.screen = ScreenTable
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenChart:
		var m tea.Model
		m, cmd = a.chart.Update(msg)
		a.chart = m.(ChartModel)
	case ScreenTable:
		var m tea.Model
		m, cmd = a.table.Update(msg)
		a.table = m.(TableModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := headerStyle.Render("trainload")
	nav := a.renderNav()

	var body string
	switch a.screen {
	case ScreenChart:
		body = a.chart.View()
	case ScreenTable:
		body = a.table.View()
	}

	help := statusStyle.Render("1: charts  2: daily table  q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, body, help)
}

func (a *App) renderNav() string {
	items := []struct {
		screen Screen
		label  string
	}{
		{ScreenChart, "[1] Charts"},
		{ScreenTable, "[2] Daily Table"},
	}

	var parts []string
	for _, item := range items {
		if item.screen == a.screen {
			parts = append(parts, navActiveStyle.Render(item.label))
		} else {
			parts = append(parts, navInactiveStyle.Render(item.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts[0], "   ", parts[1])
}

// formatMinutes renders zone minutes compactly, e.g. "12.5"
func formatMinutes(m float64) string {
	if m == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", m)
}
