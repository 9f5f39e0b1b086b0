package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trainload/internal/store"
)

// TableModel is the scrollable daily-table screen
type TableModel struct {
	db *store.DB

	viewport viewport.Model
	ready    bool
	rows     []store.DailyRow
	loading  bool
	err      error
}

// NewTableModel creates a new daily-table model
func NewTableModel(db *store.DB) TableModel {
	return TableModel{
		db:      db,
		loading: true,
	}
}

// Init initializes the table screen
func (m TableModel) Init() tea.Cmd {
	return m.loadData
}

type tableDataMsg struct {
	rows []store.DailyRow
	err  error
}

func (m TableModel) loadData() tea.Msg {
	rows, err := m.db.GetDailyRows()
	return tableDataMsg{rows: rows, err: err}
}

// Update handles messages
func (m TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tableDataMsg:
		m.loading = false
		m.err = msg.err
		m.rows = msg.rows
		if m.ready {
			m.viewport.SetContent(m.renderRows())
			m.viewport.GotoBottom()
		}

	case tea.WindowSizeMsg:
		height := msg.Height - 8 // leave room for chrome
		if height < 5 {
			height = 5
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(m.renderRows())
		m.viewport.GotoBottom()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the table screen
func (m TableModel) View() string {
	if m.loading {
		return "\n  Loading daily table..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}
	if len(m.rows) == 0 {
		return "\n  No data yet. Run 'trainload import' first."
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %-20s  %6s  %6s  %6s  %6s  %8s",
		"Date", "Activity", "tz1-5", "TRIMP", "Fit", "Fat", "Perf"))

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
}

func (m TableModel) renderRows() string {
	lines := make([]string, 0, len(m.rows))
	for _, row := range m.rows {
		zoneTotal := row.TZ1 + row.TZ2 + row.TZ3 + row.TZ4 + row.TZ5

		line := fmt.Sprintf("%-10s  %-20s  %6s  %6.1f  %6.1f  %6.1f  %8.4f",
			row.Date,
			truncateName(row.ActivityName, 20),
			formatMinutes(zoneTotal),
			row.TRIMP,
			row.Fitness,
			row.Fatigue,
			row.Performance,
		)

		if row.ActivityID == 0 {
			lines = append(lines, restDayStyle.Render(line))
		} else {
			lines = append(lines, tableRowStyle.Render(line))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func truncateName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	return name[:max-1] + "…"
}
