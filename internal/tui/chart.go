package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"trainload/internal/store"
)

// Metric selects which daily series the chart plots
type Metric int

const (
	MetricPerformance Metric = iota
	MetricFitness
	MetricFatigue
	MetricTRIMP
	numMetrics
)

func (m Metric) label() string {
	switch m {
	case MetricPerformance:
		return "Performance"
	case MetricFitness:
		return "Fitness"
	case MetricFatigue:
		return "Fatigue"
	case MetricTRIMP:
		return "TRIMP"
	default:
		return "?"
	}
}

// ChartModel is the chart screen model
type ChartModel struct {
	db        *store.DB
	chartDays int
	metric    Metric

	rows    []store.DailyRow
	loading bool
	err     error
}

// NewChartModel creates a new chart model
func NewChartModel(db *store.DB, chartDays int) ChartModel {
	return ChartModel{
		db:        db,
		chartDays: chartDays,
		loading:   true,
	}
}

// Init initializes the chart screen
func (m ChartModel) Init() tea.Cmd {
	return m.loadData
}

type chartDataMsg struct {
	rows []store.DailyRow
	err  error
}

func (m ChartModel) loadData() tea.Msg {
	rows, err := m.db.GetRecentDailyRows(m.chartDays)
	return chartDataMsg{rows: rows, err: err}
}

// Update handles messages
func (m ChartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chartDataMsg:
		m.loading = false
		m.err = msg.err
		m.rows = msg.rows
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.metric = (m.metric + numMetrics - 1) % numMetrics
		case "right", "l", "tab":
			m.metric = (m.metric + 1) % numMetrics
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the chart screen
func (m ChartModel) View() string {
	if m.loading {
		return "\n  Loading daily table..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}
	if len(m.rows) == 0 {
		return "\n  No data yet. Run 'trainload import' first."
	}

	sections := []string{
		m.renderCurrentCard(),
		m.renderChart(),
		statusStyle.Render("left/right: switch metric  r: reload"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ChartModel) renderCurrentCard() string {
	title := cardTitleStyle.Render("Today")
	latest := m.rows[len(m.rows)-1]

	lines := []string{
		renderMetric("Date", latest.Date),
		renderMetric("TRIMP", fmt.Sprintf("%.1f", latest.TRIMP)),
		renderMetric("Fitness", fmt.Sprintf("%.1f", latest.Fitness)),
		renderMetric("Fatigue", fmt.Sprintf("%.1f", latest.Fatigue)),
		renderMetric("Performance", fmt.Sprintf("%.4f", latest.Performance)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m ChartModel) renderChart() string {
	title := cardTitleStyle.Render(fmt.Sprintf("%s - last %d days", m.metric.label(), len(m.rows)))

	data := make([]float64, len(m.rows))
	for i, row := range m.rows {
		switch m.metric {
		case MetricPerformance:
			data[i] = row.Performance
		case MetricFitness:
			data[i] = row.Fitness
		case MetricFatigue:
			data[i] = row.Fatigue
		case MetricTRIMP:
			data[i] = row.TRIMP
		}
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Precision(2),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func renderMetric(label, value string) string {
	return metricLabelStyle.Render(label) + metricValueStyle.Render(value)
}
