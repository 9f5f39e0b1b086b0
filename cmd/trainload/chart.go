package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"trainload/internal/store"
	"trainload/internal/tui"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Browse fitness, fatigue and performance charts",
	RunE:  runChart,
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	count, err := db.CountDailyRows()
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.New("no data yet, run 'trainload import' first")
	}

	p := tea.NewProgram(tui.NewApp(db, cfg.Display), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
