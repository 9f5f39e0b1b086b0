package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"trainload/internal/store"
)

var tableDays int

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the recent daily training-load table",
	RunE:  runTable,
}

func init() {
	tableCmd.Flags().IntVarP(&tableDays, "days", "n", 30, "Number of recent days to show")
}

func runTable(cmd *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.GetRecentDailyRows(tableDays)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return errors.New("no data yet, run 'trainload import' first")
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Printf("%-10s  %-24s  %7s  %7s  %7s  %7s  %9s\n",
		"Date", "Activity", "Minutes", "TRIMP", "Fitness", "Fatigue", "Perf")

	for _, r := range rows {
		minutes := r.TZ1 + r.TZ2 + r.TZ3 + r.TZ4 + r.TZ5
		line := fmt.Sprintf("%-10s  %-24s  %7.1f  %7.1f  %7.1f  %7.1f  %9.4f",
			r.Date, clipName(r.ActivityName, 24), minutes,
			r.TRIMP, r.Fitness, r.Fatigue, r.Performance)

		if r.ActivityID == 0 {
			faint.Println(line)
		} else {
			fmt.Println(line)
		}
	}

	return nil
}

func clipName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	return name[:max-1] + "…"
}
