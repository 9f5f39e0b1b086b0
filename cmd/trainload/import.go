package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"trainload/internal/export"
	"trainload/internal/service"
	"trainload/internal/store"
	"trainload/internal/timeline"
)

var (
	importInput string
	importMaxHR float64
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import an activity export and rebuild the daily table",
	Long: `Reads an exported activity dump, reduces each heart-rate stream to
minutes per zone, and recomputes the full daily training-load table.

The table always spans the earliest activity through today and is rebuilt
from scratch, so re-importing the same file is safe.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importInput, "input", "i", "export.json", "Path to the activity export file")
	importCmd.Flags().Float64Var(&importMaxHR, "hr-max", 0, "Maximum heart rate (overrides config)")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	maxHR := importMaxHR
	if maxHR == 0 {
		maxHR = cfg.Athlete.MaxHR
	}

	pipeline, err := service.NewPipeline(maxHR)
	if err != nil {
		return err
	}

	activities, err := export.Load(importInput)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d activities from %s\n", len(activities), importInput)

	table, result, err := pipeline.Run(activities)
	if err != nil {
		return err
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	for _, pa := range result.Activities {
		if err := db.UpsertActivity(storeActivity(pa)); err != nil {
			return fmt.Errorf("saving activity %d: %w", pa.ID, err)
		}
	}

	daily := make([]store.DailyRow, len(table.Rows))
	for i, row := range table.Rows {
		daily[i] = storeDailyRow(row)
	}
	if err := db.ReplaceDailyRows(daily); err != nil {
		return fmt.Errorf("saving daily table: %w", err)
	}

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	green.Printf("✓ Processed %d activities into %d days\n", result.Processed, len(daily))
	if result.Skipped > 0 {
		yellow.Printf("Skipped %d:\n", result.Skipped)
		for _, notice := range result.Notices {
			yellow.Printf("  %s\n", notice)
		}
	}

	latest := table.Rows[len(table.Rows)-1]
	fmt.Printf("Today: fitness %.1f, fatigue %.1f, performance %.4f\n",
		latest.Fitness, latest.Fatigue, latest.Performance)

	return nil
}

func storeActivity(pa service.ProcessedActivity) *store.Activity {
	return &store.Activity{
		ID:        pa.ID,
		Name:      pa.Name,
		StartDate: pa.Date,
		TZ0:       pa.ZoneMinutes[0],
		TZ1:       pa.ZoneMinutes[1],
		TZ2:       pa.ZoneMinutes[2],
		TZ3:       pa.ZoneMinutes[3],
		TZ4:       pa.ZoneMinutes[4],
		TZ5:       pa.ZoneMinutes[5],
	}
}

func storeDailyRow(r timeline.Row) store.DailyRow {
	return store.DailyRow{
		Date:         r.Date.Format("2006-01-02"),
		ActivityID:   r.ActivityID,
		ActivityName: r.ActivityName,
		TZ0:          r.ZoneMinutes[0],
		TZ1:          r.ZoneMinutes[1],
		TZ2:          r.ZoneMinutes[2],
		TZ3:          r.ZoneMinutes[3],
		TZ4:          r.ZoneMinutes[4],
		TZ5:          r.ZoneMinutes[5],
		TRIMP:        r.TRIMP,
		Fitness:      r.Fitness,
		Fatigue:      r.Fatigue,
		Performance:  r.Performance,
	}
}
