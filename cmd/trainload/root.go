package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"trainload/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "trainload",
	Short: "Heart-rate training load tracker",
	Long: `Trainload turns an exported activity dump into a daily training-load table.

Each activity's heart-rate stream is reduced to minutes per heart-rate zone,
same-day activities are accumulated, and a fitness/fatigue impulse-response
model produces a daily performance signal.

QUICK START:

  $ trainload import -i export.json      # Build the daily table
  $ trainload table                      # Print recent days
  $ trainload chart                      # Interactive charts

CONFIGURATION:

  Settings live in ~/.trainload/config.json. Set athlete.max_hr to your
  maximum heart rate; zone boundaries are percentages of it. The computed
  table is stored in ~/.trainload/data.db.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(chartCmd)
}

// loadConfig reads the config file, creating an example one on first run
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			return nil, fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Created example config at %s/config.json\n", configDir)
		fmt.Println("Edit athlete.max_hr to your maximum heart rate.")
		return config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		return nil, fmt.Errorf("invalid config (edit %s/config.json): %w", configDir, err)
	}

	return cfg, nil
}
