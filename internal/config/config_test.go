package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Athlete.MaxHR != 185 {
		t.Errorf("Athlete.MaxHR = %v, want 185", cfg.Athlete.MaxHR)
	}
	if cfg.Display.ChartDays != 90 {
		t.Errorf("Display.ChartDays = %v, want 90", cfg.Display.ChartDays)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errContains string
	}{
		{
			name: "valid config",
			config: Config{
				Athlete: AthleteConfig{MaxHR: 190},
				Display: DisplayConfig{ChartDays: 60},
			},
			expectError: false,
		},
		{
			name: "zero max HR",
			config: Config{
				Athlete: AthleteConfig{MaxHR: 0},
			},
			expectError: true,
			errContains: "max_hr",
		},
		{
			name: "negative max HR",
			config: Config{
				Athlete: AthleteConfig{MaxHR: -170},
			},
			expectError: true,
			errContains: "max_hr",
		},
		{
			name: "negative chart days",
			config: Config{
				Athlete: AthleteConfig{MaxHR: 185},
				Display: DisplayConfig{ChartDays: -1},
			},
			expectError: true,
			errContains: "chart_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not mention %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error: %v", err)
			}
		})
	}
}
