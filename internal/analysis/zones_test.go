package analysis

import "testing"

func TestZone(t *testing.T) {
	const maxHR = 200

	tests := []struct {
		name      string
		heartrate float64
		expected  int
	}{
		{"well below half of max", 80, 0},
		{"just under zone 1", 99.9, 0},
		{"exactly 50 percent", 100, 1},
		{"mid zone 1", 110, 1},
		{"exactly 60 percent", 120, 2},
		{"mid zone 2", 130, 2},
		{"exactly 70 percent", 140, 3},
		{"mid zone 3", 150, 3},
		{"exactly 80 percent", 160, 4},
		{"mid zone 4", 170, 4},
		{"exactly 90 percent", 180, 5},
		{"at max", 200, 5},
		{"above max", 220, 5},
		{"zero heartrate", 0, 0},
		{"negative heartrate", -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Zone(tt.heartrate, maxHR)
			if result != tt.expected {
				t.Errorf("Zone(%v, %v) = %d, want %d", tt.heartrate, maxHR, result, tt.expected)
			}
		})
	}
}

func TestZone_AlwaysInRange(t *testing.T) {
	for hr := -50.0; hr <= 400; hr += 0.5 {
		zone := Zone(hr, 185)
		if zone < 0 || zone >= NumZones {
			t.Fatalf("Zone(%v, 185) = %d, outside [0, %d)", hr, zone, NumZones)
		}
	}
}
