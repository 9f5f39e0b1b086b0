package analysis

import (
	"math"

	"trainload/internal/timeline"
)

// Impulse-response training model in the Banister style: fitness is a
// slow-decaying accumulation of daily load, fatigue a fast-decaying one,
// and performance their weighted difference.
const (
	fitnessDecayDays = 60.0
	fatigueDecayDays = 5.0
	fitnessWeight    = 0.0076
	fatigueWeight    = 0.0020
)

// TRIMP returns the zone-weighted training impulse for one day's zone
// minutes. Zone 0 is below the aerobic threshold and contributes nothing;
// each higher zone weighs its minutes by the zone number.
func TRIMP(zoneMinutes [6]float64) float64 {
	var trimp float64
	for zone := 1; zone < len(zoneMinutes); zone++ {
		trimp += float64(zone) * zoneMinutes[zone]
	}
	return trimp
}

// ApplyTrainingLoad derives TRIMP for every row, then walks the table in
// date order threading the fitness and fatigue accumulators through each
// day. The recurrence is strictly sequential: every day's values depend on
// all prior days, so the rows must already be dense and sorted, which the
// table guarantees by construction.
func ApplyTrainingLoad(t *timeline.Table) {
	fitnessDecay := math.Exp(-1 / fitnessDecayDays)
	fatigueDecay := math.Exp(-1 / fatigueDecayDays)

	var fitness, fatigue float64
	for i := range t.Rows {
		row := &t.Rows[i]
		row.TRIMP = TRIMP(row.ZoneMinutes)

		fitness = fitness*fitnessDecay + row.TRIMP
		fatigue = fatigue*fatigueDecay + row.TRIMP

		row.Fitness = fitness
		row.Fatigue = fatigue
		row.Performance = fitness*fitnessWeight - fatigue*fatigueWeight
	}
}
