package service

import (
	"errors"
	"fmt"
	"time"

	"trainload/internal/analysis"
	"trainload/internal/export"
	"trainload/internal/timeline"
)

// ErrInvalidMaxHR is returned for a zero or negative maximum heart rate
var ErrInvalidMaxHR = errors.New("maximum heart rate must be positive")

// ErrNoActivities is returned when the export holds no datable activities
var ErrNoActivities = errors.New("no activities with a usable start date")

// Pipeline turns raw export activities into the computed daily table:
// streams are extracted and reduced to per-zone minutes, merged into a
// dense calendar skeleton, and the training-load recurrence fills in
// trimp, fitness, fatigue and performance.
type Pipeline struct {
	maxHR float64
	now   func() time.Time
}

// NewPipeline creates a pipeline for the given maximum heart rate. Zone
// classification divides by max HR, so a degenerate value is rejected here,
// before any activity is touched.
func NewPipeline(maxHR float64) (*Pipeline, error) {
	if maxHR <= 0 {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidMaxHR, maxHR)
	}
	return &Pipeline{maxHR: maxHR, now: time.Now}, nil
}

// Result reports what a pipeline run did
type Result struct {
	Processed int
	Skipped   int
	Notices   []string

	// Activities holds the successfully merged activities so callers can
	// persist their summaries.
	Activities []ProcessedActivity
}

// ProcessedActivity is one activity that made it into the daily table
type ProcessedActivity struct {
	ID          int64
	Name        string
	Date        time.Time
	ZoneMinutes analysis.ZoneMinutes
}

// Run processes every activity once and returns the finished daily table,
// spanning the earliest activity date through today. Activities with
// missing or malformed streams are skipped with a notice; an activity
// dated outside the table's range is a hard error, since silently folding
// it into the wrong row would corrupt the totals.
func (p *Pipeline) Run(activities []export.Activity) (*timeline.Table, *Result, error) {
	return p.run(activities, p.now())
}

func (p *Pipeline) run(activities []export.Activity, today time.Time) (*timeline.Table, *Result, error) {
	start, ok := earliestDate(activities)
	if !ok {
		return nil, nil, ErrNoActivities
	}

	table, err := timeline.New(start, today)
	if err != nil {
		return nil, nil, fmt.Errorf("building daily table: %w", err)
	}

	result := &Result{}
	for i := range activities {
		a := &activities[i]

		minutes, skipReason := p.zoneMinutes(a)
		if skipReason != "" {
			result.Skipped++
			result.Notices = append(result.Notices, fmt.Sprintf("activity %d (%s): %s", a.ID, a.Name, skipReason))
			continue
		}

		date, err := a.Date()
		if err != nil {
			result.Skipped++
			result.Notices = append(result.Notices, fmt.Sprintf("activity %d (%s): %v", a.ID, a.Name, err))
			continue
		}

		if err := table.Merge(date, a.ID, a.Name, minutes); err != nil {
			return nil, nil, fmt.Errorf("merging activity %d (%s): %w", a.ID, a.Name, err)
		}

		result.Processed++
		result.Activities = append(result.Activities, ProcessedActivity{
			ID:          a.ID,
			Name:        a.Name,
			Date:        date,
			ZoneMinutes: minutes,
		})
	}

	analysis.ApplyTrainingLoad(table)

	return table, result, nil
}

// zoneMinutes extracts both streams and reduces them to minutes per zone.
// A non-empty skip reason means the activity contributes nothing.
func (p *Pipeline) zoneMinutes(a *export.Activity) (analysis.ZoneMinutes, string) {
	timeData, res := a.Stream("time")
	if res != export.StreamFound {
		return nil, fmt.Sprintf("time stream %s", res)
	}

	heartrates, res := a.Stream("heartrate")
	if res != export.StreamFound {
		return nil, fmt.Sprintf("heartrate stream %s", res)
	}

	times := make([]int, len(timeData))
	for i, v := range timeData {
		times[i] = int(v)
	}

	minutes, err := analysis.BuildZoneMinutes(times, heartrates, p.maxHR)
	if err != nil {
		return nil, err.Error()
	}
	return minutes, ""
}

// earliestDate finds the earliest start date across all activities.
// Activities that will later be skipped still count: the skeleton is built
// from every datable activity before any is processed.
func earliestDate(activities []export.Activity) (time.Time, bool) {
	var earliest time.Time
	found := false
	for i := range activities {
		date, err := activities[i].Date()
		if err != nil {
			continue
		}
		if !found || date.Before(earliest) {
			earliest = date
			found = true
		}
	}
	return earliest, found
}
