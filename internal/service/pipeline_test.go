package service

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"trainload/internal/export"
	"trainload/internal/timeline"
)

func makeActivity(t *testing.T, id int64, name, startDate string, times []int, heartrates []float64) export.Activity {
	t.Helper()

	type entry struct {
		Type string      `json:"type"`
		Data interface{} `json:"data"`
	}
	streams, err := json.Marshal([]entry{
		{Type: "time", Data: times},
		{Type: "heartrate", Data: heartrates},
	})
	if err != nil {
		t.Fatal(err)
	}
	return export.Activity{ID: id, Name: name, StartDate: startDate, Streams: streams}
}

// secondsInZone builds index-aligned streams holding a constant heart rate
// for the given number of whole seconds. One extra trailing sample anchors
// the reindexed domain so every second is resolved.
func secondsInZone(seconds int, heartrate float64) ([]int, []float64) {
	times := make([]int, seconds+1)
	heartrates := make([]float64, seconds+1)
	for i := range times {
		times[i] = i
		heartrates[i] = heartrate
	}
	return times, heartrates
}

func TestNewPipeline_RejectsDegenerateMaxHR(t *testing.T) {
	for _, maxHR := range []float64{0, -180} {
		if _, err := NewPipeline(maxHR); !errors.Is(err, ErrInvalidMaxHR) {
			t.Errorf("NewPipeline(%v) error = %v, want ErrInvalidMaxHR", maxHR, err)
		}
	}
	if _, err := NewPipeline(185); err != nil {
		t.Errorf("NewPipeline(185) error: %v", err)
	}
}

func TestRun_SingleActivity(t *testing.T) {
	// Six seconds at exactly 50% of max: all of it zone 1.
	times, heartrates := secondsInZone(6, 90)
	activity := makeActivity(t, 1, "Morning Ride", "2023-01-01T08:00:00Z", times, heartrates)

	p, err := NewPipeline(180)
	if err != nil {
		t.Fatal(err)
	}
	today := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	table, result, err := p.run([]export.Activity{activity}, today)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	if result.Processed != 1 || result.Skipped != 0 {
		t.Errorf("result = %+v", result)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(table.Rows))
	}

	row := table.Rows[0]
	if row.ActivityID != 1 || row.ActivityName != "Morning Ride" {
		t.Errorf("row identity = %d %q", row.ActivityID, row.ActivityName)
	}
	if math.Abs(row.ZoneMinutes[1]-0.1) > 1e-9 {
		t.Errorf("tz1 = %v, want 0.1", row.ZoneMinutes[1])
	}
	if math.Abs(row.TRIMP-0.1) > 1e-9 {
		t.Errorf("trimp = %v, want 0.1", row.TRIMP)
	}
	if math.Abs(row.Fitness-0.1) > 1e-9 || math.Abs(row.Fatigue-0.1) > 1e-9 {
		t.Errorf("fitness = %v, fatigue = %v, want 0.1 each", row.Fitness, row.Fatigue)
	}
	if math.Abs(row.Performance-0.00056) > 1e-12 {
		t.Errorf("performance = %v, want 0.00056", row.Performance)
	}
}

func TestRun_TwoActivitiesSameDay(t *testing.T) {
	// Each activity: one full minute at 65% of max (zone 2).
	times, heartrates := secondsInZone(60, 117)
	morning := makeActivity(t, 1, "Morning", "2023-01-01T07:00:00Z", times, heartrates)
	evening := makeActivity(t, 2, "Evening", "2023-01-01T18:00:00Z", times, heartrates)

	p, err := NewPipeline(180)
	if err != nil {
		t.Fatal(err)
	}
	today := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	table, result, err := p.run([]export.Activity{morning, evening}, today)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	if result.Processed != 2 {
		t.Errorf("processed = %d, want 2", result.Processed)
	}
	row := table.Rows[0]
	if math.Abs(row.ZoneMinutes[2]-2.0) > 1e-9 {
		t.Errorf("tz2 = %v, want 2.0", row.ZoneMinutes[2])
	}
	if math.Abs(row.TRIMP-4.0) > 1e-9 {
		t.Errorf("trimp = %v, want 4.0", row.TRIMP)
	}
	// Last processed activity owns the row's id and name.
	if row.ActivityID != 2 || row.ActivityName != "Evening" {
		t.Errorf("row identity = %d %q", row.ActivityID, row.ActivityName)
	}
}

func TestRun_SkipsActivitiesWithBadStreams(t *testing.T) {
	times, heartrates := secondsInZone(60, 117)
	good := makeActivity(t, 1, "Good", "2023-01-01T08:00:00Z", times, heartrates)

	noStreams := export.Activity{ID: 2, Name: "No Streams", StartDate: "2023-01-02T08:00:00Z"}
	malformed := export.Activity{
		ID: 3, Name: "Corrupt", StartDate: "2023-01-03T08:00:00Z",
		Streams: []byte(`{"time":[1,2,3]}`),
	}
	badDate := makeActivity(t, 4, "Bad Date", "sometime in March", times, heartrates)

	p, err := NewPipeline(180)
	if err != nil {
		t.Fatal(err)
	}
	today := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
	table, result, err := p.run([]export.Activity{good, noStreams, malformed, badDate}, today)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	if result.Processed != 1 || result.Skipped != 3 {
		t.Fatalf("result = %+v", result)
	}
	if len(result.Notices) != 3 {
		t.Fatalf("notices = %v", result.Notices)
	}
	if !strings.Contains(result.Notices[0], "missing") {
		t.Errorf("notice for absent streams = %q", result.Notices[0])
	}
	if !strings.Contains(result.Notices[1], "malformed") {
		t.Errorf("notice for corrupt streams = %q", result.Notices[1])
	}

	// Skipped activities leave their days untouched.
	for _, date := range []string{"2023-01-02", "2023-01-03"} {
		d, _ := time.Parse("2006-01-02", date)
		row, ok := table.At(d)
		if !ok {
			t.Fatalf("no row for %s", date)
		}
		if row.ActivityID != 0 || row.ZoneMinutes != [6]float64{} {
			t.Errorf("day %s mutated by skipped activity: %+v", date, row)
		}
	}
}

func TestRun_MismatchedStreamsSkipped(t *testing.T) {
	activity := makeActivity(t, 1, "Lopsided", "2023-01-01T08:00:00Z", []int{0, 1, 2}, []float64{100})

	p, err := NewPipeline(180)
	if err != nil {
		t.Fatal(err)
	}
	today := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	_, result, err := p.run([]export.Activity{activity}, today)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if result.Skipped != 1 || len(result.Notices) != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestRun_DenseTableSpansToToday(t *testing.T) {
	times, heartrates := secondsInZone(60, 117)
	activity := makeActivity(t, 1, "Run", "2023-01-01T08:00:00Z", times, heartrates)

	p, err := NewPipeline(180)
	if err != nil {
		t.Fatal(err)
	}
	today := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	table, _, err := p.run([]export.Activity{activity}, today)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	if len(table.Rows) != 10 {
		t.Fatalf("got %d rows, want 10", len(table.Rows))
	}
	// Rest days carry zero load but still accumulate decayed fitness.
	for i := 1; i < len(table.Rows); i++ {
		row := table.Rows[i]
		if row.TRIMP != 0 {
			t.Errorf("rest day %d has trimp %v", i, row.TRIMP)
		}
		if row.Fitness <= 0 || row.Fitness >= table.Rows[i-1].Fitness {
			t.Errorf("day %d fitness = %v, want decaying positive", i, row.Fitness)
		}
	}
}

func TestRun_OutOfRangeDateIsFatal(t *testing.T) {
	times, heartrates := secondsInZone(60, 117)
	past := makeActivity(t, 1, "Past", "2023-01-01T08:00:00Z", times, heartrates)
	future := makeActivity(t, 2, "Future", "2023-02-01T08:00:00Z", times, heartrates)

	p, err := NewPipeline(180)
	if err != nil {
		t.Fatal(err)
	}
	today := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	_, _, err = p.run([]export.Activity{past, future}, today)
	if !errors.Is(err, timeline.ErrDateOutOfRange) {
		t.Errorf("error = %v, want ErrDateOutOfRange", err)
	}
}

func TestRun_NoUsableActivities(t *testing.T) {
	p, err := NewPipeline(180)
	if err != nil {
		t.Fatal(err)
	}

	_, _, err = p.Run(nil)
	if !errors.Is(err, ErrNoActivities) {
		t.Errorf("error = %v, want ErrNoActivities", err)
	}

	undatable := export.Activity{ID: 1, Name: "When?", StartDate: "not a date"}
	_, _, err = p.Run([]export.Activity{undatable})
	if !errors.Is(err, ErrNoActivities) {
		t.Errorf("error = %v, want ErrNoActivities", err)
	}
}

func TestRun_ReplayDoubleCounts(t *testing.T) {
	// Processing the same activity twice doubles its contribution; the
	// pipeline trusts its caller to hand over each activity exactly once.
	times, heartrates := secondsInZone(60, 117)
	activity := makeActivity(t, 1, "Run", "2023-01-01T08:00:00Z", times, heartrates)

	p, err := NewPipeline(180)
	if err != nil {
		t.Fatal(err)
	}
	today := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	table, _, err := p.run([]export.Activity{activity, activity}, today)
	if err != nil {
		t.Fatal(err)
	}
	row := table.Rows[0]
	if math.Abs(row.ZoneMinutes[2]-2.0) > 1e-9 {
		t.Errorf("tz2 after replay = %v, want 2.0", row.ZoneMinutes[2])
	}
}
