package timeline

import (
	"errors"
	"fmt"
	"time"
)

// ErrDateOutOfRange is returned when an activity's date falls outside the
// table's pre-built date range.
var ErrDateOutOfRange = errors.New("date outside the daily table's range")

// Row is one calendar day of aggregated training data. ActivityID and
// ActivityName identify the last activity merged into the day; when several
// activities share a date, the last one processed wins. ZoneMinutes is
// indexed by zone and accumulates additively across same-day activities.
// TRIMP, Fitness, Fatigue and Performance stay zero until the training-load
// pass fills them in.
type Row struct {
	Date         time.Time
	ActivityID   int64
	ActivityName string
	ZoneMinutes  [6]float64
	TRIMP        float64
	Fitness      float64
	Fatigue      float64
	Performance  float64
}

// Table is a dense, date-ordered collection of daily rows: exactly one row
// per calendar day over its range, rest days included with all-zero values.
// The skeleton is built up front so that merging an activity can never
// invent a row on the wrong date.
type Table struct {
	Rows []Row

	index map[string]int
}

const dateKey = "2006-01-02"

// New builds an empty table covering every calendar day from start through
// end, inclusive. Times are reduced to their date component.
func New(start, end time.Time) (*Table, error) {
	start = dateOf(start)
	end = dateOf(end)
	if start.After(end) {
		return nil, fmt.Errorf("start date %s after end date %s", start.Format(dateKey), end.Format(dateKey))
	}

	t := &Table{index: make(map[string]int)}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		t.index[d.Format(dateKey)] = len(t.Rows)
		t.Rows = append(t.Rows, Row{Date: d})
	}
	return t, nil
}

// Merge folds one activity's zone minutes into the row for its date. The
// id and name overwrite whatever a same-day activity left there; the zone
// minutes add to it. Merging the same activity twice double-counts, so each
// activity must be merged exactly once.
func (t *Table) Merge(date time.Time, id int64, name string, minutes map[int]float64) error {
	i, ok := t.index[dateOf(date).Format(dateKey)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrDateOutOfRange, date.Format(dateKey))
	}

	row := &t.Rows[i]
	row.ActivityID = id
	row.ActivityName = name
	for zone, m := range minutes {
		if zone < 0 || zone >= len(row.ZoneMinutes) {
			continue
		}
		row.ZoneMinutes[zone] += m
	}
	return nil
}

// At returns the row for the given date, if the table covers it.
func (t *Table) At(date time.Time) (Row, bool) {
	i, ok := t.index[dateOf(date).Format(dateKey)]
	if !ok {
		return Row{}, false
	}
	return t.Rows[i], true
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
