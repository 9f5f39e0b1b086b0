package export

import (
	"encoding/json"
	"fmt"
	"time"
)

// Activity represents one activity record from a training export file.
// The streams blob is kept raw because exports in the wild contain corrupt
// stream collections; decoding is deferred to Stream so one bad record
// cannot fail the whole file.
type Activity struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	StartDate string          `json:"start_date"`
	Streams   json.RawMessage `json:"streams"`
}

// streamEntry is a single named sample sequence within an activity.
// Data stays raw until a caller asks for this stream.
type streamEntry struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// StreamResult classifies the outcome of looking up a stream by name,
// so callers can tell "no such stream" apart from "record unreadable".
type StreamResult int

const (
	StreamFound StreamResult = iota
	StreamMissing
	StreamMalformed
)

// String returns a short label for diagnostics.
func (r StreamResult) String() string {
	switch r {
	case StreamFound:
		return "found"
	case StreamMissing:
		return "missing"
	case StreamMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("StreamResult(%d)", int(r))
	}
}

// Stream returns the sample sequence with the given type name.
// A nil or absent stream collection reports StreamMissing; a collection or
// sample array that fails to decode reports StreamMalformed. Stream never
// returns an error: a bad record degrades to a result the caller can skip.
func (a *Activity) Stream(name string) ([]float64, StreamResult) {
	if len(a.Streams) == 0 || string(a.Streams) == "null" {
		return nil, StreamMissing
	}

	var entries []streamEntry
	if err := json.Unmarshal(a.Streams, &entries); err != nil {
		return nil, StreamMalformed
	}

	for _, e := range entries {
		if e.Type != name {
			continue
		}
		var data []float64
		if err := json.Unmarshal(e.Data, &data); err != nil {
			return nil, StreamMalformed
		}
		return data, StreamFound
	}

	return nil, StreamMissing
}

// Date returns the calendar date the activity started on. The timezone
// offset embedded in the start_date field is authoritative: an activity
// recorded at 23:30+02:00 belongs to that local day, not the UTC one.
func (a *Activity) Date() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, a.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing start date %q: %w", a.StartDate, err)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
