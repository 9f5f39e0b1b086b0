package analysis

import (
	"errors"
	"sort"
)

// ZoneMinutes maps a heart-rate zone to the minutes spent in it during one
// activity. Zones with no time are absent rather than zero, so callers
// merging into a daily total must treat a missing key as 0.
type ZoneMinutes map[int]float64

// ErrStreamMismatch is returned when the time and heart-rate streams of an
// activity have different lengths and cannot be index-aligned.
var ErrStreamMismatch = errors.New("time and heartrate streams have different lengths")

// BuildZoneMinutes turns an activity's raw time and heart-rate streams into
// minutes per zone.
//
// The time stream holds elapsed seconds and is not necessarily sorted or
// unique. Duplicate elapsed-time values keep their first occurrence; they
// would otherwise break the dense reindexing. The samples are reindexed
// over every whole second in [0, max(time)), with gaps filled by linear
// interpolation between the nearest recorded samples on each side. Seconds
// before the first recorded sample or after the last one have no value and
// are left out of the classification.
func BuildZoneMinutes(times []int, heartrates []float64, maxHR float64) (ZoneMinutes, error) {
	if len(times) != len(heartrates) {
		return nil, ErrStreamMismatch
	}

	// Deduplicate, first occurrence wins.
	known := make(map[int]float64, len(times))
	maxTime := 0
	for i, sec := range times {
		if sec > maxTime {
			maxTime = sec
		}
		if _, ok := known[sec]; !ok {
			known[sec] = heartrates[i]
		}
	}

	keys := make([]int, 0, len(known))
	for sec := range known {
		keys = append(keys, sec)
	}
	sort.Ints(keys)

	// The sample at max(time) sits outside the reindexed domain but still
	// anchors the interpolation of the seconds leading up to it.
	seconds := make([]int, NumZones)
	ki := 0
	for sec := 0; sec < maxTime; sec++ {
		for ki < len(keys) && keys[ki] < sec {
			ki++
		}

		var value float64
		switch {
		case ki < len(keys) && keys[ki] == sec:
			value = known[sec]
		case ki > 0 && ki < len(keys):
			left, right := keys[ki-1], keys[ki]
			lv, rv := known[left], known[right]
			value = lv + (rv-lv)*float64(sec-left)/float64(right-left)
		default:
			// Leading or trailing gap, nothing to interpolate from.
			continue
		}
		seconds[Zone(value, maxHR)]++
	}

	minutes := make(ZoneMinutes)
	for zone, count := range seconds {
		if count > 0 {
			minutes[zone] = float64(count) / 60.0
		}
	}
	return minutes, nil
}
