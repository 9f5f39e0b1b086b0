package analysis

// NumZones is the number of heart-rate zones, numbered 0 through 5.
// Zone 0 is everything below 50% of max; zones 1-4 cover 10% bands from
// 50% up; zone 5 is 90% and above.
const NumZones = 6

// Zone classifies an instantaneous heart-rate value against a maximum
// heart rate. Lower band boundaries are inclusive: exactly 50% is zone 1,
// exactly 90% is zone 5. The caller must guarantee maxHR > 0.
func Zone(heartrate, maxHR float64) int {
	percentage := heartrate / maxHR * 100
	switch {
	case percentage < 50:
		return 0
	case percentage < 60:
		return 1
	case percentage < 70:
		return 2
	case percentage < 80:
		return 3
	case percentage < 90:
		return 4
	default:
		return 5
	}
}
