package store

import "time"

// Activity represents an imported activity summary and the per-zone
// minutes computed from its streams
type Activity struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	StartDate time.Time `db:"start_date"`
	TZ0       float64   `db:"tz0"` // minutes below 50% of max HR
	TZ1       float64   `db:"tz1"`
	TZ2       float64   `db:"tz2"`
	TZ3       float64   `db:"tz3"`
	TZ4       float64   `db:"tz4"`
	TZ5       float64   `db:"tz5"`
}

// DailyRow represents one computed calendar day of the daily table.
// ActivityID and ActivityName are zero-valued on rest days.
type DailyRow struct {
	Date         string  `db:"date"` // YYYY-MM-DD
	ActivityID   int64   `db:"activity_id"`
	ActivityName string  `db:"activity_name"`
	TZ0          float64 `db:"tz0"`
	TZ1          float64 `db:"tz1"`
	TZ2          float64 `db:"tz2"`
	TZ3          float64 `db:"tz3"`
	TZ4          float64 `db:"tz4"`
	TZ5          float64 `db:"tz5"`
	TRIMP        float64 `db:"trimp"`
	Fitness      float64 `db:"fitness"`
	Fatigue      float64 `db:"fatigue"`
	Performance  float64 `db:"performance"`
}
