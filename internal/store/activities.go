package store

import (
	"database/sql"
	"time"
)

// UpsertActivity inserts or updates an imported activity summary
func (db *DB) UpsertActivity(a *Activity) error {
	_, err := db.Exec(`
		INSERT INTO activities (id, name, start_date, tz0, tz1, tz2, tz3, tz4, tz5)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			start_date = excluded.start_date,
			tz0 = excluded.tz0,
			tz1 = excluded.tz1,
			tz2 = excluded.tz2,
			tz3 = excluded.tz3,
			tz4 = excluded.tz4,
			tz5 = excluded.tz5,
			imported_at = CURRENT_TIMESTAMP
	`,
		a.ID, a.Name, a.StartDate.Format(time.RFC3339),
		a.TZ0, a.TZ1, a.TZ2, a.TZ3, a.TZ4, a.TZ5,
	)
	return err
}

// GetActivities retrieves imported activities, most recent first
func (db *DB) GetActivities(limit int) ([]Activity, error) {
	rows, err := db.Query(`
		SELECT id, name, start_date, tz0, tz1, tz2, tz3, tz4, tz5
		FROM activities
		ORDER BY start_date DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		var a Activity
		var startDate string
		err := rows.Scan(&a.ID, &a.Name, &startDate, &a.TZ0, &a.TZ1, &a.TZ2, &a.TZ3, &a.TZ4, &a.TZ5)
		if err != nil {
			return nil, err
		}
		a.StartDate, _ = time.Parse(time.RFC3339, startDate)
		activities = append(activities, a)
	}

	return activities, rows.Err()
}

// CountActivities returns the number of imported activities
func (db *DB) CountActivities() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM activities").Scan(&count)
	return count, err
}

// HasActivity checks if an activity has already been imported
func (db *DB) HasActivity(id int64) (bool, error) {
	var exists int
	err := db.QueryRow("SELECT 1 FROM activities WHERE id = ? LIMIT 1", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
