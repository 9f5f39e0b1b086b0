package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Imported activity summaries with their per-zone minutes
		`CREATE TABLE IF NOT EXISTS activities (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			start_date TEXT NOT NULL,
			tz0 REAL NOT NULL DEFAULT 0,
			tz1 REAL NOT NULL DEFAULT 0,
			tz2 REAL NOT NULL DEFAULT 0,
			tz3 REAL NOT NULL DEFAULT 0,
			tz4 REAL NOT NULL DEFAULT 0,
			tz5 REAL NOT NULL DEFAULT 0,
			imported_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_activities_start_date ON activities(start_date)`,

		// The computed daily table, one row per calendar day
		`CREATE TABLE IF NOT EXISTS daily (
			date TEXT PRIMARY KEY,
			activity_id INTEGER NOT NULL DEFAULT 0,
			activity_name TEXT NOT NULL DEFAULT '',
			tz0 REAL NOT NULL DEFAULT 0,
			tz1 REAL NOT NULL DEFAULT 0,
			tz2 REAL NOT NULL DEFAULT 0,
			tz3 REAL NOT NULL DEFAULT 0,
			tz4 REAL NOT NULL DEFAULT 0,
			tz5 REAL NOT NULL DEFAULT 0,
			trimp REAL NOT NULL DEFAULT 0,
			fitness REAL NOT NULL DEFAULT 0,
			fatigue REAL NOT NULL DEFAULT 0,
			performance REAL NOT NULL DEFAULT 0,
			computed_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
