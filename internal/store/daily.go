package store

import (
	"database/sql"
	"fmt"
)

// ReplaceDailyRows replaces the stored daily table with a freshly computed
// one. The table is recomputed from scratch on every import, so partial
// updates are never needed.
func (db *DB) ReplaceDailyRows(rows []DailyRow) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM daily"); err != nil {
		return fmt.Errorf("deleting existing daily rows: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO daily (
			date, activity_id, activity_name,
			tz0, tz1, tz2, tz3, tz4, tz5,
			trimp, fitness, fatigue, performance
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(
			r.Date, r.ActivityID, r.ActivityName,
			r.TZ0, r.TZ1, r.TZ2, r.TZ3, r.TZ4, r.TZ5,
			r.TRIMP, r.Fitness, r.Fatigue, r.Performance,
		)
		if err != nil {
			return fmt.Errorf("inserting daily row %s: %w", r.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// GetDailyRows retrieves the full daily table in date order
func (db *DB) GetDailyRows() ([]DailyRow, error) {
	rows, err := db.Query(`
		SELECT date, activity_id, activity_name,
			tz0, tz1, tz2, tz3, tz4, tz5,
			trimp, fitness, fatigue, performance
		FROM daily
		ORDER BY date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDailyRows(rows)
}

// GetRecentDailyRows retrieves the last limit days in date order
func (db *DB) GetRecentDailyRows(limit int) ([]DailyRow, error) {
	rows, err := db.Query(`
		SELECT date, activity_id, activity_name,
			tz0, tz1, tz2, tz3, tz4, tz5,
			trimp, fitness, fatigue, performance
		FROM daily
		ORDER BY date DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recent, err := scanDailyRows(rows)
	if err != nil {
		return nil, err
	}

	// Flip back to ascending date order
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	return recent, nil
}

// GetLatestDailyRow retrieves the most recent computed day
func (db *DB) GetLatestDailyRow() (*DailyRow, error) {
	row := db.QueryRow(`
		SELECT date, activity_id, activity_name,
			tz0, tz1, tz2, tz3, tz4, tz5,
			trimp, fitness, fatigue, performance
		FROM daily
		ORDER BY date DESC
		LIMIT 1
	`)

	var r DailyRow
	err := row.Scan(
		&r.Date, &r.ActivityID, &r.ActivityName,
		&r.TZ0, &r.TZ1, &r.TZ2, &r.TZ3, &r.TZ4, &r.TZ5,
		&r.TRIMP, &r.Fitness, &r.Fatigue, &r.Performance,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNoDailyData
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CountDailyRows returns the number of computed days
func (db *DB) CountDailyRows() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM daily").Scan(&count)
	return count, err
}

func scanDailyRows(rows *sql.Rows) ([]DailyRow, error) {
	var result []DailyRow
	for rows.Next() {
		var r DailyRow
		err := rows.Scan(
			&r.Date, &r.ActivityID, &r.ActivityName,
			&r.TZ0, &r.TZ1, &r.TZ2, &r.TZ3, &r.TZ4, &r.TZ5,
			&r.TRIMP, &r.Fitness, &r.Fatigue, &r.Performance,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
