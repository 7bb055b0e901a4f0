package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS items (
			id               TEXT PRIMARY KEY,
			title            TEXT NOT NULL,
			owner_id         TEXT NOT NULL,
			scheduled_date   DATE NOT NULL,
			start_time       TIME NOT NULL,
			duration_minutes INTEGER NOT NULL CHECK(duration_minutes > 0),
			completed        INTEGER NOT NULL DEFAULT 0,
			blocked          INTEGER NOT NULL DEFAULT 0,
			created_at       DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_items_date ON items(scheduled_date);
		CREATE INDEX IF NOT EXISTS idx_items_owner ON items(owner_id);

		CREATE TABLE IF NOT EXISTS assignments (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			subject    TEXT NOT NULL DEFAULT '',
			due_date   DATE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
