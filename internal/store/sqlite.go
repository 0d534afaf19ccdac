package store

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite persists the record in a local sqlite database instead of a flat
// file. The contract is the same as JSONFile: Save rewrites the full record.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed initializes) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	backend := &SQLite{db: db}
	if err := backend.init(); err != nil {
		db.Close()
		return nil, err
	}
	return backend, nil
}

func (s *SQLite) init() error {
	projectsQuery := `
	CREATE TABLE IF NOT EXISTS projects (
		name TEXT PRIMARY KEY
	)
	`
	if _, err := s.db.Exec(projectsQuery); err != nil {
		return err
	}

	entriesQuery := `
	CREATE TABLE IF NOT EXISTS time_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project TEXT NOT NULL,
		committed_at TEXT NOT NULL,
		hours REAL NOT NULL,
		FOREIGN KEY (project) REFERENCES projects(name) ON DELETE CASCADE
	)
	`
	_, err := s.db.Exec(entriesQuery)
	return err
}

// Load reads every project and its entries. Rows with bad timestamps or
// negative hours are skipped.
func (s *SQLite) Load() (Record, error) {
	record := Record{}

	rows, err := s.db.Query("SELECT name FROM projects")
	if err != nil {
		return record, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return record, err
		}
		record[name] = TimeLog{}
	}
	if err := rows.Err(); err != nil {
		return record, err
	}

	entryRows, err := s.db.Query(
		"SELECT project, committed_at, hours FROM time_entries ORDER BY committed_at",
	)
	if err != nil {
		return record, err
	}
	defer entryRows.Close()
	for entryRows.Next() {
		var project, stamp string
		var hours float64
		if err := entryRows.Scan(&project, &stamp, &hours); err != nil {
			return record, err
		}
		at, err := time.Parse(time.RFC3339, stamp)
		if err != nil || hours < 0 {
			continue
		}
		record[project] = append(record[project], TimeEntry{At: at, Hours: RoundHours(hours)})
	}
	return record, entryRows.Err()
}

// Save rewrites both tables inside one transaction.
func (s *SQLite) Save(record Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM time_entries"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM projects"); err != nil {
		return err
	}

	for project, log := range record {
		if _, err := tx.Exec("INSERT INTO projects (name) VALUES (?)", project); err != nil {
			return err
		}
		for _, entry := range log {
			if _, err := tx.Exec(
				"INSERT INTO time_entries (project, committed_at, hours) VALUES (?, ?, ?)",
				project, entry.At.Format(time.RFC3339), entry.Hours,
			); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// Close closes the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

var _ Backend = (*SQLite)(nil)
