package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when an owner-scoped predicate matches zero rows.
var ErrNotFound = errors.New("record not found")

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// DB wraps the sql handle with the driver name so queries written with
// ? placeholders can be rebound for Postgres.
type DB struct {
	*sql.DB
	driver string
}

func Open(driver, dsn string) (*DB, error) {
	if driver == DriverSQLite && !strings.Contains(dsn, "_foreign_keys") {
		// go-sqlite3 ships with foreign keys off and a PRAGMA only
		// covers the connection it ran on; the DSN parameter applies
		// to every pooled connection. The schema relies on cascade and
		// SET NULL rules.
		if strings.Contains(dsn, "?") {
			dsn += "&_foreign_keys=on"
		} else {
			dsn += "?_foreign_keys=on"
		}
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{DB: sqlDB, driver: driver}

	if err := db.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// rebind converts ? placeholders to $1, $2, ... for PostgreSQL.
func (d *DB) rebind(query string) string {
	if d.driver == DriverSQLite {
		return query
	}
	var result strings.Builder
	argNum := 1
	for _, c := range query {
		if c == '?' {
			fmt.Fprintf(&result, "$%d", argNum)
			argNum++
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

func (d *DB) initSchema() error {
	boolType := "BOOLEAN"
	timeType := "TIMESTAMP"
	if d.driver == DriverSQLite {
		timeType = "DATETIME"
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			image TEXT,
			password TEXT NOT NULL,
			created_at ` + timeType + ` NOT NULL,
			updated_at ` + timeType + ` NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS notebooks (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at ` + timeType + ` NOT NULL,
			updated_at ` + timeType + ` NOT NULL,
			UNIQUE (owner_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at ` + timeType + ` NOT NULL,
			UNIQUE (owner_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			notebook_id TEXT REFERENCES notebooks(id) ON DELETE SET NULL,
			importance TEXT NOT NULL DEFAULT 'Medium',
			color TEXT,
			is_favorite ` + boolType + ` NOT NULL DEFAULT FALSE,
			owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at ` + timeType + ` NOT NULL,
			updated_at ` + timeType + ` NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS notes_to_tags (
			note_id TEXT NOT NULL REFERENCES notes(id) ON DELETE CASCADE,
			tag_id TEXT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
			PRIMARY KEY (note_id, tag_id)
		)`,
		`CREATE TABLE IF NOT EXISTS images (
			id TEXT PRIMARY KEY,
			alt_text TEXT,
			content_type TEXT,
			image_src TEXT NOT NULL,
			storage_key TEXT NOT NULL,
			note_id TEXT NOT NULL REFERENCES notes(id) ON DELETE CASCADE,
			owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at ` + timeType + ` NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS notes_owner_idx ON notes (owner_id)`,
		`CREATE INDEX IF NOT EXISTS notes_owner_favorite_idx ON notes (owner_id, is_favorite)`,
		`CREATE INDEX IF NOT EXISTS images_note_idx ON images (note_id)`,
	}

	for _, stmt := range statements {
		if _, err := d.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}

	return nil
}
