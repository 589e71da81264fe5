package repository

import (
	"path/filepath"
	"testing"
	"time"

	"notable-server/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func insertUser(t *testing.T, db *DB, id string) {
	t.Helper()

	now := time.Now()
	err := NewUserRepository(db).Create(&domain.User{
		ID:        id,
		Name:      "Test " + id,
		Email:     id + "@example.com",
		Password:  "hashed",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("failed to insert user %s: %v", id, err)
	}
}

func insertNote(t *testing.T, db *DB, id, ownerID string) {
	t.Helper()

	now := time.Now()
	err := NewNoteRepository(db).Create(&domain.Note{
		ID:         id,
		Title:      "note " + id,
		Content:    "content of " + id,
		Importance: domain.ImportanceMedium,
		OwnerID:    ownerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("failed to insert note %s: %v", id, err)
	}
}

func countRows(t *testing.T, db *DB, query string, args ...interface{}) int {
	t.Helper()

	var count int
	if err := db.QueryRow(db.rebind(query), args...).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	return count
}

func TestOpenCreatesSchema(t *testing.T) {
	db := openTestDB(t)

	tables := []string{"users", "notebooks", "tags", "notes", "notes_to_tags", "images"}
	for _, table := range tables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("expected table %s to exist: %v", table, err)
		}
	}
}

func TestRebind(t *testing.T) {
	sqlite := &DB{driver: DriverSQLite}
	pg := &DB{driver: DriverPostgres}

	query := `SELECT id FROM notes WHERE owner_id = ? AND is_favorite = ?`

	if got := sqlite.rebind(query); got != query {
		t.Errorf("sqlite rebind changed query: %s", got)
	}

	want := `SELECT id FROM notes WHERE owner_id = $1 AND is_favorite = $2`
	if got := pg.rebind(query); got != want {
		t.Errorf("postgres rebind = %s, want %s", got, want)
	}
}
