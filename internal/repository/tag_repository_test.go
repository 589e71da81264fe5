package repository

import (
	"testing"
)

func TestTagRepository_SyncNoteTags_Idempotent(t *testing.T) {
	db := openTestDB(t)
	insertUser(t, db, "u1")
	insertNote(t, db, "n1", "u1")

	repo := NewTagRepository(db)

	first, err := repo.SyncNoteTags("u1", "n1", []string{"a", "b"})
	if err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	second, err := repo.SyncNoteTags("u1", "n1", []string{"a", "b"})
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}

	if got := countRows(t, db, `SELECT COUNT(*) FROM tags WHERE owner_id = ?`, "u1"); got != 2 {
		t.Errorf("expected 2 tag rows after repeated sync, got %d", got)
	}
	if got := countRows(t, db, `SELECT COUNT(*) FROM notes_to_tags WHERE note_id = ?`, "n1"); got != 2 {
		t.Errorf("expected 2 associations after repeated sync, got %d", got)
	}

	// The second sync must reuse the same tag rows, not mint new IDs.
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("tag %q re-created: %s then %s", first[i].Name, first[i].ID, second[i].ID)
		}
	}
}

func TestTagRepository_SyncNoteTags_EmptyClears(t *testing.T) {
	db := openTestDB(t)
	insertUser(t, db, "u1")
	insertNote(t, db, "n1", "u1")

	repo := NewTagRepository(db)

	if _, err := repo.SyncNoteTags("u1", "n1", []string{"a", "b"}); err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if _, err := repo.SyncNoteTags("u1", "n1", nil); err != nil {
		t.Fatalf("empty sync failed: %v", err)
	}

	if got := countRows(t, db, `SELECT COUNT(*) FROM notes_to_tags WHERE note_id = ?`, "n1"); got != 0 {
		t.Errorf("expected empty sync to clear associations, got %d", got)
	}
	// Tag rows survive: they belong to the owner, not the note.
	if got := countRows(t, db, `SELECT COUNT(*) FROM tags WHERE owner_id = ?`, "u1"); got != 2 {
		t.Errorf("expected tag rows to survive clearing, got %d", got)
	}
}

func TestTagRepository_SyncNoteTags_ReusesAcrossNotes(t *testing.T) {
	db := openTestDB(t)
	insertUser(t, db, "u1")
	insertNote(t, db, "n1", "u1")
	insertNote(t, db, "n2", "u1")

	repo := NewTagRepository(db)

	if _, err := repo.SyncNoteTags("u1", "n1", []string{"shared"}); err != nil {
		t.Fatalf("sync n1 failed: %v", err)
	}
	if _, err := repo.SyncNoteTags("u1", "n2", []string{"shared"}); err != nil {
		t.Fatalf("sync n2 failed: %v", err)
	}

	if got := countRows(t, db, `SELECT COUNT(*) FROM tags WHERE owner_id = ? AND name = ?`, "u1", "shared"); got != 1 {
		t.Errorf("expected one shared tag row across notes, got %d", got)
	}
	if got := countRows(t, db, `SELECT COUNT(*) FROM notes_to_tags`); got != 2 {
		t.Errorf("expected one association per note, got %d", got)
	}
}

func TestTagRepository_PerOwnerTagIdentity(t *testing.T) {
	db := openTestDB(t)
	insertUser(t, db, "u1")
	insertUser(t, db, "u2")
	insertNote(t, db, "n1", "u1")
	insertNote(t, db, "n2", "u2")

	repo := NewTagRepository(db)

	first, err := repo.SyncNoteTags("u1", "n1", []string{"work"})
	if err != nil {
		t.Fatalf("sync for u1 failed: %v", err)
	}
	second, err := repo.SyncNoteTags("u2", "n2", []string{"work"})
	if err != nil {
		t.Fatalf("sync for u2 failed: %v", err)
	}

	if first[0].ID == second[0].ID {
		t.Error("expected same-named tags of different owners to be distinct rows")
	}

	tags, err := repo.ListByOwner("u1")
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	if len(tags) != 1 || tags[0].OwnerID != "u1" {
		t.Errorf("expected only u1's tag, got %d tags", len(tags))
	}
}
