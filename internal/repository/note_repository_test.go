package repository

import (
	"errors"
	"testing"
	"time"

	"notable-server/internal/domain"
)

func TestNoteRepository_Delete_CascadesAssociations(t *testing.T) {
	db := openTestDB(t)
	insertUser(t, db, "u1")
	insertNote(t, db, "n1", "u1")

	if _, err := NewTagRepository(db).SyncNoteTags("u1", "n1", []string{"a", "b"}); err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if err := NewImageRepository(db).Create(&domain.Image{
		ID:        "img1",
		ImageSrc:  "https://cdn.example/img1",
		Key:       "key1",
		NoteID:    "n1",
		OwnerID:   "u1",
		CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("failed to insert image: %v", err)
	}

	if err := NewNoteRepository(db).Delete("u1", "n1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if got := countRows(t, db, `SELECT COUNT(*) FROM notes_to_tags WHERE note_id = ?`, "n1"); got != 0 {
		t.Errorf("expected tag associations cascaded, got %d", got)
	}
	if got := countRows(t, db, `SELECT COUNT(*) FROM images WHERE note_id = ?`, "n1"); got != 0 {
		t.Errorf("expected image rows cascaded, got %d", got)
	}
	// Tag rows are owner-level and survive the note.
	if got := countRows(t, db, `SELECT COUNT(*) FROM tags WHERE owner_id = ?`, "u1"); got != 2 {
		t.Errorf("expected tag rows to survive note deletion, got %d", got)
	}
}

func TestNoteRepository_ListByOwner_LoadsAssociations(t *testing.T) {
	db := openTestDB(t)
	insertUser(t, db, "u1")
	insertUser(t, db, "u2")
	insertNotebook(t, db, "nb1", "u1", "Travel")

	noteRepo := NewNoteRepository(db)
	notebookID := "nb1"
	now := time.Now()
	if err := noteRepo.Create(&domain.Note{
		ID:         "n1",
		Title:      "trip",
		Content:    "pack",
		NotebookID: &notebookID,
		Importance: domain.ImportanceMedium,
		OwnerID:    "u1",
		CreatedAt:  now,
		UpdatedAt:  now,
	}); err != nil {
		t.Fatalf("failed to insert note: %v", err)
	}
	insertNote(t, db, "n2", "u2")

	if _, err := NewTagRepository(db).SyncNoteTags("u1", "n1", []string{"vacation"}); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	raws, err := noteRepo.ListByOwner("u1")
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}

	if len(raws) != 1 {
		t.Fatalf("expected only u1's note, got %d", len(raws))
	}
	raw := raws[0]
	if raw.Notebook == nil || raw.Notebook.Name != "Travel" {
		t.Error("expected notebook eager-loaded")
	}
	if len(raw.Tags) != 1 || raw.Tags[0].Name != "vacation" {
		t.Errorf("expected tags eager-loaded, got %v", raw.Tags)
	}
}

func TestNoteRepository_Update_OwnerScoped(t *testing.T) {
	db := openTestDB(t)
	insertUser(t, db, "u1")
	insertNote(t, db, "n1", "u1")

	repo := NewNoteRepository(db)

	raw, err := repo.FindByOwner("u1", "n1")
	if err != nil {
		t.Fatalf("FindByOwner failed: %v", err)
	}

	foreign := raw.Note
	foreign.OwnerID = "u2"
	foreign.Title = "hijacked"
	if err := repo.Update(&foreign); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign owner, got %v", err)
	}

	raw, err = repo.FindByOwner("u1", "n1")
	if err != nil {
		t.Fatalf("FindByOwner failed: %v", err)
	}
	if raw.Title == "hijacked" {
		t.Error("expected foreign update to leave the row untouched")
	}
}

func TestNoteRepository_SetFavorite_NotFound(t *testing.T) {
	db := openTestDB(t)
	insertUser(t, db, "u1")

	if err := NewNoteRepository(db).SetFavorite("u1", "missing", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing note, got %v", err)
	}
}
