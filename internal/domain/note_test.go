package domain

import (
	"testing"
	"time"
)

func TestFlattenNote(t *testing.T) {
	now := time.Now()
	raw := &RawNote{
		Note: Note{
			ID:         "n1",
			Title:      "Trip plan",
			Content:    "pack light",
			Importance: ImportanceHigh,
			OwnerID:    "user1",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		Notebook: &Notebook{ID: "nb1", Name: "Travel", OwnerID: "user1"},
		Tags: []Tag{
			{ID: "t1", Name: "vacation", OwnerID: "user1"},
			{ID: "t2", Name: "packing", OwnerID: "user1"},
		},
		Images: []Image{{ID: "img1", ImageSrc: "https://cdn.example/img1", Key: "key1", NoteID: "n1", OwnerID: "user1"}},
	}

	view := FlattenNote(raw)

	if view.ID != "n1" || view.Title != "Trip plan" {
		t.Errorf("expected note fields carried over, got %+v", view)
	}
	if view.Notebook == nil || *view.Notebook != "Travel" {
		t.Error("expected notebook relation to collapse to its name")
	}
	if len(view.Tags) != 2 || view.Tags[0] != "vacation" || view.Tags[1] != "packing" {
		t.Errorf("expected tag rows to collapse to names, got %v", view.Tags)
	}
	if len(view.Images) != 1 || view.Images[0].ID != "img1" {
		t.Errorf("expected images carried over, got %v", view.Images)
	}
}

func TestFlattenNote_Empty(t *testing.T) {
	raw := &RawNote{Note: Note{ID: "n1", OwnerID: "user1"}}

	view := FlattenNote(raw)

	if view.Notebook != nil {
		t.Error("expected nil notebook name when note has no notebook")
	}
	if view.Tags == nil || len(view.Tags) != 0 {
		t.Errorf("expected empty non-nil tag slice, got %v", view.Tags)
	}
	if view.Images == nil || len(view.Images) != 0 {
		t.Errorf("expected empty non-nil image slice, got %v", view.Images)
	}
}
