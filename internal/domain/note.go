package domain

import "time"

type Importance string

const (
	ImportanceHigh   Importance = "High"
	ImportanceMedium Importance = "Medium"
	ImportanceLow    Importance = "Low"
)

type SortKey string

const (
	SortByCreatedAt  SortKey = "createdAt"
	SortByUpdatedAt  SortKey = "updatedAt"
	SortByTitle      SortKey = "title"
	SortByImportance SortKey = "importance"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Note is the persisted row shape. Content is an opaque serialized
// rich-text document; the server never interprets it.
type Note struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	NotebookID *string    `json:"notebook_id"`
	Importance Importance `json:"importance"`
	Color      *string    `json:"color"`
	IsFavorite bool       `json:"is_favorite"`
	OwnerID    string     `json:"owner_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// RawNote is a note with its relations still in relational shape, as
// loaded by the repository's associative fetch.
type RawNote struct {
	Note
	Notebook *Notebook
	Tags     []Tag
	Images   []Image
}

// NoteView is the flattened shape handed to callers: the notebook
// relation collapses to its name, tag rows to their names. No raw
// relational shape crosses the service boundary.
type NoteView struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	NotebookID *string    `json:"notebook_id"`
	Importance Importance `json:"importance"`
	Color      *string    `json:"color"`
	IsFavorite bool       `json:"is_favorite"`
	OwnerID    string     `json:"owner_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Notebook   *string    `json:"notebook"`
	Tags       []string   `json:"tags"`
	Images     []Image    `json:"images"`
}

// FlattenNote maps a joined record to the flattened view shape.
func FlattenNote(raw *RawNote) *NoteView {
	view := &NoteView{
		ID:         raw.ID,
		Title:      raw.Title,
		Content:    raw.Content,
		NotebookID: raw.NotebookID,
		Importance: raw.Importance,
		Color:      raw.Color,
		IsFavorite: raw.IsFavorite,
		OwnerID:    raw.OwnerID,
		CreatedAt:  raw.CreatedAt,
		UpdatedAt:  raw.UpdatedAt,
		Tags:       make([]string, 0, len(raw.Tags)),
		Images:     raw.Images,
	}

	if raw.Notebook != nil {
		name := raw.Notebook.Name
		view.Notebook = &name
	}

	for _, tag := range raw.Tags {
		view.Tags = append(view.Tags, tag.Name)
	}

	if view.Images == nil {
		view.Images = []Image{}
	}

	return view
}

type ListOptions struct {
	Search        string
	SortBy        SortKey
	SortDirection SortDirection
	FavoritesOnly bool
}

type CreateNoteRequest struct {
	Title   string   `json:"title" validate:"required,max=255"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
}

// UpdateNoteRequest carries partial-update semantics: nil pointer
// fields are left untouched. Title and content are always overwritten.
// A non-nil empty Tags slice clears the note's tag set.
type UpdateNoteRequest struct {
	Title      string      `json:"title" validate:"required,max=255"`
	Content    string      `json:"content" validate:"required"`
	Importance *Importance `json:"importance" validate:"omitempty,oneof=High Medium Low"`
	NotebookID *string     `json:"notebook_id"`
	Color      *string     `json:"color"`
	IsFavorite *bool       `json:"is_favorite"`
	Tags       *[]string   `json:"tags"`
}

type DeleteNoteRequest struct {
	ImageKeys []string `json:"image_keys"`
}

type TagGroup struct {
	TagName    string      `json:"tag_name"`
	Notes      []*NoteView `json:"notes"`
	IsUntagged bool        `json:"is_untagged"`
}
