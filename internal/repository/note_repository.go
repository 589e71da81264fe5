package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"notable-server/internal/domain"
)

type NoteRepository interface {
	Create(note *domain.Note) error
	// FindByOwner loads one note with its notebook, tags, and images,
	// scoped by (id AND owner_id).
	FindByOwner(ownerID, id string) (*domain.RawNote, error)
	// ListByOwner loads every note owned by ownerID with associations
	// eager-loaded in batch queries.
	ListByOwner(ownerID string) ([]*domain.RawNote, error)
	Update(note *domain.Note) error
	SetFavorite(ownerID, id string, favorite bool) error
	Delete(ownerID, id string) error
}

type noteRepository struct {
	db *DB
}

func NewNoteRepository(db *DB) NoteRepository {
	return &noteRepository{db: db}
}

const noteColumns = `id, title, content, notebook_id, importance, color, is_favorite, owner_id, created_at, updated_at`

func (r *noteRepository) Create(note *domain.Note) error {
	query := r.db.rebind(`INSERT INTO notes (` + noteColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.Exec(query,
		note.ID, note.Title, note.Content, note.NotebookID, note.Importance,
		note.Color, note.IsFavorite, note.OwnerID, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	return nil
}

func (r *noteRepository) FindByOwner(ownerID, id string) (*domain.RawNote, error) {
	query := r.db.rebind(`SELECT ` + noteColumns + ` FROM notes WHERE id = ? AND owner_id = ?`)

	var note domain.Note
	err := r.db.QueryRow(query, id, ownerID).Scan(
		&note.ID, &note.Title, &note.Content, &note.NotebookID, &note.Importance,
		&note.Color, &note.IsFavorite, &note.OwnerID, &note.CreatedAt, &note.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	raw := &domain.RawNote{Note: note}

	if note.NotebookID != nil {
		notebook, err := r.loadNotebook(*note.NotebookID)
		if err != nil {
			return nil, err
		}
		raw.Notebook = notebook
	}

	raw.Tags, err = r.loadNoteTags(note.ID)
	if err != nil {
		return nil, err
	}

	raw.Images, err = r.loadNoteImages(note.ID)
	if err != nil {
		return nil, err
	}

	return raw, nil
}

func (r *noteRepository) ListByOwner(ownerID string) ([]*domain.RawNote, error) {
	query := r.db.rebind(`SELECT ` + noteColumns + ` FROM notes
		WHERE owner_id = ? ORDER BY created_at DESC, id ASC`)

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.RawNote
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(
			&note.ID, &note.Title, &note.Content, &note.NotebookID, &note.Importance,
			&note.Color, &note.IsFavorite, &note.OwnerID, &note.CreatedAt, &note.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &domain.RawNote{Note: note})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	if len(notes) == 0 {
		return notes, nil
	}

	notebooks, err := r.loadOwnerNotebooks(ownerID)
	if err != nil {
		return nil, err
	}
	tagsByNote, err := r.loadOwnerNoteTags(ownerID)
	if err != nil {
		return nil, err
	}
	imagesByNote, err := r.loadOwnerImages(ownerID)
	if err != nil {
		return nil, err
	}

	for _, raw := range notes {
		if raw.NotebookID != nil {
			if nb, ok := notebooks[*raw.NotebookID]; ok {
				raw.Notebook = nb
			}
		}
		raw.Tags = tagsByNote[raw.ID]
		raw.Images = imagesByNote[raw.ID]
	}

	return notes, nil
}

func (r *noteRepository) Update(note *domain.Note) error {
	query := r.db.rebind(`UPDATE notes
		SET title = ?, content = ?, notebook_id = ?, importance = ?, color = ?, is_favorite = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`)

	result, err := r.db.Exec(query,
		note.Title, note.Content, note.NotebookID, note.Importance,
		note.Color, note.IsFavorite, note.UpdatedAt,
		note.ID, note.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	return requireRows(result)
}

func (r *noteRepository) SetFavorite(ownerID, id string, favorite bool) error {
	query := r.db.rebind(`UPDATE notes SET is_favorite = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`)

	result, err := r.db.Exec(query, favorite, time.Now(), id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to update favorite flag: %w", err)
	}

	return requireRows(result)
}

func (r *noteRepository) Delete(ownerID, id string) error {
	query := r.db.rebind(`DELETE FROM notes WHERE id = ? AND owner_id = ?`)

	result, err := r.db.Exec(query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return requireRows(result)
}

func (r *noteRepository) loadNotebook(id string) (*domain.Notebook, error) {
	query := r.db.rebind(`SELECT id, name, owner_id, created_at, updated_at
		FROM notebooks WHERE id = ?`)

	var nb domain.Notebook
	err := r.db.QueryRow(query, id).Scan(&nb.ID, &nb.Name, &nb.OwnerID, &nb.CreatedAt, &nb.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load notebook: %w", err)
	}
	return &nb, nil
}

func (r *noteRepository) loadOwnerNotebooks(ownerID string) (map[string]*domain.Notebook, error) {
	query := r.db.rebind(`SELECT id, name, owner_id, created_at, updated_at
		FROM notebooks WHERE owner_id = ?`)

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notebooks: %w", err)
	}
	defer rows.Close()

	notebooks := make(map[string]*domain.Notebook)
	for rows.Next() {
		var nb domain.Notebook
		if err := rows.Scan(&nb.ID, &nb.Name, &nb.OwnerID, &nb.CreatedAt, &nb.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notebook: %w", err)
		}
		notebooks[nb.ID] = &nb
	}
	return notebooks, rows.Err()
}

func (r *noteRepository) loadNoteTags(noteID string) ([]domain.Tag, error) {
	query := r.db.rebind(`SELECT t.id, t.name, t.owner_id, t.created_at
		FROM tags t
		JOIN notes_to_tags nt ON nt.tag_id = t.id
		WHERE nt.note_id = ?
		ORDER BY t.name`)

	rows, err := r.db.Query(query, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load note tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.OwnerID, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (r *noteRepository) loadOwnerNoteTags(ownerID string) (map[string][]domain.Tag, error) {
	query := r.db.rebind(`SELECT nt.note_id, t.id, t.name, t.owner_id, t.created_at
		FROM notes_to_tags nt
		JOIN tags t ON t.id = nt.tag_id
		WHERE t.owner_id = ?
		ORDER BY t.name`)

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load note tags: %w", err)
	}
	defer rows.Close()

	tagsByNote := make(map[string][]domain.Tag)
	for rows.Next() {
		var noteID string
		var tag domain.Tag
		if err := rows.Scan(&noteID, &tag.ID, &tag.Name, &tag.OwnerID, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tagsByNote[noteID] = append(tagsByNote[noteID], tag)
	}
	return tagsByNote, rows.Err()
}

func (r *noteRepository) loadNoteImages(noteID string) ([]domain.Image, error) {
	query := r.db.rebind(`SELECT id, alt_text, content_type, image_src, storage_key, note_id, owner_id, created_at
		FROM images WHERE note_id = ? ORDER BY created_at, id`)

	rows, err := r.db.Query(query, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}
	defer rows.Close()

	var images []domain.Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, *img)
	}
	return images, rows.Err()
}

func (r *noteRepository) loadOwnerImages(ownerID string) (map[string][]domain.Image, error) {
	query := r.db.rebind(`SELECT id, alt_text, content_type, image_src, storage_key, note_id, owner_id, created_at
		FROM images WHERE owner_id = ? ORDER BY created_at, id`)

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}
	defer rows.Close()

	imagesByNote := make(map[string][]domain.Image)
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		imagesByNote[img.NoteID] = append(imagesByNote[img.NoteID], *img)
	}
	return imagesByNote, rows.Err()
}

func scanImage(rows *sql.Rows) (*domain.Image, error) {
	var img domain.Image
	if err := rows.Scan(&img.ID, &img.AltText, &img.ContentType, &img.ImageSrc,
		&img.Key, &img.NoteID, &img.OwnerID, &img.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan image: %w", err)
	}
	return &img, nil
}

func requireRows(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
