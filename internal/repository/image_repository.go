package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"notable-server/internal/domain"
)

type ImageRepository interface {
	Create(image *domain.Image) error
	FindByOwner(ownerID, id string) (*domain.Image, error)
	Delete(ownerID, id string) error
	DeleteByNote(ownerID, noteID string) error
}

type imageRepository struct {
	db *DB
}

func NewImageRepository(db *DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(image *domain.Image) error {
	query := r.db.rebind(`INSERT INTO images (id, alt_text, content_type, image_src, storage_key, note_id, owner_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.Exec(query,
		image.ID, image.AltText, image.ContentType, image.ImageSrc,
		image.Key, image.NoteID, image.OwnerID, image.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	return nil
}

func (r *imageRepository) FindByOwner(ownerID, id string) (*domain.Image, error) {
	query := r.db.rebind(`SELECT id, alt_text, content_type, image_src, storage_key, note_id, owner_id, created_at
		FROM images WHERE id = ? AND owner_id = ?`)

	var img domain.Image
	err := r.db.QueryRow(query, id, ownerID).Scan(
		&img.ID, &img.AltText, &img.ContentType, &img.ImageSrc,
		&img.Key, &img.NoteID, &img.OwnerID, &img.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find image: %w", err)
	}

	return &img, nil
}

func (r *imageRepository) Delete(ownerID, id string) error {
	query := r.db.rebind(`DELETE FROM images WHERE id = ? AND owner_id = ?`)

	result, err := r.db.Exec(query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return requireRows(result)
}

// DeleteByNote removes every image row for the note. Zero rows is not
// an error: notes without attachments are the common case.
func (r *imageRepository) DeleteByNote(ownerID, noteID string) error {
	query := r.db.rebind(`DELETE FROM images WHERE note_id = ? AND owner_id = ?`)

	if _, err := r.db.Exec(query, noteID, ownerID); err != nil {
		return fmt.Errorf("failed to delete note images: %w", err)
	}

	return nil
}
