package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"notable-server/internal/domain"

	"github.com/google/uuid"
)

type TagRepository interface {
	ListByOwner(ownerID string) ([]*domain.Tag, error)
	// SyncNoteTags atomically replaces the note's tag associations with
	// the given set of names, creating missing per-owner tag rows.
	// Names must already be trimmed and deduplicated.
	SyncNoteTags(ownerID, noteID string, names []string) ([]domain.Tag, error)
}

type tagRepository struct {
	db *DB
}

func NewTagRepository(db *DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) ListByOwner(ownerID string) ([]*domain.Tag, error) {
	query := r.db.rebind(`SELECT id, name, owner_id, created_at
		FROM tags WHERE owner_id = ? ORDER BY name`)

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []*domain.Tag
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.OwnerID, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, &tag)
	}
	return tags, rows.Err()
}

// SyncNoteTags runs delete-then-reinsert inside one transaction so a
// failure mid-sequence cannot leave the note with a partial tag set.
func (r *tagRepository) SyncNoteTags(ownerID, noteID string, names []string) ([]domain.Tag, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin tag sync: %w", err)
	}
	defer tx.Rollback()

	deleteQuery := r.db.rebind(`DELETE FROM notes_to_tags WHERE note_id = ?`)
	if _, err := tx.Exec(deleteQuery, noteID); err != nil {
		return nil, fmt.Errorf("failed to clear tag associations: %w", err)
	}

	tags := make([]domain.Tag, 0, len(names))
	for _, name := range names {
		tag, err := r.getOrCreateTag(tx, ownerID, name)
		if err != nil {
			return nil, err
		}

		insertQuery := r.db.rebind(`INSERT INTO notes_to_tags (note_id, tag_id) VALUES (?, ?)`)
		if _, err := tx.Exec(insertQuery, noteID, tag.ID); err != nil {
			return nil, fmt.Errorf("failed to associate tag %q: %w", name, err)
		}

		tags = append(tags, *tag)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit tag sync: %w", err)
	}

	return tags, nil
}

func (r *tagRepository) getOrCreateTag(tx *sql.Tx, ownerID, name string) (*domain.Tag, error) {
	selectQuery := r.db.rebind(`SELECT id, name, owner_id, created_at
		FROM tags WHERE owner_id = ? AND name = ?`)

	var tag domain.Tag
	err := tx.QueryRow(selectQuery, ownerID, name).Scan(&tag.ID, &tag.Name, &tag.OwnerID, &tag.CreatedAt)
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up tag %q: %w", name, err)
	}

	tag = domain.Tag{
		ID:        uuid.New().String(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
	}

	insertQuery := r.db.rebind(`INSERT INTO tags (id, name, owner_id, created_at) VALUES (?, ?, ?, ?)`)
	if _, err := tx.Exec(insertQuery, tag.ID, tag.Name, tag.OwnerID, tag.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
	}

	return &tag, nil
}
