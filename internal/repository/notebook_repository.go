package repository

import (
	"fmt"

	"notable-server/internal/domain"
)

type NotebookRepository interface {
	Create(notebook *domain.Notebook) error
	ListByOwner(ownerID string) ([]*domain.Notebook, error)
	NameExists(ownerID, name string) (bool, error)
	Delete(ownerID, id string) error
}

type notebookRepository struct {
	db *DB
}

func NewNotebookRepository(db *DB) NotebookRepository {
	return &notebookRepository{db: db}
}

func (r *notebookRepository) Create(notebook *domain.Notebook) error {
	query := r.db.rebind(`INSERT INTO notebooks (id, name, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`)

	_, err := r.db.Exec(query,
		notebook.ID, notebook.Name, notebook.OwnerID,
		notebook.CreatedAt, notebook.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create notebook: %w", err)
	}

	return nil
}

func (r *notebookRepository) ListByOwner(ownerID string) ([]*domain.Notebook, error) {
	query := r.db.rebind(`SELECT id, name, owner_id, created_at, updated_at
		FROM notebooks WHERE owner_id = ? ORDER BY name`)

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notebooks: %w", err)
	}
	defer rows.Close()

	var notebooks []*domain.Notebook
	for rows.Next() {
		var nb domain.Notebook
		if err := rows.Scan(&nb.ID, &nb.Name, &nb.OwnerID, &nb.CreatedAt, &nb.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notebook: %w", err)
		}
		notebooks = append(notebooks, &nb)
	}
	return notebooks, rows.Err()
}

func (r *notebookRepository) NameExists(ownerID, name string) (bool, error) {
	var count int
	query := r.db.rebind(`SELECT COUNT(*) FROM notebooks WHERE owner_id = ? AND name = ?`)
	if err := r.db.QueryRow(query, ownerID, name).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check notebook name: %w", err)
	}
	return count > 0, nil
}

// Delete removes the notebook row; referencing notes fall back to no
// notebook through the ON DELETE SET NULL rule.
func (r *notebookRepository) Delete(ownerID, id string) error {
	query := r.db.rebind(`DELETE FROM notebooks WHERE id = ? AND owner_id = ?`)

	result, err := r.db.Exec(query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete notebook: %w", err)
	}

	return requireRows(result)
}
