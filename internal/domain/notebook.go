package domain

import "time"

// Notebook names are unique per owner; the storage layer enforces it.
type Notebook struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateNotebookRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}
