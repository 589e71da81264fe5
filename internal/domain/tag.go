package domain

import "time"

// Tag rows are shared per owner: every note carrying the same name
// references the same row through the join table.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}
