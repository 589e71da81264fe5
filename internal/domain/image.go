package domain

import "time"

// Image is the stored metadata for an uploaded file. Key identifies
// the object at the external upload service; ImageSrc is its public
// URL.
type Image struct {
	ID          string    `json:"id"`
	AltText     *string   `json:"alt_text"`
	ContentType *string   `json:"content_type"`
	ImageSrc    string    `json:"image_src"`
	Key         string    `json:"key"`
	NoteID      string    `json:"note_id"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisterImageRequest is the upload-complete callback payload.
type RegisterImageRequest struct {
	ImageSrc    string  `json:"image_src" validate:"required,url"`
	Key         string  `json:"key" validate:"required,max=255"`
	ContentType *string `json:"content_type"`
	AltText     *string `json:"alt_text"`
}
