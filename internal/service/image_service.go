package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"notable-server/internal/domain"
	"notable-server/internal/repository"
	"notable-server/internal/uploads"

	"github.com/google/uuid"
)

type ImageService struct {
	imageRepo repository.ImageRepository
	noteRepo  repository.NoteRepository
	files     uploads.Deleter
}

func NewImageService(imageRepo repository.ImageRepository, noteRepo repository.NoteRepository, files uploads.Deleter) *ImageService {
	return &ImageService{
		imageRepo: imageRepo,
		noteRepo:  noteRepo,
		files:     files,
	}
}

// Register records the metadata the upload service reports after a
// completed upload. The note must belong to the authenticated owner.
func (s *ImageService) Register(ownerID, noteID string, req *domain.RegisterImageRequest) (*domain.Image, error) {
	if _, err := s.noteRepo.FindByOwner(ownerID, noteID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch note: %w", err)
	}

	image := &domain.Image{
		ID:          uuid.New().String(),
		AltText:     req.AltText,
		ContentType: req.ContentType,
		ImageSrc:    req.ImageSrc,
		Key:         req.Key,
		NoteID:      noteID,
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
	}

	if err := s.imageRepo.Create(image); err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}

	return image, nil
}

// Delete removes the image row, then the backing remote object. The
// two removals are not atomic; a remote failure after the row is gone
// orphans the stored object and is reported to the caller.
func (s *ImageService) Delete(ownerID, id string) error {
	image, err := s.imageRepo.FindByOwner(ownerID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fetch image: %w", err)
	}

	if err := s.imageRepo.Delete(ownerID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete image: %w", err)
	}

	if err := s.files.DeleteFiles([]string{image.Key}); err != nil {
		log.Printf("remote image delete failed for key %s: %v", image.Key, err)
		return fmt.Errorf("failed to delete stored image: %w", err)
	}

	return nil
}
