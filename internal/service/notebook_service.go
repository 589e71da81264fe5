package service

import (
	"errors"
	"fmt"
	"time"

	"notable-server/internal/domain"
	"notable-server/internal/repository"

	"github.com/google/uuid"
)

type NotebookService struct {
	notebookRepo repository.NotebookRepository
}

func NewNotebookService(notebookRepo repository.NotebookRepository) *NotebookService {
	return &NotebookService{notebookRepo: notebookRepo}
}

func (s *NotebookService) Create(ownerID string, req *domain.CreateNotebookRequest) (*domain.Notebook, error) {
	exists, err := s.notebookRepo.NameExists(ownerID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check notebook name: %w", err)
	}
	if exists {
		return nil, ErrNotebookExists
	}

	now := time.Now()
	notebook := &domain.Notebook{
		ID:        uuid.New().String(),
		Name:      req.Name,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.notebookRepo.Create(notebook); err != nil {
		return nil, fmt.Errorf("failed to create notebook: %w", err)
	}

	return notebook, nil
}

func (s *NotebookService) List(ownerID string) ([]*domain.Notebook, error) {
	notebooks, err := s.notebookRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notebooks: %w", err)
	}
	return notebooks, nil
}

// Delete removes the notebook; notes referencing it keep existing with
// their notebook reference cleared by the storage layer.
func (s *NotebookService) Delete(ownerID, id string) error {
	if err := s.notebookRepo.Delete(ownerID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete notebook: %w", err)
	}
	return nil
}
