package service

import (
	"errors"
	"testing"

	"notable-server/internal/domain"
	"notable-server/internal/repository"
)

type mockNotebookRepo struct {
	notebooks map[string]*domain.Notebook
}

func newMockNotebookRepo() *mockNotebookRepo {
	return &mockNotebookRepo{
		notebooks: make(map[string]*domain.Notebook),
	}
}

func (m *mockNotebookRepo) Create(notebook *domain.Notebook) error {
	m.notebooks[notebook.ID] = notebook
	return nil
}

func (m *mockNotebookRepo) ListByOwner(ownerID string) ([]*domain.Notebook, error) {
	var notebooks []*domain.Notebook
	for _, nb := range m.notebooks {
		if nb.OwnerID == ownerID {
			notebooks = append(notebooks, nb)
		}
	}
	return notebooks, nil
}

func (m *mockNotebookRepo) NameExists(ownerID, name string) (bool, error) {
	for _, nb := range m.notebooks {
		if nb.OwnerID == ownerID && nb.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockNotebookRepo) Delete(ownerID, id string) error {
	nb, exists := m.notebooks[id]
	if !exists || nb.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(m.notebooks, id)
	return nil
}

func TestNotebookService_Create(t *testing.T) {
	repo := newMockNotebookRepo()
	svc := NewNotebookService(repo)

	notebook, err := svc.Create("user1", &domain.CreateNotebookRequest{Name: "Work"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if notebook.ID == "" {
		t.Error("expected notebook ID to be generated")
	}

	_, err = svc.Create("user1", &domain.CreateNotebookRequest{Name: "Work"})
	if !errors.Is(err, ErrNotebookExists) {
		t.Errorf("expected ErrNotebookExists for duplicate name, got %v", err)
	}

	// Duplicate names are fine across owners.
	if _, err := svc.Create("user2", &domain.CreateNotebookRequest{Name: "Work"}); err != nil {
		t.Errorf("expected per-owner uniqueness only, got %v", err)
	}
}

func TestNotebookService_Delete(t *testing.T) {
	repo := newMockNotebookRepo()
	svc := NewNotebookService(repo)

	notebook, _ := svc.Create("user1", &domain.CreateNotebookRequest{Name: "Old"})

	if err := svc.Delete("user2", notebook.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign owner, got %v", err)
	}

	if err := svc.Delete("user1", notebook.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	list, _ := svc.List("user1")
	if len(list) != 0 {
		t.Errorf("expected no notebooks after delete, got %d", len(list))
	}
}
