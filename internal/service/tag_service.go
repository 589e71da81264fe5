package service

import (
	"fmt"
	"strings"

	"notable-server/internal/domain"
	"notable-server/internal/repository"
)

type TagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) List(ownerID string) ([]*domain.Tag, error) {
	tags, err := s.tagRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tags: %w", err)
	}
	return tags, nil
}

// Sync makes the note's tag associations equal to the desired name
// set. Names are trimmed; empties and duplicates are dropped. Existing
// per-owner tags are reused, missing ones created, and the join table
// rewritten in one transaction. Calling twice with the same names is a
// no-op; an empty list clears the note's tags.
func (s *TagService) Sync(ownerID, noteID string, names []string) error {
	normalized := normalizeTagNames(names)

	if _, err := s.tagRepo.SyncNoteTags(ownerID, noteID, normalized); err != nil {
		return fmt.Errorf("failed to sync tags: %w", err)
	}

	return nil
}

func normalizeTagNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		normalized = append(normalized, name)
	}
	return normalized
}
