package service

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"notable-server/internal/domain"
	"notable-server/internal/repository"
	"notable-server/internal/uploads"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type NoteService struct {
	noteRepo  repository.NoteRepository
	imageRepo repository.ImageRepository
	tags      *TagService
	files     uploads.Deleter
	events    *EventService
}

func NewNoteService(
	noteRepo repository.NoteRepository,
	imageRepo repository.ImageRepository,
	tags *TagService,
	files uploads.Deleter,
	events *EventService,
) *NoteService {
	return &NoteService{
		noteRepo:  noteRepo,
		imageRepo: imageRepo,
		tags:      tags,
		files:     files,
		events:    events,
	}
}

var importanceRank = map[domain.Importance]int{
	domain.ImportanceLow:    1,
	domain.ImportanceMedium: 2,
	domain.ImportanceHigh:   3,
}

// List fetches the owner's notes in flattened shape, applying search,
// favorite filtering, and sorting. Defaults: createdAt descending, no
// search, all notes.
func (s *NoteService) List(ownerID string, opts domain.ListOptions) ([]*domain.NoteView, error) {
	raws, err := s.noteRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notes: %w", err)
	}

	search := strings.ToLower(opts.Search)

	views := make([]*domain.NoteView, 0, len(raws))
	for _, raw := range raws {
		if opts.FavoritesOnly && !raw.IsFavorite {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(raw.Title), search) &&
			!strings.Contains(strings.ToLower(raw.Content), search) {
			continue
		}
		views = append(views, domain.FlattenNote(raw))
	}

	sortNotes(views, opts)

	return views, nil
}

// Get is the single-note variant of List. Ownership is enforced here
// as well: a note belonging to another user reads as not found.
func (s *NoteService) Get(ownerID, id string) (*domain.NoteView, error) {
	raw, err := s.noteRepo.FindByOwner(ownerID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch note: %w", err)
	}

	return domain.FlattenNote(raw), nil
}

func (s *NoteService) Create(ownerID string, req *domain.CreateNoteRequest) (*domain.NoteView, error) {
	now := time.Now()
	note := &domain.Note{
		ID:         uuid.New().String(),
		Title:      req.Title,
		Content:    req.Content,
		Importance: domain.ImportanceMedium,
		IsFavorite: false,
		OwnerID:    ownerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	if len(req.Tags) > 0 {
		if err := s.tags.Sync(ownerID, note.ID, req.Tags); err != nil {
			return nil, err
		}
	}

	view, err := s.Get(ownerID, note.ID)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.NoteCreated(ownerID, view)
	}

	return view, nil
}

// Update applies partial-update semantics: nil pointer fields in the
// request leave the stored value untouched; title and content are
// always overwritten. A non-nil Tags slice, including an empty one,
// triggers tag synchronization.
func (s *NoteService) Update(ownerID, id string, req *domain.UpdateNoteRequest) (*domain.NoteView, error) {
	raw, err := s.noteRepo.FindByOwner(ownerID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch note: %w", err)
	}

	note := raw.Note
	note.Title = req.Title
	note.Content = req.Content
	if req.Importance != nil {
		note.Importance = *req.Importance
	}
	if req.NotebookID != nil {
		note.NotebookID = req.NotebookID
	}
	if req.Color != nil {
		note.Color = req.Color
	}
	if req.IsFavorite != nil {
		note.IsFavorite = *req.IsFavorite
	}
	note.UpdatedAt = time.Now()

	if err := s.noteRepo.Update(&note); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	if req.Tags != nil {
		if err := s.tags.Sync(ownerID, id, *req.Tags); err != nil {
			return nil, err
		}
	}

	view, err := s.Get(ownerID, id)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.NoteUpdated(ownerID, view)
	}

	return view, nil
}

// Delete removes the note's image rows, then the remote objects for
// the supplied storage keys, then the note row itself. The database
// and remote removals are not atomic: a remote failure after the rows
// are gone leaves the note in place until the next attempt, which is
// staleness rather than corruption since the note row stays the source
// of truth.
func (s *NoteService) Delete(ownerID, id string, imageKeys []string) error {
	if _, err := s.noteRepo.FindByOwner(ownerID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fetch note: %w", err)
	}

	if err := s.imageRepo.DeleteByNote(ownerID, id); err != nil {
		return fmt.Errorf("failed to delete note images: %w", err)
	}

	if err := s.files.DeleteFiles(imageKeys); err != nil {
		log.Printf("remote image delete failed for note %s: %v", id, err)
		return fmt.Errorf("failed to delete stored images: %w", err)
	}

	if err := s.noteRepo.Delete(ownerID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if s.events != nil {
		s.events.NoteDeleted(ownerID, id)
	}

	return nil
}

// ToggleFavorite is a read-modify-write without a lock: two concurrent
// toggles on the same note can race and the flag lands on whichever
// write runs last.
func (s *NoteService) ToggleFavorite(ownerID, id string) (*domain.NoteView, error) {
	raw, err := s.noteRepo.FindByOwner(ownerID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch note: %w", err)
	}

	if err := s.noteRepo.SetFavorite(ownerID, id, !raw.IsFavorite); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	view, err := s.Get(ownerID, id)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.FavoriteToggled(ownerID, view)
	}

	return view, nil
}

// GroupNotes partitions a filtered note list into per-tag buckets. A
// note appears once per tag it carries; notes without tags land in a
// synthetic "Untagged" bucket appended after the alphabetical buckets,
// and only when it is non-empty.
func (s *NoteService) GroupNotes(ownerID string, opts domain.ListOptions) ([]*domain.TagGroup, error) {
	views, err := s.List(ownerID, opts)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string][]*domain.NoteView)
	var untagged []*domain.NoteView

	for _, view := range views {
		if len(view.Tags) == 0 {
			untagged = append(untagged, view)
			continue
		}
		for _, tag := range view.Tags {
			buckets[tag] = append(buckets[tag], view)
		}
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	collator := collate.New(language.Und, collate.IgnoreCase)
	collator.SortStrings(names)

	groups := make([]*domain.TagGroup, 0, len(names)+1)
	for _, name := range names {
		groups = append(groups, &domain.TagGroup{
			TagName: name,
			Notes:   buckets[name],
		})
	}

	if len(untagged) > 0 {
		groups = append(groups, &domain.TagGroup{
			TagName:    "Untagged",
			Notes:      untagged,
			IsUntagged: true,
		})
	}

	return groups, nil
}

// sortNotes orders views by the requested key and direction. Ties are
// broken by note ID ascending regardless of direction so repeated
// listings are deterministic.
func sortNotes(views []*domain.NoteView, opts domain.ListOptions) {
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = domain.SortByCreatedAt
	}
	direction := opts.SortDirection
	if direction == "" {
		direction = domain.SortDesc
	}

	collator := collate.New(language.Und, collate.IgnoreCase)

	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]

		var cmp int
		switch sortBy {
		case domain.SortByTitle:
			cmp = collator.CompareString(a.Title, b.Title)
		case domain.SortByUpdatedAt:
			cmp = compareTimes(a.UpdatedAt, b.UpdatedAt)
		case domain.SortByImportance:
			cmp = importanceRank[a.Importance] - importanceRank[b.Importance]
		default:
			cmp = compareTimes(a.CreatedAt, b.CreatedAt)
		}

		if direction == domain.SortDesc {
			cmp = -cmp
		}
		if cmp == 0 {
			return a.ID < b.ID
		}
		return cmp < 0
	})
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
