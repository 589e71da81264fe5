package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"notable-server/internal/domain"
	"notable-server/internal/middleware"
	"notable-server/internal/service"
	"notable-server/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type NoteHandler struct {
	service  *service.NoteService
	validate *validator.Validate
}

func NewNoteHandler(service *service.NoteService) *NoteHandler {
	return &NoteHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	userID := middleware.GetUserID(r)

	note, err := h.service.Create(userID, &req)
	if err != nil {
		response.InternalError(w, "Failed to create note")
		return
	}

	response.Created(w, note)
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	notes, err := h.service.List(userID, listOptionsFromQuery(r.URL.Query()))
	if err != nil {
		response.InternalError(w, "Failed to fetch notes")
		return
	}

	response.Success(w, notes)
}

func (h *NoteHandler) ListGrouped(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	groups, err := h.service.GroupNotes(userID, listOptionsFromQuery(r.URL.Query()))
	if err != nil {
		response.InternalError(w, "Failed to fetch notes")
		return
	}

	response.Success(w, groups)
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	noteID := mux.Vars(r)["id"]
	if noteID == "" {
		response.BadRequest(w, "Note ID is required")
		return
	}

	userID := middleware.GetUserID(r)

	note, err := h.service.Get(userID, noteID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(w, "Note not found")
			return
		}
		response.InternalError(w, "Failed to fetch note")
		return
	}

	response.Success(w, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	noteID := mux.Vars(r)["id"]
	if noteID == "" {
		response.BadRequest(w, "Note ID is required")
		return
	}

	var req domain.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	userID := middleware.GetUserID(r)

	note, err := h.service.Update(userID, noteID, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(w, "Note not found")
			return
		}
		response.InternalError(w, "Failed to update note")
		return
	}

	response.Success(w, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	noteID := mux.Vars(r)["id"]
	if noteID == "" {
		response.BadRequest(w, "Note ID is required")
		return
	}

	// The body is optional: callers without attachments send none.
	var req domain.DeleteNoteRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	userID := middleware.GetUserID(r)

	if err := h.service.Delete(userID, noteID, req.ImageKeys); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(w, "Note not found")
			return
		}
		response.InternalError(w, "Failed to delete note")
		return
	}

	response.Success(w, map[string]string{"message": "Note deleted successfully"})
}

func (h *NoteHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	noteID := mux.Vars(r)["id"]
	if noteID == "" {
		response.BadRequest(w, "Note ID is required")
		return
	}

	userID := middleware.GetUserID(r)

	note, err := h.service.ToggleFavorite(userID, noteID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(w, "Note not found")
			return
		}
		response.InternalError(w, "Failed to toggle favorite")
		return
	}

	response.Success(w, note)
}

func listOptionsFromQuery(query url.Values) domain.ListOptions {
	opts := domain.ListOptions{
		Search:        query.Get("search"),
		FavoritesOnly: query.Get("favorites_only") == "true",
	}

	switch key := domain.SortKey(query.Get("sort_by")); key {
	case domain.SortByCreatedAt, domain.SortByUpdatedAt, domain.SortByTitle, domain.SortByImportance:
		opts.SortBy = key
	}

	switch dir := domain.SortDirection(query.Get("sort_direction")); dir {
	case domain.SortAsc, domain.SortDesc:
		opts.SortDirection = dir
	}

	return opts
}
