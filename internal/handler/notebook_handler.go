package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"notable-server/internal/domain"
	"notable-server/internal/middleware"
	"notable-server/internal/service"
	"notable-server/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type NotebookHandler struct {
	service  *service.NotebookService
	validate *validator.Validate
}

func NewNotebookHandler(service *service.NotebookService) *NotebookHandler {
	return &NotebookHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *NotebookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateNotebookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	userID := middleware.GetUserID(r)

	notebook, err := h.service.Create(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotebookExists) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create notebook")
		return
	}

	response.Created(w, notebook)
}

func (h *NotebookHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	notebooks, err := h.service.List(userID)
	if err != nil {
		response.InternalError(w, "Failed to fetch notebooks")
		return
	}

	response.Success(w, notebooks)
}

func (h *NotebookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	notebookID := mux.Vars(r)["id"]
	if notebookID == "" {
		response.BadRequest(w, "Notebook ID is required")
		return
	}

	userID := middleware.GetUserID(r)

	if err := h.service.Delete(userID, notebookID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(w, "Notebook not found")
			return
		}
		response.InternalError(w, "Failed to delete notebook")
		return
	}

	response.Success(w, map[string]string{"message": "Notebook deleted successfully"})
}
