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

type ImageHandler struct {
	service  *service.ImageService
	validate *validator.Validate
}

func NewImageHandler(service *service.ImageService) *ImageHandler {
	return &ImageHandler{
		service:  service,
		validate: validator.New(),
	}
}

// Register is the upload-complete callback: the client reports the
// stored file's metadata after the upload service accepts it.
func (h *ImageHandler) Register(w http.ResponseWriter, r *http.Request) {
	noteID := mux.Vars(r)["id"]
	if noteID == "" {
		response.BadRequest(w, "Note ID is required")
		return
	}

	var req domain.RegisterImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	userID := middleware.GetUserID(r)

	image, err := h.service.Register(userID, noteID, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(w, "Note not found")
			return
		}
		response.InternalError(w, "Failed to register image")
		return
	}

	response.Created(w, image)
}

func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	imageID := mux.Vars(r)["id"]
	if imageID == "" {
		response.BadRequest(w, "Image ID is required")
		return
	}

	userID := middleware.GetUserID(r)

	if err := h.service.Delete(userID, imageID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(w, "Image not found")
			return
		}
		response.InternalError(w, "Failed to delete image")
		return
	}

	response.Success(w, map[string]string{"message": "Image deleted successfully"})
}
