package handler

import (
	"net/http"

	"notable-server/internal/middleware"
	"notable-server/internal/service"
	"notable-server/pkg/response"
)

type TagHandler struct {
	service *service.TagService
}

func NewTagHandler(service *service.TagService) *TagHandler {
	return &TagHandler{service: service}
}

func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	tags, err := h.service.List(userID)
	if err != nil {
		response.InternalError(w, "Failed to fetch tags")
		return
	}

	response.Success(w, tags)
}
