package handler

import (
	"errors"
	"net/http"

	"notable-server/internal/middleware"
	"notable-server/internal/service"
	"notable-server/pkg/response"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	user, err := h.userService.GetByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalError(w, "Failed to fetch user")
		return
	}

	response.Success(w, user)
}
