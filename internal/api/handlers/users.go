package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/develop-y-minami/v-spa/internal/api"
	"github.com/develop-y-minami/v-spa/internal/service"
	"github.com/develop-y-minami/v-spa/internal/validation"
)

// UserHandler handles the /api/users endpoints
type UserHandler struct {
	users     *service.UserService
	validator *validation.UserValidator
}

// NewUserHandler creates a new UserHandler instance with its required dependencies
func NewUserHandler(users *service.UserService, validator *validation.UserValidator) *UserHandler {
	return &UserHandler{
		users:     users,
		validator: validator,
	}
}

// List returns every user. Password hashes never leave the models layer
// (json:"-" on the struct).
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		api.Error(c, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	api.Success(c, http.StatusOK, users)
}

// Create validates the raw body, then delegates to the service.
func (h *UserHandler) Create(c *gin.Context) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		api.Error(c, http.StatusBadRequest, "Invalid input")
		return
	}

	payload, errs, err := h.validator.Validate(c.Request.Context(), validation.ModeCreate, 0, input)
	if err != nil {
		slog.Error("uniqueness check failed", "error", err)
		api.Error(c, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}
	if errs != nil {
		api.ValidationFailed(c, errs)
		return
	}

	user, err := h.users.Create(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			api.Error(c, http.StatusConflict, "このユーザー名またはメールアドレスは既に登録されています。")
			return
		}
		slog.Error("failed to create user", "username", payload.Username, "error", err)
		api.Error(c, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	api.Success(c, http.StatusCreated, user)
}

// Delete removes a user. An id that was seen before and is gone now answers
// 410; an id this service never saw answers 404.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		api.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	outcome, err := h.users.Delete(c.Request.Context(), uint(id))
	if err != nil {
		slog.Error("failed to delete user", "user_id", id, "error", err)
		api.Error(c, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	switch outcome {
	case service.Deleted:
		api.Success(c, http.StatusNoContent, nil)
	case service.AlreadyGone:
		api.Error(c, http.StatusGone, "ユーザーは既に削除されています。")
	default:
		api.Error(c, http.StatusNotFound, "ユーザーが見つかりません。")
	}
}
