package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/develop-y-minami/v-spa/internal/api"
	"github.com/develop-y-minami/v-spa/internal/service"
)

// RoleCodeHandler handles the read-only /api/role-codes endpoints
type RoleCodeHandler struct {
	roleCodes *service.RoleCodeService
}

// NewRoleCodeHandler creates a new RoleCodeHandler instance
func NewRoleCodeHandler(roleCodes *service.RoleCodeService) *RoleCodeHandler {
	return &RoleCodeHandler{roleCodes: roleCodes}
}

func (h *RoleCodeHandler) List(c *gin.Context) {
	roleCodes, err := h.roleCodes.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("failed to list role codes", "error", err)
		api.Error(c, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	api.Success(c, http.StatusOK, roleCodes)
}

func (h *RoleCodeHandler) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		api.Error(c, http.StatusBadRequest, "Invalid role code ID")
		return
	}

	roleCode, err := h.roleCodes.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			api.Error(c, http.StatusNotFound, "Role code not found")
			return
		}
		slog.Error("failed to fetch role code", "role_code_id", id, "error", err)
		api.Error(c, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	api.Success(c, http.StatusOK, roleCode)
}
