package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	apperrors "estatehub/internal/errors"
	"estatehub/internal/models"
	"estatehub/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers godoc
// @Summary List users
// @Description List the newest users; password hashes are never included
// @Tags Admin
// @Produce json
// @Param limit query int false "Page size, at most 200"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			abortWithError(c, apperrors.NewBadRequest(fmt.Sprintf("invalid limit value: %s", raw)))
			return
		}
		limit = parsed
	}

	users, err := h.adminService.ListUsers(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": users, "count": len(users)})
}

// UpdateUserStatus godoc
// @Summary Update a user's status
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body models.UserStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/users/{id}/status [post]
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	var req models.UserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	if err := h.adminService.UpdateUserStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true})
}
