package handlers

import (
	"net/http"

	apperrors "estatehub/internal/errors"
	"estatehub/internal/models"
	"estatehub/internal/services"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Create godoc
// @Summary Send a message
// @Description Send a message between two existing users, optionally tied to a property
// @Tags Messages
// @Accept json
// @Produce json
// @Param message body models.MessageCreateRequest true "Message data"
// @Success 200 {object} IdResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /messages [post]
func (h *MessageHandler) Create(c *gin.Context) {
	var req models.MessageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	id, err := h.messageService.Create(c.Request.Context(), &req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, IdResponse{ID: id})
}

// List godoc
// @Summary List messages for a user
// @Description List the newest messages the user sent or received
// @Tags Messages
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		abortWithError(c, apperrors.NewBadRequest("user_id is required"))
		return
	}

	items, err := h.messageService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
