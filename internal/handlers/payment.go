package handlers

import (
	"net/http"

	apperrors "estatehub/internal/errors"
	"estatehub/internal/models"
	"estatehub/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create godoc
// @Summary Create a payment
// @Description Record a payment with status INITIATED for an existing buyer and property
// @Tags Payments
// @Accept json
// @Produce json
// @Param payment body models.PaymentCreateRequest true "Payment data"
// @Success 200 {object} IdResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req models.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	id, err := h.paymentService.Create(c.Request.Context(), &req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, IdResponse{ID: id})
}

// List godoc
// @Summary List payments
// @Description List the newest payments, optionally filtered to one buyer
// @Tags Payments
// @Produce json
// @Param buyer_id query string false "Buyer ID"
// @Success 200 {object} map[string]interface{}
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	items, err := h.paymentService.List(c.Request.Context(), c.Query("buyer_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// UpdateStatus godoc
// @Summary Update a payment's status
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param body body models.PaymentStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /payments/{id}/status [post]
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	var req models.PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	if err := h.paymentService.UpdateStatus(c.Request.Context(), c.Param("id"), &req); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true})
}
