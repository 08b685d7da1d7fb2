package handlers

import (
	"context"
	"net/http"
	"time"

	"estatehub/internal/models"
	"estatehub/pkg/database"
	"estatehub/pkg/logger"

	"github.com/gin-gonic/gin"
)

const maxDiagCollections = 10

type SystemHandler struct {
	db database.Database
}

func NewSystemHandler(db database.Database) *SystemHandler {
	return &SystemHandler{db: db}
}

// Root godoc
// @Summary Service banner
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "EstateHub API is running",
		"docs":    "/swagger/index.html",
	})
}

// Diagnostics godoc
// @Summary Database connectivity diagnostics
// @Description Report whether the database answers and which collections exist
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (h *SystemHandler) Diagnostics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	names, err := h.db.ListCollectionNames(ctx)
	if err != nil {
		// Store failures are summarized here, never propagated as a 500.
		logger.GlobalLogger.Errorf("diagnostics: listing collections failed: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"backend":    "running",
			"database":   h.db.Name(),
			"connection": "error",
			"detail":     "collection listing failed",
		})
		return
	}

	if len(names) > maxDiagCollections {
		names = names[:maxDiagCollections]
	}

	c.JSON(http.StatusOK, gin.H{
		"backend":     "running",
		"database":    h.db.Name(),
		"connection":  "ok",
		"collections": names,
	})
}

// Schema godoc
// @Summary Entity schema descriptors
// @Tags System
// @Produce json
// @Success 200 {array} models.SchemaInfo
// @Router /schema [get]
func (h *SystemHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, models.SchemaDefinitions())
}
