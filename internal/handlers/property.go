package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	apperrors "estatehub/internal/errors"
	"estatehub/internal/models"
	"estatehub/internal/repositories"
	"estatehub/internal/services"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Create godoc
// @Summary Create a property listing
// @Description Create a new property listing owned by an existing user
// @Tags Properties
// @Accept json
// @Produce json
// @Param property body models.Property true "Property data"
// @Success 200 {object} IdResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	id, err := h.propertyService.Create(c.Request.Context(), &property)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, IdResponse{ID: id})
}

// List godoc
// @Summary List property listings
// @Description List non-inactive property listings with optional filters, sorting and pagination
// @Tags Properties
// @Produce json
// @Param q query string false "Free-text search over title, description, city and state"
// @Param city query string false "Exact city match"
// @Param state query string false "Exact state match"
// @Param property_type query string false "Property type" Enums(APARTMENT, HOUSE, PLOT, COMMERCIAL, INDUSTRIAL)
// @Param bedrooms query int false "Exact bedroom count"
// @Param bathrooms query int false "Exact bathroom count"
// @Param furnished query bool false "Furnished flag"
// @Param parking query bool false "Parking flag"
// @Param min_price query number false "Minimum price, inclusive"
// @Param max_price query number false "Maximum price, inclusive"
// @Param sort query string false "Sort order" Enums(newest, price_asc, price_desc)
// @Param skip query int false "Records to skip"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	filter, err := parsePropertyFilter(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	items, svcErr := h.propertyService.List(c.Request.Context(), filter)
	if svcErr != nil {
		abortWithError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// Get godoc
// @Summary Get a property listing
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} transformers.PropertyResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.propertyService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// Update godoc
// @Summary Update a property listing
// @Description Partially update a property listing; only the provided fields change
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param update body models.PropertyUpdate true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /properties/{id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	var update models.PropertyUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	if err := h.propertyService.Update(c.Request.Context(), c.Param("id"), &update); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// Delete godoc
// @Summary Delete a property listing
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.propertyService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Verify godoc
// @Summary Set a property's verification flag
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param body body models.VerifyRequest true "Verification flag"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /properties/{id}/verify [post]
func (h *PropertyHandler) Verify(c *gin.Context) {
	var req models.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	if err := h.propertyService.Verify(c.Request.Context(), c.Param("id"), *req.Verified); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"verified": *req.Verified})
}

func parsePropertyFilter(c *gin.Context) (*repositories.PropertyFilter, error) {
	filter := &repositories.PropertyFilter{
		Query:        c.Query("q"),
		City:         c.Query("city"),
		State:        c.Query("state"),
		PropertyType: c.Query("property_type"),
		Sort:         c.Query("sort"),
	}

	intValue, err := parseIntParam(c, "bedrooms")
	if err != nil {
		return nil, err
	}
	filter.Bedrooms = intValue

	intValue, err = parseIntParam(c, "bathrooms")
	if err != nil {
		return nil, err
	}
	filter.Bathrooms = intValue

	boolValue, err := parseBoolParam(c, "furnished")
	if err != nil {
		return nil, err
	}
	filter.Furnished = boolValue

	boolValue, err = parseBoolParam(c, "parking")
	if err != nil {
		return nil, err
	}
	filter.Parking = boolValue

	floatValue, err := parseFloatParam(c, "min_price")
	if err != nil {
		return nil, err
	}
	filter.MinPrice = floatValue

	floatValue, err = parseFloatParam(c, "max_price")
	if err != nil {
		return nil, err
	}
	filter.MaxPrice = floatValue

	if raw := c.Query("skip"); raw != "" {
		skip, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return nil, apperrors.NewBadRequest(fmt.Sprintf("invalid skip value: %s", raw))
		}
		filter.Skip = skip
	}

	if raw := c.Query("limit"); raw != "" {
		limit, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return nil, apperrors.NewBadRequest(fmt.Sprintf("invalid limit value: %s", raw))
		}
		filter.Limit = &limit
	}

	return filter, nil
}

func parseIntParam(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.NewBadRequest(fmt.Sprintf("invalid %s value: %s", name, raw))
	}
	return &value, nil
}

func parseBoolParam(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperrors.NewBadRequest(fmt.Sprintf("invalid %s value: %s", name, raw))
	}
	return &value, nil
}

func parseFloatParam(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.NewBadRequest(fmt.Sprintf("invalid %s value: %s", name, raw))
	}
	return &value, nil
}
