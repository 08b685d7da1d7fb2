package validators

import (
	"errors"

	"estatehub/internal/models"
)

type propertyValidator struct{}

func NewPropertyValidator() PropertyValidator {
	return &propertyValidator{}
}

func (v *propertyValidator) ValidateCreate(property *models.Property) error {
	if property.OwnerID == "" {
		return errors.New("owner_id is required")
	}

	if property.Title == "" {
		return errors.New("title is required")
	}

	if !isValidPropertyType(property.PropertyType) {
		return errors.New("property_type must be one of APARTMENT, HOUSE, PLOT, COMMERCIAL, INDUSTRIAL")
	}

	if property.Price < 0 {
		return errors.New("price must be non-negative")
	}

	if property.Status != "" && !isValidPropertyStatus(property.Status) {
		return errors.New("status must be one of ACTIVE, INACTIVE")
	}

	return nil
}

func (v *propertyValidator) ValidateUpdate(update *models.PropertyUpdate) error {
	if update.PropertyType != nil && !isValidPropertyType(*update.PropertyType) {
		return errors.New("property_type must be one of APARTMENT, HOUSE, PLOT, COMMERCIAL, INDUSTRIAL")
	}

	if update.Price != nil && *update.Price < 0 {
		return errors.New("price must be non-negative")
	}

	if update.Status != nil && !isValidPropertyStatus(*update.Status) {
		return errors.New("status must be one of ACTIVE, INACTIVE")
	}

	return nil
}

func isValidPropertyType(propertyType string) bool {
	switch propertyType {
	case models.PropertyTypeApartment, models.PropertyTypeHouse, models.PropertyTypePlot,
		models.PropertyTypeCommercial, models.PropertyTypeIndustrial:
		return true
	}
	return false
}

func isValidPropertyStatus(status string) bool {
	return status == models.PropertyStatusActive || status == models.PropertyStatusInactive
}
