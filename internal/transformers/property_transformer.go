package transformers

import (
	"time"

	"estatehub/internal/models"
)

// PropertyResponse is a property document with the internal _id renamed to a
// public string id.
type PropertyResponse struct {
	ID           string                 `json:"id"`
	OwnerID      string                 `json:"owner_id"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description,omitempty"`
	PropertyType string                 `json:"property_type"`
	Price        float64                `json:"price"`
	Currency     string                 `json:"currency"`
	AreaSqft     float64                `json:"area_sqft,omitempty"`
	Bedrooms     int                    `json:"bedrooms,omitempty"`
	Bathrooms    int                    `json:"bathrooms,omitempty"`
	Parking      bool                   `json:"parking"`
	Furnished    bool                   `json:"furnished"`
	AddressLine  string                 `json:"address_line,omitempty"`
	City         string                 `json:"city,omitempty"`
	State        string                 `json:"state,omitempty"`
	Pincode      string                 `json:"pincode,omitempty"`
	Latitude     float64                `json:"latitude,omitempty"`
	Longitude    float64                `json:"longitude,omitempty"`
	Verified     bool                   `json:"verified"`
	Status       string                 `json:"status"`
	Images       []models.PropertyImage `json:"images"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

type propertyTransformer struct{}

func NewPropertyTransformer() PropertyTransformer {
	return &propertyTransformer{}
}

func (t *propertyTransformer) ToResponse(property *models.Property) PropertyResponse {
	return PropertyResponse{
		ID:           property.ID.Hex(),
		OwnerID:      property.OwnerID,
		Title:        property.Title,
		Description:  property.Description,
		PropertyType: property.PropertyType,
		Price:        property.Price,
		Currency:     property.Currency,
		AreaSqft:     property.AreaSqft,
		Bedrooms:     property.Bedrooms,
		Bathrooms:    property.Bathrooms,
		Parking:      property.Parking,
		Furnished:    property.Furnished,
		AddressLine:  property.AddressLine,
		City:         property.City,
		State:        property.State,
		Pincode:      property.Pincode,
		Latitude:     property.Latitude,
		Longitude:    property.Longitude,
		Verified:     property.Verified,
		Status:       property.Status,
		Images:       property.Images,
		CreatedAt:    property.CreatedAt,
		UpdatedAt:    property.UpdatedAt,
	}
}

func (t *propertyTransformer) ToResponseList(properties []models.Property) []PropertyResponse {
	items := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		items = append(items, t.ToResponse(&properties[i]))
	}
	return items
}
