package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property types
const (
	PropertyTypeApartment  = "APARTMENT"
	PropertyTypeHouse      = "HOUSE"
	PropertyTypePlot       = "PLOT"
	PropertyTypeCommercial = "COMMERCIAL"
	PropertyTypeIndustrial = "INDUSTRIAL"
)

// Property statuses
const (
	PropertyStatusActive   = "ACTIVE"
	PropertyStatusInactive = "INACTIVE"
)

// PropertyImage is an image attached to a listing.
type PropertyImage struct {
	FilePath  string `bson:"file_path" json:"file_path"`
	IsPrimary bool   `bson:"is_primary" json:"is_primary"`
}

// Property is a document in the "property" collection. owner_id holds the
// owner's user id in string form, as stored.
type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID      string             `bson:"owner_id" json:"owner_id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	PropertyType string             `bson:"property_type" json:"property_type"`
	Price        float64            `bson:"price" json:"price"`
	Currency     string             `bson:"currency" json:"currency"`
	AreaSqft     float64            `bson:"area_sqft,omitempty" json:"area_sqft,omitempty"`
	Bedrooms     int                `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms    int                `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Parking      bool               `bson:"parking" json:"parking"`
	Furnished    bool               `bson:"furnished" json:"furnished"`
	AddressLine  string             `bson:"address_line,omitempty" json:"address_line,omitempty"`
	City         string             `bson:"city,omitempty" json:"city,omitempty"`
	State        string             `bson:"state,omitempty" json:"state,omitempty"`
	Pincode      string             `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Latitude     float64            `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude    float64            `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Verified     bool               `bson:"verified" json:"verified"`
	Status       string             `bson:"status" json:"status"`
	Images       []PropertyImage    `bson:"images" json:"images"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// PropertyUpdate is the partial-update payload. Nil fields are left untouched;
// an explicit null in the body is indistinguishable from an absent field.
type PropertyUpdate struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	PropertyType *string          `json:"property_type"`
	Price        *float64         `json:"price"`
	Currency     *string          `json:"currency"`
	AreaSqft     *float64         `json:"area_sqft"`
	Bedrooms     *int             `json:"bedrooms"`
	Bathrooms    *int             `json:"bathrooms"`
	Parking      *bool            `json:"parking"`
	Furnished    *bool            `json:"furnished"`
	AddressLine  *string          `json:"address_line"`
	City         *string          `json:"city"`
	State        *string          `json:"state"`
	Pincode      *string          `json:"pincode"`
	Latitude     *float64         `json:"latitude"`
	Longitude    *float64         `json:"longitude"`
	Status       *string          `json:"status"`
	Images       *[]PropertyImage `json:"images"`
}

// VerifyRequest is the verify-toggle payload.
type VerifyRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}
