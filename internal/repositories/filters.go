package repositories

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"estatehub/internal/models"
)

// Sort orders accepted by the property listing.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

const (
	maxPageSize     = 100
	defaultPageSize = 20
)

// PropertyFilter is the listing filter value object: one optional field per
// supported predicate, compiled once into the store's native query form.
type PropertyFilter struct {
	Query        string
	City         string
	State        string
	PropertyType string
	Bedrooms     *int
	Bathrooms    *int
	Furnished    *bool
	Parking      *bool
	MinPrice     *float64
	MaxPrice     *float64
	Sort         string
	Skip         int64
	Limit        *int64
}

// Compile builds the Mongo filter and find options. Exact matches are
// conjunctive, the price range is inclusive, and the free-text query is a
// case-insensitive disjunction over title/description/city/state. INACTIVE
// listings are always excluded.
func (f *PropertyFilter) Compile() (bson.M, *options.FindOptions) {
	filter := bson.M{"status": bson.M{"$ne": models.PropertyStatusInactive}}

	if f.City != "" {
		filter["city"] = f.City
	}
	if f.State != "" {
		filter["state"] = f.State
	}
	if f.PropertyType != "" {
		filter["property_type"] = f.PropertyType
	}
	if f.Bedrooms != nil {
		filter["bedrooms"] = *f.Bedrooms
	}
	if f.Bathrooms != nil {
		filter["bathrooms"] = *f.Bathrooms
	}
	if f.Furnished != nil {
		filter["furnished"] = *f.Furnished
	}
	if f.Parking != nil {
		filter["parking"] = *f.Parking
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		priceCond := bson.M{}
		if f.MinPrice != nil {
			priceCond["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			priceCond["$lte"] = *f.MaxPrice
		}
		filter["price"] = priceCond
	}

	if f.Query != "" {
		regex := primitive.Regex{Pattern: f.Query, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
			bson.M{"city": regex},
			bson.M{"state": regex},
		}
	}

	sortSpec := bson.D{{Key: "_id", Value: -1}}
	switch f.Sort {
	case SortPriceAsc:
		sortSpec = bson.D{{Key: "price", Value: 1}}
	case SortPriceDesc:
		sortSpec = bson.D{{Key: "price", Value: -1}}
	}

	skip := f.Skip
	if skip < 0 {
		skip = 0
	}
	// An explicit limit of 0 clamps to 1; only an absent limit defaults.
	limit := int64(defaultPageSize)
	if f.Limit != nil {
		limit = *f.Limit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	findOptions := options.Find().
		SetSort(sortSpec).
		SetSkip(skip).
		SetLimit(limit)

	return filter, findOptions
}
