package services

import (
	"context"
	"errors"
	"time"

	apperrors "estatehub/internal/errors"
	"estatehub/internal/models"
	"estatehub/internal/repositories"
	"estatehub/internal/transformers"
	"estatehub/internal/validators"
	"estatehub/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const propertyCacheTTL = 10 * time.Minute

// PropertyService implements the property catalog operations.
type PropertyService struct {
	repo        repositories.PropertyRepository
	users       repositories.UserRepository
	cache       repositories.PropertyCache
	transformer transformers.PropertyTransformer
	validator   validators.PropertyValidator
}

func NewPropertyService(repo repositories.PropertyRepository, users repositories.UserRepository, cache repositories.PropertyCache, transformer transformers.PropertyTransformer, validator validators.PropertyValidator) *PropertyService {
	return &PropertyService{
		repo:        repo,
		users:       users,
		cache:       cache,
		transformer: transformer,
		validator:   validator,
	}
}

// Create inserts a listing after resolving the owner. The owner check and the
// insert are not atomic; a deleted owner in between leaves a benign orphan
// reference.
func (s *PropertyService) Create(ctx context.Context, property *models.Property) (string, error) {
	if err := s.validator.ValidateCreate(property); err != nil {
		return "", apperrors.NewBadRequest(err.Error())
	}

	ownerID, err := primitive.ObjectIDFromHex(property.OwnerID)
	if err != nil {
		return "", apperrors.NewBadRequest(apperrors.MsgInvalidID)
	}
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", apperrors.NewNotFound(apperrors.MsgOwnerNotFound)
		}
		return "", err
	}

	if property.Currency == "" {
		property.Currency = "INR"
	}
	if property.Status == "" {
		property.Status = models.PropertyStatusActive
	}
	if property.Images == nil {
		property.Images = []models.PropertyImage{}
	}
	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now

	id, err := s.repo.Create(ctx, property)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// List returns the filtered listings with their public ids. The count in the
// response is the number of returned items, not the total matching.
func (s *PropertyService) List(ctx context.Context, filter *repositories.PropertyFilter) ([]transformers.PropertyResponse, error) {
	properties, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.transformer.ToResponseList(properties), nil
}

// Get returns one listing by id, read through the cache.
func (s *PropertyService) Get(ctx context.Context, id string) (*transformers.PropertyResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewBadRequest(apperrors.MsgInvalidID)
	}

	if cached, err := s.cache.GetProperty(ctx, id); err == nil && cached != nil {
		metrics.CacheHitsTotal.Inc()
		response := s.transformer.ToResponse(cached)
		return &response, nil
	}
	metrics.CacheMissesTotal.Inc()

	property, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound(apperrors.MsgPropertyNotFound)
		}
		return nil, err
	}

	_ = s.cache.SetProperty(ctx, id, property, propertyCacheTTL)

	response := s.transformer.ToResponse(property)
	return &response, nil
}

// Update sets only the provided fields plus the updated timestamp.
func (s *PropertyService) Update(ctx context.Context, id string, update *models.PropertyUpdate) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewBadRequest(apperrors.MsgInvalidID)
	}

	if err := s.validator.ValidateUpdate(update); err != nil {
		return apperrors.NewBadRequest(err.Error())
	}

	fields := buildUpdateFields(update)
	if len(fields) == 0 {
		return apperrors.NewBadRequest(apperrors.MsgNoFieldsToUpdate)
	}
	fields["updated_at"] = time.Now().UTC()

	if err := s.repo.UpdateFields(ctx, objectID, fields); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound(apperrors.MsgPropertyNotFound)
		}
		return err
	}

	_ = s.cache.Invalidate(ctx, id)
	return nil
}

// Delete removes the listing permanently.
func (s *PropertyService) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewBadRequest(apperrors.MsgInvalidID)
	}

	if err := s.repo.Delete(ctx, objectID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound(apperrors.MsgPropertyNotFound)
		}
		return err
	}

	_ = s.cache.Invalidate(ctx, id)
	return nil
}

// Verify sets the verified flag and the updated timestamp.
func (s *PropertyService) Verify(ctx context.Context, id string, verified bool) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewBadRequest(apperrors.MsgInvalidID)
	}

	fields := bson.M{
		"verified":   verified,
		"updated_at": time.Now().UTC(),
	}
	if err := s.repo.UpdateFields(ctx, objectID, fields); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound(apperrors.MsgPropertyNotFound)
		}
		return err
	}

	_ = s.cache.Invalidate(ctx, id)
	return nil
}

func buildUpdateFields(update *models.PropertyUpdate) bson.M {
	fields := bson.M{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.PropertyType != nil {
		fields["property_type"] = *update.PropertyType
	}
	if update.Price != nil {
		fields["price"] = *update.Price
	}
	if update.Currency != nil {
		fields["currency"] = *update.Currency
	}
	if update.AreaSqft != nil {
		fields["area_sqft"] = *update.AreaSqft
	}
	if update.Bedrooms != nil {
		fields["bedrooms"] = *update.Bedrooms
	}
	if update.Bathrooms != nil {
		fields["bathrooms"] = *update.Bathrooms
	}
	if update.Parking != nil {
		fields["parking"] = *update.Parking
	}
	if update.Furnished != nil {
		fields["furnished"] = *update.Furnished
	}
	if update.AddressLine != nil {
		fields["address_line"] = *update.AddressLine
	}
	if update.City != nil {
		fields["city"] = *update.City
	}
	if update.State != nil {
		fields["state"] = *update.State
	}
	if update.Pincode != nil {
		fields["pincode"] = *update.Pincode
	}
	if update.Latitude != nil {
		fields["latitude"] = *update.Latitude
	}
	if update.Longitude != nil {
		fields["longitude"] = *update.Longitude
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if update.Images != nil {
		fields["images"] = *update.Images
	}
	return fields
}
