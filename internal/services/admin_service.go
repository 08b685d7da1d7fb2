package services

import (
	"context"
	"errors"

	apperrors "estatehub/internal/errors"
	"estatehub/internal/models"
	"estatehub/internal/repositories"
	"estatehub/internal/validators"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	adminListDefault = 50
	adminListMax     = 200
)

// AdminService implements the admin user operations.
type AdminService struct {
	users     repositories.UserRepository
	validator validators.UserValidator
}

func NewAdminService(users repositories.UserRepository, validator validators.UserValidator) *AdminService {
	return &AdminService{
		users:     users,
		validator: validator,
	}
}

// ListUsers returns the newest users. The limit defaults to 50 and is capped
// at 200. Password hashes are redacted at the serialization layer.
func (s *AdminService) ListUsers(ctx context.Context, limit int64) ([]models.User, error) {
	if limit <= 0 {
		limit = adminListDefault
	}
	if limit > adminListMax {
		limit = adminListMax
	}
	return s.users.FindRecent(ctx, limit)
}

// UpdateUserStatus sets a user's status and the updated timestamp.
func (s *AdminService) UpdateUserStatus(ctx context.Context, id, status string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewBadRequest(apperrors.MsgInvalidID)
	}

	if err := s.validator.ValidateStatus(status); err != nil {
		return apperrors.NewBadRequest(err.Error())
	}

	if err := s.users.UpdateStatus(ctx, objectID, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound(apperrors.MsgUserNotFound)
		}
		return err
	}
	return nil
}
