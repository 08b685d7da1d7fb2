package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "estatehub/internal/errors"
	"estatehub/internal/models"
	"estatehub/internal/repositories"
	"estatehub/internal/validators"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const messageListLimit = 100

// MessageService implements buyer-seller messaging.
type MessageService struct {
	repo       repositories.MessageRepository
	users      repositories.UserRepository
	properties repositories.PropertyRepository
	validator  validators.MessageValidator
}

func NewMessageService(repo repositories.MessageRepository, users repositories.UserRepository, properties repositories.PropertyRepository, validator validators.MessageValidator) *MessageService {
	return &MessageService{
		repo:       repo,
		users:      users,
		properties: properties,
		validator:  validator,
	}
}

// Create inserts a message after resolving both participants and, when given,
// the property. Each participant is checked independently and the error names
// the missing id.
func (s *MessageService) Create(ctx context.Context, req *models.MessageCreateRequest) (string, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return "", apperrors.NewBadRequest(err.Error())
	}

	for _, userID := range []string{req.SenderID, req.ReceiverID} {
		objectID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return "", apperrors.NewBadRequest(apperrors.MsgInvalidID)
		}
		if _, err := s.users.FindByID(ctx, objectID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return "", apperrors.NewNotFound(fmt.Sprintf("User not found: %s", userID))
			}
			return "", err
		}
	}

	if req.PropertyID != "" {
		objectID, err := primitive.ObjectIDFromHex(req.PropertyID)
		if err != nil {
			return "", apperrors.NewBadRequest(apperrors.MsgInvalidID)
		}
		if _, err := s.properties.FindByID(ctx, objectID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return "", apperrors.NewNotFound(apperrors.MsgPropertyNotFound)
			}
			return "", err
		}
	}

	message := &models.Message{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		PropertyID: req.PropertyID,
		Subject:    req.Subject,
		Body:       req.Body,
		IsRead:     false,
		CreatedAt:  time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, message)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// ListForUser returns the newest messages where the user is sender or
// receiver, capped at 100.
func (s *MessageService) ListForUser(ctx context.Context, userID string) ([]models.Message, error) {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return nil, apperrors.NewBadRequest(apperrors.MsgInvalidID)
	}
	return s.repo.FindForUser(ctx, userID, messageListLimit)
}
