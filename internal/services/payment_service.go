package services

import (
	"context"
	"errors"
	"time"

	apperrors "estatehub/internal/errors"
	"estatehub/internal/models"
	"estatehub/internal/repositories"
	"estatehub/internal/validators"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const paymentListLimit = 100

// PaymentService implements payment-status tracking.
type PaymentService struct {
	repo       repositories.PaymentRepository
	users      repositories.UserRepository
	properties repositories.PropertyRepository
	validator  validators.PaymentValidator
}

func NewPaymentService(repo repositories.PaymentRepository, users repositories.UserRepository, properties repositories.PropertyRepository, validator validators.PaymentValidator) *PaymentService {
	return &PaymentService{
		repo:       repo,
		users:      users,
		properties: properties,
		validator:  validator,
	}
}

// Create inserts a payment with status INITIATED after resolving the buyer
// and the property.
func (s *PaymentService) Create(ctx context.Context, req *models.PaymentCreateRequest) (string, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return "", apperrors.NewBadRequest(err.Error())
	}

	buyerID, err := primitive.ObjectIDFromHex(req.BuyerID)
	if err != nil {
		return "", apperrors.NewBadRequest(apperrors.MsgInvalidID)
	}
	if _, err := s.users.FindByID(ctx, buyerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", apperrors.NewNotFound(apperrors.MsgBuyerNotFound)
		}
		return "", err
	}

	propertyID, err := primitive.ObjectIDFromHex(req.PropertyID)
	if err != nil {
		return "", apperrors.NewBadRequest(apperrors.MsgInvalidID)
	}
	if _, err := s.properties.FindByID(ctx, propertyID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", apperrors.NewNotFound(apperrors.MsgPropertyNotFound)
		}
		return "", err
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}
	purpose := req.Purpose
	if purpose == "" {
		purpose = models.PaymentPurposeBooking
	}
	provider := req.Provider
	if provider == "" {
		provider = models.PaymentProviderManual
	}

	now := time.Now().UTC()
	payment := &models.Payment{
		BuyerID:           req.BuyerID,
		PropertyID:        req.PropertyID,
		Amount:            req.Amount,
		Currency:          currency,
		Purpose:           purpose,
		Provider:          provider,
		ProviderPaymentID: req.ProviderPaymentID,
		Status:            models.PaymentStatusInitiated,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	id, err := s.repo.Create(ctx, payment)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// List returns the newest payments, optionally filtered to one buyer, capped
// at 100.
func (s *PaymentService) List(ctx context.Context, buyerID string) ([]models.Payment, error) {
	return s.repo.FindRecent(ctx, buyerID, paymentListLimit)
}

// UpdateStatus sets the payment status and the updated timestamp. The
// provider payment id is set only when a non-empty value is supplied.
func (s *PaymentService) UpdateStatus(ctx context.Context, id string, req *models.PaymentStatusRequest) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewBadRequest(apperrors.MsgInvalidID)
	}

	if err := s.validator.ValidateStatus(req.Status); err != nil {
		return apperrors.NewBadRequest(err.Error())
	}

	fields := bson.M{
		"status":     req.Status,
		"updated_at": time.Now().UTC(),
	}
	if req.ProviderPaymentID != "" {
		fields["provider_payment_id"] = req.ProviderPaymentID
	}

	if err := s.repo.UpdateStatus(ctx, objectID, fields); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound(apperrors.MsgPaymentNotFound)
		}
		return err
	}
	return nil
}
