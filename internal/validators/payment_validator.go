package validators

import (
	"errors"

	"estatehub/internal/models"
)

type paymentValidator struct{}

func NewPaymentValidator() PaymentValidator {
	return &paymentValidator{}
}

func (v *paymentValidator) ValidateCreate(req *models.PaymentCreateRequest) error {
	if req.BuyerID == "" || req.PropertyID == "" {
		return errors.New("buyer_id and property_id are required")
	}

	if req.Amount <= 0 {
		return errors.New("amount must be positive")
	}

	if req.Purpose != "" && !isValidPaymentPurpose(req.Purpose) {
		return errors.New("purpose must be one of BOOKING, DEPOSIT, OTHER")
	}

	if req.Provider != "" && !isValidPaymentProvider(req.Provider) {
		return errors.New("provider must be one of RAZORPAY, STRIPE, MANUAL")
	}

	return nil
}

func (v *paymentValidator) ValidateStatus(status string) error {
	switch status {
	case models.PaymentStatusInitiated, models.PaymentStatusSuccess,
		models.PaymentStatusFailed, models.PaymentStatusRefunded:
		return nil
	}
	return errors.New("status must be one of INITIATED, SUCCESS, FAILED, REFUNDED")
}

func isValidPaymentPurpose(purpose string) bool {
	switch purpose {
	case models.PaymentPurposeBooking, models.PaymentPurposeDeposit, models.PaymentPurposeOther:
		return true
	}
	return false
}

func isValidPaymentProvider(provider string) bool {
	switch provider {
	case models.PaymentProviderRazorpay, models.PaymentProviderStripe, models.PaymentProviderManual:
		return true
	}
	return false
}
