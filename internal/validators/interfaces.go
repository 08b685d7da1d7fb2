package validators

import "estatehub/internal/models"

// UserValidator validates auth and admin payloads
type UserValidator interface {
	ValidateRegister(req *models.RegisterRequest) error
	ValidateLogin(email, password string) error
	ValidateStatus(status string) error
}

// PropertyValidator validates listing payloads
type PropertyValidator interface {
	ValidateCreate(property *models.Property) error
	ValidateUpdate(update *models.PropertyUpdate) error
}

// MessageValidator validates message payloads
type MessageValidator interface {
	ValidateCreate(req *models.MessageCreateRequest) error
}

// PaymentValidator validates payment payloads
type PaymentValidator interface {
	ValidateCreate(req *models.PaymentCreateRequest) error
	ValidateStatus(status string) error
}
