package validators

import (
	"errors"

	"estatehub/internal/models"
)

type messageValidator struct{}

func NewMessageValidator() MessageValidator {
	return &messageValidator{}
}

func (v *messageValidator) ValidateCreate(req *models.MessageCreateRequest) error {
	if req.SenderID == "" || req.ReceiverID == "" {
		return errors.New("sender_id and receiver_id are required")
	}

	if req.Subject == "" {
		return errors.New("subject is required")
	}

	if req.Body == "" {
		return errors.New("body is required")
	}

	return nil
}
