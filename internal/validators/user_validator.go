package validators

import (
	"errors"
	"regexp"

	"estatehub/internal/models"
)

type userValidator struct{}

func NewUserValidator() UserValidator {
	return &userValidator{}
}

func (v *userValidator) ValidateRegister(req *models.RegisterRequest) error {
	if req.FullName == "" || req.Email == "" || req.Mobile == "" || req.Password == "" {
		return errors.New("full name, email, mobile, and password are required")
	}

	if len(req.FullName) < 2 || len(req.FullName) > 100 {
		return errors.New("full name must be between 2 and 100 characters")
	}

	if len(req.Password) < 6 || len(req.Password) > 100 {
		return errors.New("password must be between 6 and 100 characters")
	}

	if !isValidEmail(req.Email) {
		return errors.New("invalid email format")
	}

	if !isValidMobile(req.Mobile) {
		return errors.New("invalid mobile format")
	}

	if req.Role != "" && !isValidRole(req.Role) {
		return errors.New("role must be one of ADMIN, OWNER, BUYER")
	}

	return nil
}

func (v *userValidator) ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return errors.New("email and password are required")
	}

	if !isValidEmail(email) {
		return errors.New("invalid email format")
	}

	return nil
}

func (v *userValidator) ValidateStatus(status string) error {
	if status != models.UserStatusActive && status != models.UserStatusSuspended {
		return errors.New("status must be one of ACTIVE, SUSPENDED")
	}
	return nil
}

func isValidRole(role string) bool {
	switch role {
	case models.RoleAdmin, models.RoleOwner, models.RoleBuyer:
		return true
	}
	return false
}

func isValidEmail(email string) bool {
	regex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return regex.MatchString(email)
}

func isValidMobile(mobile string) bool {
	regex := regexp.MustCompile(`^(\+\d{1,3}[- ]?)?\d{10}$`)
	return regex.MatchString(mobile)
}
