package services

import (
	"context"
	"errors"
	"time"

	"estatehub/internal/auth"
	apperrors "estatehub/internal/errors"
	"estatehub/internal/models"
	"estatehub/internal/repositories"
	"estatehub/internal/transformers"
	"estatehub/internal/validators"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// UserService implements registration and login.
type UserService struct {
	repo        repositories.UserRepository
	validator   validators.UserValidator
	transformer transformers.UserTransformer
	jwtSecret   string
}

func NewUserService(repo repositories.UserRepository, validator validators.UserValidator, transformer transformers.UserTransformer, jwtSecret string) *UserService {
	return &UserService{
		repo:        repo,
		validator:   validator,
		transformer: transformer,
		jwtSecret:   jwtSecret,
	}
}

// Register creates a new ACTIVE user and returns its identifier. Duplicate
// email or mobile fails with Conflict.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {
	if err := s.validator.ValidateRegister(req); err != nil {
		return "", apperrors.NewBadRequest(err.Error())
	}

	exists, err := s.repo.ExistsByEmailOrMobile(ctx, req.Email, req.Mobile)
	if err != nil {
		return "", err
	}
	if exists {
		return "", apperrors.NewConflict(apperrors.MsgDuplicateField)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	role := req.Role
	if role == "" {
		role = models.RoleBuyer
	}

	now := time.Now().UTC()
	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		Mobile:       req.Mobile,
		PasswordHash: string(hashedPassword),
		Role:         role,
		Status:       models.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		// The unique index may race with the existence check.
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.NewConflict(apperrors.MsgDuplicateField)
		}
		return "", err
	}
	return id.Hex(), nil
}

// Login authenticates an ACTIVE user and returns the public fields plus a
// bearer token. The stored hash is never part of the response.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return nil, apperrors.NewBadRequest(err.Error())
	}

	user, err := s.repo.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewUnauthorized(apperrors.MsgInvalidLogin)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.NewUnauthorized(apperrors.MsgInvalidLogin)
	}

	token, err := auth.GenerateJWT(user.ID.Hex(), user.FullName, user.Email, user.Role, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		PublicUser: s.transformer.ToPublic(user),
		Token:      token,
	}, nil
}
