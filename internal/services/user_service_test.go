package services

import (
	"context"
	"net/http"
	"testing"

	apperrors "estatehub/internal/errors"
	"estatehub/internal/models"
	"estatehub/internal/transformers"
	"estatehub/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func newUserService(repo *fakeUserRepo) *UserService {
	return NewUserService(repo, validators.NewUserValidator(), transformers.NewUserTransformer(), testJWTSecret)
}

func TestRegisterCreatesActiveBuyer(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newUserService(repo)

	id, err := svc.Register(context.Background(), &models.RegisterRequest{
		FullName: "Asha Verma",
		Email:    "asha@example.com",
		Mobile:   "9876543210",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, repo.users, 1)
	created := repo.users[0]
	assert.Equal(t, models.RoleBuyer, created.Role)
	assert.Equal(t, models.UserStatusActive, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	// The password is stored hashed, never verbatim.
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(repo, models.UserStatusActive)
	svc := newUserService(repo)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		FullName: "Another Person",
		Email:    "asha@example.com",
		Mobile:   "9000000000",
		Password: "secret123",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
	assert.Equal(t, apperrors.MsgDuplicateField, appErr.UserMessage)
}

func TestRegisterInvalidPayload(t *testing.T) {
	svc := newUserService(&fakeUserRepo{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		FullName: "Asha Verma",
		Email:    "not-an-email",
		Mobile:   "9876543210",
		Password: "secret123",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}

func TestLoginReturnsTokenWithoutHash(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(repo, models.UserStatusActive)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user.PasswordHash = string(hash)

	svc := newUserService(repo)

	response, err := svc.Login(context.Background(), "asha@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, user.ID.Hex(), response.ID)
	assert.Equal(t, user.Email, response.Email)
	assert.NotEmpty(t, response.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(repo, models.UserStatusActive)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user.PasswordHash = string(hash)

	svc := newUserService(repo)

	_, err = svc.Login(context.Background(), "asha@example.com", "wrong-password")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
	assert.Equal(t, apperrors.MsgInvalidLogin, appErr.UserMessage)
}

func TestLoginSuspendedUserRejected(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(repo, models.UserStatusSuspended)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user.PasswordHash = string(hash)

	svc := newUserService(repo)

	// A suspended user fails the same way as an unknown email.
	_, err = svc.Login(context.Background(), "asha@example.com", "secret123")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
	assert.Equal(t, apperrors.MsgInvalidLogin, appErr.UserMessage)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newUserService(&fakeUserRepo{})

	_, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
}
