package services

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	apperrors "estatehub/internal/errors"
	"estatehub/internal/models"
	"estatehub/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newAdminService(users *fakeUserRepo) *AdminService {
	return NewAdminService(users, validators.NewUserValidator())
}

func seedManyUsers(repo *fakeUserRepo, n int) {
	for i := 0; i < n; i++ {
		repo.users = append(repo.users, &models.User{
			ID:     primitive.NewObjectID(),
			Email:  fmt.Sprintf("user%d@example.com", i),
			Mobile: fmt.Sprintf("90000000%02d", i),
			Role:   models.RoleBuyer,
			Status: models.UserStatusActive,
		})
	}
}

func TestAdminListUsersDefaultLimit(t *testing.T) {
	repo := &fakeUserRepo{}
	seedManyUsers(repo, 60)
	svc := newAdminService(repo)

	users, err := svc.ListUsers(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, users, 50)
}

func TestAdminListUsersCaps(t *testing.T) {
	repo := &fakeUserRepo{}
	seedManyUsers(repo, 10)
	svc := newAdminService(repo)

	users, err := svc.ListUsers(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	// Oversized limits are clamped rather than rejected.
	seedManyUsers(repo, 250)
	users, err = svc.ListUsers(context.Background(), 1000)
	require.NoError(t, err)
	assert.Len(t, users, 200)
}

func TestAdminUpdateUserStatus(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(repo, models.UserStatusActive)
	svc := newAdminService(repo)

	err := svc.UpdateUserStatus(context.Background(), user.ID.Hex(), models.UserStatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusSuspended, user.Status)
}

func TestAdminUpdateUserStatusErrors(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(repo, models.UserStatusActive)
	svc := newAdminService(repo)

	err := svc.UpdateUserStatus(context.Background(), "not-hex", models.UserStatusSuspended)
	appErr := appErrFrom(t, err)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, apperrors.MsgInvalidID, appErr.UserMessage)

	err = svc.UpdateUserStatus(context.Background(), user.ID.Hex(), "BANNED")
	appErr = appErrFrom(t, err)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)

	err = svc.UpdateUserStatus(context.Background(), primitive.NewObjectID().Hex(), models.UserStatusActive)
	appErr = appErrFrom(t, err)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.Equal(t, apperrors.MsgUserNotFound, appErr.UserMessage)
}
