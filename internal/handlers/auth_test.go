package handlers

import (
	"net/http"
	"testing"

	"estatehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"full_name": "Asha Verma",
		"email":     "asha@example.com",
		"mobile":    "9876543210",
		"password":  "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["id"])
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	env := newTestEnv()
	env.seedUser(models.RoleBuyer)

	w := env.request(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"full_name": "Another Person",
		"email":     "asha@example.com",
		"mobile":    "9000000000",
		"password":  "secret123",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "CONFLICT", errObj["code"])
	assert.Equal(t, "Email or mobile already registered", errObj["message"])
}

func TestRegisterEndpointMissingFields(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"email": "asha@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(models.RoleBuyer)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user.PasswordHash = string(hash)

	w := env.request(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, user.ID.Hex(), body["id"])
	assert.Equal(t, "asha@example.com", body["email"])
	assert.NotEmpty(t, body["token"])

	// The stored hash never leaves the service.
	assert.NotContains(t, w.Body.String(), user.PasswordHash)
	assert.NotContains(t, body, "password_hash")
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(models.RoleBuyer)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user.PasswordHash = string(hash)

	w := env.request(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "wrong-password",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "Invalid credentials", errObj["message"])
}
