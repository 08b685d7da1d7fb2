package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("64b000000000000000000001", "Asha Verma", "asha@example.com", "BUYER", testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "64b000000000000000000001", claims.UserID)
	assert.Equal(t, "Asha Verma", claims.FullName)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "BUYER", claims.Role)
}

func TestGenerateJWTRequiresSecretAndUser(t *testing.T) {
	_, err := GenerateJWT("u", "n", "e", "r", "")
	assert.Error(t, err)

	_, err = GenerateJWT("", "n", "e", "r", testSecret)
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("u1", "Name", "a@b.co", "ADMIN", testSecret)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)

	_, err = ValidateJWT("", testSecret)
	assert.Error(t, err)
}
