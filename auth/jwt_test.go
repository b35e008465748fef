package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirerank/backend/config"
	"github.com/hirerank/backend/models"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.Config{
		JWTSecret:      "test-secret-key",
		JWTExpiryHours: 1,
	})
}

func testUser() *models.User {
	return &models.User{
		ID:    "jane@example.com",
		Email: "jane@example.com",
		Name:  "Jane Doe",
	}
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	svc := testJWTService()

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "Jane Doe", claims.Name)
	assert.Equal(t, "hirerank", claims.Issuer)
}

func TestJWT_ValidateRejectsWrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateToken(testUser())
	require.NoError(t, err)

	other := NewJWTService(&config.Config{JWTSecret: "different-secret", JWTExpiryHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_ValidateRejectsGarbage(t *testing.T) {
	_, err := testJWTService().ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWT_RefreshToken(t *testing.T) {
	svc := testJWTService()

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(token)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.UserID)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword("s3cret-password", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
	assert.False(t, CheckPassword("s3cret-password", "not-a-hash"))
}
