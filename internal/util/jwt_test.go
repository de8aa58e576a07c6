package util

import (
	"testing"
	"time"

	"elearn_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789abcdef0123456789"

func testUser() *model.User {
	u := &model.User{
		Username:  "tanaka",
		Role:      model.RoleAdmin,
		CompanyID: 3,
	}
	u.ID = 42
	return u
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, uint(3), claims.CompanyID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, "tanaka", claims.Username)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	require.NoError(t, err)

	if _, err := ParseJWT(token, "another-secret"); err == nil {
		t.Error("token signed with a different secret should not parse")
	}
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, -time.Minute)
	require.NoError(t, err)

	if _, err := ParseJWT(token, testSecret); err == nil {
		t.Error("expired token should not parse")
	}
}
