package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("testsecret", 72*time.Hour)

	token, exp, err := m.GenerateToken("u1", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(72*time.Hour), exp, time.Minute)

	claims, err := m.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	m := NewJWTManager("secret-a", time.Hour)
	token, _, err := m.GenerateToken("u1", "user")
	assert.NoError(t, err)

	other := NewJWTManager("secret-b", time.Hour)
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("testsecret", -time.Minute)
	token, _, err := m.GenerateToken("u1", "user")
	assert.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.Error(t, err)
}
