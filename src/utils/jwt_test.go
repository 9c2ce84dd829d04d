package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("64f0c1", "headmaster", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "64f0c1", claims.UserID)
	assert.Equal(t, "headmaster", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseJWTRejectsBadInput(t *testing.T) {
	_, err := ParseJWT("")
	assert.Error(t, err)

	_, err = ParseJWT("not.a.token")
	assert.Error(t, err)

	// token ที่ถูกแก้ไขหลังเซ็น
	token, _ := GenerateJWT("u1", "faculty1", "faculty")
	_, err = ParseJWT(token + "x")
	assert.Error(t, err)
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(32)
	b := GenerateRandomString(32)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
