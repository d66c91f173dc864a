// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPassword(t *testing.T) {
	user := &User{Email: "test@example.com"}

	err := user.SetPassword("password123")
	require.NoError(t, err)

	assert.NotEmpty(t, user.PasswordDigest)
	assert.NotEqual(t, "password123", user.PasswordDigest)
}

func TestCheckPassword(t *testing.T) {
	user := &User{Email: "test@example.com"}
	require.NoError(t, user.SetPassword("password123"))

	assert.NoError(t, user.CheckPassword("password123"))
	assert.Error(t, user.CheckPassword("wrongpassword"))
	assert.Error(t, user.CheckPassword(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "test@example.com", NormalizeEmail("Test@Example.COM"))
	assert.Equal(t, "test@example.com", NormalizeEmail("  test@example.com  "))
	assert.Equal(t, "test@example.com", NormalizeEmail("test@example.com"))
}
