//go:build unit

package password_test

import (
	"strings"
	"testing"

	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, password.ComparePassword(hash, "password123"))
	assert.ErrorIs(t, password.ComparePassword(hash, "password124"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "password123"), password.ErrInvalidPassword)

	_, err = password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := password.HashPassword(strings.Repeat("a", password.MaxBytes))
	require.NoError(t, err)

	_, err = password.HashPassword(strings.Repeat("a", password.MaxBytes+1))
	assert.ErrorIs(t, err, password.ErrPasswordTooLong)
	assert.True(t, errs.IsValidation(err))
}
