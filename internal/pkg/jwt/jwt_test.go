//go:build unit

package jwt

import (
	"testing"
	"time"

	"stayhub/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := NewService("test-secret", 15*time.Minute, time.Hour)
	userID := uuid.New()

	t.Run("success: access token round trip", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleHost)
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(token)

		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "host", claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
	})

	t.Run("error: refresh token rejected as access token", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(userID, user.RoleGuest)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.RefreshToken)
		assert.ErrorIs(t, err, ErrWrongTokenType)

		claims, err := svc.ValidateRefreshToken(pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	})

	t.Run("error: expired token", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleGuest)
		require.NoError(t, err)

		late := *svc
		late.now = func() time.Time { return time.Now().Add(time.Hour) }

		_, err = late.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("error: signed with other secret", func(t *testing.T) {
		other := NewService("other-secret", time.Minute, time.Minute)
		token, err := other.GenerateAccessToken(userID, user.RoleGuest)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("error: garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
