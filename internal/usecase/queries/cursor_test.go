//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAfterCursor(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 30, 45, 123456000, time.UTC)
	id := uuid.New()

	t.Run("success: encoded cursor decodes to same keyset", func(t *testing.T) {
		gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

		require.NoError(t, err)
		assert.True(t, at.Equal(gotAt))
		assert.Equal(t, id, gotID)
	})

	invalid := map[string]string{
		"error: empty cursor":         "",
		"error: not base64url":        "%%%",
		"error: unsupported version":  base64.URLEncoding.EncodeToString([]byte("v2:1-" + id.String())),
		"error: missing separator":    base64.URLEncoding.EncodeToString([]byte("v1:12345")),
		"error: non numeric micros":   base64.URLEncoding.EncodeToString([]byte("v1:abc-" + id.String())),
		"error: malformed identifier": base64.URLEncoding.EncodeToString([]byte("v1:12345-not-a-uuid")),
	}
	for name, cursor := range invalid {
		t.Run(name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(cursor)

			require.Error(t, err)
			assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestCursor_Keyset(t *testing.T) {
	t.Run("success: nil cursor is first page", func(t *testing.T) {
		var c *queries.Cursor
		k, err := c.Keyset()

		require.NoError(t, err)
		assert.Nil(t, k)
	})

	t.Run("success: empty after is first page", func(t *testing.T) {
		k, err := (&queries.Cursor{}).Keyset()

		require.NoError(t, err)
		assert.Nil(t, k)
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
