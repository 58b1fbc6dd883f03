//go:build unit

package message_test

import (
	"strings"
	"testing"
	"time"

	"stayhub/internal/domain/message"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	sender, recipient := uuid.New(), uuid.New()
	now := time.Now()

	t.Run("success: body trimmed and unread", func(t *testing.T) {
		m, err := message.NewMessage(sender, recipient, "  Is the cottage free in June?  ", now)

		require.NoError(t, err)
		assert.Equal(t, "Is the cottage free in June?", m.Body())
		assert.False(t, m.IsRead())
		assert.True(t, m.IsParty(sender))
		assert.True(t, m.IsParty(recipient))
		assert.False(t, m.IsParty(uuid.New()))
	})

	t.Run("error: to self", func(t *testing.T) {
		_, err := message.NewMessage(sender, sender, "hi", now)
		require.ErrorIs(t, err, message.ErrMessageToSelf)
	})

	t.Run("error: empty body", func(t *testing.T) {
		_, err := message.NewMessage(sender, recipient, "  ", now)
		require.ErrorIs(t, err, message.ErrEmptyBody)
	})

	t.Run("error: body too long", func(t *testing.T) {
		_, err := message.NewMessage(sender, recipient, strings.Repeat("a", message.MaxBodyLength+1), now)
		require.ErrorIs(t, err, message.ErrBodyTooLong)
	})
}

func TestMessage_MarkRead(t *testing.T) {
	sender, recipient := uuid.New(), uuid.New()
	m, err := message.NewMessage(sender, recipient, "hello", time.Now())
	require.NoError(t, err)

	require.ErrorIs(t, m.MarkRead(sender), message.ErrNotMessageReceiver)
	assert.False(t, m.IsRead())

	require.NoError(t, m.MarkRead(recipient))
	require.NoError(t, m.MarkRead(recipient))
	assert.True(t, m.IsRead())
}
