//go:build unit

package errs_test

import (
	"testing"

	"stayhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("success: marked error matches both identities", func(t *testing.T) {
		specific := errs.New("dates unavailable")
		marked := errs.Mark(specific, errs.ErrConflict)

		assert.True(t, errs.Is(marked, specific))
		assert.True(t, errs.Is(marked, errs.ErrConflict))
		assert.False(t, errs.IsNotFound(marked))
	})

	t.Run("success: wrapping keeps the category", func(t *testing.T) {
		err := errs.Wrap(errs.NotFound("property not found"), "lookup")

		assert.True(t, errs.IsNotFound(err))
		assert.Contains(t, err.Error(), "lookup: property not found")
	})

	t.Run("success: nil error yields the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrForbidden, errs.Mark(nil, errs.ErrForbidden))
	})
}

func TestWrap(t *testing.T) {
	t.Run("success: nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ctx"))
		assert.NoError(t, errs.Wrapf(nil, "ctx %d", 1))
	})
}

func TestExtractStackLines(t *testing.T) {
	t.Run("success: truncates to max lines", func(t *testing.T) {
		lines := errs.ExtractStackLines(errs.New("boom"), 2)
		assert.Len(t, lines, 2)
		assert.Equal(t, "boom", lines[0])
	})

	t.Run("success: nil error", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 3))
	})
}
