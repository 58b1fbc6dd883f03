//go:build unit

package patch_test

import (
	"strconv"
	"testing"

	"stayhub/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalesce(t *testing.T) {
	v := 3
	assert.Equal(t, 3, patch.Coalesce(&v, 1))
	assert.Equal(t, 1, patch.Coalesce[int](nil, 1))
}

func TestCoalesceFn(t *testing.T) {
	s := "42"
	got, err := patch.CoalesceFn(&s, 0, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = patch.CoalesceFn[string](nil, 7, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	bad := "x"
	_, err = patch.CoalesceFn(&bad, 0, strconv.Atoi)
	assert.Error(t, err)
}
