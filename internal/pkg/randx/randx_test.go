package randx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase62(t *testing.T) {
	s, err := Base62(12)
	require.NoError(t, err)

	assert.Len(t, s, 12)
	assert.True(t, IsBase62(s))
}

func TestIsBase62(t *testing.T) {
	assert.True(t, IsBase62("abcXYZ019"))
	assert.False(t, IsBase62(""))
	assert.False(t, IsBase62("abc_def"))
}

func TestHandle(t *testing.T) {
	h, err := Handle("Ana")
	require.NoError(t, err)

	prefix, suffix, ok := strings.Cut(h, "_")
	require.True(t, ok)
	assert.Equal(t, "ana", prefix)
	assert.Len(t, suffix, HandleSuffixLength)
	assert.True(t, IsBase62(suffix))
}

func TestPick(t *testing.T) {
	items := []string{"a", "b", "c"}

	for range 20 {
		v, err := Pick(items)
		require.NoError(t, err)
		assert.Contains(t, items, v)
	}

	_, err := Pick([]int{})
	assert.Error(t, err)
}
