package mood

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	cats := All()
	require.Len(t, cats, Count)

	hexRe := regexp.MustCompile(`^[0-9a-f]{6}$`)
	for i, cat := range cats {
		assert.Equal(t, i, cat.ID)
		assert.NotEmpty(t, cat.Label)
		assert.NotEmpty(t, cat.Short)
		assert.True(t, strings.HasPrefix(cat.Label, cat.Short), "short label is a prefix of the full one")
		assert.Regexp(t, hexRe, cat.Color)
	}
}

func TestShortLabelDropsEmoji(t *testing.T) {
	cat, ok := Get(0)
	require.True(t, ok)
	assert.Equal(t, "Positive", cat.Short)

	inLove, ok := Get(11)
	require.True(t, ok)
	assert.Equal(t, "In love", inLove.Short)
}

func TestValidBounds(t *testing.T) {
	abort := []int{-1, Count, 100}
	for _, id := range abort {
		assert.False(t, Valid(id), "id %d", id)
	}
	assert.True(t, Valid(0))
	assert.True(t, Valid(Count-1))
}

func TestGetOutOfRange(t *testing.T) {
	_, ok := Get(Count)
	assert.False(t, ok)
	_, ok = Get(-1)
	assert.False(t, ok)
}

func TestPaletteDeterministicAndDistinct(t *testing.T) {
	first := viridis(Count)
	second := viridis(Count)
	assert.Equal(t, first, second)

	seen := make(map[string]struct{})
	for _, c := range first {
		seen[c] = struct{}{}
	}
	assert.Len(t, seen, Count, "palette colors must be distinct")

	// Endpoints pinned to the viridis scale.
	assert.Equal(t, "440154", first[0])
	assert.Equal(t, "fde725", first[Count-1])
}
