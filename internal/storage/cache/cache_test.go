package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermIndex(t *testing.T) {
	t.Parallel()

	idx := NewTermIndex()
	assert.False(t, idx.Contains("Hund"))

	idx.Add("Hund")
	idx.Add("hund")
	idx.Add("Katze")

	assert.True(t, idx.Contains("Hund"))
	assert.True(t, idx.Contains("HUND"))
	assert.False(t, idx.Contains("Hun"))
	assert.Equal(t, 2, idx.Len())

	idx.Reset([]string{"Maus"})
	assert.False(t, idx.Contains("Hund"))
	assert.True(t, idx.Contains("maus"))
	assert.Equal(t, 1, idx.Len())
}
