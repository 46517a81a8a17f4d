package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "✅✅", truncate("✅✅✅", 2))
}
