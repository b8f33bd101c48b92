package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", placeholders(0))
	assert.Equal(t, "?", placeholders(1))
	assert.Equal(t, "?, ?, ?", placeholders(3))
}

func TestIDArgs(t *testing.T) {
	assert.Equal(t, []any{"a", "b"}, idArgs([]string{"a", "b"}))
	assert.Empty(t, idArgs(nil))
}
