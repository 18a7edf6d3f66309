package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	first, err := New()
	assert.NoError(t, err)
	assert.Len(t, first, 64)
	assert.Regexp(t, "^[0-9a-f]+$", first)

	second, err := New()
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
