package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	h := HashPassword("password1")
	require.NotEmpty(t, h)
	assert.NotEqual(t, "password1", h, "stored credential must never equal the plaintext")

	assert.True(t, CheckPassword("password1", h))
	assert.False(t, CheckPassword("password2", h))
	assert.False(t, CheckPassword("", h))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	h1 := HashPassword("password1")
	h2 := HashPassword("password1")
	assert.NotEqual(t, h1, h2)
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID(NewID()))
	assert.False(t, ValidID(""))
	assert.False(t, ValidID("not-an-id"))
	assert.False(t, ValidID("12345"))
}
