package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeTitle(t *testing.T) {
	got, err := NormalizeTitle("  Ship it  ")
	require.NoError(t, err)
	assert.Equal(t, "Ship it", got)

	_, err = NormalizeTitle("   ")
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "title", ve.Field)

	_, err = NormalizeTitle(strings.Repeat("a", MaxTitleLength))
	assert.NoError(t, err)

	_, err = NormalizeTitle(strings.Repeat("a", MaxTitleLength+1))
	assert.True(t, IsValidation(err))

	// runes, not bytes
	_, err = NormalizeTitle(strings.Repeat("é", MaxTitleLength))
	assert.NoError(t, err)
}

func TestNormalizeDescription(t *testing.T) {
	got, err := NormalizeDescription(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = NormalizeDescription(strPtr("  "))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = NormalizeDescription(strPtr(" notes "))
	require.NoError(t, err)
	assert.Equal(t, "notes", *got)

	_, err = NormalizeDescription(strPtr(strings.Repeat("x", MaxDescriptionLength+1)))
	assert.True(t, IsValidation(err))
}
