package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestParams(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		p, err := NewRequestParams("", "", "", "", 5)
		require.NoError(t, err)
		assert.Equal(t, "technology", p.Keyword)
		assert.Equal(t, "en", p.Language)
		assert.Empty(t, p.Category)
		assert.Empty(t, p.CountryPriority)
		assert.Equal(t, 5, p.PageSize)
	})

	t.Run("country priority list preserved in order", func(t *testing.T) {
		p, err := NewRequestParams("cricket", "", "in, us ,uk", "en", 5)
		require.NoError(t, err)
		assert.Equal(t, []string{"in", "us", "uk"}, p.CountryPriority)
	})

	t.Run("category and language normalized to lowercase", func(t *testing.T) {
		p, err := NewRequestParams("x", "Sports", "", "EN", 5)
		require.NoError(t, err)
		assert.Equal(t, "sports", p.Category)
		assert.Equal(t, "en", p.Language)
	})

	t.Run("invalid category rejected", func(t *testing.T) {
		_, err := NewRequestParams("x", "gossip", "", "en", 5)
		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "category", verr.Field)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid country rejected", func(t *testing.T) {
		_, err := NewRequestParams("x", "", "in,xx", "en", 5)
		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "country", verr.Field)
	})

	t.Run("invalid language rejected", func(t *testing.T) {
		_, err := NewRequestParams("x", "", "", "jp", 5)
		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "language", verr.Field)
	})

	t.Run("non-positive page size rejected", func(t *testing.T) {
		_, err := NewRequestParams("x", "", "", "en", 0)
		require.Error(t, err)
	})
}
