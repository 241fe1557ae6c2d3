package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleTag(t *testing.T) {
	f := newFixture()
	card := f.publishedCard("Tagged")

	t.Run("attach then detach", func(t *testing.T) {
		attached, err := f.tags.ToggleTag(testAccount, card.ID, "urgent")
		require.NoError(t, err)
		assert.True(t, attached)

		tags, err := f.tags.CardTags(testAccount, card.ID)
		require.NoError(t, err)
		require.Len(t, tags, 1)
		assert.Equal(t, "urgent", tags[0].Label)

		attached, err = f.tags.ToggleTag(testAccount, card.ID, "urgent")
		require.NoError(t, err)
		assert.False(t, attached)

		tags, err = f.tags.CardTags(testAccount, card.ID)
		require.NoError(t, err)
		assert.Empty(t, tags)
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		_, err := f.tags.ToggleTag(testAccount, card.ID, "Backend")
		require.NoError(t, err)
		_, err = f.tags.ToggleTag(testAccount, card.ID, "backend")
		require.NoError(t, err)

		tags, err := f.tags.CardTags(testAccount, card.ID)
		require.NoError(t, err)
		assert.Len(t, tags, 2)
	})

	t.Run("empty label rejected", func(t *testing.T) {
		_, err := f.tags.ToggleTag(testAccount, card.ID, "")
		assert.ErrorIs(t, err, ErrEmptyTagLabel)
	})

	t.Run("unknown card rejected", func(t *testing.T) {
		_, err := f.tags.ToggleTag(testAccount, "missing", "urgent")
		assert.ErrorIs(t, err, ErrCardNotFound)
	})
}
