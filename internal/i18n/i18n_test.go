package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nammai/backend/internal/i18n"
	"nammai/backend/internal/model"
)

func TestT(t *testing.T) {
	t.Run("Plain entry", func(t *testing.T) {
		assert.Equal(t, "New Chat", i18n.T(model.LanguageEnglish, i18n.KeyNewSessionTitle))
		assert.Equal(t, "Hosa Chat", i18n.T(model.LanguageKannada, i18n.KeyNewSessionTitle))
	})

	t.Run("Templated entry", func(t *testing.T) {
		got := i18n.T(model.LanguageEnglish, i18n.KeySlidesPrompt, "go routines")
		assert.Equal(t, "Create a slideshow about: go routines", got)
	})

	t.Run("Kanglish persona examples are complete", func(t *testing.T) {
		instruction := i18n.T(model.LanguageKannada, i18n.KeySystemInstruction)
		assert.Contains(t, instruction, `say "Hegi help madli?"`)
		assert.Contains(t, instruction, `say "Idh thagoni nimma image"`)
	})

	t.Run("Unknown language falls back to english", func(t *testing.T) {
		got := i18n.T(model.Language("klingon"), i18n.KeyAPIError)
		assert.Equal(t, i18n.T(model.LanguageEnglish, i18n.KeyAPIError), got)
	})
}

func TestValid(t *testing.T) {
	assert.True(t, i18n.Valid(model.LanguageKannada))
	assert.True(t, i18n.Valid(model.LanguageEnglish))
	assert.False(t, i18n.Valid(model.Language("french")))
}
