package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nammai/backend/internal/markdown"
)

func TestExtractHTML(t *testing.T) {
	t.Run("No fence", func(t *testing.T) {
		_, ok := markdown.ExtractHTML("just text")
		assert.False(t, ok)
	})

	t.Run("Unclosed fence", func(t *testing.T) {
		_, ok := markdown.ExtractHTML("intro ```html\n<p>streaming")
		assert.False(t, ok)
	})

	t.Run("Tagged fence", func(t *testing.T) {
		html, ok := markdown.ExtractHTML("here: ```html\n<p>hi</p>\n``` done")
		assert.True(t, ok)
		assert.Equal(t, "<p>hi</p>\n", html)
	})

	t.Run("Untagged fence does not qualify", func(t *testing.T) {
		_, ok := markdown.ExtractHTML("```\n<p>hi</p>\n```")
		assert.False(t, ok)
	})

	t.Run("Differently tagged fence does not qualify", func(t *testing.T) {
		_, ok := markdown.ExtractHTML("```js\nalert(1)\n```")
		assert.False(t, ok)
	})

	t.Run("First match wins", func(t *testing.T) {
		text := "```html\n<p>1</p>``` and ```html\n<p>2</p>```"
		html, ok := markdown.ExtractHTML(text)
		assert.True(t, ok)
		assert.Equal(t, "<p>1</p>", html)
	})
}
