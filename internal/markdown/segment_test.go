package markdown_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nammai/backend/internal/markdown"
	"nammai/backend/internal/model"
)

// rejoin concatenates the Raw spans of a segment sequence.
func rejoin(segments []model.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Raw)
	}
	return b.String()
}

func TestSegment_Empty(t *testing.T) {
	assert.Nil(t, markdown.Segment(""))
}

func TestSegment_PlainText(t *testing.T) {
	segments := markdown.Segment("hello world")
	require.Len(t, segments, 1)
	assert.Equal(t, model.SegmentText, segments[0].Type)
	assert.Equal(t, []model.Span{{Text: "hello world"}}, segments[0].Spans)
}

func TestSegment_CodeBlock(t *testing.T) {
	t.Run("With language tag", func(t *testing.T) {
		segments := markdown.Segment("before\n```go\nfmt.Println(\"hi\")\n```\nafter")
		require.Len(t, segments, 3)

		assert.Equal(t, model.SegmentText, segments[0].Type)
		assert.Equal(t, model.SegmentCode, segments[1].Type)
		assert.Equal(t, "go", segments[1].Language)
		assert.Equal(t, "fmt.Println(\"hi\")", segments[1].Code)
		assert.Equal(t, model.SegmentText, segments[2].Type)
	})

	t.Run("Empty language tag falls back to text", func(t *testing.T) {
		segments := markdown.Segment("```\nbody\n```")
		require.Len(t, segments, 1)
		assert.Equal(t, "text", segments[0].Language)
		assert.Equal(t, "body", segments[0].Code)
	})

	t.Run("Body is trimmed", func(t *testing.T) {
		segments := markdown.Segment("```py\n\n  x = 1  \n\n```")
		require.Len(t, segments, 1)
		assert.Equal(t, "x = 1", segments[0].Code)
	})
}

func TestSegment_InlineImage(t *testing.T) {
	segments := markdown.Segment("look: ![a cat](https://example.com/cat.png) nice")
	require.Len(t, segments, 3)
	assert.Equal(t, model.SegmentImage, segments[1].Type)
	assert.Equal(t, "a cat", segments[1].Alt)
	assert.Equal(t, "https://example.com/cat.png", segments[1].URL)
}

func TestSegment_PartialFenceTolerance(t *testing.T) {
	// An unterminated fence is plain text until its closing marker arrives.
	partial := "abc ```html\nfoo"
	segments := markdown.Segment(partial)
	require.Len(t, segments, 1)
	assert.Equal(t, model.SegmentText, segments[0].Type)
	assert.Equal(t, partial, segments[0].Raw)

	completed := partial + "```"
	segments = markdown.Segment(completed)
	require.Len(t, segments, 2)
	assert.Equal(t, model.SegmentCode, segments[1].Type)
	assert.Equal(t, "html", segments[1].Language)
	assert.Equal(t, "foo", segments[1].Code)
}

func TestSegment_BoldOddCount(t *testing.T) {
	segments := markdown.Segment("a**b**c**d")
	require.Len(t, segments, 1)

	want := []model.Span{
		{Text: "a"},
		{Text: "b", Bold: true},
		{Text: "c"},
		{Text: "d", Bold: true},
	}
	assert.Equal(t, want, segments[0].Spans)
}

func TestSegment_RawReconstruction(t *testing.T) {
	// The segmenter must be total and lossless on arbitrary input.
	inputs := []string{
		"",
		"plain",
		"**bold** and ![img](u) and ```go\ncode\n```",
		"``` ` `` ```",
		"```unclosed",
		"```\n",
		"**",
		"******",
		"![](",
		"![]()",
		"text ```html\n<p>x</p>``` tail ![a](b)",
		"```js\na\n``````html\n<b>\n```",
		"\n\n```\n\n",
		"mixed **bo```ld** fence```html\n<i>\n``` end",
	}
	for _, input := range inputs {
		segments := markdown.Segment(input)
		assert.Equal(t, input, rejoin(segments), "input %q must reconstruct", input)
	}
}

func TestSegment_MultipleConstructsKeepOrder(t *testing.T) {
	input := "one ![a](u1) two ```sh\nls\n``` three ![b](u2)"
	segments := markdown.Segment(input)
	require.Len(t, segments, 6)

	types := make([]model.SegmentType, len(segments))
	for i, seg := range segments {
		types[i] = seg.Type
	}
	assert.Equal(t, []model.SegmentType{
		model.SegmentText, model.SegmentImage,
		model.SegmentText, model.SegmentCode,
		model.SegmentText, model.SegmentImage,
	}, types)
	assert.Equal(t, input, rejoin(segments))
}
