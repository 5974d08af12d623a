// Package markdown parses the narrow markdown dialect the assistant emits:
// fenced code blocks, inline images and **bold** spans. It is not a general
// markdown parser. The segmenter re-runs on every partial buffer while a
// response is still streaming, so it must be total on all strings, including
// ones with unterminated fences and unbalanced delimiters.
package markdown

import (
	"regexp"
	"strings"

	"nammai/backend/internal/model"
)

// constructPattern matches, in priority order, a closed fenced code block or
// an inline image reference. An open fence without its closing marker does
// not match and falls through as plain text until the closing marker arrives.
var constructPattern = regexp.MustCompile("(```(?:\\w*\\n)?(?s:.*?)```)|(!\\[.*?\\]\\(.*?\\))")

// codeBlockPattern splits a matched fence into its language tag and body.
var codeBlockPattern = regexp.MustCompile("\\A```(\\w*)\\n?((?s:.*?))```\\z")

// imagePattern splits a matched image reference into alt text and URL.
var imagePattern = regexp.MustCompile(`\A!\[(.*?)\]\((.*?)\)\z`)

// Segment parses s into an ordered sequence of typed segments. The Raw fields
// of the result losslessly partition s: no characters are dropped or
// duplicated. An empty input yields no segments.
func Segment(s string) []model.Segment {
	if s == "" {
		return nil
	}

	var segments []model.Segment
	last := 0
	for _, loc := range constructPattern.FindAllStringSubmatchIndex(s, -1) {
		if loc[0] > last {
			segments = append(segments, textSegment(s[last:loc[0]]))
		}
		raw := s[loc[0]:loc[1]]
		if loc[2] >= 0 {
			segments = append(segments, codeSegment(raw))
		} else {
			segments = append(segments, imageSegment(raw))
		}
		last = loc[1]
	}
	if last < len(s) {
		segments = append(segments, textSegment(s[last:]))
	}
	return segments
}

func textSegment(raw string) model.Segment {
	return model.Segment{
		Type:  model.SegmentText,
		Raw:   raw,
		Spans: boldSpans(raw),
	}
}

// boldSpans splits on the double-asterisk delimiter; odd-indexed slices are
// emphasized. This is a toggle, not a balanced-pair matcher: an odd
// delimiter count emphasizes the remainder of the text.
func boldSpans(text string) []model.Span {
	parts := strings.Split(text, "**")
	spans := make([]model.Span, 0, len(parts))
	for i, part := range parts {
		spans = append(spans, model.Span{Text: part, Bold: i%2 == 1})
	}
	return spans
}

func codeSegment(raw string) model.Segment {
	seg := model.Segment{Type: model.SegmentCode, Raw: raw}
	parts := codeBlockPattern.FindStringSubmatch(raw)
	if parts == nil {
		// No structured content recognized; fall back to the raw text.
		seg.Language = "text"
		seg.Code = strings.TrimSpace(raw)
		return seg
	}
	seg.Language = parts[1]
	if seg.Language == "" {
		seg.Language = "text"
	}
	seg.Code = strings.TrimSpace(parts[2])
	return seg
}

func imageSegment(raw string) model.Segment {
	seg := model.Segment{Type: model.SegmentImage, Raw: raw}
	parts := imagePattern.FindStringSubmatch(raw)
	if parts == nil {
		return seg
	}
	seg.Alt = parts[1]
	seg.URL = parts[2]
	return seg
}
