package model

import "time"

// Sender identifies the author of a message.
type Sender string

const (
	SenderUser Sender = "USER"
	SenderAI   Sender = "AI"
)

// GenerationMode selects what a turn produces. It is one-shot: the service
// resets it to chat after every turn regardless of outcome.
type GenerationMode string

const (
	ModeChat   GenerationMode = "chat"
	ModeImage  GenerationMode = "image"
	ModeSlides GenerationMode = "slides"
)

// Language selects the string table a session was initialized with.
type Language string

const (
	LanguageKannada Language = "kannada"
	LanguageEnglish Language = "english"
)

// Session stores metadata about a conversation.
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Language  Language  `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message stores a single message in a session. Seq is assigned per session
// in insertion order, so creation order is display order.
type Message struct {
	ID             string    `json:"id"`
	Seq            int       `json:"seq"`
	Sender         Sender    `json:"sender"`
	Text           string    `json:"text"`
	IsTyping       bool      `json:"is_typing,omitempty"`
	ImageURL       *string   `json:"image_url,omitempty"`
	IsDownloadable bool      `json:"is_downloadable,omitempty"`
	Timestamp      time.Time `json:"timestamp"`

	// Segments is a pure projection of Text, recomputed on read and never
	// stored, so it cannot drift from the text under streaming updates.
	Segments []Segment `json:"segments,omitempty"`
}

// FullSession includes the session metadata and all its messages.
type FullSession struct {
	Session
	Messages []Message `json:"messages"`
}

// SegmentType discriminates the Segment union.
type SegmentType string

const (
	SegmentText  SegmentType = "text"
	SegmentCode  SegmentType = "code"
	SegmentImage SegmentType = "image"
)

// Span is a run of plain or emphasized text inside a text segment.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Segment is one typed, renderable unit of a message. Raw always holds the
// exact input span the segment was parsed from; concatenating Raw over a
// message's segments reconstructs the message text.
type Segment struct {
	Type SegmentType `json:"type"`
	Raw  string      `json:"-"`

	// Type == text
	Spans []Span `json:"spans,omitempty"`

	// Type == code
	Language string `json:"language,omitempty"`
	Code     string `json:"code,omitempty"`

	// Type == image
	Alt string `json:"alt,omitempty"`
	URL string `json:"url,omitempty"`
}

// StreamResponse is the structure for a single chunk in a streaming turn.
type StreamResponse struct {
	Content string `json:"content"`
	Done    bool   `json:"done"`
	// PreviewHTML is set on chunks where the accumulated text contains a
	// closed html fence; absent chunks leave the previous preview untouched.
	PreviewHTML *string `json:"preview_html,omitempty"`
	Error       string  `json:"error,omitempty"`
}
