package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	app_errors "nammai/backend/internal/errors"
	"nammai/backend/internal/i18n"
	"nammai/backend/internal/llm"
	"nammai/backend/internal/markdown"
	"nammai/backend/internal/model"
	"nammai/backend/internal/repository"
)

// titleLimit is the rune budget for a title derived from the first user message.
const titleLimit = 30

// ChatService coordinates one request/response turn: it builds the outbound
// payload, drives the fragment stream (or the non-streaming image call) into
// the session's last message, and guards the single-flight invariant.
type ChatService struct {
	repo     repository.Repository
	llm      llm.Provider
	sessions *SessionService
	preview  *PreviewService

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewChatService(repo repository.Repository, provider llm.Provider, sessions *SessionService, preview *PreviewService) *ChatService {
	return &ChatService{
		repo:     repo,
		llm:      provider,
		sessions: sessions,
		preview:  preview,
		inFlight: make(map[string]bool),
	}
}

// TurnRequest carries the user's input for one turn.
type TurnRequest struct {
	Text       string
	Mode       model.GenerationMode
	Attachment *llm.Attachment
}

// TurnStreamer runs a started turn to completion, delivering chunks on the
// given channel and closing it when the turn ends.
type TurnStreamer interface {
	Stream(ctx context.Context, streamChan chan<- model.StreamResponse)
}

// Turn is an in-progress turn started by StartTurn. Exactly one turn may
// exist per session at a time; Stream must be called exactly once to finish
// it and release the single-flight slot.
type Turn struct {
	svc        *ChatService
	session    *model.Session
	conv       *llm.Conversation
	mode       model.GenerationMode
	promptText string
	attachment *llm.Attachment
}

// StartTurn validates the request and performs all pre-stream side effects:
// acquiring the single-flight slot, appending the user message, deriving the
// session title on the first exchange, clearing the preview for chat/slides
// turns, and appending the typing placeholder. Failures here happen before
// any stream is open and surface as plain errors.
func (s *ChatService) StartTurn(ctx context.Context, sessionID string, req *TurnRequest) (TurnStreamer, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" && req.Attachment == nil {
		return nil, fmt.Errorf("%w: message text or attachment required", app_errors.ErrValidation)
	}

	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, mapRepoError(err, "could not get session")
	}

	if req.Attachment != nil && !strings.HasPrefix(req.Attachment.MimeType, "image/") {
		return nil, fmt.Errorf("%w: %s", app_errors.ErrValidation, i18n.T(session.Language, i18n.KeyImageOnlyError))
	}

	mode := req.Mode
	if mode == "" {
		mode = model.ModeChat
	}
	switch mode {
	case model.ModeChat, model.ModeImage, model.ModeSlides:
	default:
		return nil, fmt.Errorf("%w: unknown generation mode %q", app_errors.ErrValidation, mode)
	}

	conv, err := s.sessions.Conversation(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !s.acquire(sessionID) {
		return nil, fmt.Errorf("%w: a turn is already streaming for this session", app_errors.ErrConflict)
	}
	// Release on any pre-stream failure below; Stream takes over on success.
	started := false
	defer func() {
		if !started {
			s.release(sessionID)
		}
	}()

	promptText := text
	if mode == model.ModeSlides && promptText != "" {
		promptText = i18n.T(session.Language, i18n.KeySlidesPrompt, promptText)
	} else if req.Attachment != nil && promptText == "" {
		promptText = i18n.T(session.Language, i18n.KeyImageAnalysisPrompt)
	}

	count, err := s.repo.CountMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not count messages: %w", err)
	}

	// The user message records what the user typed, not the rewritten prompt.
	userMessage := &model.Message{
		ID:        uuid.NewString(),
		Sender:    model.SenderUser,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.AppendMessage(ctx, sessionID, userMessage); err != nil {
		return nil, fmt.Errorf("could not append user message: %w", err)
	}

	// Only the first exchange derives the title; it is immutable after.
	if count <= 1 && text != "" {
		if err := s.repo.UpdateSessionTitle(ctx, sessionID, deriveTitle(text)); err != nil {
			slog.Warn("Failed to derive session title", "session_id", sessionID, "error", err)
		}
	}

	if mode != model.ModeImage {
		s.preview.Clear()
	}

	placeholderText := ""
	if mode == model.ModeImage {
		placeholderText = i18n.T(session.Language, i18n.KeyImageGenPlaceholder, promptText)
	}
	placeholder := &model.Message{
		ID:        uuid.NewString(),
		Sender:    model.SenderAI,
		Text:      placeholderText,
		IsTyping:  true,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.AppendMessage(ctx, sessionID, placeholder); err != nil {
		return nil, fmt.Errorf("could not append placeholder message: %w", err)
	}

	started = true
	return &Turn{
		svc:        s,
		session:    session,
		conv:       conv,
		mode:       mode,
		promptText: promptText,
		attachment: req.Attachment,
	}, nil
}

// Stream runs the turn to completion, delivering chunks on streamChan. It
// closes streamChan and releases the single-flight slot when the turn ends.
func (t *Turn) Stream(ctx context.Context, streamChan chan<- model.StreamResponse) {
	defer close(streamChan)
	defer t.svc.release(t.session.ID)

	if t.mode == model.ModeImage {
		t.streamImage(ctx, streamChan)
		return
	}
	t.streamChat(ctx, streamChan)
}

// streamChat consumes the fragment stream, accumulating fragments into the
// placeholder message. Re-segmentation is implicit (segments are a read-time
// projection); re-extraction runs on every fragment so the preview updates
// as soon as the closing html fence arrives.
func (t *Turn) streamChat(ctx context.Context, streamChan chan<- model.StreamResponse) {
	llmChan := make(chan llm.StreamResponse)
	go func() {
		if err := t.svc.llm.SendMessageStream(ctx, t.conv, t.promptText, t.attachment, llmChan); err != nil {
			slog.Error("Stream error from provider", "session_id", t.session.ID, "error", err)
		}
	}()

	var buf strings.Builder
	first := true
	var lastPreview string

	for chunk := range llmChan {
		if chunk.Error != "" {
			go drain(llmChan)
			t.fail(ctx, streamChan)
			return
		}
		if chunk.Done {
			go drain(llmChan)
			break
		}

		buf.WriteString(chunk.Content)
		first = false

		full := buf.String()
		notTyping := false
		patch := &repository.MessagePatch{Text: &full, IsTyping: &notTyping}
		if err := t.svc.repo.ReplaceLastMessage(ctx, t.session.ID, patch); err != nil {
			slog.Error("Failed to persist streamed fragment", "session_id", t.session.ID, "error", err)
		}

		out := model.StreamResponse{Content: chunk.Content}
		if html, ok := markdown.ExtractHTML(full); ok && html != lastPreview {
			t.svc.preview.Set(html)
			lastPreview = html
			out.PreviewHTML = &html
		}
		streamChan <- out
	}

	if first {
		// The stream ended without delivering a single fragment.
		ellipsis := "..."
		notTyping := false
		if err := t.svc.repo.ReplaceLastMessage(ctx, t.session.ID, &repository.MessagePatch{Text: &ellipsis, IsTyping: &notTyping}); err != nil {
			slog.Error("Failed to finalize empty response", "session_id", t.session.ID, "error", err)
		}
	}

	streamChan <- model.StreamResponse{Done: true}
}

// streamImage runs the non-streaming image generation call.
func (t *Turn) streamImage(ctx context.Context, streamChan chan<- model.StreamResponse) {
	img, err := t.svc.llm.GenerateImage(ctx, t.promptText)
	if err != nil {
		slog.Error("Image generation failed", "session_id", t.session.ID, "error", err)
		t.fail(ctx, streamChan)
		return
	}

	doneText := i18n.T(t.session.Language, i18n.KeyImageGenDone, t.promptText)
	imageURL := fmt.Sprintf("data:%s;base64,%s", img.MimeType, img.BytesBase64)
	notTyping := false
	downloadable := true
	patch := &repository.MessagePatch{
		Text:           &doneText,
		IsTyping:       &notTyping,
		ImageURL:       &imageURL,
		IsDownloadable: &downloadable,
	}
	if err := t.svc.repo.ReplaceLastMessage(ctx, t.session.ID, patch); err != nil {
		slog.Error("Failed to persist generated image", "session_id", t.session.ID, "error", err)
	}

	streamChan <- model.StreamResponse{Content: doneText, Done: true}
}

// fail replaces the in-progress placeholder (discarding any partial buffer)
// with the localized synthetic error message and ends the turn. No retry.
func (t *Turn) fail(ctx context.Context, streamChan chan<- model.StreamResponse) {
	errText := i18n.T(t.session.Language, i18n.KeyAPIError)
	notTyping := false
	patch := &repository.MessagePatch{Text: &errText, IsTyping: &notTyping}
	if err := t.svc.repo.ReplaceLastMessage(ctx, t.session.ID, patch); err != nil {
		slog.Error("Failed to record turn failure", "session_id", t.session.ID, "error", err)
	}
	streamChan <- model.StreamResponse{Error: errText, Done: true}
}

// drain discards any fragments the provider sends after the consumer has
// stopped reading, so its goroutine can finish and close the channel.
func drain(ch <-chan llm.StreamResponse) {
	for range ch {
	}
}

func (s *ChatService) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[sessionID] {
		return false
	}
	s.inFlight[sessionID] = true
	return true
}

func (s *ChatService) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}

// deriveTitle shortens the first user message into a session title.
func deriveTitle(s string) string {
	runes := []rune(s)
	if len(runes) <= titleLimit {
		return s
	}
	return string(runes[:titleLimit]) + "..."
}
