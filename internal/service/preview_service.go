package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	app_errors "nammai/backend/internal/errors"
	"nammai/backend/internal/i18n"
	"nammai/backend/internal/markdown"
	"nammai/backend/internal/model"
	"nammai/backend/internal/repository"
)

// PreviewService holds the HTML payload currently shown in the live preview
// surface. There is one preview, following the single-active-session model.
type PreviewService struct {
	repo repository.Repository

	mu   sync.Mutex
	html string
	set  bool
}

func NewPreviewService(repo repository.Repository) *PreviewService {
	return &PreviewService{repo: repo}
}

// Current returns the preview payload, ok=false when nothing is previewable.
func (s *PreviewService) Current() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.html, s.set
}

// Set replaces the preview payload.
func (s *PreviewService) Set(html string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.html = html
	s.set = true
}

// Clear empties the preview surface. Chat and slides turns call this on
// entry so a stale preview from an unrelated turn is never shown against a
// new prompt; image turns skip it.
func (s *PreviewService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.html = ""
	s.set = false
}

// SelectSession recomputes the preview for a newly selected session from its
// last message. A session always ends on an AI message (the greeting, or the
// response of the most recent turn), so its first html fence becomes the
// preview; when it has none the preview clears.
func (s *PreviewService) SelectSession(ctx context.Context, sessionID string) (string, bool, error) {
	last, err := s.repo.GetLastMessage(ctx, sessionID)
	if err != nil {
		return "", false, mapRepoError(err, "could not get last message")
	}

	if last.Sender == model.SenderAI {
		if html, ok := markdown.ExtractHTML(last.Text); ok {
			s.Set(html)
			return html, true, nil
		}
	}
	s.Clear()
	return "", false, nil
}

// Publish simulates publishing the current preview and returns the localized
// confirmation with the generated URL.
func (s *PreviewService) Publish(lang model.Language) (message, url string, err error) {
	_, ok := s.Current()
	if !ok {
		return "", "", fmt.Errorf("%w: %s", app_errors.ErrValidation, i18n.T(lang, i18n.KeyPublishError))
	}
	url = fmt.Sprintf("https://f-studio-pub-%s.preview.app", uuid.NewString()[:8])
	return i18n.T(lang, i18n.KeyPublishSuccess, url), url, nil
}
