package service

import (
	"context"
	"errors"
	"fmt"
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

// SessionService manages conversation sessions and owns the provider-side
// conversation handles. A session always exists with at least its seeded
// greeting message.
type SessionService struct {
	repo repository.Repository
	llm  llm.Provider

	mu            sync.Mutex
	conversations map[string]*llm.Conversation
}

func NewSessionService(repo repository.Repository, provider llm.Provider) *SessionService {
	return &SessionService{
		repo:          repo,
		llm:           provider,
		conversations: make(map[string]*llm.Conversation),
	}
}

// CreateSession starts a new session in the given language (or the fallback
// default), seeds the localized greeting and creates the conversation handle.
func (s *SessionService) CreateSession(ctx context.Context, lang model.Language) (*model.FullSession, error) {
	if lang == "" {
		lang = model.LanguageKannada
	}
	if !i18n.Valid(lang) {
		return nil, fmt.Errorf("%w: unsupported language %q", app_errors.ErrValidation, lang)
	}

	now := time.Now().UTC()
	session := &model.Session{
		ID:        uuid.NewString(),
		Title:     i18n.T(lang, i18n.KeyNewSessionTitle),
		Language:  lang,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("could not create session: %w", err)
	}

	greeting := &model.Message{
		ID:        uuid.NewString(),
		Sender:    model.SenderAI,
		Text:      i18n.T(lang, i18n.KeyInitialMessage),
		Timestamp: now,
	}
	if err := s.repo.AppendMessage(ctx, session.ID, greeting); err != nil {
		return nil, fmt.Errorf("could not seed greeting: %w", err)
	}

	s.mu.Lock()
	s.conversations[session.ID] = s.llm.NewConversation(i18n.T(lang, i18n.KeySystemInstruction))
	s.mu.Unlock()

	greeting.Segments = markdown.Segment(greeting.Text)
	return &model.FullSession{Session: *session, Messages: []model.Message{*greeting}}, nil
}

// ListSessions returns all sessions, most recently updated first.
func (s *SessionService) ListSessions(ctx context.Context) ([]*model.Session, error) {
	return s.repo.GetSessions(ctx)
}

// GetFullSession returns a session with its messages; each message carries
// the segment projection of its current text.
func (s *SessionService) GetFullSession(ctx context.Context, sessionID string) (*model.FullSession, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, mapRepoError(err, "could not get session")
	}
	messages, err := s.repo.GetMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not get messages: %w", err)
	}
	for i := range messages {
		messages[i].Segments = markdown.Segment(messages[i].Text)
	}
	return &model.FullSession{Session: *session, Messages: messages}, nil
}

// UpdateSessionTitle handles the logic for manually updating a session's title.
func (s *SessionService) UpdateSessionTitle(ctx context.Context, sessionID, newTitle string) error {
	if newTitle == "" {
		return fmt.Errorf("%w: title cannot be empty", app_errors.ErrValidation)
	}
	if err := s.repo.UpdateSessionTitle(ctx, sessionID, newTitle); err != nil {
		return mapRepoError(err, "could not update title")
	}
	return nil
}

// ChangeLanguage switches a session's language. Only a session the user has
// not engaged with yet (exactly the seeded greeting) may switch; the greeting
// is re-seeded and the conversation handle is recreated, not mutated.
func (s *SessionService) ChangeLanguage(ctx context.Context, sessionID string, lang model.Language) error {
	if !i18n.Valid(lang) {
		return fmt.Errorf("%w: unsupported language %q", app_errors.ErrValidation, lang)
	}

	count, err := s.repo.CountMessages(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("could not count messages: %w", err)
	}
	if count != 1 {
		return fmt.Errorf("%w: language is fixed once the conversation has started", app_errors.ErrConflict)
	}

	if err := s.repo.UpdateSessionLanguage(ctx, sessionID, lang); err != nil {
		return mapRepoError(err, "could not update language")
	}

	greeting := i18n.T(lang, i18n.KeyInitialMessage)
	title := i18n.T(lang, i18n.KeyNewSessionTitle)
	if err := s.repo.ReplaceLastMessage(ctx, sessionID, &repository.MessagePatch{Text: &greeting}); err != nil {
		return mapRepoError(err, "could not re-seed greeting")
	}
	if err := s.repo.UpdateSessionTitle(ctx, sessionID, title); err != nil {
		return mapRepoError(err, "could not reset title")
	}

	s.mu.Lock()
	s.conversations[sessionID] = s.llm.NewConversation(i18n.T(lang, i18n.KeySystemInstruction))
	s.mu.Unlock()

	return nil
}

// Conversation returns the provider handle owned by a session, lazily
// recreating it from the stored language when the registry has no entry
// (e.g., after a restart with a file-backed database).
func (s *SessionService) Conversation(ctx context.Context, sessionID string) (*llm.Conversation, error) {
	s.mu.Lock()
	if conv, ok := s.conversations[sessionID]; ok {
		s.mu.Unlock()
		return conv, nil
	}
	s.mu.Unlock()

	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, mapRepoError(err, "could not get session")
	}

	conv := s.llm.NewConversation(i18n.T(session.Language, i18n.KeySystemInstruction))
	s.mu.Lock()
	s.conversations[sessionID] = conv
	s.mu.Unlock()
	return conv, nil
}

func mapRepoError(err error, msg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s: %w", msg, app_errors.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
