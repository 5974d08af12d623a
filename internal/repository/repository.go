package repository

import (
	"context"

	"nammai/backend/internal/model"
)

// MessagePatch is a partial update applied to a session's last message.
// Nil fields are left untouched; applying the same patch twice is safe.
type MessagePatch struct {
	Text           *string
	IsTyping       *bool
	ImageURL       *string
	IsDownloadable *bool
}

// Repository defines the interface for data storage operations.
// Messages are append-only: the only permitted mutation is replacing
// fields of a session's last message while a response streams in.
type Repository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	GetSessions(ctx context.Context) ([]*model.Session, error)
	UpdateSessionTitle(ctx context.Context, sessionID, newTitle string) error
	UpdateSessionLanguage(ctx context.Context, sessionID string, lang model.Language) error

	AppendMessage(ctx context.Context, sessionID string, message *model.Message) error
	ReplaceLastMessage(ctx context.Context, sessionID string, patch *MessagePatch) error
	GetMessages(ctx context.Context, sessionID string) ([]model.Message, error)
	GetLastMessage(ctx context.Context, sessionID string) (*model.Message, error)
	CountMessages(ctx context.Context, sessionID string) (int, error)
}
