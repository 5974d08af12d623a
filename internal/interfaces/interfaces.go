package interfaces

import (
	"context"

	"nammai/backend/internal/model"
	"nammai/backend/internal/service"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// ChatService defines the contract for running a turn against a session.
type ChatService interface {
	StartTurn(ctx context.Context, sessionID string, req *service.TurnRequest) (service.TurnStreamer, error)
}

// SessionService defines the contract for session lifecycle management.
type SessionService interface {
	CreateSession(ctx context.Context, lang model.Language) (*model.FullSession, error)
	ListSessions(ctx context.Context) ([]*model.Session, error)
	GetFullSession(ctx context.Context, sessionID string) (*model.FullSession, error)
	UpdateSessionTitle(ctx context.Context, sessionID, newTitle string) error
	ChangeLanguage(ctx context.Context, sessionID string, lang model.Language) error
}

// PreviewService defines the contract for the live preview surface.
type PreviewService interface {
	Current() (string, bool)
	SelectSession(ctx context.Context, sessionID string) (string, bool, error)
	Publish(lang model.Language) (message, url string, err error)
}
