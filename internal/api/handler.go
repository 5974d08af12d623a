package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nammai/backend/internal/interfaces"
	"nammai/backend/internal/llm"
	"nammai/backend/internal/model"
	"nammai/backend/internal/service"
)

// ChatHandler handles HTTP requests for sessions and turns.
type ChatHandler struct {
	sessions interfaces.SessionService
	chat     interfaces.ChatService
}

func NewChatHandler(sessions interfaces.SessionService, chat interfaces.ChatService) *ChatHandler {
	return &ChatHandler{sessions: sessions, chat: chat}
}

// HandleCreateSession godoc
// @Summary      Start a new session
// @Description  Creates a session seeded with the localized assistant greeting.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionRequest  body  CreateSessionRequest  false  "Session language"
// @Success      201  {object}  model.FullSession
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/sessions [post]
func (h *ChatHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
			return
		}
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	session, err := h.sessions.CreateSession(r.Context(), model.Language(req.Language))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, session)
}

// HandleGetSessions godoc
// @Summary      List sessions
// @Description  Returns all sessions, most recently updated first.
// @Tags         Sessions
// @Produce      json
// @Success      200  {array}  model.Session
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/sessions [get]
func (h *ChatHandler) HandleGetSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.ListSessions(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sessions)
}

// HandleGetSession godoc
// @Summary      Get one session
// @Description  Returns a session's metadata and messages. Each message carries the segment projection of its text.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Success      200  {object}  model.FullSession
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID} [get]
func (h *ChatHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	session, err := h.sessions.GetFullSession(r.Context(), sessionID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// HandleUpdateTitle godoc
// @Summary      Rename a session
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID     path  string              true  "Session ID"
// @Param        titleRequest  body  UpdateTitleRequest  true  "New title"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/title [put]
func (h *ChatHandler) HandleUpdateTitle(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	var req UpdateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.sessions.UpdateSessionTitle(r.Context(), sessionID, req.Title); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleUpdateLanguage godoc
// @Summary      Switch a session's language
// @Description  Allowed only before the user has engaged; re-seeds the greeting and recreates the provider conversation.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID        path  string                 true  "Session ID"
// @Param        languageRequest  body  UpdateLanguageRequest  true  "New language"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/language [put]
func (h *ChatHandler) HandleUpdateLanguage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	var req UpdateLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.sessions.ChangeLanguage(r.Context(), sessionID, model.Language(req.Language)); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleTurn godoc
// @Summary      Run one turn
// @Description  Submits user input and streams the assistant response as Server-Sent Events. Pre-stream failures (validation, unknown session, a turn already in flight) respond with plain JSON errors before any event is written.
// @Tags         Turns
// @Accept       json
// @Produce      text/event-stream
// @Param        sessionID    path  string       true  "Session ID"
// @Param        turnRequest  body  TurnRequest  true  "Turn input"
// @Success      200  {object}  model.StreamResponse  "Stream of response chunks"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/turns [post]
func (h *ChatHandler) HandleTurn(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	svcReq := &service.TurnRequest{
		Text: req.Text,
		Mode: model.GenerationMode(req.Mode),
	}
	if req.Attachment != nil {
		svcReq.Attachment = &llm.Attachment{
			MimeType: req.Attachment.MimeType,
			Data:     req.Attachment.Data,
		}
	}

	turn, err := h.chat.StartTurn(r.Context(), sessionID, svcReq)
	if err != nil {
		respondWithError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// The turn is not cancellable: once started it runs to completion or
	// failure and its result lands in the session even if the client leaves.
	streamChan := make(chan model.StreamResponse)
	go turn.Stream(context.WithoutCancel(r.Context()), streamChan)

	clientGone := false
	for chunk := range streamChan {
		if clientGone {
			continue
		}
		if r.Context().Err() != nil {
			slog.Info("Client disconnected during turn; letting it finish.", "session_id", sessionID)
			clientGone = true
			continue
		}
		if err := writeStreamEvent(w, chunk); err != nil {
			slog.Warn("Could not write to turn stream, client likely disconnected.", "error", err)
			clientGone = true
		}
	}

	slog.Info("Finished streaming turn.", "session_id", sessionID)
}

// PreviewHandler handles HTTP requests for the live preview surface.
type PreviewHandler struct {
	preview interfaces.PreviewService
}

func NewPreviewHandler(preview interfaces.PreviewService) *PreviewHandler {
	return &PreviewHandler{preview: preview}
}

// HandleGetPreview godoc
// @Summary      Current preview payload
// @Tags         Preview
// @Produce      json
// @Success      200  {object}  PreviewResponse
// @Router       /v1/preview [get]
func (h *PreviewHandler) HandleGetPreview(w http.ResponseWriter, r *http.Request) {
	html, set := h.preview.Current()
	respondWithJSON(w, http.StatusOK, PreviewResponse{HTML: html, Set: set})
}

// HandleSelectSession godoc
// @Summary      Select a session
// @Description  Recomputes the preview from the selected session's most recent AI message.
// @Tags         Preview
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Success      200  {object}  PreviewResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/select [post]
func (h *PreviewHandler) HandleSelectSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	html, set, err := h.preview.SelectSession(r.Context(), sessionID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, PreviewResponse{HTML: html, Set: set})
}

// HandlePublish godoc
// @Summary      Publish the current preview
// @Tags         Preview
// @Accept       json
// @Produce      json
// @Param        publishRequest  body  PublishRequest  false  "Localization"
// @Success      200  {object}  PublishResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/preview/publish [post]
func (h *PreviewHandler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	var req PublishRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
			return
		}
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	lang := model.Language(req.Language)
	if lang == "" {
		lang = model.LanguageKannada
	}
	message, url, err := h.preview.Publish(lang)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, PublishResponse{Message: message, URL: url})
}
