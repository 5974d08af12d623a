// The `_test` suffix creates a "black box" test package.
// This means the test code lives outside the `api` package and can only access
// its exported identifiers (functions, types, etc.). This is the preferred
// approach for testing the public API of a package.
package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nammai/backend/internal/api"
	app_errors "nammai/backend/internal/errors"

	// We import the generated mocks for our service interfaces.
	"nammai/backend/internal/interfaces/mocks"
	"nammai/backend/internal/model"
	"nammai/backend/internal/service"
)

// setupChatHandler encapsulates the repetitive setup logic for creating a
// handler with its dependencies mocked, keeping each test case focused on the
// behavior it checks.
func setupChatHandler(t *testing.T) (*api.ChatHandler, *mocks.MockSessionService, *mocks.MockChatService) {
	mockSessionSvc := mocks.NewMockSessionService(t)
	mockChatSvc := mocks.NewMockChatService(t)
	handler := api.NewChatHandler(mockSessionSvc, mockChatSvc)
	return handler, mockSessionSvc, mockChatSvc
}

// addChiURLParams simulates how the chi router injects URL parameters
// (e.g., `{sessionID}`) into the request's context. Without it,
// `chi.URLParam` would return an empty string inside the handlers.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func TestChatHandler_CreateSession(t *testing.T) {
	t.Run("Success with explicit language", func(t *testing.T) {
		handler, mockSessionSvc, _ := setupChatHandler(t)
		expected := &model.FullSession{
			Session: model.Session{ID: "s1", Language: model.LanguageEnglish},
		}
		mockSessionSvc.On("CreateSession", mock.Anything, model.LanguageEnglish).
			Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", strings.NewReader(`{"language":"english"}`))
		rr := httptest.NewRecorder()
		handler.HandleCreateSession(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var got model.FullSession
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "s1", got.ID)
	})

	t.Run("Success with empty body defaults language", func(t *testing.T) {
		handler, mockSessionSvc, _ := setupChatHandler(t)
		mockSessionSvc.On("CreateSession", mock.Anything, model.Language("")).
			Return(&model.FullSession{Session: model.Session{ID: "s2"}}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", nil)
		rr := httptest.NewRecorder()
		handler.HandleCreateSession(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - unsupported language", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", strings.NewReader(`{"language":"klingon"}`))
		rr := httptest.NewRecorder()
		handler.HandleCreateSession(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestChatHandler_GetSessions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSessionSvc, _ := setupChatHandler(t)
		sessions := []*model.Session{{ID: "s1"}, {ID: "s2"}}
		mockSessionSvc.On("ListSessions", mock.Anything).Return(sessions, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
		rr := httptest.NewRecorder()
		handler.HandleGetSessions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got []*model.Session
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("Failure", func(t *testing.T) {
		handler, mockSessionSvc, _ := setupChatHandler(t)
		mockSessionSvc.On("ListSessions", mock.Anything).Return(nil, app_errors.ErrInternal).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
		rr := httptest.NewRecorder()
		handler.HandleGetSessions(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestChatHandler_GetSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSessionSvc, _ := setupChatHandler(t)
		full := &model.FullSession{Session: model.Session{ID: "s1"}}
		mockSessionSvc.On("GetFullSession", mock.Anything, "s1").Return(full, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/s1", nil)
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.HandleGetSession(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - not found", func(t *testing.T) {
		handler, mockSessionSvc, _ := setupChatHandler(t)
		mockSessionSvc.On("GetFullSession", mock.Anything, "missing").
			Return(nil, app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/missing", nil)
		req = addChiURLParams(req, map[string]string{"sessionID": "missing"})
		rr := httptest.NewRecorder()
		handler.HandleGetSession(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestChatHandler_UpdateTitle(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSessionSvc, _ := setupChatHandler(t)
		mockSessionSvc.On("UpdateSessionTitle", mock.Anything, "s1", "A better name").
			Return(nil).Once()

		body := strings.NewReader(`{"title":"A better name"}`)
		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/s1/title", body)
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.HandleUpdateTitle(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - empty title fails validation", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/s1/title", strings.NewReader(`{"title":""}`))
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.HandleUpdateTitle(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - session not found", func(t *testing.T) {
		handler, mockSessionSvc, _ := setupChatHandler(t)
		mockSessionSvc.On("UpdateSessionTitle", mock.Anything, "missing", "name").
			Return(app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/missing/title", strings.NewReader(`{"title":"name"}`))
		req = addChiURLParams(req, map[string]string{"sessionID": "missing"})
		rr := httptest.NewRecorder()
		handler.HandleUpdateTitle(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestChatHandler_UpdateLanguage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSessionSvc, _ := setupChatHandler(t)
		mockSessionSvc.On("ChangeLanguage", mock.Anything, "s1", model.LanguageEnglish).
			Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/s1/language", strings.NewReader(`{"language":"english"}`))
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.HandleUpdateLanguage(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - conversation already started", func(t *testing.T) {
		handler, mockSessionSvc, _ := setupChatHandler(t)
		mockSessionSvc.On("ChangeLanguage", mock.Anything, "s1", model.LanguageKannada).
			Return(app_errors.ErrConflict).Once()

		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/s1/language", strings.NewReader(`{"language":"kannada"}`))
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.HandleUpdateLanguage(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Failure - missing language", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/s1/language", strings.NewReader(`{}`))
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.HandleUpdateLanguage(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

// fakeTurn is a minimal TurnStreamer used to exercise the SSE loop in
// HandleTurn without a real provider behind it.
type fakeTurn struct {
	chunks []model.StreamResponse
}

func (f *fakeTurn) Stream(_ context.Context, streamChan chan<- model.StreamResponse) {
	defer close(streamChan)
	for _, c := range f.chunks {
		streamChan <- c
	}
}

func TestChatHandler_HandleTurn(t *testing.T) {
	t.Run("Success - streams chunks as SSE events", func(t *testing.T) {
		handler, _, mockChatSvc := setupChatHandler(t)
		turn := &fakeTurn{chunks: []model.StreamResponse{
			{Content: "Hel"},
			{Content: "Hello, world", Done: true},
		}}
		mockChatSvc.On("StartTurn", mock.Anything, "s1", mock.AnythingOfType("*service.TurnRequest")).
			Return(turn, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s1/turns", strings.NewReader(`{"text":"hi"}`))
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.HandleTurn(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))

		body := rr.Body.String()
		events := strings.Split(strings.TrimSpace(body), "\n\n")
		assert.Len(t, events, 2)
		assert.True(t, strings.HasPrefix(events[0], "data: "))

		var last model.StreamResponse
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(events[1], "data: ")), &last))
		assert.True(t, last.Done)
		assert.Equal(t, "Hello, world", last.Content)
	})

	t.Run("Failure - turn already in flight returns plain 409", func(t *testing.T) {
		handler, _, mockChatSvc := setupChatHandler(t)
		mockChatSvc.On("StartTurn", mock.Anything, "s1", mock.AnythingOfType("*service.TurnRequest")).
			Return(nil, app_errors.ErrConflict).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s1/turns", strings.NewReader(`{"text":"hi"}`))
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.HandleTurn(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	})

	t.Run("Failure - unknown session returns plain 404", func(t *testing.T) {
		handler, _, mockChatSvc := setupChatHandler(t)
		mockChatSvc.On("StartTurn", mock.Anything, "missing", mock.AnythingOfType("*service.TurnRequest")).
			Return(nil, app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/missing/turns", strings.NewReader(`{"text":"hi"}`))
		req = addChiURLParams(req, map[string]string{"sessionID": "missing"})
		rr := httptest.NewRecorder()
		handler.HandleTurn(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Failure - invalid mode fails validation", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s1/turns", strings.NewReader(`{"text":"hi","mode":"video"}`))
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.HandleTurn(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Attachment is forwarded to the service", func(t *testing.T) {
		handler, _, mockChatSvc := setupChatHandler(t)
		turn := &fakeTurn{chunks: []model.StreamResponse{{Content: "ok", Done: true}}}
		mockChatSvc.On("StartTurn", mock.Anything, "s1", mock.MatchedBy(func(req *service.TurnRequest) bool {
			return req.Attachment != nil && req.Attachment.MimeType == "image/png"
		})).Return(turn, nil).Once()

		body := strings.NewReader(`{"text":"what is this?","attachment":{"mime_type":"image/png","data":"aGVsbG8="}}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s1/turns", body)
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.HandleTurn(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestPreviewHandler_GetPreview(t *testing.T) {
	mockPreviewSvc := mocks.NewMockPreviewService(t)
	handler := api.NewPreviewHandler(mockPreviewSvc)

	mockPreviewSvc.On("Current").Return("<h1>hi</h1>", true).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/preview", nil)
	rr := httptest.NewRecorder()
	handler.HandleGetPreview(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got api.PreviewResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.Set)
	assert.Equal(t, "<h1>hi</h1>", got.HTML)
}

func TestPreviewHandler_SelectSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockPreviewSvc := mocks.NewMockPreviewService(t)
		handler := api.NewPreviewHandler(mockPreviewSvc)
		mockPreviewSvc.On("SelectSession", mock.Anything, "s1").
			Return("<p>doc</p>", true, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s1/select", nil)
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.HandleSelectSession(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - not found", func(t *testing.T) {
		mockPreviewSvc := mocks.NewMockPreviewService(t)
		handler := api.NewPreviewHandler(mockPreviewSvc)
		mockPreviewSvc.On("SelectSession", mock.Anything, "missing").
			Return("", false, app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/missing/select", nil)
		req = addChiURLParams(req, map[string]string{"sessionID": "missing"})
		rr := httptest.NewRecorder()
		handler.HandleSelectSession(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestPreviewHandler_Publish(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockPreviewSvc := mocks.NewMockPreviewService(t)
		handler := api.NewPreviewHandler(mockPreviewSvc)
		mockPreviewSvc.On("Publish", model.LanguageEnglish).
			Return("Published!", "https://f-studio-pub-abc12345.preview.app", nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/preview/publish", strings.NewReader(`{"language":"english"}`))
		rr := httptest.NewRecorder()
		handler.HandlePublish(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got api.PublishResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Contains(t, got.URL, "preview.app")
	})

	t.Run("Empty body defaults to Kannada", func(t *testing.T) {
		mockPreviewSvc := mocks.NewMockPreviewService(t)
		handler := api.NewPreviewHandler(mockPreviewSvc)
		mockPreviewSvc.On("Publish", model.LanguageKannada).
			Return("msg", "url", nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/preview/publish", nil)
		rr := httptest.NewRecorder()
		handler.HandlePublish(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - nothing to publish", func(t *testing.T) {
		mockPreviewSvc := mocks.NewMockPreviewService(t)
		handler := api.NewPreviewHandler(mockPreviewSvc)
		mockPreviewSvc.On("Publish", model.LanguageKannada).
			Return("", "", app_errors.ErrValidation).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/preview/publish", strings.NewReader(`{"language":"kannada"}`))
		rr := httptest.NewRecorder()
		handler.HandlePublish(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
