package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "nammai/backend/internal/errors"
)

// This file contains shared DTOs (Data Transfer Objects) for API requests and
// responses, and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse defines a generic success response, typically for operations
// like POST, PUT, DELETE that don't need to return a full resource.
type StatusResponse struct {
	Status string `json:"status"`
}

// CreateSessionRequest is the DTO for starting a new session.
type CreateSessionRequest struct {
	Language string `json:"language" validate:"omitempty,oneof=kannada english" example:"kannada"`
}

// UpdateTitleRequest is the DTO for the manual session title update endpoint.
type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100" example:"My Custom Chat Title"`
}

// UpdateLanguageRequest is the DTO for switching a fresh session's language.
type UpdateLanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=kannada english" example:"english"`
}

// AttachmentRequest is an inline binary part of a turn. Only images are
// accepted for analysis; anything else is rejected before the turn starts.
type AttachmentRequest struct {
	MimeType string `json:"mime_type" validate:"required" example:"image/png"`
	Data     string `json:"data" validate:"required,base64"`
}

// TurnRequest is the DTO for submitting one turn on a session.
type TurnRequest struct {
	Text       string             `json:"text"`
	Mode       string             `json:"mode" validate:"omitempty,oneof=chat image slides" example:"chat"`
	Attachment *AttachmentRequest `json:"attachment,omitempty"`
}

// PublishRequest is the DTO for publishing the current preview.
type PublishRequest struct {
	Language string `json:"language" validate:"omitempty,oneof=kannada english" example:"english"`
}

// PreviewResponse carries the current (or recomputed) preview payload.
type PreviewResponse struct {
	HTML string `json:"html"`
	Set  bool   `json:"set"`
}

// PublishResponse carries the localized publish confirmation.
type PublishResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps custom business-layer errors to appropriate HTTP status codes and formats
// a standard JSON error response.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		// For validation errors, the error message from the service layer
		// is already descriptive and user-friendly.
		message = err.Error()
	case errors.Is(err, app_errors.ErrConflict):
		statusCode = http.StatusConflict
		message = "A conflict occurred with the current state of the resource."
	case errors.Is(err, app_errors.ErrConfiguration):
		statusCode = http.StatusServiceUnavailable
		message = "The service is not configured correctly."
	default:
		// Any unhandled error is considered an internal server error.
		// This prevents leaking implementation details to the client.
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	// The original, more detailed error is logged for debugging purposes,
	// while a generic message is sent to the client.
	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// writeStreamEvent is a generic helper to marshal data and write it to an SSE
// stream. It returns an error on write failure, which is a signal that the
// client has disconnected.
func writeStreamEvent(w http.ResponseWriter, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		slog.Error("Failed to marshal stream data to JSON", "error", err)
		// The issue is with the data, not the connection; keep the stream open.
		return nil
	}

	if _, err := fmt.Fprintf(w, "data: %s\n\n", string(jsonData)); err != nil {
		return fmt.Errorf("failed to write data to stream: %w", err)
	}

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}
