package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// StreamResponse is a single fragment of a streaming chat turn. It is a local
// type for the llm package; the service layer maps it onto its own chunks.
type StreamResponse struct {
	Content string
	Done    bool
	Error   string
}

// Attachment is an optional inline binary part of a turn.
type Attachment struct {
	MimeType string
	Data     string // base64 payload
}

// GeneratedImage is the result of a non-streaming image generation call.
type GeneratedImage struct {
	MimeType    string
	BytesBase64 string
}

// Provider defines the interface for the generative AI backend.
type Provider interface {
	// NewConversation creates a fresh stateful conversation handle bound to
	// the given system instruction.
	NewConversation(systemInstruction string) *Conversation
	// SendMessageStream submits one user turn on conv and delivers response
	// fragments on ch in arrival order. It closes ch when the stream ends.
	// History is committed to conv only after the stream completes cleanly.
	SendMessageStream(ctx context.Context, conv *Conversation, text string, attachment *Attachment, ch chan<- StreamResponse) error
	// GenerateImage runs a single request/response image generation call.
	GenerateImage(ctx context.Context, prompt string) (*GeneratedImage, error)
}

type geminiProvider struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	chatModel  string
	imageModel string
}

// NewGeminiProvider builds a Provider over the Gemini REST API.
func NewGeminiProvider(baseURL, apiKey, chatModel, imageModel string) Provider {
	return &geminiProvider{
		client:     &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		chatModel:  chatModel,
		imageModel: imageModel,
	}
}

// Wire structs for the Gemini generateContent surface.
type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerateRequest struct {
	SystemInstruction *struct {
		Parts []geminiPart `json:"parts"`
	} `json:"system_instruction,omitempty"`
	Contents []geminiContent `json:"contents"`
}

type geminiStreamChunk struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (p *geminiProvider) NewConversation(systemInstruction string) *Conversation {
	return &Conversation{systemInstruction: systemInstruction}
}

func (p *geminiProvider) SendMessageStream(ctx context.Context, conv *Conversation, text string, attachment *Attachment, ch chan<- StreamResponse) error {
	defer close(ch)

	userContent := geminiContent{Role: "user", Parts: []geminiPart{{Text: text}}}
	if attachment != nil {
		userContent.Parts = append(userContent.Parts, geminiPart{
			InlineData: &geminiInlineData{MimeType: attachment.MimeType, Data: attachment.Data},
		})
	}

	reqBody := geminiGenerateRequest{Contents: append(conv.snapshot(), userContent)}
	if conv.systemInstruction != "" {
		reqBody.SystemInstruction = &struct {
			Parts []geminiPart `json:"parts"`
		}{Parts: []geminiPart{{Text: conv.systemInstruction}}}
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		ch <- StreamResponse{Error: "could not marshal request"}
		return fmt.Errorf("could not marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse", p.baseURL, p.chatModel)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		ch <- StreamResponse{Error: "could not create request"}
		return fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		ch <- StreamResponse{Error: "request failed"}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		ch <- StreamResponse{Error: fmt.Sprintf("api returned status %d", resp.StatusCode)}
		return fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var full strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		payload := strings.TrimPrefix(line, "data: ")
		if payload == "[DONE]" {
			break
		}

		var chunk geminiStreamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			ch <- StreamResponse{Error: "failed to decode stream chunk"}
			continue
		}
		var fragment string
		for _, cand := range chunk.Candidates {
			for _, part := range cand.Content.Parts {
				fragment += part.Text
			}
		}
		if fragment == "" {
			continue
		}
		full.WriteString(fragment)

		select {
		case ch <- StreamResponse{Content: fragment}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		ch <- StreamResponse{Error: "stream read failed"}
		return fmt.Errorf("stream read failed: %w", err)
	}

	conv.commit(userContent, geminiContent{Role: "model", Parts: []geminiPart{{Text: full.String()}}})

	select {
	case ch <- StreamResponse{Done: true}:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// Wire structs for the image prediction surface.
type geminiPredictRequest struct {
	Instances []struct {
		Prompt string `json:"prompt"`
	} `json:"instances"`
	Parameters struct {
		SampleCount    int    `json:"sampleCount"`
		OutputMimeType string `json:"outputMimeType,omitempty"`
	} `json:"parameters"`
}

type geminiPredictResponse struct {
	Predictions []struct {
		MimeType           string `json:"mimeType"`
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
	} `json:"predictions"`
}

func (p *geminiProvider) GenerateImage(ctx context.Context, prompt string) (*GeneratedImage, error) {
	var reqBody geminiPredictRequest
	reqBody.Instances = []struct {
		Prompt string `json:"prompt"`
	}{{Prompt: prompt}}
	reqBody.Parameters.SampleCount = 1
	reqBody.Parameters.OutputMimeType = "image/jpeg"

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:predict", p.baseURL, p.imageModel)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var predictResp geminiPredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&predictResp); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	if len(predictResp.Predictions) == 0 {
		return nil, fmt.Errorf("api returned no generated images")
	}

	mimeType := predictResp.Predictions[0].MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return &GeneratedImage{
		MimeType:    mimeType,
		BytesBase64: predictResp.Predictions[0].BytesBase64Encoded,
	}, nil
}
