// Package stream implements the client side of the backend's streaming chat
// endpoint. It opens one POST request, parses the text/event-stream response
// incrementally and hands every decoded event to caller-supplied handlers in
// arrival order.
package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	apperrors "github.com/SoofabhMK1/ai-writing-system/internal/errors"
	"github.com/SoofabhMK1/ai-writing-system/internal/model"
)

// genericErrorMessage is the fixed user-facing message for transport-level
// failures: connection errors, read errors, non-2xx statuses. Server-reported
// stream errors carry their own text instead.
const genericErrorMessage = "An error occurred. Please try again."

// Handlers receives decoded stream events. Nil handlers are skipped.
// Handlers are invoked inline on the calling goroutine, strictly in the
// order bytes were received and lines were parsed.
type Handlers struct {
	OnReasoning func(chunk string)
	OnContent   func(chunk string)
	OnError     func(message string)
}

// Client talks to the chat-stream endpoint of one backend.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a streaming client for the given backend base URL.
// The underlying HTTP client has no overall timeout: a stream legitimately
// stays open for as long as the model generates.
func NewClient(baseURL string) *Client {
	return &Client{
		http: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: 60 * time.Second,
			},
		},
		baseURL: baseURL,
	}
}

// chatStreamRequest is the request body for POST /api/v1/ai/chat-stream.
type chatStreamRequest struct {
	AIModelID int                 `json:"ai_model_id"`
	Messages  []model.ChatMessage `json:"messages"`
}

// Stream sends the conversation to the backend and consumes the SSE
// response until end-of-stream. Every failure is surfaced exactly once
// through h.OnError before being returned, so callers should log the
// returned error but must not surface it again.
func (c *Client) Stream(ctx context.Context, aiModelID int, messages []model.ChatMessage, h Handlers) error {
	body, err := json.Marshal(chatStreamRequest{AIModelID: aiModelID, Messages: messages})
	if err != nil {
		h.error(genericErrorMessage)
		return fmt.Errorf("could not marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/ai/chat-stream", bytes.NewReader(body))
	if err != nil {
		h.error(genericErrorMessage)
		return fmt.Errorf("could not create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		h.error(genericErrorMessage)
		return fmt.Errorf("chat stream request failed: %w", err)
	}
	defer func() {
		if cErr := resp.Body.Close(); cErr != nil {
			slog.Warn("Failed to close chat stream body", "error", cErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		h.error(genericErrorMessage)
		return fmt.Errorf("%w: chat stream returned status %d", apperrors.ErrBackend, resp.StatusCode)
	}

	p := &parser{}
	buf := make([]byte, 4096)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			for _, ev := range p.feed(buf[:n]) {
				h.dispatch(ev)
			}
		}
		if err == io.EOF {
			// A trailing unterminated record is incomplete per SSE
			// semantics and is dropped with the parser.
			return nil
		}
		if err != nil {
			h.error(genericErrorMessage)
			return fmt.Errorf("chat stream read failed: %w", err)
		}
	}
}

func (h Handlers) dispatch(ev model.StreamEvent) {
	switch ev.Type {
	case model.EventReasoning:
		if h.OnReasoning != nil {
			h.OnReasoning(ev.Chunk)
		}
	case model.EventContent:
		if h.OnContent != nil {
			h.OnContent(ev.Chunk)
		}
	case model.EventError:
		h.error(ev.Err)
	}
}

func (h Handlers) error(message string) {
	if h.OnError != nil {
		h.OnError(message)
	}
}
