package service

import (
	"context"

	"github.com/SoofabhMK1/ai-writing-system/internal/model"
	"github.com/SoofabhMK1/ai-writing-system/internal/stream"
)

// The orchestrator depends on narrow interfaces rather than concrete
// clients, which decouples it from the HTTP layer and keeps it mockable.

// Backend is the slice of the REST client the orchestrator needs for
// conversation persistence.
type Backend interface {
	CreateConversation(ctx context.Context, in model.ConversationCreate) (*model.Conversation, error)
	UpdateConversation(ctx context.Context, id int, in model.ConversationCreate) (*model.Conversation, error)
	GetConversation(ctx context.Context, id int) (*model.Conversation, error)
	ListConversations(ctx context.Context) ([]model.Conversation, error)
	ListConversationsByProject(ctx context.Context, projectID int) ([]model.Conversation, error)
	DeleteConversation(ctx context.Context, id int) error
}

// Streamer opens one streaming chat episode against the model backend.
type Streamer interface {
	Stream(ctx context.Context, aiModelID int, messages []model.ChatMessage, h stream.Handlers) error
}

// Gate asks the user to approve an outgoing payload before transmission.
// It returns nil on approval, apperrors.ErrCanceled when the user declined,
// and any other error for a gate failure. The call blocks until resolved.
type Gate interface {
	Confirm(ctx context.Context, title, body string) error
}

// Notice kinds understood by Notifier implementations.
const (
	NoticeInfo    = "info"
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notifier surfaces user-facing notices outside the chat transcript.
type Notifier interface {
	Show(message, kind string)
}
