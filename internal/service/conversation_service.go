package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SoofabhMK1/ai-writing-system/internal/cache"
	apperrors "github.com/SoofabhMK1/ai-writing-system/internal/errors"
	"github.com/SoofabhMK1/ai-writing-system/internal/model"
	"github.com/SoofabhMK1/ai-writing-system/internal/prompt"
	"github.com/SoofabhMK1/ai-writing-system/internal/stream"
)

// titleLimit caps a conversation title derived from its first message.
const titleLimit = 50

// ConversationService owns the state of the active conversation and drives
// the send → (gate) → assemble → stream → persist cycle.
//
// It is deliberately single-threaded: all methods must be called from one
// goroutine, stream handlers run inline between reads, and the isLoading
// guard is the only defense against a second streaming episode. That guard
// makes locking unnecessary.
type ConversationService struct {
	backend  Backend
	streamer Streamer
	gate     Gate
	notifier Notifier
	history  cache.Repository

	projectID *int
	currentID *int
	title     string
	messages  []model.Message
	list      []model.Conversation

	isLoading         bool
	previewBeforeSend bool
	preset            *model.PromptPreset
}

// NewConversationService wires an orchestrator. history may be nil when no
// local cache is configured.
func NewConversationService(backend Backend, streamer Streamer, gate Gate, notifier Notifier, history cache.Repository) *ConversationService {
	return &ConversationService{
		backend:  backend,
		streamer: streamer,
		gate:     gate,
		notifier: notifier,
		history:  history,
	}
}

// SetProjectID scopes persistence and history listing to one project.
func (s *ConversationService) SetProjectID(id int) {
	s.projectID = &id
}

// SetPreviewBeforeSend toggles the confirm-before-send gate.
func (s *ConversationService) SetPreviewBeforeSend(enabled bool) {
	s.previewBeforeSend = enabled
}

// PreviewBeforeSend reports whether the confirmation gate is enabled.
func (s *ConversationService) PreviewBeforeSend() bool {
	return s.previewBeforeSend
}

// SetPreset selects the instruction preset applied by message assembly.
// Pass nil for plain pass-through mode.
func (s *ConversationService) SetPreset(p *model.PromptPreset) {
	s.preset = p
}

// Preset returns the currently selected preset, or nil.
func (s *ConversationService) Preset() *model.PromptPreset {
	return s.preset
}

// Messages returns the live message list of the active conversation.
func (s *ConversationService) Messages() []model.Message {
	return s.messages
}

// CurrentID returns the persistence id of the active conversation, or nil
// if it has never been saved.
func (s *ConversationService) CurrentID() *int {
	return s.currentID
}

// IsLoading reports whether a streaming episode is in flight.
func (s *ConversationService) IsLoading() bool {
	return s.isLoading
}

// HistoryList returns the last known conversation history listing.
func (s *ConversationService) HistoryList() []model.Conversation {
	return s.list
}

// SendMessage runs one full send cycle for the given user input and reports
// whether the message was actually sent. Empty input, an in-flight stream,
// a declined preview gate or a gate failure all yield false without
// mutating the conversation.
func (s *ConversationService) SendMessage(ctx context.Context, text string, aiModelID int) bool {
	if text == "" || s.isLoading {
		return false
	}

	userMessage := model.Message{Role: model.RoleUser, Content: text}

	if s.previewBeforeSend {
		prospective := append(append([]model.Message{}, s.messages...), userMessage)
		preview := prompt.RenderPreview(prompt.Prepare(prospective, s.preset))

		if err := s.gate.Confirm(ctx, "Review message before sending", preview); err != nil {
			if errors.Is(err, apperrors.ErrCanceled) {
				return false
			}
			slog.Error("Preview gate failed", "error", err)
			return false
		}
	}

	s.messages = append(s.messages, userMessage)
	s.streamChat(ctx, aiModelID)
	return true
}

// streamChat runs one streaming episode: appends the mutable assistant
// placeholder, assembles the transmit payload from everything before it,
// and concatenates incoming chunks into the placeholder field by field.
func (s *ConversationService) streamChat(ctx context.Context, aiModelID int) {
	s.isLoading = true
	defer func() { s.isLoading = false }()

	episode := uuid.NewString()

	s.messages = append(s.messages, model.Message{Role: model.RoleAssistant})
	assistant := &s.messages[len(s.messages)-1]

	payload := prompt.Prepare(s.messages[:len(s.messages)-1], s.preset)

	handlers := stream.Handlers{
		OnReasoning: func(chunk string) {
			assistant.Thinking += chunk
		},
		OnContent: func(chunk string) {
			assistant.Content += chunk
		},
		OnError: func(message string) {
			// Partial output already streamed stays in place.
			assistant.Content += "\n\nError: " + message
		},
	}

	slog.Debug("Starting chat stream", "episode", episode, "ai_model_id", aiModelID, "payload_messages", len(payload))
	if err := s.streamer.Stream(ctx, aiModelID, payload, handlers); err != nil {
		// Already surfaced into the assistant message by OnError.
		slog.Error("Chat stream ended with error", "episode", episode, "error", err)
		return
	}
	slog.Debug("Chat stream finished", "episode", episode, "content_len", len(assistant.Content))
}

// SaveCurrentConversation persists the active conversation: POST on first
// save, PUT once an id exists. The title is derived once from the first
// message and reused afterwards. A conversation with no messages is not
// saved. After a successful save the history listing is refreshed.
func (s *ConversationService) SaveCurrentConversation(ctx context.Context) error {
	if len(s.messages) == 0 {
		return nil
	}

	if s.title == "" {
		s.title = truncate(s.messages[0].Content, titleLimit)
	}

	payload := model.ConversationCreate{
		ProjectID: s.projectID,
		Title:     s.title,
		Messages:  s.messages,
	}

	var (
		saved *model.Conversation
		err   error
	)
	if s.currentID != nil {
		saved, err = s.backend.UpdateConversation(ctx, *s.currentID, payload)
	} else {
		saved, err = s.backend.CreateConversation(ctx, payload)
	}
	if err != nil {
		slog.Error("Failed to save conversation", "error", err)
		s.notifier.Show("Failed to save conversation.", NoticeError)
		return err
	}

	id := saved.ID
	s.currentID = &id

	if err := s.LoadConversationHistory(ctx); err != nil {
		// The save itself succeeded; a stale listing is tolerable.
		slog.Warn("Could not refresh history after save", "error", err)
	}
	return nil
}

// LoadConversationHistory refreshes the history listing from the backend
// and mirrors it into the local cache. When the backend is unreachable the
// last mirrored listing is served instead.
func (s *ConversationService) LoadConversationHistory(ctx context.Context) error {
	var (
		list []model.Conversation
		err  error
	)
	if s.projectID != nil {
		list, err = s.backend.ListConversationsByProject(ctx, *s.projectID)
	} else {
		list, err = s.backend.ListConversations(ctx)
	}
	if err != nil {
		slog.Error("Failed to load conversation history", "error", err)
		if cached, ok := s.cachedHistory(ctx); ok {
			s.list = cached
			s.notifier.Show("Backend unreachable; showing cached history.", NoticeInfo)
			return nil
		}
		return err
	}

	s.list = list
	s.mirrorHistory(ctx, list)
	return nil
}

// LoadConversation makes a stored conversation the active one.
func (s *ConversationService) LoadConversation(ctx context.Context, id int) error {
	conv, err := s.backend.GetConversation(ctx, id)
	if err != nil {
		slog.Error("Failed to load conversation", "id", id, "error", err)
		s.notifier.Show("Failed to load conversation.", NoticeError)
		return err
	}
	s.currentID = &conv.ID
	s.title = conv.Title
	s.messages = conv.Messages
	return nil
}

// StartNewConversation drops the active conversation's identity: id, title,
// messages and selected preset all reset. This is the only way to end a
// conversation's identity on the client.
func (s *ConversationService) StartNewConversation() {
	s.currentID = nil
	s.title = ""
	s.messages = nil
	s.preset = nil
}

// DeleteConversation removes a stored conversation. The history list is
// only updated after the backend confirms the deletion. Deleting the
// active conversation also starts a new one.
func (s *ConversationService) DeleteConversation(ctx context.Context, id int) error {
	if err := s.backend.DeleteConversation(ctx, id); err != nil {
		slog.Error("Failed to delete conversation", "id", id, "error", err)
		s.notifier.Show("Failed to delete conversation.", NoticeError)
		return err
	}

	filtered := s.list[:0]
	for _, c := range s.list {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	s.list = filtered

	if s.history != nil {
		if err := s.history.Delete(ctx, id); err != nil {
			slog.Warn("Could not delete conversation from cache", "id", id, "error", err)
		}
	}

	if s.currentID != nil && *s.currentID == id {
		s.StartNewConversation()
	}
	return nil
}

func (s *ConversationService) mirrorHistory(ctx context.Context, list []model.Conversation) {
	if s.history == nil {
		return
	}
	summaries := make([]cache.Summary, 0, len(list))
	for _, c := range list {
		summaries = append(summaries, cache.Summary{
			ID:        c.ID,
			ProjectID: c.ProjectID,
			Title:     c.Title,
			CreatedAt: c.CreatedAt,
		})
	}
	if err := s.history.ReplaceAll(ctx, summaries); err != nil {
		slog.Warn("Could not mirror history into cache", "error", err)
	}
}

func (s *ConversationService) cachedHistory(ctx context.Context) ([]model.Conversation, bool) {
	if s.history == nil {
		return nil, false
	}
	summaries, err := s.history.List(ctx)
	if err != nil {
		slog.Warn("Could not read cached history", "error", err)
		return nil, false
	}
	list := make([]model.Conversation, 0, len(summaries))
	for _, sum := range summaries {
		list = append(list, model.Conversation{
			ID:        sum.ID,
			ProjectID: sum.ProjectID,
			Title:     sum.Title,
			CreatedAt: sum.CreatedAt,
		})
	}
	return list, true
}

// truncate shortens a string to a specified number of runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
