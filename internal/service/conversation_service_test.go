package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SoofabhMK1/ai-writing-system/internal/cache"
	apperrors "github.com/SoofabhMK1/ai-writing-system/internal/errors"
	"github.com/SoofabhMK1/ai-writing-system/internal/model"
	"github.com/SoofabhMK1/ai-writing-system/internal/service"
	"github.com/SoofabhMK1/ai-writing-system/internal/stream"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) CreateConversation(ctx context.Context, in model.ConversationCreate) (*model.Conversation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockBackend) UpdateConversation(ctx context.Context, id int, in model.ConversationCreate) (*model.Conversation, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockBackend) GetConversation(ctx context.Context, id int) (*model.Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockBackend) ListConversations(ctx context.Context) ([]model.Conversation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Conversation), args.Error(1)
}

func (m *MockBackend) ListConversationsByProject(ctx context.Context, projectID int) ([]model.Conversation, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Conversation), args.Error(1)
}

func (m *MockBackend) DeleteConversation(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStreamer struct {
	mock.Mock
}

func (m *MockStreamer) Stream(ctx context.Context, aiModelID int, messages []model.ChatMessage, h stream.Handlers) error {
	args := m.Called(ctx, aiModelID, messages, h)
	return args.Error(0)
}

type MockGate struct {
	mock.Mock
}

func (m *MockGate) Confirm(ctx context.Context, title, body string) error {
	args := m.Called(ctx, title, body)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Show(message, kind string) {
	m.Called(message, kind)
}

type MockHistory struct {
	mock.Mock
}

func (m *MockHistory) ReplaceAll(ctx context.Context, summaries []cache.Summary) error {
	args := m.Called(ctx, summaries)
	return args.Error(0)
}

func (m *MockHistory) List(ctx context.Context) ([]cache.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cache.Summary), args.Error(1)
}

func (m *MockHistory) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type fixture struct {
	backend  *MockBackend
	streamer *MockStreamer
	gate     *MockGate
	notifier *MockNotifier
	svc      *service.ConversationService
}

func newFixture() *fixture {
	f := &fixture{
		backend:  new(MockBackend),
		streamer: new(MockStreamer),
		gate:     new(MockGate),
		notifier: new(MockNotifier),
	}
	f.svc = service.NewConversationService(f.backend, f.streamer, f.gate, f.notifier, nil)
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.backend.AssertExpectations(t)
	f.streamer.AssertExpectations(t)
	f.gate.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

// streamHandlers pulls the Handlers argument out of a mock invocation.
func streamHandlers(args mock.Arguments) stream.Handlers {
	return args.Get(3).(stream.Handlers)
}

func TestSendMessage_EmptyInputIsIgnored(t *testing.T) {
	f := newFixture()

	sent := f.svc.SendMessage(context.Background(), "", 1)

	assert.False(t, sent)
	assert.Empty(t, f.svc.Messages())
	f.streamer.AssertNotCalled(t, "Stream", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendMessage_StreamsAndAssemblesReply(t *testing.T) {
	f := newFixture()

	f.streamer.On("Stream", mock.Anything, 3, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			h := streamHandlers(args)
			h.OnReasoning("planning")
			h.OnContent("Hel")
			h.OnContent("lo")
		}).
		Return(nil).Once()

	sent := f.svc.SendMessage(context.Background(), "hi there", 3)

	assert.True(t, sent)
	require.Len(t, f.svc.Messages(), 2)
	assert.Equal(t, model.RoleUser, f.svc.Messages()[0].Role)
	assert.Equal(t, "hi there", f.svc.Messages()[0].Content)
	assert.Equal(t, model.RoleAssistant, f.svc.Messages()[1].Role)
	assert.Equal(t, "Hello", f.svc.Messages()[1].Content)
	assert.Equal(t, "planning", f.svc.Messages()[1].Thinking)
	assert.False(t, f.svc.IsLoading())
	f.assertExpectations(t)
}

func TestSendMessage_PayloadExcludesPlaceholderAndThinking(t *testing.T) {
	f := newFixture()

	var payload []model.ChatMessage
	f.streamer.On("Stream", mock.Anything, 3, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			payload = args.Get(2).([]model.ChatMessage)
			streamHandlers(args).OnContent("second reply")
		}).
		Return(nil).Twice()

	f.svc.SendMessage(context.Background(), "first", 3)
	f.svc.SendMessage(context.Background(), "second", 3)

	// The second payload carries the whole transcript up to but not
	// including the fresh assistant placeholder.
	require.Len(t, payload, 3)
	assert.Equal(t, model.ChatMessage{Role: model.RoleUser, Content: "first"}, payload[0])
	assert.Equal(t, model.ChatMessage{Role: model.RoleAssistant, Content: "second reply"}, payload[1])
	assert.Equal(t, model.ChatMessage{Role: model.RoleUser, Content: "second"}, payload[2])
	f.assertExpectations(t)
}

func TestSendMessage_ReentrantCallDuringStreamIsRejected(t *testing.T) {
	f := newFixture()

	f.streamer.On("Stream", mock.Anything, 3, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			// A handler trying to trigger another send while the first
			// episode is in flight must be refused.
			assert.False(t, f.svc.SendMessage(context.Background(), "again", 3))
		}).
		Return(nil).Once()

	assert.True(t, f.svc.SendMessage(context.Background(), "hi", 3))
	assert.Len(t, f.svc.Messages(), 2)
	f.assertExpectations(t)
}

func TestSendMessage_TransportErrorKeepsPartialOutput(t *testing.T) {
	f := newFixture()

	f.streamer.On("Stream", mock.Anything, 3, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			h := streamHandlers(args)
			h.OnContent("partial answer")
			h.OnError("An error occurred. Please try again.")
		}).
		Return(errors.New("read failed")).Once()

	sent := f.svc.SendMessage(context.Background(), "hi", 3)

	assert.True(t, sent)
	require.Len(t, f.svc.Messages(), 2)
	assert.Equal(t, "partial answer\n\nError: An error occurred. Please try again.", f.svc.Messages()[1].Content)
	assert.False(t, f.svc.IsLoading())
	f.assertExpectations(t)
}

func TestSendMessage_PreviewConfirmed(t *testing.T) {
	f := newFixture()
	f.svc.SetPreviewBeforeSend(true)

	var previewBody string
	f.gate.On("Confirm", mock.Anything, "Review message before sending", mock.Anything).
		Run(func(args mock.Arguments) { previewBody = args.String(2) }).
		Return(nil).Once()
	f.streamer.On("Stream", mock.Anything, 3, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { streamHandlers(args).OnContent("ok") }).
		Return(nil).Once()

	sent := f.svc.SendMessage(context.Background(), "draft me a scene", 3)

	assert.True(t, sent)
	assert.Contains(t, previewBody, "draft me a scene")
	f.assertExpectations(t)
}

func TestSendMessage_PreviewDeclined(t *testing.T) {
	f := newFixture()
	f.svc.SetPreviewBeforeSend(true)

	f.gate.On("Confirm", mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.ErrCanceled).Once()

	sent := f.svc.SendMessage(context.Background(), "hi", 3)

	assert.False(t, sent)
	assert.Empty(t, f.svc.Messages())
	assert.False(t, f.svc.IsLoading())
	f.streamer.AssertNotCalled(t, "Stream", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestSendMessage_GateFailureBlocksSend(t *testing.T) {
	f := newFixture()
	f.svc.SetPreviewBeforeSend(true)

	f.gate.On("Confirm", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("terminal closed")).Once()

	sent := f.svc.SendMessage(context.Background(), "hi", 3)

	assert.False(t, sent)
	assert.Empty(t, f.svc.Messages())
	f.streamer.AssertNotCalled(t, "Stream", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestSendMessage_PreviewUsesSelectedPreset(t *testing.T) {
	f := newFixture()
	f.svc.SetPreviewBeforeSend(true)
	f.svc.SetPreset(&model.PromptPreset{ID: 1, Name: "novelist", SystemPrompt: "You are a novelist."})

	var previewBody string
	f.gate.On("Confirm", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { previewBody = args.String(2) }).
		Return(apperrors.ErrCanceled).Once()

	f.svc.SendMessage(context.Background(), "hi", 3)

	assert.Contains(t, previewBody, "You are a novelist.")
	assert.Contains(t, previewBody, "<user_input>")
	f.assertExpectations(t)
}

func TestSaveCurrentConversation_EmptyIsNoOp(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.svc.SaveCurrentConversation(context.Background()))

	f.backend.AssertNotCalled(t, "CreateConversation", mock.Anything, mock.Anything)
	f.backend.AssertNotCalled(t, "UpdateConversation", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveCurrentConversation_FirstSaveCreatesThenUpdates(t *testing.T) {
	f := newFixture()

	f.streamer.On("Stream", mock.Anything, 3, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { streamHandlers(args).OnContent("reply") }).
		Return(nil).Twice()

	longFirst := strings.Repeat("a", 60)
	f.svc.SendMessage(context.Background(), longFirst, 3)

	wantTitle := strings.Repeat("a", 50)
	f.backend.On("CreateConversation", mock.Anything, mock.MatchedBy(func(in model.ConversationCreate) bool {
		return in.Title == wantTitle && len(in.Messages) == 2
	})).Return(&model.Conversation{ID: 42, Title: wantTitle}, nil).Once()
	f.backend.On("ListConversations", mock.Anything).Return([]model.Conversation{{ID: 42, Title: wantTitle}}, nil).Twice()

	require.NoError(t, f.svc.SaveCurrentConversation(context.Background()))
	require.NotNil(t, f.svc.CurrentID())
	assert.Equal(t, 42, *f.svc.CurrentID())

	// A later save reuses the id and the derived title.
	f.svc.SendMessage(context.Background(), "more", 3)
	f.backend.On("UpdateConversation", mock.Anything, 42, mock.MatchedBy(func(in model.ConversationCreate) bool {
		return in.Title == wantTitle && len(in.Messages) == 4
	})).Return(&model.Conversation{ID: 42, Title: wantTitle}, nil).Once()

	require.NoError(t, f.svc.SaveCurrentConversation(context.Background()))
	assert.Equal(t, 42, *f.svc.CurrentID())
	f.assertExpectations(t)
}

func TestSaveCurrentConversation_BackendFailureNotifies(t *testing.T) {
	f := newFixture()

	f.streamer.On("Stream", mock.Anything, 3, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { streamHandlers(args).OnContent("reply") }).
		Return(nil).Once()
	f.svc.SendMessage(context.Background(), "hi", 3)

	f.backend.On("CreateConversation", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrBackend).Once()
	f.notifier.On("Show", "Failed to save conversation.", service.NoticeError).Once()

	err := f.svc.SaveCurrentConversation(context.Background())

	require.Error(t, err)
	assert.Nil(t, f.svc.CurrentID())
	f.assertExpectations(t)
}

func TestLoadConversationHistory_ProjectScoped(t *testing.T) {
	f := newFixture()
	f.svc.SetProjectID(9)

	want := []model.Conversation{{ID: 1, Title: "chapter notes"}}
	f.backend.On("ListConversationsByProject", mock.Anything, 9).Return(want, nil).Once()

	require.NoError(t, f.svc.LoadConversationHistory(context.Background()))
	assert.Equal(t, want, f.svc.HistoryList())
	f.assertExpectations(t)
}

func TestLoadConversationHistory_FallsBackToCache(t *testing.T) {
	backend := new(MockBackend)
	streamer := new(MockStreamer)
	gate := new(MockGate)
	notifier := new(MockNotifier)
	history := new(MockHistory)
	svc := service.NewConversationService(backend, streamer, gate, notifier, history)

	backend.On("ListConversations", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	history.On("List", mock.Anything).Return([]cache.Summary{{ID: 5, Title: "offline draft"}}, nil).Once()
	notifier.On("Show", "Backend unreachable; showing cached history.", service.NoticeInfo).Once()

	require.NoError(t, svc.LoadConversationHistory(context.Background()))
	require.Len(t, svc.HistoryList(), 1)
	assert.Equal(t, "offline draft", svc.HistoryList()[0].Title)
	backend.AssertExpectations(t)
	history.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestLoadConversationHistory_MirrorsIntoCache(t *testing.T) {
	backend := new(MockBackend)
	history := new(MockHistory)
	svc := service.NewConversationService(backend, new(MockStreamer), new(MockGate), new(MockNotifier), history)

	list := []model.Conversation{{ID: 1, Title: "one"}, {ID: 2, Title: "two"}}
	backend.On("ListConversations", mock.Anything).Return(list, nil).Once()
	history.On("ReplaceAll", mock.Anything, mock.MatchedBy(func(s []cache.Summary) bool {
		return len(s) == 2 && s[0].ID == 1 && s[1].ID == 2
	})).Return(nil).Once()

	require.NoError(t, svc.LoadConversationHistory(context.Background()))
	backend.AssertExpectations(t)
	history.AssertExpectations(t)
}

func TestLoadConversation_ReplacesActiveState(t *testing.T) {
	f := newFixture()

	stored := &model.Conversation{
		ID:    11,
		Title: "older draft",
		Messages: []model.Message{
			{Role: model.RoleUser, Content: "hello"},
			{Role: model.RoleAssistant, Content: "hi"},
		},
	}
	f.backend.On("GetConversation", mock.Anything, 11).Return(stored, nil).Once()

	require.NoError(t, f.svc.LoadConversation(context.Background(), 11))
	require.NotNil(t, f.svc.CurrentID())
	assert.Equal(t, 11, *f.svc.CurrentID())
	assert.Len(t, f.svc.Messages(), 2)
	f.assertExpectations(t)
}

func TestStartNewConversation_ResetsIdentity(t *testing.T) {
	f := newFixture()
	f.svc.SetPreset(&model.PromptPreset{ID: 1, Name: "novelist"})

	f.streamer.On("Stream", mock.Anything, 3, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { streamHandlers(args).OnContent("reply") }).
		Return(nil).Once()
	f.svc.SendMessage(context.Background(), "hi", 3)

	f.svc.StartNewConversation()

	assert.Nil(t, f.svc.CurrentID())
	assert.Empty(t, f.svc.Messages())
	assert.Nil(t, f.svc.Preset())
}

func TestDeleteConversation_RemovesFromListing(t *testing.T) {
	f := newFixture()

	f.backend.On("ListConversations", mock.Anything).
		Return([]model.Conversation{{ID: 1}, {ID: 2}}, nil).Once()
	require.NoError(t, f.svc.LoadConversationHistory(context.Background()))

	f.backend.On("DeleteConversation", mock.Anything, 1).Return(nil).Once()

	require.NoError(t, f.svc.DeleteConversation(context.Background(), 1))
	require.Len(t, f.svc.HistoryList(), 1)
	assert.Equal(t, 2, f.svc.HistoryList()[0].ID)
	f.assertExpectations(t)
}

func TestDeleteConversation_ActiveConversationStartsFresh(t *testing.T) {
	f := newFixture()

	stored := &model.Conversation{ID: 7, Title: "t", Messages: []model.Message{{Role: model.RoleUser, Content: "x"}}}
	f.backend.On("GetConversation", mock.Anything, 7).Return(stored, nil).Once()
	require.NoError(t, f.svc.LoadConversation(context.Background(), 7))

	f.backend.On("DeleteConversation", mock.Anything, 7).Return(nil).Once()

	require.NoError(t, f.svc.DeleteConversation(context.Background(), 7))
	assert.Nil(t, f.svc.CurrentID())
	assert.Empty(t, f.svc.Messages())
	f.assertExpectations(t)
}

func TestDeleteConversation_BackendFailureKeepsListing(t *testing.T) {
	f := newFixture()

	f.backend.On("ListConversations", mock.Anything).
		Return([]model.Conversation{{ID: 1}}, nil).Once()
	require.NoError(t, f.svc.LoadConversationHistory(context.Background()))

	f.backend.On("DeleteConversation", mock.Anything, 1).Return(apperrors.ErrBackend).Once()
	f.notifier.On("Show", "Failed to delete conversation.", service.NoticeError).Once()

	require.Error(t, f.svc.DeleteConversation(context.Background(), 1))
	assert.Len(t, f.svc.HistoryList(), 1)
	f.assertExpectations(t)
}
