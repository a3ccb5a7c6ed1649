package api

import (
	"context"
	"fmt"

	"github.com/SoofabhMK1/ai-writing-system/internal/model"
)

// CreateConversation persists a new conversation and returns it with its
// backend-assigned id.
func (c *Client) CreateConversation(ctx context.Context, in model.ConversationCreate) (*model.Conversation, error) {
	if err := validateRequest(in); err != nil {
		return nil, err
	}
	var out model.Conversation
	if err := c.post(ctx, "/conversations/", in, &out); err != nil {
		return nil, fmt.Errorf("could not create conversation: %w", err)
	}
	return &out, nil
}

// UpdateConversation replaces the stored conversation with the given id.
func (c *Client) UpdateConversation(ctx context.Context, id int, in model.ConversationCreate) (*model.Conversation, error) {
	if err := validateRequest(in); err != nil {
		return nil, err
	}
	var out model.Conversation
	if err := c.put(ctx, fmt.Sprintf("/conversations/%d", id), in, &out); err != nil {
		return nil, fmt.Errorf("could not update conversation %d: %w", id, err)
	}
	return &out, nil
}

// GetConversation fetches one conversation with all its messages.
func (c *Client) GetConversation(ctx context.Context, id int) (*model.Conversation, error) {
	var out model.Conversation
	if err := c.get(ctx, fmt.Sprintf("/conversations/%d", id), &out); err != nil {
		return nil, fmt.Errorf("could not get conversation %d: %w", id, err)
	}
	return &out, nil
}

// ListConversations fetches every stored conversation.
func (c *Client) ListConversations(ctx context.Context) ([]model.Conversation, error) {
	var out []model.Conversation
	if err := c.get(ctx, "/conversations/", &out); err != nil {
		return nil, fmt.Errorf("could not list conversations: %w", err)
	}
	return out, nil
}

// ListConversationsByProject fetches the conversations of one project.
func (c *Client) ListConversationsByProject(ctx context.Context, projectID int) ([]model.Conversation, error) {
	var out []model.Conversation
	if err := c.get(ctx, fmt.Sprintf("/conversations/project/%d", projectID), &out); err != nil {
		return nil, fmt.Errorf("could not list conversations for project %d: %w", projectID, err)
	}
	return out, nil
}

// DeleteConversation removes a conversation from the backend.
func (c *Client) DeleteConversation(ctx context.Context, id int) error {
	if err := c.delete(ctx, fmt.Sprintf("/conversations/%d", id)); err != nil {
		return fmt.Errorf("could not delete conversation %d: %w", id, err)
	}
	return nil
}
