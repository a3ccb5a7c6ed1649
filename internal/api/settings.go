package api

import (
	"context"
	"fmt"

	"github.com/SoofabhMK1/ai-writing-system/internal/model"
)

// Settings resources live under /settings/: worldviews, writing styles and
// configured AI models. They are uniform CRUD wrappers.

// ListWorldviews fetches every worldview.
func (c *Client) ListWorldviews(ctx context.Context) ([]model.Worldview, error) {
	var out []model.Worldview
	if err := c.get(ctx, "/settings/worldviews/", &out); err != nil {
		return nil, fmt.Errorf("could not list worldviews: %w", err)
	}
	return out, nil
}

// CreateWorldview creates a worldview.
func (c *Client) CreateWorldview(ctx context.Context, in model.Worldview) (*model.Worldview, error) {
	var out model.Worldview
	if err := c.post(ctx, "/settings/worldviews/", in, &out); err != nil {
		return nil, fmt.Errorf("could not create worldview: %w", err)
	}
	return &out, nil
}

// UpdateWorldview replaces a worldview.
func (c *Client) UpdateWorldview(ctx context.Context, id int, in model.Worldview) (*model.Worldview, error) {
	var out model.Worldview
	if err := c.put(ctx, fmt.Sprintf("/settings/worldviews/%d", id), in, &out); err != nil {
		return nil, fmt.Errorf("could not update worldview %d: %w", id, err)
	}
	return &out, nil
}

// DeleteWorldview removes a worldview.
func (c *Client) DeleteWorldview(ctx context.Context, id int) error {
	if err := c.delete(ctx, fmt.Sprintf("/settings/worldviews/%d", id)); err != nil {
		return fmt.Errorf("could not delete worldview %d: %w", id, err)
	}
	return nil
}

// ListWritingStyles fetches every writing style.
func (c *Client) ListWritingStyles(ctx context.Context) ([]model.WritingStyle, error) {
	var out []model.WritingStyle
	if err := c.get(ctx, "/settings/writing-styles/", &out); err != nil {
		return nil, fmt.Errorf("could not list writing styles: %w", err)
	}
	return out, nil
}

// CreateWritingStyle creates a writing style.
func (c *Client) CreateWritingStyle(ctx context.Context, in model.WritingStyle) (*model.WritingStyle, error) {
	var out model.WritingStyle
	if err := c.post(ctx, "/settings/writing-styles/", in, &out); err != nil {
		return nil, fmt.Errorf("could not create writing style: %w", err)
	}
	return &out, nil
}

// UpdateWritingStyle replaces a writing style.
func (c *Client) UpdateWritingStyle(ctx context.Context, id int, in model.WritingStyle) (*model.WritingStyle, error) {
	var out model.WritingStyle
	if err := c.put(ctx, fmt.Sprintf("/settings/writing-styles/%d", id), in, &out); err != nil {
		return nil, fmt.Errorf("could not update writing style %d: %w", id, err)
	}
	return &out, nil
}

// DeleteWritingStyle removes a writing style.
func (c *Client) DeleteWritingStyle(ctx context.Context, id int) error {
	if err := c.delete(ctx, fmt.Sprintf("/settings/writing-styles/%d", id)); err != nil {
		return fmt.Errorf("could not delete writing style %d: %w", id, err)
	}
	return nil
}

// ListAIModels fetches the configured AI model endpoints.
func (c *Client) ListAIModels(ctx context.Context) ([]model.AIModel, error) {
	var out []model.AIModel
	if err := c.get(ctx, "/settings/ai-models/", &out); err != nil {
		return nil, fmt.Errorf("could not list AI models: %w", err)
	}
	return out, nil
}

// TestAIModelConnection asks the backend to probe a configured model.
func (c *Client) TestAIModelConnection(ctx context.Context, id int) error {
	if err := c.post(ctx, fmt.Sprintf("/settings/ai-models/%d/test-connection", id), nil, nil); err != nil {
		return fmt.Errorf("connection test for AI model %d failed: %w", id, err)
	}
	return nil
}
