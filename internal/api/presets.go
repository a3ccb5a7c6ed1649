package api

import (
	"context"
	"fmt"

	"github.com/SoofabhMK1/ai-writing-system/internal/model"
)

// ListPresets fetches every instruction preset.
func (c *Client) ListPresets(ctx context.Context) ([]model.PromptPreset, error) {
	var out []model.PromptPreset
	if err := c.get(ctx, "/prompt-presets/", &out); err != nil {
		return nil, fmt.Errorf("could not list prompt presets: %w", err)
	}
	return out, nil
}

// GetPreset fetches one instruction preset.
func (c *Client) GetPreset(ctx context.Context, id int) (*model.PromptPreset, error) {
	var out model.PromptPreset
	if err := c.get(ctx, fmt.Sprintf("/prompt-presets/%d", id), &out); err != nil {
		return nil, fmt.Errorf("could not get prompt preset %d: %w", id, err)
	}
	return &out, nil
}

// CreatePreset creates an instruction preset.
func (c *Client) CreatePreset(ctx context.Context, in model.PromptPresetCreate) (*model.PromptPreset, error) {
	if err := validateRequest(in); err != nil {
		return nil, err
	}
	var out model.PromptPreset
	if err := c.post(ctx, "/prompt-presets/", in, &out); err != nil {
		return nil, fmt.Errorf("could not create prompt preset: %w", err)
	}
	return &out, nil
}

// UpdatePreset replaces an instruction preset.
func (c *Client) UpdatePreset(ctx context.Context, id int, in model.PromptPresetCreate) (*model.PromptPreset, error) {
	if err := validateRequest(in); err != nil {
		return nil, err
	}
	var out model.PromptPreset
	if err := c.put(ctx, fmt.Sprintf("/prompt-presets/%d", id), in, &out); err != nil {
		return nil, fmt.Errorf("could not update prompt preset %d: %w", id, err)
	}
	return &out, nil
}

// DeletePreset removes an instruction preset.
func (c *Client) DeletePreset(ctx context.Context, id int) error {
	if err := c.delete(ctx, fmt.Sprintf("/prompt-presets/%d", id)); err != nil {
		return fmt.Errorf("could not delete prompt preset %d: %w", id, err)
	}
	return nil
}
