package api

import (
	"context"
	"fmt"

	"github.com/SoofabhMK1/ai-writing-system/internal/model"
)

// ListCharacters fetches every character sheet.
func (c *Client) ListCharacters(ctx context.Context) ([]model.Character, error) {
	var out []model.Character
	if err := c.get(ctx, "/characters/", &out); err != nil {
		return nil, fmt.Errorf("could not list characters: %w", err)
	}
	return out, nil
}

// GetCharacter fetches one character sheet.
func (c *Client) GetCharacter(ctx context.Context, id int) (*model.Character, error) {
	var out model.Character
	if err := c.get(ctx, fmt.Sprintf("/characters/%d", id), &out); err != nil {
		return nil, fmt.Errorf("could not get character %d: %w", id, err)
	}
	return &out, nil
}

// CreateCharacter creates a character sheet.
func (c *Client) CreateCharacter(ctx context.Context, in model.CharacterCreate) (*model.Character, error) {
	if err := validateRequest(in); err != nil {
		return nil, err
	}
	var out model.Character
	if err := c.post(ctx, "/characters/", in, &out); err != nil {
		return nil, fmt.Errorf("could not create character: %w", err)
	}
	return &out, nil
}

// UpdateCharacter replaces a character's fields.
func (c *Client) UpdateCharacter(ctx context.Context, id int, in model.CharacterCreate) (*model.Character, error) {
	if err := validateRequest(in); err != nil {
		return nil, err
	}
	var out model.Character
	if err := c.put(ctx, fmt.Sprintf("/characters/%d", id), in, &out); err != nil {
		return nil, fmt.Errorf("could not update character %d: %w", id, err)
	}
	return &out, nil
}

// DeleteCharacter removes a character sheet.
func (c *Client) DeleteCharacter(ctx context.Context, id int) error {
	if err := c.delete(ctx, fmt.Sprintf("/characters/%d", id)); err != nil {
		return fmt.Errorf("could not delete character %d: %w", id, err)
	}
	return nil
}
