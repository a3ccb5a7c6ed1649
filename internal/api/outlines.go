package api

import (
	"context"
	"fmt"

	"github.com/SoofabhMK1/ai-writing-system/internal/model"
)

// GetOutlineForProject fetches the outline node tree of a project.
func (c *Client) GetOutlineForProject(ctx context.Context, projectID int) ([]model.OutlineNode, error) {
	var out []model.OutlineNode
	if err := c.get(ctx, fmt.Sprintf("/outline-nodes/project/%d", projectID), &out); err != nil {
		return nil, fmt.Errorf("could not get outline for project %d: %w", projectID, err)
	}
	return out, nil
}

// CreateOutlineNode creates one outline node.
func (c *Client) CreateOutlineNode(ctx context.Context, in model.OutlineNodeCreate) (*model.OutlineNode, error) {
	if err := validateRequest(in); err != nil {
		return nil, err
	}
	var out model.OutlineNode
	if err := c.post(ctx, "/outline-nodes/", in, &out); err != nil {
		return nil, fmt.Errorf("could not create outline node: %w", err)
	}
	return &out, nil
}

// UpdateOutlineNode patches the given fields of an outline node.
func (c *Client) UpdateOutlineNode(ctx context.Context, id int, in model.OutlineNodeUpdate) (*model.OutlineNode, error) {
	var out model.OutlineNode
	if err := c.put(ctx, fmt.Sprintf("/outline-nodes/%d", id), in, &out); err != nil {
		return nil, fmt.Errorf("could not update outline node %d: %w", id, err)
	}
	return &out, nil
}

// DeleteOutlineNode removes an outline node.
func (c *Client) DeleteOutlineNode(ctx context.Context, id int) error {
	if err := c.delete(ctx, fmt.Sprintf("/outline-nodes/%d", id)); err != nil {
		return fmt.Errorf("could not delete outline node %d: %w", id, err)
	}
	return nil
}
