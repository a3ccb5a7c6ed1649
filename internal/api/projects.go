package api

import (
	"context"
	"fmt"

	"github.com/SoofabhMK1/ai-writing-system/internal/model"
)

// ListProjects fetches a page of projects.
func (c *Client) ListProjects(ctx context.Context, skip, limit int) ([]model.Project, error) {
	var out []model.Project
	path := fmt.Sprintf("/projects/?skip=%d&limit=%d", skip, limit)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("could not list projects: %w", err)
	}
	return out, nil
}

// GetProject fetches one project.
func (c *Client) GetProject(ctx context.Context, id int) (*model.Project, error) {
	var out model.Project
	if err := c.get(ctx, fmt.Sprintf("/projects/%d", id), &out); err != nil {
		return nil, fmt.Errorf("could not get project %d: %w", id, err)
	}
	return &out, nil
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, in model.ProjectCreate) (*model.Project, error) {
	if err := validateRequest(in); err != nil {
		return nil, err
	}
	var out model.Project
	if err := c.post(ctx, "/projects/", in, &out); err != nil {
		return nil, fmt.Errorf("could not create project: %w", err)
	}
	return &out, nil
}

// UpdateProject replaces a project's fields.
func (c *Client) UpdateProject(ctx context.Context, id int, in model.ProjectCreate) (*model.Project, error) {
	if err := validateRequest(in); err != nil {
		return nil, err
	}
	var out model.Project
	if err := c.put(ctx, fmt.Sprintf("/projects/%d", id), in, &out); err != nil {
		return nil, fmt.Errorf("could not update project %d: %w", id, err)
	}
	return &out, nil
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, id int) error {
	if err := c.delete(ctx, fmt.Sprintf("/projects/%d", id)); err != nil {
		return fmt.Errorf("could not delete project %d: %w", id, err)
	}
	return nil
}
