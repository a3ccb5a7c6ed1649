package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Summary is one cached conversation history entry.
type Summary struct {
	ID        int
	ProjectID *int
	Title     string
	CreatedAt time.Time
}

// Repository stores the mirrored history list.
type Repository interface {
	ReplaceAll(ctx context.Context, summaries []Summary) error
	List(ctx context.Context) ([]Summary, error)
	Delete(ctx context.Context, id int) error
}

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository wires a Repository over an initialized cache database.
func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

// ReplaceAll swaps the whole mirror for the given snapshot in one
// transaction, so readers never observe a half-written list.
func (r *sqliteRepository) ReplaceAll(ctx context.Context, summaries []Summary) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM conversations"); err != nil {
		return fmt.Errorf("could not clear cached conversations: %w", err)
	}

	query := "INSERT INTO conversations (id, project_id, title, created_at) VALUES (?, ?, ?, ?)"
	for _, s := range summaries {
		if _, err := tx.ExecContext(ctx, query, s.ID, s.ProjectID, s.Title, s.CreatedAt); err != nil {
			return fmt.Errorf("could not insert cached conversation %d: %w", s.ID, err)
		}
	}

	return tx.Commit()
}

func (r *sqliteRepository) List(ctx context.Context) ([]Summary, error) {
	query := "SELECT id, project_id, title, created_at FROM conversations ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.ProjectID, &s.Title, &s.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *sqliteRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM conversations WHERE id = ?", id)
	return err
}
