package templates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ziadkadry99/avatars/internal/db"
)

// DBStore keeps templates in the avatar_templates table.
type DBStore struct {
	db *db.DB
}

// NewDBStore creates a new SQLite backed template store.
func NewDBStore(database *db.DB) *DBStore {
	return &DBStore{db: database}
}

// Get returns the SVG stored under key.
func (s *DBStore) Get(ctx context.Context, key string) ([]byte, error) {
	if !validKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	var svg []byte
	err := s.db.QueryRowContext(ctx, `SELECT svg FROM avatar_templates WHERE key = ?`, key).Scan(&svg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("getting template %q: %w", key, err)
	}
	return svg, nil
}

// Stat returns the stored metadata of key without its document.
func (s *DBStore) Stat(ctx context.Context, key string) (*Template, error) {
	if !validKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	t := &Template{Key: key}
	err := s.db.QueryRowContext(ctx,
		`SELECT width, height, view_box, source_path, updated_at FROM avatar_templates WHERE key = ?`, key,
	).Scan(&t.Width, &t.Height, &t.ViewBox, &t.SourcePath, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("getting template %q: %w", key, err)
	}
	return t, nil
}

// List returns all stored keys in order.
func (s *DBStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM avatar_templates ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scanning template key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Put inserts or replaces a template.
func (s *DBStore) Put(ctx context.Context, t *Template) error {
	if !validKey(t.Key) {
		return fmt.Errorf("%w: key %q is not sanitized", ErrInvalidTemplate, t.Key)
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO avatar_templates (key, svg, width, height, view_box, source_path, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   svg = excluded.svg,
		   width = excluded.width,
		   height = excluded.height,
		   view_box = excluded.view_box,
		   source_path = excluded.source_path,
		   updated_at = excluded.updated_at`,
		t.Key, t.SVG, t.Width, t.Height, t.ViewBox, t.SourcePath, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving template %q: %w", t.Key, err)
	}
	return nil
}

// Delete removes the template stored under key.
func (s *DBStore) Delete(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM avatar_templates WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting template %q: %w", key, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return nil
}
