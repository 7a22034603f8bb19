package avatars

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/avatars/internal/db"
)

// Event is one successful render.
type Event struct {
	ID           string    `json:"id"`
	TemplateKey  string    `json:"templateKey"`
	Primary      string    `json:"primary"`
	Secondary    string    `json:"secondary"`
	Replacements int       `json:"replacements"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TemplateStats aggregates the render log for one template.
type TemplateStats struct {
	TemplateKey    string    `json:"templateKey"`
	Renders        int       `json:"renders"`
	LastRenderedAt time.Time `json:"lastRenderedAt"`
}

// RenderLog stores render events in the render_events table.
type RenderLog struct {
	db *db.DB
}

// NewRenderLog creates a render log backed by database.
func NewRenderLog(database *db.DB) *RenderLog {
	return &RenderLog{db: database}
}

// Record inserts e, filling in ID and CreatedAt when unset.
func (l *RenderLog) Record(ctx context.Context, e *Event) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := l.db.ExecContext(ctx,
		`INSERT INTO render_events (id, template_key, primary_color, secondary_color, replacements, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.TemplateKey, e.Primary, e.Secondary, e.Replacements,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording render of %q: %w", e.TemplateKey, err)
	}
	return nil
}

// Stats returns render counts per template, most rendered first.
func (l *RenderLog) Stats(ctx context.Context) ([]TemplateStats, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT template_key, COUNT(*), MAX(created_at)
		 FROM render_events
		 GROUP BY template_key
		 ORDER BY COUNT(*) DESC, template_key`)
	if err != nil {
		return nil, fmt.Errorf("querying render stats: %w", err)
	}
	defer rows.Close()

	stats := []TemplateStats{}
	for rows.Next() {
		var (
			s    TemplateStats
			last string
		)
		if err := rows.Scan(&s.TemplateKey, &s.Renders, &last); err != nil {
			return nil, fmt.Errorf("scanning render stats: %w", err)
		}
		if s.LastRenderedAt, err = time.Parse(time.RFC3339, last); err != nil {
			return nil, fmt.Errorf("parsing render time %q: %w", last, err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
