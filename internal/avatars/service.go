// Package avatars serves recolored character avatars. It joins a template
// store with the recolor pipeline and exposes the result over HTTP.
package avatars

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/ziadkadry99/avatars/internal/recolor"
	"github.com/ziadkadry99/avatars/internal/templates"
)

var (
	// ErrTemplateNotFound is returned when the sanitized character id has no
	// template.
	ErrTemplateNotFound = errors.New("avatar template not found")
	// ErrProcessing covers every other failure while producing an avatar.
	ErrProcessing = errors.New("failed to render avatar")
)

// Request describes one avatar render.
type Request struct {
	CharacterID string
	Palette     recolor.Palette
	// Items is accepted and echoed but not composed into the avatar yet.
	Items []string
}

// Rendered is a recolored avatar ready to be served.
type Rendered struct {
	Key          string
	Document     []byte
	Replacements int
	Palette      recolor.DerivedPalette
}

// Service renders avatars from a template store.
type Service struct {
	store      templates.Store
	defaults   recolor.Palette
	darkFactor float64
	renders    *RenderLog
	logger     *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithDefaults sets the palette used when a request does not name colors.
func WithDefaults(p recolor.Palette) ServiceOption {
	return func(s *Service) { s.defaults = p }
}

// WithDarkFactor sets how much darker the shading variants are.
func WithDarkFactor(f float64) ServiceOption {
	return func(s *Service) { s.darkFactor = f }
}

// WithRenderLog records every successful render.
func WithRenderLog(l *RenderLog) ServiceOption {
	return func(s *Service) { s.renders = l }
}

// WithLogger sets the service logger. It is also handed to the recolorer.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service reading templates from store.
func NewService(store templates.Store, opts ...ServiceOption) *Service {
	s := &Service{
		store:      store,
		defaults:   recolor.DefaultPalette(),
		darkFactor: recolor.DefaultDarkFactor,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Defaults returns the palette applied when a caller names no colors.
func (s *Service) Defaults() recolor.Palette { return s.defaults }

// Render loads the template for req.CharacterID and recolors it.
func (s *Service) Render(ctx context.Context, req Request) (*Rendered, error) {
	key, doc, err := s.load(ctx, req.CharacterID)
	if err != nil {
		return nil, err
	}

	palette := recolor.Derive(req.Palette, s.darkFactor)
	rc := recolor.New(recolor.WithLogger(s.logger.With("template", key)))
	res := rc.Recolor(doc, palette)

	if s.renders != nil {
		event := &Event{
			TemplateKey:  key,
			Primary:      palette.Primary.Hex(),
			Secondary:    palette.Secondary.Hex(),
			Replacements: res.Replacements,
		}
		if err := s.renders.Record(ctx, event); err != nil {
			s.logger.Warn("recording render failed", "template", key, "error", err)
		}
	}

	return &Rendered{
		Key:          key,
		Document:     res.Document,
		Replacements: res.Replacements,
		Palette:      palette,
	}, nil
}

// Preview is the informational view of a render that was not performed.
type Preview struct {
	CharacterID string        `json:"characterId"`
	TemplateKey string        `json:"templateKey"`
	Available   bool          `json:"available"`
	Colors      PreviewColors `json:"colors"`
	Items       []string      `json:"items"`
	URL         string        `json:"url"`
}

// PreviewColors are the resolved fills, all as lowercase #rrggbb.
type PreviewColors struct {
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	PrimaryDark   string `json:"primaryDark"`
	SecondaryDark string `json:"secondaryDark"`
}

// Preview resolves req without transforming anything. A missing template is
// reported through Available rather than as an error.
func (s *Service) Preview(ctx context.Context, req Request) (*Preview, error) {
	key := recolor.SanitizeID(req.CharacterID)
	palette := recolor.Derive(req.Palette, s.darkFactor)

	available := false
	if key != "" {
		_, err := s.store.Get(ctx, key)
		switch {
		case err == nil:
			available = true
		case !errors.Is(err, templates.ErrNotFound):
			return nil, fmt.Errorf("%w: checking %q: %w", ErrProcessing, key, err)
		}
	}

	items := req.Items
	if items == nil {
		items = []string{}
	}

	return &Preview{
		CharacterID: req.CharacterID,
		TemplateKey: key,
		Available:   available,
		Colors: PreviewColors{
			Primary:       palette.Primary.Hex(),
			Secondary:     palette.Secondary.Hex(),
			PrimaryDark:   palette.PrimaryDark.Hex(),
			SecondaryDark: palette.SecondaryDark.Hex(),
		},
		Items: items,
		URL:   AvatarURL(key, req.Palette, items),
	}, nil
}

// AvatarURL builds the path and query that renders key with p.
func AvatarURL(key string, p recolor.Palette, items []string) string {
	q := url.Values{}
	q.Set("primary", strings.TrimPrefix(p.Primary.Hex(), "#"))
	q.Set("secondary", strings.TrimPrefix(p.Secondary.Hex(), "#"))
	if len(items) > 0 {
		q.Set("items", strings.Join(items, ","))
	}
	return "/avatar/" + url.PathEscape(key) + "?" + q.Encode()
}

// Inspect returns the metadata and colorable regions of a template.
func (s *Service) Inspect(ctx context.Context, characterID string) (*templates.Template, error) {
	key, doc, err := s.load(ctx, characterID)
	if err != nil {
		return nil, err
	}
	t, err := templates.Validate(key, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	if st, ok := s.store.(templates.Statter); ok {
		info, err := st.Stat(ctx, key)
		if errors.Is(err, templates.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, key)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrProcessing, err)
		}
		t.SourcePath = info.SourcePath
		t.UpdatedAt = info.UpdatedAt
	}
	return t, nil
}

// List returns the keys of every available template.
func (s *Service) List(ctx context.Context) ([]string, error) {
	keys, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessing, err)
	}
	return keys, nil
}

// Stats returns per-template render counts. Without a render log it is empty.
func (s *Service) Stats(ctx context.Context) ([]TemplateStats, error) {
	if s.renders == nil {
		return []TemplateStats{}, nil
	}
	stats, err := s.renders.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessing, err)
	}
	return stats, nil
}

func (s *Service) load(ctx context.Context, characterID string) (string, []byte, error) {
	key := recolor.SanitizeID(characterID)
	if key == "" {
		return "", nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, characterID)
	}
	doc, err := s.store.Get(ctx, key)
	if errors.Is(err, templates.ErrNotFound) {
		return "", nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, key)
	}
	if err != nil {
		return "", nil, fmt.Errorf("%w: loading %q: %w", ErrProcessing, key, err)
	}
	return key, doc, nil
}
