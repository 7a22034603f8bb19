// Package templates stores and validates the SVG templates avatars are
// rendered from. Templates are addressed by a sanitized character key.
package templates

import (
	"context"
	"errors"
	"time"

	"github.com/ziadkadry99/avatars/internal/recolor"
)

var (
	// ErrNotFound is returned when no template exists for a key.
	ErrNotFound = errors.New("template not found")
	// ErrInvalidTemplate is returned when a document is not a usable SVG.
	ErrInvalidTemplate = errors.New("invalid template")
)

// Store is a read-only key to document mapping.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
}

// Statter is implemented by stores that keep metadata about a template apart
// from its document, such as when it last changed.
type Statter interface {
	Stat(ctx context.Context, key string) (*Template, error)
}

// Writer is implemented by stores that accept new templates.
type Writer interface {
	Put(ctx context.Context, t *Template) error
}

// Template is a validated SVG document and the metadata read from it.
type Template struct {
	Key        string    `json:"key"`
	SVG        []byte    `json:"-"`
	Width      string    `json:"width,omitempty"`
	Height     string    `json:"height,omitempty"`
	ViewBox    string    `json:"viewBox,omitempty"`
	SourcePath string    `json:"sourcePath,omitempty"`
	Regions    []Region  `json:"regions"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}

// Region is an element of the template that the recolorer would consider.
type Region struct {
	Tag      string           `json:"tag"`
	ID       string           `json:"id"`
	Category recolor.Category `json:"category"`
}

// validKey reports whether key is non-empty and already in sanitized form.
func validKey(key string) bool {
	return key != "" && key == recolor.SanitizeID(key)
}
