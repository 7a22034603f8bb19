// Package recolor rewrites avatar SVG templates with a caller's palette.
//
// Elements opt in to recoloring through their id: "_primary",
// "_primarydark", "_secondary" and "_secondarydark" name the region they
// belong to. Only the style attribute of those elements is touched; every
// other byte of the document is copied through as-is.
package recolor

import (
	"log/slog"
)

// Result is the outcome of one recolor pass.
type Result struct {
	Document     []byte
	Replacements int
}

// Recolorer applies palettes to templates. It holds no per-document state and
// is safe for concurrent use.
type Recolorer struct {
	logger *slog.Logger
}

// Option configures a Recolorer.
type Option func(*Recolorer)

// WithLogger sets the logger used for per-element and summary diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recolorer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Recolorer. Without WithLogger nothing is logged.
func New(opts ...Option) *Recolorer {
	r := &Recolorer{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recolor sets the fill of every classified element in doc from p. The pass
// is idempotent: recoloring its own output with the same palette is a no-op.
func (r *Recolorer) Recolor(doc []byte, p DerivedPalette) Result {
	replacements := 0
	out := rewriteStartTags(string(doc), func(t *Tag) bool {
		if !IsColorable(t.Name) {
			return false
		}
		id, ok := t.Attr("id")
		if !ok {
			return false
		}
		category := Classify(id.Value)
		color, ok := p.ColorFor(category)
		if !ok {
			return false
		}

		t.SetFill(color.Hex())
		replacements++
		r.logger.Debug("recolored element",
			"tag", t.Name, "id", id.Value, "category", category.String(), "fill", color.Hex())
		return true
	})

	r.logger.Info("recolor complete", "replacements", replacements)
	return Result{Document: []byte(out), Replacements: replacements}
}
