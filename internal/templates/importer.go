package templates

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/avatars/internal/progress"
	"github.com/ziadkadry99/avatars/internal/recolor"
)

// DefaultInclude selects every SVG file below the import directory.
var DefaultInclude = []string{"**/*.svg"}

// Importer loads SVG files from a directory tree into a Writer.
type Importer struct {
	dst      Writer
	include  []string
	reporter progress.Reporter
	logger   *slog.Logger
}

// ImportSummary reports what an import did.
type ImportSummary struct {
	Imported []string          `json:"imported"`
	Skipped  map[string]string `json:"skipped"` // relative path -> reason
}

// NewImporter creates an importer. Empty include falls back to DefaultInclude.
func NewImporter(dst Writer, include []string, reporter progress.Reporter, logger *slog.Logger) *Importer {
	if len(include) == 0 {
		include = DefaultInclude
	}
	if reporter == nil {
		reporter = progress.Nop{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Importer{dst: dst, include: include, reporter: reporter, logger: logger}
}

// Import validates and stores every matching file under dir. The key of each
// template is the sanitized file name without extension. Invalid files are
// skipped and reported; a failing write aborts the import.
func (im *Importer) Import(ctx context.Context, dir string) (*ImportSummary, error) {
	paths, err := im.collect(dir)
	if err != nil {
		return nil, err
	}

	summary := &ImportSummary{Imported: []string{}, Skipped: map[string]string{}}
	seen := make(map[string]string, len(paths))

	im.reporter.Start(len(paths))
	defer im.reporter.Finish()

	for i, rel := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		im.reporter.Update(i+1, rel)

		stem := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
		key := recolor.SanitizeID(stem)
		if key == "" {
			im.skip(summary, rel, "file name has no usable characters")
			continue
		}
		if prev, dup := seen[key]; dup {
			im.skip(summary, rel, fmt.Sprintf("key %q already imported from %s", key, prev))
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			im.skip(summary, rel, err.Error())
			continue
		}
		t, err := Validate(key, data)
		if err != nil {
			im.skip(summary, rel, err.Error())
			continue
		}
		t.SourcePath = filepath.ToSlash(rel)

		if err := im.dst.Put(ctx, t); err != nil {
			return summary, fmt.Errorf("importing %s: %w", rel, err)
		}
		seen[key] = rel
		summary.Imported = append(summary.Imported, key)
		im.logger.Info("imported template", "key", key, "path", rel, "regions", len(t.Regions))
	}

	return summary, nil
}

func (im *Importer) skip(summary *ImportSummary, rel, reason string) {
	summary.Skipped[rel] = reason
	im.logger.Warn("skipped template", "path", rel, "reason", reason)
}

// collect returns the sorted paths under dir, relative to it, that match an
// include pattern.
func (im *Importer) collect(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if matchesAny(rel, im.include) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// matchesAny checks if relPath matches any of the given glob patterns, either
// as a whole or by file name alone.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
