package avatars

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ziadkadry99/avatars/internal/recolor"
)

// ParsePaletteQuery reads the primary and secondary query parameters over
// defaults. Colors may be given with or without the leading '#'. A malformed
// color is an error wrapping recolor.ErrInvalidColor.
func ParsePaletteQuery(q url.Values, defaults recolor.Palette) (recolor.Palette, error) {
	p := defaults
	if v := q.Get("primary"); v != "" {
		c, err := recolor.ParseHex(v)
		if err != nil {
			return recolor.Palette{}, fmt.Errorf("primary: %w", err)
		}
		p.Primary = c
	}
	if v := q.Get("secondary"); v != "" {
		c, err := recolor.ParseHex(v)
		if err != nil {
			return recolor.Palette{}, fmt.Errorf("secondary: %w", err)
		}
		p.Secondary = c
	}
	return p, nil
}

// ParseItems splits a comma separated item list, dropping blanks.
func ParseItems(csv string) []string {
	items := []string{}
	for _, item := range strings.Split(csv, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
