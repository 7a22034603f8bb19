package recolor

import (
	"fmt"
	"strings"
)

// MergeFill returns a style declaration list that starts with "fill: color"
// followed by every non-fill declaration of style, in their original order.
// Any existing fill declaration is dropped wherever it appears; properties
// that merely start with "fill" (fill-opacity, fill-rule) are kept. Kept
// declarations are copied verbatim, only the whitespace around them is
// trimmed.
func MergeFill(style, color string) string {
	var kept []string
	for _, decl := range splitDecls(style) {
		decl = strings.TrimSpace(decl)
		if decl == "" || isFillDecl(decl) {
			continue
		}
		kept = append(kept, decl)
	}

	merged := "fill: " + color
	if len(kept) > 0 {
		merged += "; " + strings.Join(kept, "; ")
	}
	return merged
}

// splitDecls splits a declaration list on the semicolons that separate
// declarations. A ';' inside quotes or parentheses, as in url(data:...;base64,...)
// or content: 'a;b', belongs to the value.
func splitDecls(style string) []string {
	var (
		decls []string
		quote byte
		depth int
		start int
	)
	for i := 0; i < len(style); i++ {
		c := style[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '\\':
			i++
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == ';' && depth == 0:
			decls = append(decls, style[start:i])
			start = i + 1
		}
	}
	return append(decls, style[start:])
}

func isFillDecl(decl string) bool {
	prop, _, ok := strings.Cut(decl, ":")
	return ok && strings.EqualFold(strings.TrimSpace(prop), "fill")
}

// SetFill applies color as the element's fill, merging into an existing
// style attribute or adding one.
func (t *Tag) SetFill(color string) {
	if a, ok := t.Attr("style"); ok {
		t.SetAttr(a.Name, MergeFill(a.Value, color))
		return
	}
	t.SetAttr("style", MergeFill("", color))
}

// SetFill rewrites a single start tag so that its fill is color. Everything
// in the tag other than the style attribute is returned unchanged.
func SetFill(tag, color string) (string, error) {
	t, n, ok := lexTag(tag)
	if !ok || n != len(tag) {
		return "", fmt.Errorf("not a single start tag: %q", tag)
	}
	t.SetFill(color)
	return t.String(), nil
}
