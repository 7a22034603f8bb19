package recolor

import "strings"

// colorableTags are the element kinds whose fill may be rewritten.
var colorableTags = map[string]bool{
	"path":    true,
	"circle":  true,
	"ellipse": true,
	"rect":    true,
	"polygon": true,
	"g":       true,
}

// IsColorable reports whether an element name is one of the colorable kinds.
// A namespace prefix ("svg:path") is ignored.
func IsColorable(name string) bool {
	return colorableTags[localName(name)]
}

func localName(name string) string {
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Attr is one attribute of a start tag. Value is the raw text between the
// quotes; entities are not decoded.
type Attr struct {
	Name  string
	Value string
	Quote byte // '"', '\'' or 0 when unquoted or valueless

	start, end       int // whole attribute within the raw tag
	valStart, valEnd int
}

// Tag is a lexed start tag. It keeps the raw text it was read from and edits
// only ever splice the bytes of the attribute being changed.
type Tag struct {
	Name  string
	Attrs []Attr

	raw      string
	attrsEnd int // offset just past the last attribute
}

// String returns the tag text, including any edits.
func (t *Tag) String() string { return t.raw }

// Attr looks up an attribute by name, ignoring case.
func (t *Tag) Attr(name string) (Attr, bool) {
	for _, a := range t.Attrs {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return Attr{}, false
}

// SetAttr replaces the value of an existing attribute, keeping its quote
// style, or appends the attribute after the last one when it is missing.
func (t *Tag) SetAttr(name, value string) {
	raw := t.raw
	if a, ok := t.Attr(name); ok {
		if a.Quote != 0 && strings.IndexByte(value, a.Quote) < 0 {
			raw = raw[:a.valStart] + value + raw[a.valEnd:]
		} else {
			raw = raw[:a.start] + a.Name + "=" + quote(value) + raw[a.end:]
		}
	} else {
		raw = raw[:t.attrsEnd] + " " + name + "=" + quote(value) + raw[t.attrsEnd:]
	}

	if nt, _, ok := lexTag(raw); ok {
		*t = *nt
	}
}

func quote(v string) string {
	if strings.IndexByte(v, '"') >= 0 {
		return "'" + v + "'"
	}
	return `"` + v + `"`
}

// rewriteStartTags copies doc, offering every start tag to edit. Tags for
// which edit returns true are written from their edited form; all other
// bytes, including comments, CDATA, processing instructions and end tags,
// are copied verbatim.
func rewriteStartTags(doc string, edit func(*Tag) bool) string {
	var b strings.Builder
	b.Grow(len(doc) + len(doc)/8)

	for len(doc) > 0 {
		lt := strings.IndexByte(doc, '<')
		if lt < 0 {
			b.WriteString(doc)
			break
		}
		b.WriteString(doc[:lt])
		doc = doc[lt:]

		if n := skipNonElement(doc); n > 0 {
			b.WriteString(doc[:n])
			doc = doc[n:]
			continue
		}

		t, n, ok := lexTag(doc)
		if !ok {
			// Not a well-formed tag; treat the bracket as text.
			b.WriteByte('<')
			doc = doc[1:]
			continue
		}
		if edit(t) {
			b.WriteString(t.String())
		} else {
			b.WriteString(doc[:n])
		}
		doc = doc[n:]
	}
	return b.String()
}

var nonElements = []struct{ open, close string }{
	{"<!--", "-->"},
	{"<![CDATA[", "]]>"},
	{"<?", "?>"},
	{"</", ">"},
}

// skipNonElement returns the length of the markup construct at the start of
// s that is not a start tag, or 0.
func skipNonElement(s string) int {
	for _, d := range nonElements {
		if strings.HasPrefix(s, d.open) {
			if k := strings.Index(s[len(d.open):], d.close); k >= 0 {
				return len(d.open) + k + len(d.close)
			}
			return len(s)
		}
	}
	if strings.HasPrefix(s, "<!") {
		// DOCTYPE, possibly with an internal subset in brackets.
		depth := 0
		for i := 2; i < len(s); i++ {
			switch s[i] {
			case '[':
				depth++
			case ']':
				depth--
			case '>':
				if depth <= 0 {
					return i + 1
				}
			}
		}
		return len(s)
	}
	return 0
}

// lexTag reads one start tag from the beginning of s and reports how many
// bytes it spans. ok is false when s does not hold a complete tag.
func lexTag(s string) (t *Tag, n int, ok bool) {
	if len(s) < 2 || s[0] != '<' {
		return nil, 0, false
	}
	i := 1
	for i < len(s) && !isSpace(s[i]) && s[i] != '>' && s[i] != '/' {
		i++
	}
	if i == 1 {
		return nil, 0, false
	}
	t = &Tag{Name: s[1:i], attrsEnd: i}

	for {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			return nil, 0, false
		}
		if s[i] == '>' {
			t.raw = s[:i+1]
			return t, i + 1, true
		}
		if s[i] == '/' {
			if i+1 < len(s) && s[i+1] == '>' {
				t.raw = s[:i+2]
				return t, i + 2, true
			}
			i++
			continue
		}

		a := Attr{start: i}
		for i < len(s) && !isSpace(s[i]) && s[i] != '=' && s[i] != '>' && !closesTag(s, i) {
			i++
		}
		a.Name = s[a.start:i]
		a.end = i

		j := i
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		if j < len(s) && s[j] == '=' {
			j++
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if j >= len(s) {
				return nil, 0, false
			}
			if q := s[j]; q == '"' || q == '\'' {
				k := strings.IndexByte(s[j+1:], q)
				if k < 0 {
					return nil, 0, false
				}
				a.Quote = q
				a.valStart, a.valEnd = j+1, j+1+k
				i = a.valEnd + 1
			} else {
				a.valStart = j
				for j < len(s) && !isSpace(s[j]) && s[j] != '>' && !closesTag(s, j) {
					j++
				}
				a.valEnd = j
				i = j
			}
			a.Value = s[a.valStart:a.valEnd]
			a.end = i
		}

		t.Attrs = append(t.Attrs, a)
		t.attrsEnd = a.end
	}
}

func closesTag(s string, i int) bool {
	return s[i] == '/' && i+1 < len(s) && s[i+1] == '>'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
