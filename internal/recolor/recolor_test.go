package recolor

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func testPalette() DerivedPalette {
	return Derive(Palette{
		Primary:   MustParseHex("#112233"),
		Secondary: MustParseHex("#445566"),
	}, DefaultDarkFactor)
}

func TestSanitizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Red Panda #1!", "red_panda_1"},
		{"fox", "fox"},
		{"dragon-2", "dragon-2"},
		{"  Fox\t\nKit  ", "_fox_kit_"},
		{"Red\u00a0Panda", "red_panda"},
		{"Red\vPanda", "red_panda"},
		{"Red\u2003Panda", "red_panda"},
		{"Red\u0085\u2028 Panda", "red_panda"},
		{"../../etc/passwd", "etcpasswd"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeID(tt.in); got != tt.want {
			t.Errorf("SanitizeID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		id   string
		want Category
	}{
		{"body_primary", CategoryPrimary},
		{"body_primarydark", CategoryPrimaryDark},
		{"wing_secondary_outline", CategorySecondary},
		{"wing_secondarydark", CategorySecondaryDark},
		{"outline_generic", CategoryNone},
		{"BODY_PRIMARY", CategoryPrimary},
		{"hair_secondaryDark", CategorySecondaryDark},
		{"shadow_dark_primary", CategoryNone},
		{"primary", CategoryNone},
		{"", CategoryNone},
	}

	for _, tt := range tests {
		if got := Classify(tt.id); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.id, got, tt.want)
		}
	}
}

func TestRecolorTwoElementTemplate(t *testing.T) {
	doc := `<path id="a_primary" d="M0 0"/><path id="b" d="M1 1"/>`

	res := New().Recolor([]byte(doc), testPalette())

	want := `<path id="a_primary" d="M0 0" style="fill: #112233"/><path id="b" d="M1 1"/>`
	if string(res.Document) != want {
		t.Errorf("document:\n got  %s\n want %s", res.Document, want)
	}
	if res.Replacements != 1 {
		t.Errorf("expected 1 replacement, got %d", res.Replacements)
	}
}

func TestRecolorAllCategories(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <g id="body_primary">
    <ellipse id="belly_secondary" cx="5" cy="5" rx="2" ry="1"/>
    <path id="shade_primarydark" d="M0 0"/>
    <circle id="eye_secondarydark" style="fill: #ff0000; stroke: #000" r="1"/>
    <rect id="outline_generic" width="10" height="10"/>
  </g>
</svg>`

	res := New().Recolor([]byte(doc), testPalette())

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <g id="body_primary" style="fill: #112233">
    <ellipse id="belly_secondary" cx="5" cy="5" rx="2" ry="1" style="fill: #445566"/>
    <path id="shade_primarydark" d="M0 0" style="fill: #0e1b29"/>
    <circle id="eye_secondarydark" style="fill: #364452; stroke: #000" r="1"/>
    <rect id="outline_generic" width="10" height="10"/>
  </g>
</svg>`
	if string(res.Document) != want {
		t.Errorf("document:\n got  %s\n want %s", res.Document, want)
	}
	if res.Replacements != 4 {
		t.Errorf("expected 4 replacements, got %d", res.Replacements)
	}
}

func TestRecolorLeavesUnrelatedMarkupAlone(t *testing.T) {
	doc := `<?xml version="1.0"?>
<!-- <path id="commented_primary"/> -->
<svg>
  <text id="label_primary">Name &amp; title</text>
  <rect  id = "bg"   width='10' />
  <path d="M0 0"/>
  <polygon points="0,0 1,1" id="x"/>
  <![CDATA[<path id="cdata_primary"/>]]>
</svg>`

	res := New().Recolor([]byte(doc), testPalette())

	if string(res.Document) != doc {
		t.Errorf("expected document unchanged, got:\n%s", res.Document)
	}
	if res.Replacements != 0 {
		t.Errorf("expected 0 replacements, got %d", res.Replacements)
	}
}

func TestRecolorNamespacedElements(t *testing.T) {
	doc := `<svg:svg xmlns:svg="http://www.w3.org/2000/svg"><svg:path id="a_secondary"/></svg:svg>`

	res := New().Recolor([]byte(doc), testPalette())

	want := `<svg:svg xmlns:svg="http://www.w3.org/2000/svg"><svg:path id="a_secondary" style="fill: #445566"/></svg:svg>`
	if string(res.Document) != want {
		t.Errorf("document:\n got  %s\n want %s", res.Document, want)
	}
}

func TestRecolorIsIdempotent(t *testing.T) {
	doc := `<svg>
  <path id="a_primary" style="stroke: #000; fill: #abcdef; opacity: 0.5"/>
  <circle id="b_secondarydark"/>
  <rect id="c"/>
</svg>`

	r := New()
	p := testPalette()
	once := r.Recolor([]byte(doc), p)
	twice := r.Recolor(once.Document, p)

	if !bytes.Equal(once.Document, twice.Document) {
		t.Errorf("second pass changed the document:\n once  %s\n twice %s", once.Document, twice.Document)
	}
	if once.Replacements != twice.Replacements {
		t.Errorf("replacement counts differ: %d vs %d", once.Replacements, twice.Replacements)
	}
}

func TestRecolorConcurrent(t *testing.T) {
	doc := []byte(`<svg><path id="a_primary" style="stroke: #000"/><circle id="b_secondarydark"/><rect id="c"/></svg>`)

	var buf bytes.Buffer
	r := New(WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	palettes := make([]DerivedPalette, 16)
	want := make([][]byte, len(palettes))
	for i := range palettes {
		palettes[i] = Derive(Palette{
			Primary:   MustParseHex(fmt.Sprintf("#%02x0000", i*8)),
			Secondary: MustParseHex(fmt.Sprintf("#0000%02x", 255-i*8)),
		}, DefaultDarkFactor)
		want[i] = New().Recolor(doc, palettes[i]).Document
	}

	var wg sync.WaitGroup
	errs := make(chan string, len(palettes)*8)
	for round := 0; round < 8; round++ {
		for i := range palettes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				res := r.Recolor(doc, palettes[i])
				if !bytes.Equal(res.Document, want[i]) {
					errs <- fmt.Sprintf("palette %d: got %s, want %s", i, res.Document, want[i])
				}
				if res.Replacements != 2 {
					errs <- fmt.Sprintf("palette %d: expected 2 replacements, got %d", i, res.Replacements)
				}
			}(i)
		}
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}
	if !bytes.Contains(doc, []byte(`style="stroke: #000"`)) {
		t.Error("input document was modified")
	}
}

func TestRecolorEmptyDocument(t *testing.T) {
	res := New().Recolor(nil, testPalette())
	if len(res.Document) != 0 || res.Replacements != 0 {
		t.Errorf("expected empty result, got %q (%d)", res.Document, res.Replacements)
	}
}

func TestRecolorLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	New(WithLogger(logger)).Recolor([]byte(`<path id="a_primary"/>`), testPalette())

	out := buf.String()
	if !strings.Contains(out, "id=a_primary") || !strings.Contains(out, "category=primary") {
		t.Errorf("expected per-element entry, got %q", out)
	}
	if !strings.Contains(out, "replacements=1") {
		t.Errorf("expected summary entry, got %q", out)
	}
}
