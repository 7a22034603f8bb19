package templates

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"
	"github.com/gabriel-vasile/mimetype"

	"github.com/ziadkadry99/avatars/internal/recolor"
)

// textual MIME types a template may be detected as. SVG without an XML
// declaration is sometimes only recognized as XML or plain text.
var acceptedMIME = []string{"image/svg+xml", "text/xml", "application/xml", "text/plain"}

// Validate checks that data is a well-formed SVG document and reads the
// metadata shown by the inspection endpoints. It is used when templates are
// imported or inspected, never on the render path.
func Validate(key string, data []byte) (*Template, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidTemplate, key)
	}

	if mt := mimetype.Detect(data); !isTextual(mt) {
		return nil, fmt.Errorf("%w: %s looks like %s", ErrInvalidTemplate, key, mt.String())
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidTemplate, key, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "svg" {
		return nil, fmt.Errorf("%w: %s has no <svg> root element", ErrInvalidTemplate, key)
	}

	t := &Template{
		Key:     key,
		SVG:     data,
		Width:   root.SelectAttrValue("width", ""),
		Height:  root.SelectAttrValue("height", ""),
		ViewBox: root.SelectAttrValue("viewBox", ""),
		Regions: []Region{},
	}
	collectRegions(root, &t.Regions)
	return t, nil
}

func isTextual(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		for _, accepted := range acceptedMIME {
			if m.Is(accepted) {
				return true
			}
		}
	}
	return false
}

// collectRegions appends the colorable descendants of el in document order.
func collectRegions(el *etree.Element, regions *[]Region) {
	for _, child := range el.ChildElements() {
		if recolor.IsColorable(child.Tag) {
			if id := child.SelectAttr("id"); id != nil {
				*regions = append(*regions, Region{
					Tag:      child.FullTag(),
					ID:       id.Value,
					Category: recolor.Classify(id.Value),
				})
			}
		}
		collectRegions(child, regions)
	}
}
