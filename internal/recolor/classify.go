package recolor

import "strings"

// Category is the colorable region an element belongs to.
type Category int

const (
	CategoryNone Category = iota
	CategoryPrimary
	CategoryPrimaryDark
	CategorySecondary
	CategorySecondaryDark
)

func (c Category) String() string {
	switch c {
	case CategoryPrimary:
		return "primary"
	case CategoryPrimaryDark:
		return "primaryDark"
	case CategorySecondary:
		return "secondary"
	case CategorySecondaryDark:
		return "secondaryDark"
	default:
		return "none"
	}
}

// Classify maps an element id to its category. The rules are evaluated in
// order and the first match wins:
//
//  1. contains "_primary" and not "dark"  -> primary
//  2. contains "_primarydark"             -> primaryDark
//  3. contains "_secondary" and not "dark" -> secondary
//  4. contains "_secondarydark"           -> secondaryDark
//
// Matching is case-insensitive. Anything else is CategoryNone.
func Classify(id string) Category {
	id = strings.ToLower(id)
	dark := strings.Contains(id, "dark")

	switch {
	case strings.Contains(id, "_primary") && !dark:
		return CategoryPrimary
	case strings.Contains(id, "_primarydark"):
		return CategoryPrimaryDark
	case strings.Contains(id, "_secondary") && !dark:
		return CategorySecondary
	case strings.Contains(id, "_secondarydark"):
		return CategorySecondaryDark
	default:
		return CategoryNone
	}
}

// MarshalText renders the category by name, so it reads well in JSON.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
