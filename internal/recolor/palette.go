package recolor

// DefaultDarkFactor is how much darker the shading variants are than their base.
const DefaultDarkFactor = 0.2

var (
	DefaultPrimary   = MustParseHex("#D4A574")
	DefaultSecondary = MustParseHex("#FFFDD0")
)

// Palette is the caller supplied pair of base colors.
type Palette struct {
	Primary   Color
	Secondary Color
}

// DefaultPalette returns the palette used when a caller supplies no colors.
func DefaultPalette() Palette {
	return Palette{Primary: DefaultPrimary, Secondary: DefaultSecondary}
}

// DerivedPalette is a Palette plus the darker shading variants.
type DerivedPalette struct {
	Palette
	PrimaryDark   Color
	SecondaryDark Color
}

// Derive computes the shading variants of p at the given factor.
func Derive(p Palette, factor float64) DerivedPalette {
	return DerivedPalette{
		Palette:       p,
		PrimaryDark:   Darken(p.Primary, factor),
		SecondaryDark: Darken(p.Secondary, factor),
	}
}

// ColorFor returns the fill for a category. ok is false for CategoryNone.
func (d DerivedPalette) ColorFor(c Category) (color Color, ok bool) {
	switch c {
	case CategoryPrimary:
		return d.Primary, true
	case CategoryPrimaryDark:
		return d.PrimaryDark, true
	case CategorySecondary:
		return d.Secondary, true
	case CategorySecondaryDark:
		return d.SecondaryDark, true
	default:
		return Color{}, false
	}
}
