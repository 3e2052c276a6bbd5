package capheight

import (
	"strconv"
	"strings"

	"github.com/go-text/typesetting/font"
)

// Default property values, filled in for any field left empty.
const (
	DefaultStyle  = "normal"
	DefaultWeight = "400"
	DefaultSize   = "100px"
	DefaultFamily = "serif"

	// DefaultText is the sample rendered when no text is given. A
	// capital "H" is flat on top and bottom, so its ink span is the
	// cap height in the typographic sense.
	DefaultText = "H"
)

// FontProperties describes the font to measure. All fields are
// optional; the zero value of a field means "unset" and is replaced by
// the package default. Weight and Size are strings so CSS-style values
// pass through untouched ("bold", "100px"); numeric values are their
// decimal renderings ("400", "100").
type FontProperties struct {
	Style  string // "normal", "italic", "oblique"
	Weight string // "400", "700", "normal", "bold"
	Size   string // e.g. "100px"; must strip to a positive number
	Family string // family name or comma-separated fallback list
}

// WithDefaults returns a copy with every unset field filled from the
// default set. It never fails: only the font size carries a numeric
// constraint, checked separately by ExtractFontSize.
func (p FontProperties) WithDefaults() FontProperties {
	if p.Style == "" {
		p.Style = DefaultStyle
	}
	if p.Weight == "" {
		p.Weight = DefaultWeight
	}
	if p.Size == "" {
		p.Size = DefaultSize
	}
	if p.Family == "" {
		p.Family = DefaultFamily
	}
	return p
}

// ExtractFontSize strips every non-digit byte from the Size field and
// parses the remainder as a number. It returns an InvalidFontSizeError
// when nothing numeric remains or the value is exactly zero.
//
// Known limitation, kept deliberately: the digit strip also removes a
// decimal point, so "12.5px" parses as 125. Fractional sizes are not
// preserved.
func ExtractFontSize(p FontProperties) (float64, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, p.Size)
	if digits == "" {
		return 0, &InvalidFontSizeError{Value: p.Size}
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil || v == 0 {
		return 0, &InvalidFontSizeError{Value: p.Size}
	}
	return v, nil
}

// Aspect maps the style and weight fields onto a typesetting aspect
// for face selection. Unrecognized values fall back to normal/400.
func (p FontProperties) Aspect() font.Aspect {
	a := font.Aspect{Style: font.StyleNormal, Weight: font.WeightNormal}
	switch strings.ToLower(strings.TrimSpace(p.Style)) {
	case "italic", "oblique":
		a.Style = font.StyleItalic
	}
	if w := parseWeight(p.Weight); w > 0 {
		a.Weight = font.Weight(w)
	}
	return a
}

// parseWeight resolves a CSS-style weight to its numeric value, or 0
// when the value is unrecognized.
func parseWeight(weight string) float64 {
	switch strings.ToLower(strings.TrimSpace(weight)) {
	case "normal":
		return 400
	case "bold":
		return 700
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}

// Result is the measured record: the input properties with defaults
// filled, augmented with the cap-height ratio.
type Result struct {
	FontProperties

	// CapHeight is dimensionless: ink row span in logical pixels
	// divided by the numeric font size. Typically in (0, 1).
	CapHeight float64
}
