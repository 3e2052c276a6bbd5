package capheight

import (
	"fmt"
	"strconv"
	"strings"
)

// VariationDecoder interprets the opaque variation description a
// font-loading notification carries alongside the family name, turning
// it into a property record (family left empty; the adapter injects
// it).
type VariationDecoder interface {
	Decode(description string) (FontProperties, error)
}

// FVDDecoder decodes the compact font-variation-description encoding
// used by web font loaders: one style letter followed by one weight
// digit, e.g. "n4" for normal 400 or "i7" for italic 700.
type FVDDecoder struct{}

// Decode implements VariationDecoder.
func (FVDDecoder) Decode(description string) (FontProperties, error) {
	s := strings.ToLower(strings.TrimSpace(description))
	if len(s) != 2 {
		return FontProperties{}, fmt.Errorf("%w: %q", ErrInvalidVariation, description)
	}

	var style string
	switch s[0] {
	case 'n':
		style = "normal"
	case 'i':
		style = "italic"
	case 'o':
		style = "oblique"
	default:
		return FontProperties{}, fmt.Errorf("%w: %q", ErrInvalidVariation, description)
	}

	if s[1] < '1' || s[1] > '9' {
		return FontProperties{}, fmt.Errorf("%w: %q", ErrInvalidVariation, description)
	}
	weight := int(s[1]-'0') * 100

	return FontProperties{
		Style:  style,
		Weight: strconv.Itoa(weight),
	}, nil
}

// FontActiveHandler bridges an external font-loading notification into
// the measurement pipeline. The returned function is meant to be
// registered as the loader's "font active" callback: it decodes the
// variation description, injects the resolved family name, runs
// Calculate with the given sample text, and forwards the outcome to
// callback.
func (m *Measurer) FontActiveHandler(text string, callback func(Result, error)) func(family, description string) {
	return func(family, description string) {
		props, err := m.decoder.Decode(description)
		if err != nil {
			callback(Result{}, err)
			return
		}
		props.Family = family
		callback(m.Calculate(props, text))
	}
}
