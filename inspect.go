package capheight

// StyleSource exposes computed style values of an externally supplied
// element, keyed by CSS property name. It abstracts the host's
// style-computation API so UI toolkits can plug their own elements in.
type StyleSource interface {
	ComputedStyle(property string) string
}

// Inspect measures the font an element is actually rendered with: it
// reads the computed font-style, font-weight, font-size and
// font-family values from src and funnels them through Calculate.
func (m *Measurer) Inspect(src StyleSource, text string) (Result, error) {
	props := FontProperties{
		Style:  src.ComputedStyle("font-style"),
		Weight: src.ComputedStyle("font-weight"),
		Size:   src.ComputedStyle("font-size"),
		Family: src.ComputedStyle("font-family"),
	}
	return m.Calculate(props, text)
}
