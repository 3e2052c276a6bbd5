package capheight

import (
	"errors"
	"testing"
)

// fakeElement is a StyleSource backed by a property map, standing in
// for a host toolkit's computed-style API.
type fakeElement map[string]string

func (e fakeElement) ComputedStyle(property string) string {
	return e[property]
}

func TestInspect(t *testing.T) {
	m := New()
	el := fakeElement{
		"font-style":  "italic",
		"font-weight": "700",
		"font-size":   "48px",
		"font-family": "Go",
	}

	res, err := m.Inspect(el, "H")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if res.Style != "italic" || res.Weight != "700" || res.Size != "48px" || res.Family != "Go" {
		t.Errorf("Inspect passed through %+v", res.FontProperties)
	}
	if res.CapHeight <= 0 || res.CapHeight >= 1 {
		t.Errorf("CapHeight = %v, want in (0, 1)", res.CapHeight)
	}
}

func TestInspectMissingStyles(t *testing.T) {
	m := New()

	// An element reporting no computed values measures with defaults.
	res, err := m.Inspect(fakeElement{}, "")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if res.Size != DefaultSize || res.Family != DefaultFamily {
		t.Errorf("defaults not filled: %+v", res.FontProperties)
	}
}

func TestInspectInvalidSize(t *testing.T) {
	m := New()
	el := fakeElement{"font-size": "0px"}
	if _, err := m.Inspect(el, "H"); !errors.Is(err, ErrInvalidFontSize) {
		t.Errorf("Inspect error = %v, want ErrInvalidFontSize", err)
	}
}
