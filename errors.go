package capheight

import (
	"errors"
	"fmt"
)

// Sentinel errors for the measurement pipeline.
var (
	// ErrInvalidFontSize is matched (via errors.Is) by every
	// InvalidFontSizeError.
	ErrInvalidFontSize = errors.New("capheight: invalid font size")

	// ErrNoGlyph is returned when the rasterized text produced no
	// foreground pixel at all, so there is no span to measure.
	ErrNoGlyph = errors.New("capheight: no foreground pixels detected")

	// ErrInvalidVariation is returned when a variation description
	// handed to the font-active adapter cannot be decoded.
	ErrInvalidVariation = errors.New("capheight: invalid variation description")
)

// InvalidFontSizeError reports a font-size value that is missing,
// non-numeric after unit stripping, or zero.
type InvalidFontSizeError struct {
	Value string
}

func (e *InvalidFontSizeError) Error() string {
	return fmt.Sprintf("capheight: invalid font size %q", e.Value)
}

// Is makes the error match ErrInvalidFontSize.
func (e *InvalidFontSizeError) Is(target error) bool {
	return target == ErrInvalidFontSize
}
