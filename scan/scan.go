// Package scan locates foreground content in a flat RGBA pixel buffer.
//
// The buffer layout is the one produced by raster.Surface: 4 unsigned
// 8-bit channel values (R, G, B, A) per pixel, row-major, physical
// resolution. The scanner walks the raw channel stream and reports the
// first and last rows that contain ink, which is all the cap-height
// calculation needs.
package scan

// Predicate reports whether a single channel value belongs to the
// foreground. It is injected into Scan so the hot loops stay free of
// policy decisions.
type Predicate func(v uint8) bool

// DefaultThreshold is the foreground cutoff fraction used by Threshold
// when no other value is wanted: a channel is ink when it falls below
// 75% of full intensity, which tolerates anti-aliased edge pixels.
const DefaultThreshold = 0.75

// Exact returns a predicate matching only channels equal to fg.
// Suitable for backends that rasterize without anti-aliasing.
func Exact(fg uint8) Predicate {
	return func(v uint8) bool { return v == fg }
}

// Threshold returns a predicate matching channels darker than
// 255*frac. This is the primary policy: it catches anti-aliased
// glyph edges that an exact black match would miss.
func Threshold(frac float64) Predicate {
	limit := 255 * frac
	return func(v uint8) bool { return float64(v) < limit }
}

// Ink holds the vertical extent of foreground content.
// Ascent and Descent are 0-based physical pixel row indexes, top-down.
// Descent >= Ascent whenever ink exists at all.
type Ink struct {
	Ascent  int
	Descent int
}

// Scan finds the first and last foreground rows in buf, a flat RGBA
// buffer of the given physical width. It runs one bounded forward loop
// for the first matching channel and one bounded backward loop for the
// last. The second result is false when no channel matches, in which
// case Ink is meaningless.
func Scan(buf []uint8, physicalWidth int, pred Predicate) (Ink, bool) {
	if physicalWidth <= 0 || len(buf) == 0 || pred == nil {
		return Ink{}, false
	}

	first := -1
	for i := 0; i < len(buf); i++ {
		if pred(buf[i]) {
			first = i
			break
		}
	}
	if first < 0 {
		return Ink{}, false
	}

	last := first
	for i := len(buf) - 1; i > first; i-- {
		if pred(buf[i]) {
			last = i
			break
		}
	}

	return Ink{
		Ascent:  rowOf(first, physicalWidth),
		Descent: rowOf(last, physicalWidth),
	}, true
}

// rowOf converts a flat channel index to a pixel row: divide away the
// 4 channels per pixel, then the row width. Integer division floors.
func rowOf(index, physicalWidth int) int {
	return (index / 4) / physicalWidth
}

// Height returns the inclusive row span of the ink: a glyph occupying
// a single row has height 1, not 0.
func Height(ink Ink) int {
	return ink.Descent - ink.Ascent + 1
}
