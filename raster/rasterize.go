// Package raster renders a short glyph run onto an offscreen RGBA
// surface with a known, uniform background, so that a pixel scan can
// distinguish ink from background unambiguously.
package raster

import (
	"errors"
	"image"
	"image/color"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ErrWhitespaceText is returned when the sample text is empty or
// contains a whitespace rune anywhere. Whitespace has no measurable
// glyph extent, so the pixel scan cannot work on it.
var ErrWhitespaceText = errors.New("raster: text is empty or contains whitespace")

// Background and Foreground are the colors Rasterize paints with. The
// background is fully opaque so every channel of an untouched pixel
// reads 255; glyph cores read 0 with anti-aliased grays in between.
var (
	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Foreground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// sizeMultiplier pads the surface around the glyph run: a box of
// 2x the font size per axis fits ascenders and descenders of any
// script without clipping.
const sizeMultiplier = 2

// AdvanceFunc measures the horizontal advance of a text run in
// physical pixels. Rasterize uses it to center the run; when nil, the
// face's own advance measurement is used instead.
type AdvanceFunc func(text string) float64

// ValidateText reports whether text is measurable: it must be
// non-empty and free of whitespace runes anywhere. Returns
// ErrWhitespaceText otherwise.
func ValidateText(text string) error {
	if text == "" {
		return ErrWhitespaceText
	}
	for _, r := range text {
		if unicode.IsSpace(r) {
			return ErrWhitespaceText
		}
	}
	return nil
}

// Rasterize paints text onto a fresh surface and returns it for pixel
// read-back.
//
// The face must be sized at fontSize*pixelRatio so that drawing in
// physical units is equivalent to scaling a logical-unit context by
// the device pixel ratio. The logical geometry is derived from the
// run: width = 2*fontSize*runeCount, height = 2*fontSize.
//
// The whole surface is filled with Background first, then the text is
// painted in Foreground, horizontally centered, with the baseline
// placed so the face's ascent..descent box is vertically centered
// (the "middle" baseline).
func Rasterize(face font.Face, text string, fontSize, pixelRatio float64, advance AdvanceFunc) (*Surface, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	runeCount := utf8.RuneCountInString(text)
	logical := Dimensions{
		Width:  sizeMultiplier * fontSize * float64(runeCount),
		Height: sizeMultiplier * fontSize,
	}
	s, err := NewSurface(logical, pixelRatio)
	if err != nil {
		return nil, err
	}
	s.Fill(Background)

	var adv float64
	if advance != nil {
		adv = advance(text)
	} else {
		adv = fixedToFloat64(font.MeasureString(face, text))
	}

	m := face.Metrics()
	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)

	cx := float64(s.width) / 2
	cy := float64(s.height) / 2
	// Middle baseline: the ascent..descent box straddles cy.
	baseline := cy + (ascent-descent)/2

	d := &font.Drawer{
		Dst:  s,
		Src:  image.NewUniform(Foreground),
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(cx - adv/2),
			Y: floatToFixed(baseline),
		},
	}
	d.DrawString(text)

	return s, nil
}

// floatToFixed converts a float64 pixel value to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
