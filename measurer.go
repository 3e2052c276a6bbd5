package capheight

import (
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/capheight/fontset"
	"github.com/gogpu/capheight/raster"
	"github.com/gogpu/capheight/scan"
)

// Resolver turns a family name and aspect into a face sized in
// physical pixels. fontset.Library is the standard implementation.
type Resolver interface {
	Face(family string, aspect font.Aspect, sizePx float64) (*fontset.Face, error)
}

// Measurer runs the cap-height measurement pipeline. Configuration is
// fixed at construction except for the display sink, which may be
// swapped at any time via SetSink.
//
// Calculate is safe for concurrent use: every call owns its surface
// and pixel buffer exclusively.
type Measurer struct {
	resolver   Resolver
	pixelRatio float64
	foreground scan.Predicate
	decoder    VariationDecoder
	sink       sinkHolder
}

// New creates a Measurer. Without options it resolves fonts from the
// default fontset library, assumes a device pixel ratio of 1, and
// detects foreground pixels with the 75% threshold policy.
func New(opts ...Option) *Measurer {
	m := &Measurer{
		resolver:   fontset.Default(),
		pixelRatio: 1,
		foreground: scan.Threshold(scan.DefaultThreshold),
		decoder:    FVDDecoder{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Calculate rasterizes text in the described font and returns the
// input record augmented with the measured cap-height ratio.
//
// Empty text defaults to "H". Validation failures abort the pipeline:
// ErrInvalidFontSize for a missing/zero/non-numeric size,
// raster.ErrWhitespaceText for whitespace in the sample, ErrNoGlyph
// when the rendered text left no ink on the surface. No partial result
// is returned on error.
func (m *Measurer) Calculate(props FontProperties, text string) (Result, error) {
	if text == "" {
		text = DefaultText
	}
	p := props.WithDefaults()

	size, err := ExtractFontSize(p)
	if err != nil {
		return Result{}, err
	}
	// Text validation precedes face resolution so the reported error
	// matches the pipeline order: size, then text, then font.
	if err := raster.ValidateText(text); err != nil {
		return Result{}, err
	}

	face, err := m.resolver.Face(p.Family, p.Aspect(), size*m.pixelRatio)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		_ = face.Close()
	}()

	surface, err := raster.Rasterize(face.Raw(), text, size, m.pixelRatio, face.Advance)
	if err != nil {
		return Result{}, err
	}
	Logger().Debug("rasterized sample",
		"text", text,
		"family", p.Family,
		"size", size,
		"pixelRatio", m.pixelRatio,
		"width", surface.Width(),
		"height", surface.Height())

	ink, ok := scan.Scan(surface.Data(), surface.Width(), m.foreground)
	if !ok {
		return Result{}, ErrNoGlyph
	}

	height := scan.Height(ink)
	ratio := Ratio(float64(height), m.pixelRatio, size)
	Logger().Debug("scanned ink span",
		"ascentRow", ink.Ascent,
		"descentRow", ink.Descent,
		"height", height,
		"capHeight", ratio)

	m.display(surface)

	return Result{FontProperties: p, CapHeight: ratio}, nil
}

// Ratio converts a physical-pixel ink span into the cap-height ratio:
// physical pixels map back to logical pixels through the device pixel
// ratio, then the span is normalized by the font size.
func Ratio(heightPhysical, pixelRatio, fontSize float64) float64 {
	return (heightPhysical / pixelRatio) / fontSize
}
