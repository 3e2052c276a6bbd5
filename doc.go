// Package capheight measures the cap-height ratio of a rendered glyph
// run: the vertical span its ink actually occupies, expressed as a
// fraction of the nominal font size.
//
// # Overview
//
// Given a font description (style, weight, size, family) and a short
// sample text, the measurer rasterizes the text onto an offscreen RGBA
// surface over a uniform white background, scans the pixel buffer for
// the first and last rows containing ink, and converts that row span
// into a resolution-independent ratio:
//
//	capHeight = (rowSpan / devicePixelRatio) / fontSize
//
// The result is the input property record with the ratio attached.
//
// # Quick Start
//
//	import "github.com/gogpu/capheight"
//
//	m := capheight.New()
//	res, err := m.Calculate(capheight.FontProperties{
//	    Size:   "100px",
//	    Family: "serif",
//	}, "H")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.CapHeight) // e.g. 0.72
//
// # Backends
//
// Rasterization uses golang.org/x/image font faces; family and aspect
// resolution goes through the fontset package, whose default library
// ships the Go fonts so the zero-configuration path is deterministic.
// Horizontal centering uses HarfBuzz shaping via go-text/typesetting.
//
// # Architecture
//
// The pipeline is: normalize properties, validate the font size,
// resolve a face, rasterize (raster/), scan the buffer (scan/),
// compute the ratio, and optionally hand the surface to a display
// sink for visual inspection.
//
// Text shaping niceties (bidi, line layout), font-file inspection and
// result caching are out of scope: the sample runs this package
// measures are a few glyphs long and rendered once per call.
package capheight
