package capheight

import "github.com/gogpu/capheight/scan"

// Option configures a Measurer during creation.
//
// Example:
//
//	// High-density display, exact black-pixel matching:
//	m := capheight.New(
//	    capheight.WithPixelRatio(2),
//	    capheight.WithForeground(scan.Exact(0)),
//	)
type Option func(*Measurer)

// WithResolver sets a custom font resolver. Use this to measure fonts
// outside the default library:
//
//	lib := fontset.NewLibrary()
//	_ = lib.Register("Inter", font.Aspect{}, interTTF)
//	m := capheight.New(capheight.WithResolver(lib))
func WithResolver(r Resolver) Option {
	return func(m *Measurer) {
		if r != nil {
			m.resolver = r
		}
	}
}

// WithPixelRatio sets the device pixel ratio applied to the raster
// geometry. Non-positive values are ignored; the default is 1.
func WithPixelRatio(ratio float64) Option {
	return func(m *Measurer) {
		if ratio > 0 {
			m.pixelRatio = ratio
		}
	}
}

// WithForeground sets the foreground-pixel policy used by the scanner.
// The default is scan.Threshold(scan.DefaultThreshold); use
// scan.Exact(0) on backends that rasterize without anti-aliasing.
func WithForeground(p scan.Predicate) Option {
	return func(m *Measurer) {
		if p != nil {
			m.foreground = p
		}
	}
}

// WithSink sets the initial display sink. Equivalent to calling
// SetSink after New.
func WithSink(s Sink) Option {
	return func(m *Measurer) {
		m.sink.store(s)
	}
}

// WithDecoder sets the decoder used by FontActiveHandler to interpret
// variation descriptions. The default decodes the compact fvd
// encoding ("n4", "i7").
func WithDecoder(d VariationDecoder) Option {
	return func(m *Measurer) {
		if d != nil {
			m.decoder = d
		}
	}
}
