package raster

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
)

// ErrInvalidGeometry is returned when a surface is requested with
// non-positive logical dimensions or a non-positive pixel ratio.
var ErrInvalidGeometry = errors.New("raster: dimensions and pixel ratio must be positive")

// Dimensions is a logical (CSS-pixel) size.
type Dimensions struct {
	Width  float64
	Height float64
}

// Surface is an offscreen rectangular pixel buffer backing one
// rasterization. The buffer holds 4 bytes per pixel (RGBA, row-major)
// at physical resolution: logical dimensions scaled by the device
// pixel ratio. Surface implements image.Image and draw.Image so the
// standard font drawer can paint onto it directly.
type Surface struct {
	width      int // physical
	height     int // physical
	logical    Dimensions
	pixelRatio float64
	data       []uint8 // RGBA format, 4 bytes per pixel
}

// NewSurface allocates a surface of the given logical size. The
// backing buffer is physical-resolution: each logical dimension is
// multiplied by pixelRatio and rounded. Pass pixelRatio 1 on backends
// without a notion of display scaling.
func NewSurface(logical Dimensions, pixelRatio float64) (*Surface, error) {
	if logical.Width <= 0 || logical.Height <= 0 || pixelRatio <= 0 {
		return nil, ErrInvalidGeometry
	}
	w := int(math.Round(logical.Width * pixelRatio))
	h := int(math.Round(logical.Height * pixelRatio))
	if w < 1 || h < 1 {
		return nil, ErrInvalidGeometry
	}
	return &Surface{
		width:      w,
		height:     h,
		logical:    logical,
		pixelRatio: pixelRatio,
		data:       make([]uint8, w*h*4),
	}, nil
}

// Width returns the physical width of the backing buffer in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the physical height of the backing buffer in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Logical returns the logical dimensions the surface was created with.
func (s *Surface) Logical() Dimensions {
	return s.logical
}

// PixelRatio returns the device pixel ratio applied to the buffer.
func (s *Surface) PixelRatio() float64 {
	return s.pixelRatio
}

// Data returns the raw pixel data (RGBA format, row-major). The slice
// aliases the surface's buffer; it is a snapshot only for as long as
// nothing else draws on the surface.
func (s *Surface) Data() []uint8 {
	return s.data
}

// Fill paints every pixel of the surface with c.
func (s *Surface) Fill(c color.RGBA) {
	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = c.R
		s.data[i+1] = c.G
		s.data[i+2] = c.B
		s.data[i+3] = c.A
	}
}

// Set implements draw.Image.
func (s *Surface) Set(x, y int, c color.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	r, g, b, a := c.RGBA()
	i := (y*s.width + x) * 4
	s.data[i+0] = uint8(r >> 8)
	s.data[i+1] = uint8(g >> 8)
	s.data[i+2] = uint8(b >> 8)
	s.data[i+3] = uint8(a >> 8)
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.RGBA{}
	}
	i := (y*s.width + x) * 4
	return color.RGBA{
		R: s.data[i+0],
		G: s.data[i+1],
		B: s.data[i+2],
		A: s.data[i+3],
	}
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// ToImage copies the surface into an image.RGBA.
func (s *Surface) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.data)
	return img
}

// EncodePNG writes the surface to w in PNG format.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.ToImage())
}

// WritePNG saves the surface to a PNG file.
func (s *Surface) WritePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return s.EncodePNG(f)
}
