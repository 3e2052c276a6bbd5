package fontset

import (
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face is a font variant opened at a fixed pixel size. It bundles the
// x/image face used for rasterization with the typesetting font used
// for HarfBuzz shaping, so advance measurement accounts for kerning.
//
// Face is not safe for concurrent use; each measurement owns its own.
type Face struct {
	x    xfont.Face
	hb   *font.Font
	size float64

	// shaper has internal mutable state and is reused across
	// sequential Advance calls on the same Face.
	shaper shaping.HarfbuzzShaper
}

// Raw returns the underlying x/image face for drawing.
func (f *Face) Raw() xfont.Face {
	return f.x
}

// Size returns the pixel size the face was opened at.
func (f *Face) Size() float64 {
	return f.size
}

// Close releases the rasterization face. The Face is unusable after.
func (f *Face) Close() error {
	return f.x.Close()
}

// Advance returns the shaped horizontal advance of text in pixels.
// The run is shaped left-to-right with HarfBuzz, so ligatures and
// kerning pairs contribute their real advance.
func (f *Face) Advance(text string) float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}

	// font.Face is not safe for concurrent use; a fresh one per call
	// wraps the shared thread-safe *font.Font cheaply.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.hb),
		Size:      fixed.Int26_6(f.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	output := f.shaper.Shape(input)

	var adv fixed.Int26_6
	for _, g := range output.Glyphs {
		adv += g.Advance
	}
	return float64(adv) / 64.0
}

// detectScript returns the script of the first non-space rune. Mixed
// scripts in a short measurement sample are the caller's problem.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
