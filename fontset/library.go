// Package fontset resolves a font family name and aspect (style and
// weight) to a drawable face at a requested pixel size. It stands in
// for the font-selection step a browser performs when it parses a CSS
// font shorthand: the measurement pipeline hands it normalized
// properties and gets back a face it can rasterize with.
package fontset

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ErrUnknownFamily is returned when no registered font matches any of
// the requested family names.
var ErrUnknownFamily = errors.New("fontset: unknown font family")

// entry is one registered font variant.
type entry struct {
	family string
	aspect font.Aspect
	ot     *opentype.Font // x/image parsed font, used for rasterization
	hb     *font.Font     // typesetting parsed font, used for shaping
}

// Library is a collection of font variants accessible by family name.
// Each family may carry several aspects (regular, bold, italic, ...);
// Face picks the closest registered variant.
//
// Library is safe for concurrent use.
type Library struct {
	mu      sync.RWMutex
	entries map[string][]*entry
	aliases map[string]string
}

// NewLibrary creates a new, empty font library.
func NewLibrary() *Library {
	return &Library{
		entries: make(map[string][]*entry),
		aliases: make(map[string]string),
	}
}

// Register parses TTF or OTF font data and records it as a variant of
// the given family with the given aspect. Zero aspect fields default
// to normal style and weight 400.
func (l *Library) Register(family string, aspect font.Aspect, data []byte) error {
	ot, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("fontset: parse %q: %w", family, err)
	}
	hbFace, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("fontset: parse %q: %w", family, err)
	}
	aspect.SetDefaults()

	key := familyKey(family)
	l.mu.Lock()
	l.entries[key] = append(l.entries[key], &entry{
		family: family,
		aspect: aspect,
		ot:     ot,
		hb:     hbFace.Font,
	})
	l.mu.Unlock()
	return nil
}

// Alias makes requests for alias resolve to target. Used for the CSS
// generic families ("serif", "monospace") that name no concrete font.
func (l *Library) Alias(alias, target string) {
	l.mu.Lock()
	l.aliases[familyKey(alias)] = familyKey(target)
	l.mu.Unlock()
}

// Families returns the registered concrete family names.
func (l *Library) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.entries))
	seen := make(map[string]bool)
	for _, list := range l.entries {
		for _, e := range list {
			if !seen[e.family] {
				seen[e.family] = true
				names = append(names, e.family)
			}
		}
	}
	return names
}

// Face resolves family (a single name or a comma-separated fallback
// list, quotes allowed) to the registered variant closest to aspect
// and opens it at sizePx pixels. Returns ErrUnknownFamily when no name
// in the list is registered or aliased.
func (l *Library) Face(family string, aspect font.Aspect, sizePx float64) (*Face, error) {
	aspect.SetDefaults()

	l.mu.RLock()
	var candidates []*entry
	for _, name := range strings.Split(family, ",") {
		key := familyKey(name)
		if target, ok := l.aliases[key]; ok {
			key = target
		}
		if list, ok := l.entries[key]; ok {
			candidates = list
			break
		}
	}
	l.mu.RUnlock()

	if len(candidates) == 0 {
		return nil, fmt.Errorf("fontset: %q: %w", family, ErrUnknownFamily)
	}

	best := closest(candidates, aspect)
	xf, err := opentype.NewFace(best.ot, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fontset: open %q: %w", best.family, err)
	}
	return &Face{x: xf, hb: best.hb, size: sizePx}, nil
}

// closest picks the variant with the smallest aspect distance: style
// mismatches cost more than any weight difference, so an italic
// request prefers an italic variant of any weight over a roman one.
func closest(list []*entry, want font.Aspect) *entry {
	best := list[0]
	bestScore := aspectDistance(best.aspect, want)
	for _, e := range list[1:] {
		if score := aspectDistance(e.aspect, want); score < bestScore {
			best = e
			bestScore = score
		}
	}
	return best
}

// styleMismatchCost exceeds the largest possible weight distance
// (1..1000), so style agreement always dominates.
const styleMismatchCost = 1000

func aspectDistance(have, want font.Aspect) float64 {
	score := float64(have.Weight - want.Weight)
	if score < 0 {
		score = -score
	}
	if have.Style != want.Style {
		score += styleMismatchCost
	}
	return score
}

// familyKey canonicalizes a family name for lookup: trimmed,
// unquoted, case-folded.
func familyKey(family string) string {
	s := strings.TrimSpace(family)
	s = strings.Trim(s, `"'`)
	return strings.ToLower(strings.TrimSpace(s))
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns the shared library preloaded with the Go fonts, so
// the zero-configuration measurement path has a deterministic backend.
// The generic CSS families alias onto them.
func Default() *Library {
	defaultOnce.Do(func() {
		defaultLib = NewLibrary()
		register := func(family string, aspect font.Aspect, data []byte) {
			if err := defaultLib.Register(family, aspect, data); err != nil {
				// The embedded Go fonts always parse.
				panic(err)
			}
		}
		register("Go", font.Aspect{Style: font.StyleNormal, Weight: font.WeightNormal}, goregular.TTF)
		register("Go", font.Aspect{Style: font.StyleNormal, Weight: font.WeightBold}, gobold.TTF)
		register("Go", font.Aspect{Style: font.StyleItalic, Weight: font.WeightNormal}, goitalic.TTF)
		register("Go", font.Aspect{Style: font.StyleItalic, Weight: font.WeightBold}, gobolditalic.TTF)
		register("Go Mono", font.Aspect{Style: font.StyleNormal, Weight: font.WeightNormal}, gomono.TTF)

		defaultLib.Alias("serif", "Go")
		defaultLib.Alias("sans-serif", "Go")
		defaultLib.Alias("monospace", "Go Mono")
	})
	return defaultLib
}
