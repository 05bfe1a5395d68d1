package palette

import (
	"math"
	"math/rand/v2"
)

// Spec selects how the two ray colors are chosen.
// The variants are Single, Multi and Random; a nil Spec means the default palette.
type Spec interface {
	mode() string
}

// Single paints both rays with one color.
type Single struct {
	Color string
}

// Multi paints each ray with its own color.
type Multi struct {
	Color1 string
	Color2 string
}

// Random picks two colors once per session.
type Random struct{}

func (Single) mode() string { return "single" }
func (Multi) mode() string  { return "multi" }
func (Random) mode() string { return "random" }

// ModeName reports the config keyword for s, or "" for the default palette.
func ModeName(s Spec) string {
	if s == nil {
		return ""
	}
	return s.mode()
}

// Palette is a resolved pair of ray colors sharing one opacity.
type Palette struct {
	Color1  [3]float64
	Color2  [3]float64
	Opacity float64
}

// Default is used when no ray color is configured.
var Default = Palette{
	Color1:  [3]float64{0.6, 0.8, 1.0},
	Color2:  [3]float64{0.4, 0.6, 0.9},
	Opacity: 1,
}

// Resolve produces the palette for spec. rng is only consulted for Random and
// may be nil, in which case the global generator is used.
func Resolve(spec Spec, rng *rand.Rand) Palette {
	switch s := spec.(type) {
	case nil:
		return Default
	case Single:
		c := Parse(s.Color)
		rgb := [3]float64{c.R, c.G, c.B}
		return Palette{Color1: rgb, Color2: rgb, Opacity: c.A}
	case Multi:
		c1 := Parse(s.Color1)
		c2 := Parse(s.Color2)
		return Palette{
			Color1:  [3]float64{c1.R, c1.G, c1.B},
			Color2:  [3]float64{c2.R, c2.G, c2.B},
			Opacity: math.Min(c1.A, c2.A),
		}
	case Random:
		next := rand.Float64
		if rng != nil {
			next = rng.Float64
		}
		return Palette{
			Color1:  [3]float64{next(), next(), next()},
			Color2:  [3]float64{next(), next(), next()},
			Opacity: 1,
		}
	default:
		return Default
	}
}

// Vec4s returns both colors as opaque RGBA quadruples. Opacity is not
// part of the shader colors, so a malformed alpha cannot blank the rays.
func (p Palette) Vec4s() [2][4]float64 {
	return [2][4]float64{
		{p.Color1[0], p.Color1[1], p.Color1[2], 1},
		{p.Color2[0], p.Color2[1], p.Color2[2], 1},
	}
}
