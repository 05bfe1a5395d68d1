// Package uniform derives the shader inputs of the god rays effect from its
// configuration, the container size and the pointer position.
package uniform

import (
	"github.com/iburimskiy/godrays/internal/config"
	"github.com/iburimskiy/godrays/internal/palette"
)

// Kage uniform identifiers. Kage only binds exported names, so the
// u_* names of the shader contract are carried in their exported form.
const (
	Resolution = "Resolution"
	Mouse      = "Mouse"
	Time       = "Time"
	Colors     = "Colors"
	Intensity  = "Intensity"
	Rays       = "Rays"
	Reach      = "Reach"
	RayPos1    = "RayPos1"
	RayPos2    = "RayPos2"
)

// Names maps the contract names to the identifiers declared in the shader.
var Names = map[string]string{
	"u_resolution": Resolution,
	"u_mouse":      Mouse,
	"u_time":       Time,
	"u_colors":     Colors,
	"u_intensity":  Intensity,
	"u_rays":       Rays,
	"u_reach":      Reach,
	"u_rayPos1":    RayPos1,
	"u_rayPos2":    RayPos2,
}

// Geometry is the render surface size in device-independent pixels.
type Geometry struct {
	Width, Height float64
}

// Pointer is the cursor position relative to the container, y measured from the bottom.
type Pointer struct {
	X, Y float64
}

// DefaultPointer is used until the first pointer move.
var DefaultPointer = Pointer{X: 0.5, Y: 0.5}

// Set is the complete group of values handed to the shader on every draw.
type Set struct {
	Resolution [2]float64
	Mouse      [2]float64
	Time       float64
	Colors     [2][4]float64
	Intensity  float64
	Rays       float64
	Reach      float64
	RayPos1    [2]float64
	RayPos2    [2]float64
}

// Build computes a fresh Set. Time starts at zero.
func Build(cfg config.Effect, g Geometry, p Pointer, pal palette.Palette) Set {
	s := Set{
		Mouse:     [2]float64{p.X, p.Y},
		Colors:    pal.Vec4s(),
		Intensity: MapRange(cfg.Intensity, 0, 100, 0, config.IntensityMax),
		Rays:      MapRange(cfg.Rays, 0, 100, 0, config.RaysMax),
		Reach:     MapRange(cfg.Reach, 0, 100, 0, config.ReachMax),
	}
	s.Resize(cfg.Position, g)
	return s
}

// RayPositions returns the two ray anchors in pixels for a horizontal
// position given as a percentage of the width.
func RayPositions(position float64, g Geometry) (p1, p2 [2]float64) {
	x := position / 100
	p1 = [2]float64{x * g.Width, config.Ray1Y * g.Height}
	p2 = [2]float64{(x + config.Ray2XOffset) * g.Width, config.Ray2Y * g.Height}
	return p1, p2
}

// Resize updates every pixel-space value for a new surface size.
func (s *Set) Resize(position float64, g Geometry) {
	s.Resolution = [2]float64{g.Width, g.Height}
	s.RayPos1, s.RayPos2 = RayPositions(position, g)
}

// MoveTo overwrites the pointer.
func (s *Set) MoveTo(p Pointer) {
	s.Mouse = [2]float64{p.X, p.Y}
}

// UniformMap converts the set into the value types ebiten passes to Kage.
func (s *Set) UniformMap() map[string]any {
	colors := make([]float32, 0, 8)
	for _, c := range s.Colors {
		for _, ch := range c {
			colors = append(colors, float32(ch))
		}
	}
	return map[string]any{
		Resolution: vec2(s.Resolution),
		Mouse:      vec2(s.Mouse),
		Time:       float32(s.Time),
		Colors:     colors,
		Intensity:  float32(s.Intensity),
		Rays:       float32(s.Rays),
		Reach:      float32(s.Reach),
		RayPos1:    vec2(s.RayPos1),
		RayPos2:    vec2(s.RayPos2),
	}
}

func vec2(v [2]float64) []float32 {
	return []float32{float32(v[0]), float32(v[1])}
}
