package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawSurface draws src at the origin of screen, clipped to a rounded
// rectangle when radius is positive.
func drawSurface(screen, src *ebiten.Image, radius float64) {
	if radius <= 0 {
		screen.DrawImage(src, nil)
		return
	}

	b := src.Bounds()
	path := roundedRect(float32(b.Dx()), float32(b.Dy()), float32(radius))
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = vs[i].DstX + float32(b.Min.X)
		vs[i].SrcY = vs[i].DstY + float32(b.Min.Y)
		vs[i].ColorR = 1
		vs[i].ColorG = 1
		vs[i].ColorB = 1
		vs[i].ColorA = 1
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(vs, is, src, op)
}

// roundedRect outlines a w×h rectangle whose corner radius is capped at half the shorter side.
func roundedRect(w, h, r float32) *vector.Path {
	r = min(r, w/2, h/2)

	var p vector.Path
	p.MoveTo(r, 0)
	p.LineTo(w-r, 0)
	p.ArcTo(w, 0, w, r, r)
	p.LineTo(w, h-r)
	p.ArcTo(w, h, w-r, h, r)
	p.LineTo(r, h)
	p.ArcTo(0, h, 0, h-r, r)
	p.LineTo(0, r)
	p.ArcTo(0, 0, r, 0, r)
	p.Close()
	return &p
}
