// Package kage is the ebiten backend of the render package: offscreen images
// as surfaces and Kage programs as shader materials.
package kage

import (
	"fmt"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/godrays/internal/render"
)

// Device creates renderers that draw into offscreen ebiten images.
// PixelRatio is the monitor scale factor new surfaces are allocated at.
type Device struct {
	PixelRatio float64
}

// NewRenderer implements render.Device.
func (d *Device) NewRenderer(width, height int) (render.Renderer, error) {
	r := &Renderer{ratio: render.PixelRatio(d.PixelRatio)}
	r.SetSize(width, height)
	return r, nil
}

// Renderer draws each mesh with DrawRectShader into its own surface.
// Sizes are logical pixels; the surface holds ratio device pixels per
// logical pixel. The host composites Image onto the screen.
type Renderer struct {
	surface       *ebiten.Image
	width, height int
	ratio         float64
}

type program struct {
	shader *ebiten.Shader
}

func (p *program) Dispose() {
	if p.shader != nil {
		p.shader.Deallocate()
		p.shader = nil
	}
}

// SetSize reallocates the surface when the size changes.
func (r *Renderer) SetSize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if r.surface != nil && width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.allocate()
}

// SetPixelRatio reallocates the surface for a new monitor scale factor.
func (r *Renderer) SetPixelRatio(scale float64) {
	ratio := render.PixelRatio(scale)
	if ratio == r.ratio {
		return
	}
	r.ratio = ratio
	if r.surface != nil {
		r.allocate()
	}
}

// PixelRatio returns the device pixels per logical pixel.
func (r *Renderer) PixelRatio() float64 {
	return r.ratio
}

func (r *Renderer) allocate() {
	if r.surface != nil {
		r.surface.Deallocate()
	}
	w, h := render.DeviceSize(r.width, r.height, r.ratio)
	r.surface = ebiten.NewImage(w, h)
	log.Printf("[Render] Surface %dx%d (%dx%d @%.2gx)", w, h, r.width, r.height, r.ratio)
}

// Size implements render.Renderer.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Compile builds a Kage program from src.Fragment.
func (r *Renderer) Compile(src render.ShaderSource) (render.Program, error) {
	shader, err := ebiten.NewShader(src.Fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}
	return &program{shader: shader}, nil
}

// Render clears the surface and draws every mesh of scene.
func (r *Renderer) Render(scene *render.Scene, camera *render.Camera) {
	if r.surface == nil || scene == nil || camera == nil {
		return
	}

	r.surface.Clear()
	for _, m := range scene.Meshes() {
		if m.Material == nil || m.Material.Disposed() || m.Geometry == nil || m.Geometry.Disposed() {
			continue
		}
		p, ok := m.Material.Program.(*program)
		if !ok || p.shader == nil {
			continue
		}

		x, y, w, h := r.quadRect(m.Geometry, camera)
		if w <= 0 || h <= 0 {
			continue
		}
		op := &ebiten.DrawRectShaderOptions{}
		op.GeoM.Translate(x, y)
		op.GeoM.Scale(r.ratio, r.ratio)
		if m.Material.Uniforms != nil {
			op.Uniforms = m.Material.Uniforms.UniformMap()
		}
		if m.Material.Transparent {
			op.Blend = ebiten.BlendSourceOver
		} else {
			op.Blend = ebiten.BlendCopy
		}
		r.surface.DrawRectShader(w, h, p.shader, op)
	}
}

// quadRect projects the plane at the camera's distance onto the surface.
// A plane larger than the frustum covers the whole surface.
func (r *Renderer) quadRect(g *render.PlaneGeometry, camera *render.Camera) (x, y float64, w, h int) {
	visW, visH := camera.VisibleSize(camera.Z)
	fw := math.Min(1, g.Width/visW)
	fh := math.Min(1, g.Height/visH)

	w = int(math.Round(fw * float64(r.width)))
	h = int(math.Round(fh * float64(r.height)))
	x = float64(r.width-w) / 2
	y = float64(r.height-h) / 2
	return x, y, w, h
}

// Image is the rendered surface, or nil after Dispose.
func (r *Renderer) Image() *ebiten.Image {
	return r.surface
}

// Dispose releases the surface. Safe to call more than once.
func (r *Renderer) Dispose() {
	if r.surface == nil {
		return
	}
	r.surface.Deallocate()
	r.surface = nil
	log.Printf("[Render] Surface released")
}
