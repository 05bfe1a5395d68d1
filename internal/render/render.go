// Package render is the small GPU surface the effect draws through: one scene,
// one camera, full-viewport quads with a shader material, and a renderer that
// can be backed by ebiten or by a test double.
package render

// ShaderSource is the program text handed to the backend verbatim.
// Backends with a fixed vertex stage ignore Vertex.
type ShaderSource struct {
	Vertex   []byte
	Fragment []byte
}

// Program is a compiled shader owned by a Renderer.
type Program interface {
	Dispose()
}

// UniformSource supplies the current uniform values at draw time.
type UniformSource interface {
	UniformMap() map[string]any
}

// Renderer owns the drawable surface.
type Renderer interface {
	SetSize(width, height int)
	Size() (width, height int)
	Compile(src ShaderSource) (Program, error)
	Render(scene *Scene, camera *Camera)
	Dispose()
}

// Device creates renderers bound to the host's drawable.
type Device interface {
	NewRenderer(width, height int) (Renderer, error)
}

// PlaneGeometry is an axis-aligned quad centered on the origin.
type PlaneGeometry struct {
	Width, Height float64
	disposed      bool
}

// NewPlaneGeometry creates a quad of the given size.
func NewPlaneGeometry(width, height float64) *PlaneGeometry {
	return &PlaneGeometry{Width: width, Height: height}
}

// Dispose releases the geometry. Safe to call more than once.
func (g *PlaneGeometry) Dispose() {
	g.disposed = true
}

// Disposed reports whether Dispose has been called.
func (g *PlaneGeometry) Disposed() bool {
	return g.disposed
}

// ShaderMaterial pairs a compiled program with its live uniform values.
type ShaderMaterial struct {
	Program     Program
	Uniforms    UniformSource
	Transparent bool
	DepthWrite  bool
	disposed    bool
}

// Dispose releases the program. Safe to call more than once.
func (m *ShaderMaterial) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	if m.Program != nil {
		m.Program.Dispose()
	}
}

// Disposed reports whether Dispose has been called.
func (m *ShaderMaterial) Disposed() bool {
	return m.disposed
}

// Mesh is a geometry drawn with a material.
type Mesh struct {
	Geometry *PlaneGeometry
	Material *ShaderMaterial
}

// Scene is the ordered list of meshes to draw.
type Scene struct {
	meshes []*Mesh
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends m unless it is already present.
func (s *Scene) Add(m *Mesh) {
	for _, existing := range s.meshes {
		if existing == m {
			return
		}
	}
	s.meshes = append(s.meshes, m)
}

// Remove drops m from the scene.
func (s *Scene) Remove(m *Mesh) {
	for i, existing := range s.meshes {
		if existing == m {
			s.meshes = append(s.meshes[:i], s.meshes[i+1:]...)
			return
		}
	}
}

// Meshes returns the meshes in draw order.
func (s *Scene) Meshes() []*Mesh {
	return s.meshes
}
