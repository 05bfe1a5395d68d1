package effect

import (
	"github.com/iburimskiy/godrays/internal/loop"
	"github.com/iburimskiy/godrays/internal/render"
	"github.com/iburimskiy/godrays/internal/uniform"
)

// session holds everything that exists only while the effect is mounted.
type session struct {
	renderer render.Renderer
	scene    *render.Scene
	camera   *render.Camera
	mesh     *render.Mesh
	uniforms *uniform.Set
	loop     *loop.Controller

	unsubscribe []func()
}

// Ready implements loop.Target.
func (s *session) Ready() bool {
	return s.renderer != nil && s.scene != nil && s.camera != nil && s.mesh != nil
}

// SetTime implements loop.Target.
func (s *session) SetTime(seconds float64) {
	s.uniforms.Time = seconds
}

// Render implements loop.Target.
func (s *session) Render() {
	s.renderer.Render(s.scene, s.camera)
}

// release must run after the loop is stopped.
func (s *session) release() {
	if s.renderer != nil {
		s.renderer.Dispose()
		s.renderer = nil
	}
	if s.mesh != nil {
		s.scene.Remove(s.mesh)
		s.mesh.Geometry.Dispose()
		s.mesh.Material.Dispose()
		s.mesh = nil
	}
	for _, unsubscribe := range s.unsubscribe {
		if unsubscribe != nil {
			unsubscribe()
		}
	}
	s.unsubscribe = nil
}
