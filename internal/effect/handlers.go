package effect

import "github.com/iburimskiy/godrays/internal/uniform"

// HandleResize reads the container size and updates the camera, the surface,
// the resolution and both ray anchors. Anchors are in pixels, so they follow every resize.
func (e *Effect) HandleResize() {
	s := e.sess
	if s == nil || s.renderer == nil || s.camera == nil {
		return
	}
	rect, ok := e.host.Container()
	if !ok {
		return
	}

	s.camera.Aspect = rect.Width / rect.Height
	s.camera.UpdateProjectionMatrix()
	s.renderer.SetSize(int(rect.Width), int(rect.Height))
	s.uniforms.Resize(e.cfg.Position, uniform.Geometry{Width: rect.Width, Height: rect.Height})
}

// HandlePointerMove converts client coordinates to container-relative [0,1]
// coordinates with y flipped, and overwrites the pointer uniform.
func (e *Effect) HandlePointerMove(clientX, clientY float64) {
	s := e.sess
	if s == nil || s.mesh == nil {
		return
	}
	rect, ok := e.host.Container()
	if !ok {
		return
	}

	s.uniforms.MoveTo(uniform.Pointer{
		X: (clientX - rect.X) / rect.Width,
		Y: 1 - (clientY-rect.Y)/rect.Height,
	})
}
