package render

import "math"

// Camera is a perspective camera looking down -Z.
type Camera struct {
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64
	Z      float64

	projection [16]float64
}

// NewPerspectiveCamera creates a camera and computes its projection.
func NewPerspectiveCamera(fov, aspect, near, far float64) *Camera {
	c := &Camera{FOV: fov, Aspect: aspect, Near: near, Far: far}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the projection after FOV, Aspect, Near or Far change.
// The matrix is column-major, OpenGL clip space.
func (c *Camera) UpdateProjectionMatrix() {
	f := 1 / math.Tan(c.FOV*math.Pi/360)
	nf := 1 / (c.Near - c.Far)

	c.projection = [16]float64{
		f / c.Aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (c.Far + c.Near) * nf, -1,
		0, 0, 2 * c.Far * c.Near * nf, 0,
	}
}

// Projection returns the matrix computed by the last UpdateProjectionMatrix.
func (c *Camera) Projection() [16]float64 {
	return c.projection
}

// VisibleSize is the width and height of the view frustum at distance d.
func (c *Camera) VisibleSize(d float64) (width, height float64) {
	height = 2 * d * math.Tan(c.FOV*math.Pi/360)
	return height * c.Aspect, height
}
