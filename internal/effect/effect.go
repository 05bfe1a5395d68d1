// Package effect owns the lifetime of one god rays surface: it builds the
// render session on mount, keeps its uniforms in step with resize and pointer
// events, and tears everything down in a safe order on unmount.
package effect

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/iburimskiy/godrays/internal/config"
	"github.com/iburimskiy/godrays/internal/loop"
	"github.com/iburimskiy/godrays/internal/palette"
	"github.com/iburimskiy/godrays/internal/render"
	"github.com/iburimskiy/godrays/internal/uniform"
)

// Rect is the container's position and size in client coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Host is the window or widget the effect lives in.
type Host interface {
	// Container reports the container bounds, or false when there is no container.
	Container() (Rect, bool)
	// Drawable reports whether the drawing surface exists.
	Drawable() bool
	OnResize(fn func()) (unsubscribe func())
	OnPointerMove(fn func(clientX, clientY float64)) (unsubscribe func())
}

// State is the lifecycle stage of an Effect.
type State int

const (
	Idle State = iota
	Active
	Disposed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Disposed:
		return "disposed"
	}
	return "unknown"
}

// Options are the collaborators an Effect is built with.
type Options struct {
	Device    render.Device
	Shader    render.ShaderSource
	Scheduler loop.Scheduler
	Clock     loop.Clock
	// Rand feeds the random color mode. Nil uses the global generator.
	Rand *rand.Rand
}

// Effect is one god rays surface bound to a host.
// All methods must be called from the host's frame thread.
type Effect struct {
	cfg   config.Effect
	host  Host
	opts  Options
	state State
	sess  *session

	// waiting is set once a skipped Mount has been logged
	waiting bool
}

// New creates an idle effect. Nothing is allocated until Mount.
func New(cfg config.Effect, host Host, opts Options) *Effect {
	return &Effect{cfg: cfg, host: host, opts: opts}
}

// Mount builds the render session, draws the first frame and subscribes to
// host events. Without a container or drawable it does nothing. A renderer or
// shader failure is returned after releasing whatever was already created.
func (e *Effect) Mount() error {
	if e.state != Idle {
		return nil
	}
	rect, ok := e.host.Container()
	if !ok || !e.host.Drawable() {
		if !e.waiting {
			e.waiting = true
			log.Printf("[Effect] Mount skipped: host not ready")
		}
		return nil
	}
	e.waiting = false

	renderer, err := e.opts.Device.NewRenderer(int(rect.Width), int(rect.Height))
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	camera := render.NewPerspectiveCamera(config.CameraFOV, rect.Width/rect.Height, config.CameraNear, config.CameraFar)
	camera.Z = config.CameraZ
	geometry := render.NewPlaneGeometry(config.PlaneSize, config.PlaneSize)

	program, err := renderer.Compile(e.opts.Shader)
	if err != nil {
		geometry.Dispose()
		renderer.Dispose()
		return fmt.Errorf("failed to create shader material: %w", err)
	}

	pal := palette.Resolve(e.cfg.RaysColor.Spec, e.opts.Rand)
	set := uniform.Build(e.cfg, uniform.Geometry{Width: rect.Width, Height: rect.Height}, uniform.DefaultPointer, pal)

	s := &session{
		renderer: renderer,
		scene:    render.NewScene(),
		camera:   camera,
		uniforms: &set,
	}
	s.mesh = &render.Mesh{
		Geometry: geometry,
		Material: &render.ShaderMaterial{
			Program:     program,
			Uniforms:    s.uniforms,
			Transparent: true,
			DepthWrite:  false,
		},
	}
	s.scene.Add(s.mesh)
	s.loop = loop.NewController(e.opts.Scheduler, e.opts.Clock, s, e.cfg.Animation)

	e.sess = s
	e.state = Active
	log.Printf("[Effect] Mounted %.0fx%.0f (colors=%q, animate=%v)",
		rect.Width, rect.Height, palette.ModeName(e.cfg.RaysColor.Spec), e.cfg.Animation.Animate)

	s.loop.Start()
	s.unsubscribe = append(s.unsubscribe,
		e.host.OnResize(e.HandleResize),
		e.host.OnPointerMove(e.HandlePointerMove),
	)
	return nil
}

// Unmount cancels the pending frame, then releases the renderer, geometry
// and material, then unsubscribes from the host. It is safe before Mount,
// before any frame, and more than once.
func (e *Effect) Unmount() {
	if s := e.sess; s != nil {
		s.loop.Stop()
		s.release()
		e.sess = nil
		log.Printf("[Effect] Unmounted")
	}
	e.state = Disposed
}

// SetAnimate switches the animation on or off without rebuilding the session.
func (e *Effect) SetAnimate(on bool) {
	e.cfg.Animation.Animate = on
	if e.sess == nil {
		return
	}
	e.sess.loop.SetAnimate(on)
}

// State returns the lifecycle stage.
func (e *Effect) State() State {
	return e.state
}

// Config returns the configuration the effect was built with,
// including any later SetAnimate.
func (e *Effect) Config() config.Effect {
	return e.cfg
}

// Uniforms returns a copy of the live uniform values.
func (e *Effect) Uniforms() (uniform.Set, bool) {
	if e.sess == nil {
		return uniform.Set{}, false
	}
	return *e.sess.uniforms, true
}

// Renderer returns the session's renderer while mounted.
func (e *Effect) Renderer() (render.Renderer, bool) {
	if e.sess == nil {
		return nil, false
	}
	return e.sess.renderer, true
}

// Loop returns the animation state, or Stopped when not mounted.
func (e *Effect) Loop() loop.State {
	if e.sess == nil {
		return loop.Stopped
	}
	return e.sess.loop.State()
}
