// Package game hosts the god rays effect in an ebiten window: it reports the
// window as the effect's container, turns layout changes and cursor motion
// into resize and pointer events, and flushes the frame queue once per tick.
package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/iburimskiy/godrays/internal/config"
	"github.com/iburimskiy/godrays/internal/effect"
	"github.com/iburimskiy/godrays/internal/loop"
	"github.com/iburimskiy/godrays/internal/palette"
	"github.com/iburimskiy/godrays/internal/render"
	"github.com/iburimskiy/godrays/internal/render/kage"
	"github.com/iburimskiy/godrays/internal/settings"
)

// Game implements ebiten.Game and effect.Host.
type Game struct {
	cfg    config.Effect
	effect *effect.Effect
	device *kage.Device
	frames *loop.FrameQueue
	clock  loop.Clock
	prefs  *settings.Manager

	// container in logical pixels, from Layout
	width, height int
	resized       bool
	// device pixels per logical pixel
	ratio float64

	// cursor, for move detection
	cursorX, cursorY int
	cursorSeen       bool

	nextHandler     int
	resizeHandlers  map[int]func()
	pointerHandlers map[int]func(x, y float64)

	background color.Color
	radius     float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

// New creates the window host for cfg. prefs may wrap a nil store.
func New(cfg config.Effect, prefs *settings.Manager) *Game {
	g := &Game{
		device:          &kage.Device{PixelRatio: 1},
		frames:          loop.NewFrameQueue(),
		clock:           loop.NewRealClock(),
		prefs:           prefs,
		resizeHandlers:  map[int]func(){},
		pointerHandlers: map[int]func(x, y float64){},
		prevKey:         map[ebiten.Key]bool{},
		ratio:           1,
	}
	g.apply(cfg)
	return g
}

// apply installs cfg and creates a new, not yet mounted, effect for it.
func (g *Game) apply(cfg config.Effect) {
	g.cfg = cfg
	g.background = backgroundColor(cfg.BackgroundColor)
	g.radius = cfg.RadiusPixels()
	applyStyle(cfg.Style)

	g.effect = effect.New(cfg, g, effect.Options{
		Device:    g.device,
		Shader:    kage.GodRays(),
		Scheduler: g.frames,
		Clock:     g.clock,
	})
}

// Reload tears down the running effect and builds a new one from cfg.
// It is mounted on the next Update.
func (g *Game) Reload(cfg config.Effect) {
	g.effect.Unmount()
	g.apply(cfg)
	log.Printf("[Game] Effect reloaded")
}

// Close releases the effect. RunGame can return on a window close
// without Update ever seeing a quit key.
func (g *Game) Close() {
	g.effect.Unmount()
}

func applyStyle(style map[string]string) {
	for k, v := range style {
		switch k {
		case "title":
			ebiten.SetWindowTitle(v)
		default:
			log.Printf("[Game] Style %q=%q ignored", k, v)
		}
	}
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if g.effect.State() == effect.Idle && g.Drawable() {
		if err := g.effect.Mount(); err != nil {
			return fmt.Errorf("failed to mount effect: %w", err)
		}
	}

	if g.resized {
		g.resized = false
		for _, fn := range g.resizeHandlers {
			fn()
		}
	}

	x, y := ebiten.CursorPosition()
	if !g.cursorSeen || x != g.cursorX || y != g.cursorY {
		moved := g.cursorSeen
		g.cursorX, g.cursorY, g.cursorSeen = x, y, true
		// the first reading is where the cursor already was, not a move
		if moved {
			lx, ly := float64(x)/g.ratio, float64(y)/g.ratio
			for _, fn := range g.pointerHandlers {
				fn(lx, ly)
			}
		}
	}

	if justPressed(ebiten.KeySpace) {
		g.toggleAnimation()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openConfigDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyC) {
		if err := g.pickColorDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.effect.Unmount()
		return ebiten.Termination
	}

	g.frames.Flush()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	if kr := g.surface(); kr != nil && kr.Image() != nil {
		drawSurface(screen, kr.Image(), g.radius*kr.PixelRatio())
	}

	status := "Suspended"
	if g.effect.Loop() == loop.Running {
		status = "Running"
	}
	if u, ok := g.effect.Uniforms(); ok {
		status += " " + formatClock(u.Time)
	}
	if mode := palette.ModeName(g.cfg.RaysColor.Spec); mode != "" {
		status += " | colors: " + mode
	}
	status += " | Space: animate, O: open config, C: ray color"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout keeps the container in logical pixels and renders the screen at
// the monitor's scale factor, capped at render.MaxPixelRatio.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := 1.0
	if m := ebiten.Monitor(); m != nil {
		ratio = render.PixelRatio(m.DeviceScaleFactor())
	}
	if ratio != g.ratio {
		g.ratio = ratio
		g.device.PixelRatio = ratio
		if kr := g.surface(); kr != nil {
			kr.SetPixelRatio(ratio)
		}
	}

	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return render.DeviceSize(outsideWidth, outsideHeight, g.ratio)
}

// surface is the mounted effect's ebiten renderer, or nil.
func (g *Game) surface() *kage.Renderer {
	r, ok := g.effect.Renderer()
	if !ok {
		return nil
	}
	kr, _ := r.(*kage.Renderer)
	return kr
}

func (g *Game) toggleAnimation() {
	on := g.effect.Loop() != loop.Running
	g.effect.SetAnimate(on)
	g.cfg.Animation.Animate = on

	g.prefs.SetAnimate(on)
	g.prefs.SetSpeed(g.cfg.Animation.Speed)
	if err := g.prefs.Save(); err != nil {
		g.lastErr = err
	}
}

// Container implements effect.Host. The effect fills the whole window.
func (g *Game) Container() (effect.Rect, bool) {
	if g.width <= 0 || g.height <= 0 {
		return effect.Rect{}, false
	}
	return effect.Rect{Width: float64(g.width), Height: float64(g.height)}, true
}

// Drawable implements effect.Host. Surfaces can be allocated once the window has a layout.
func (g *Game) Drawable() bool {
	return g.width > 0 && g.height > 0
}

// OnResize implements effect.Host.
func (g *Game) OnResize(fn func()) func() {
	g.nextHandler++
	id := g.nextHandler
	g.resizeHandlers[id] = fn
	return func() { delete(g.resizeHandlers, id) }
}

// OnPointerMove implements effect.Host.
func (g *Game) OnPointerMove(fn func(x, y float64)) func() {
	g.nextHandler++
	id := g.nextHandler
	g.pointerHandlers[id] = fn
	return func() { delete(g.pointerHandlers, id) }
}
