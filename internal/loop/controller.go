package loop

import (
	"log"

	"github.com/iburimskiy/godrays/internal/config"
)

// State of the animation loop.
type State int

const (
	Running State = iota
	Suspended
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Suspended:
		return "suspended"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Target is what the loop animates: it takes the shader time and draws one frame.
type Target interface {
	// Ready reports whether every resource a draw needs is live.
	Ready() bool
	SetTime(seconds float64)
	Render()
}

// Controller advances shader time and issues one draw per scheduled frame.
// It is not safe for concurrent use; everything runs on the host's frame thread.
type Controller struct {
	sched  Scheduler
	clock  Clock
	target Target
	speed  float64

	state   State
	started bool
	frame   FrameID
	time    float64
}

// NewController creates a loop that is Running when animate is set, Suspended otherwise.
func NewController(sched Scheduler, clock Clock, target Target, anim config.Animation) *Controller {
	c := &Controller{
		sched:  sched,
		clock:  clock,
		target: target,
		speed:  anim.Speed,
		state:  Running,
	}
	if !anim.Animate {
		c.state = Suspended
	}
	return c
}

// Start draws the first frame and, when Running, schedules the next one.
// Calling Start again, or after Stop, does nothing.
func (c *Controller) Start() {
	if c.started || c.state == Stopped {
		return
	}
	c.started = true

	if !c.target.Ready() {
		return
	}
	c.render()
	if c.state == Running {
		c.schedule()
	}
}

// SetAnimate moves between Running and Suspended. Enabling restarts the
// frame chain if it went idle; disabling cancels the pending frame.
func (c *Controller) SetAnimate(on bool) {
	if c.state == Stopped {
		return
	}

	if !on {
		if c.state == Running {
			log.Printf("[Loop] Animation suspended at t=%.2fs", c.time)
		}
		c.state = Suspended
		c.cancel()
		return
	}

	if c.state == Suspended {
		log.Printf("[Loop] Animation resumed")
	}
	c.state = Running
	if c.started {
		c.schedule()
	}
}

// Stop cancels any pending frame. The controller cannot be restarted.
func (c *Controller) Stop() {
	c.cancel()
	c.state = Stopped
}

// State returns the current loop state.
func (c *Controller) State() State {
	return c.state
}

// Pending reports whether a frame is scheduled.
func (c *Controller) Pending() bool {
	return c.frame != 0
}

// Time returns the shader time written by the last frame.
func (c *Controller) Time() float64 {
	return c.time
}

func (c *Controller) tick() {
	c.frame = 0
	if c.state != Running || !c.target.Ready() {
		return
	}
	c.render()
	c.schedule()
}

func (c *Controller) render() {
	c.time = c.clock.Seconds() * c.speed / config.DefaultSpeed
	c.target.SetTime(c.time)
	c.target.Render()
}

func (c *Controller) schedule() {
	if c.frame != 0 {
		return
	}
	c.frame = c.sched.RequestFrame(c.tick)
}

func (c *Controller) cancel() {
	if c.frame == 0 {
		return
	}
	c.sched.CancelFrame(c.frame)
	c.frame = 0
}
