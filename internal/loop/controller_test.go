package loop

import (
	"testing"

	"github.com/iburimskiy/godrays/internal/config"
)

type fakeTarget struct {
	ready   bool
	times   []float64
	renders int
}

func (f *fakeTarget) Ready() bool { return f.ready }

func (f *fakeTarget) SetTime(t float64) { f.times = append(f.times, t) }

func (f *fakeTarget) Render() { f.renders++ }

func (f *fakeTarget) lastTime() float64 { return f.times[len(f.times)-1] }

func newTestLoop(anim config.Animation) (*Controller, *FrameQueue, *ManualClock, *fakeTarget) {
	q := NewFrameQueue()
	clock := &ManualClock{}
	target := &fakeTarget{ready: true}
	return NewController(q, clock, target, anim), q, clock, target
}

func TestFrameQueueFlushOrderAndDeferral(t *testing.T) {
	q := NewFrameQueue()
	var order []int
	q.RequestFrame(func() {
		order = append(order, 1)
		q.RequestFrame(func() { order = append(order, 3) })
	})
	q.RequestFrame(func() { order = append(order, 2) })

	q.Flush()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("first flush ran %v, want [1 2]", order)
	}
	if q.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", q.Pending())
	}
	q.Flush()
	if len(order) != 3 || order[2] != 3 {
		t.Errorf("second flush ran %v, want [1 2 3]", order)
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	id := q.RequestFrame(func() { ran = true })
	q.CancelFrame(id)
	q.CancelFrame(id)
	q.CancelFrame(12345)
	q.Flush()
	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestFrameQueueCancelDuringFlush(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	var second FrameID
	q.RequestFrame(func() { q.CancelFrame(second) })
	second = q.RequestFrame(func() { ran = true })
	q.Flush()
	if ran {
		t.Error("callback cancelled mid-flush still ran")
	}
}

func TestStartRendersAndSchedules(t *testing.T) {
	c, q, clock, target := newTestLoop(config.Animation{Animate: true, Speed: 10})
	clock.Now = 2

	c.Start()
	if target.renders != 1 || target.lastTime() != 2 {
		t.Fatalf("after Start: renders=%d times=%v", target.renders, target.times)
	}
	if !c.Pending() || q.Pending() != 1 {
		t.Fatal("Start should schedule the next frame")
	}

	clock.Advance(0.5)
	q.Flush()
	if target.renders != 2 || target.lastTime() != 2.5 {
		t.Errorf("after tick: renders=%d times=%v", target.renders, target.times)
	}
	if !c.Pending() {
		t.Error("tick should reschedule while running")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	c, q, _, target := newTestLoop(config.Animation{Animate: true, Speed: 10})
	c.Start()
	c.Start()
	if target.renders != 1 || q.Pending() != 1 {
		t.Errorf("double Start: renders=%d pending=%d", target.renders, q.Pending())
	}
}

func TestSpeedScalesTime(t *testing.T) {
	tests := []struct {
		speed float64
		want  float64
	}{
		{10, 4},
		{20, 8},
		{5, 2},
		{0, 0},
	}
	for _, tt := range tests {
		c, _, clock, target := newTestLoop(config.Animation{Animate: true, Speed: tt.speed})
		clock.Now = 4
		c.Start()
		if got := target.lastTime(); got != tt.want {
			t.Errorf("speed %v: time = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestTimeNonDecreasingWhileRunning(t *testing.T) {
	c, q, clock, target := newTestLoop(config.Animation{Animate: true, Speed: 10})
	c.Start()
	for i := 0; i < 10; i++ {
		clock.Advance(1.0 / 60.0)
		q.Flush()
	}
	for i := 1; i < len(target.times); i++ {
		if target.times[i] < target.times[i-1] {
			t.Fatalf("time went backwards: %v", target.times)
		}
	}
	if len(target.times) != 11 {
		t.Errorf("rendered %d frames, want 11", len(target.times))
	}
}

func TestInitiallyDisabledRendersOnce(t *testing.T) {
	c, q, _, target := newTestLoop(config.Animation{Animate: false, Speed: 10})
	c.Start()

	if target.renders != 1 {
		t.Errorf("renders = %d, want 1", target.renders)
	}
	if c.Pending() || q.Pending() != 0 {
		t.Error("disabled loop must not schedule a second frame")
	}
	if c.State() != Suspended {
		t.Errorf("State() = %v, want suspended", c.State())
	}
}

func TestDisableStopsTimeUpdates(t *testing.T) {
	c, q, clock, target := newTestLoop(config.Animation{Animate: true, Speed: 10})
	c.Start()

	c.SetAnimate(false)
	if c.Pending() {
		t.Error("disabling should cancel the pending frame")
	}
	clock.Advance(1)
	q.Flush()
	q.Flush()
	if len(target.times) != 1 {
		t.Errorf("time updated %d times after disable, want 1 total", len(target.times))
	}
}

func TestReEnableResumesWithoutRebuild(t *testing.T) {
	c, q, clock, target := newTestLoop(config.Animation{Animate: true, Speed: 10})
	c.Start()
	c.SetAnimate(false)
	q.Flush()

	c.SetAnimate(true)
	if !c.Pending() {
		t.Fatal("enable should restart the frame chain")
	}
	c.SetAnimate(true)
	if q.Pending() != 1 {
		t.Errorf("repeated enable queued %d frames, want 1", q.Pending())
	}

	clock.Advance(3)
	q.Flush()
	if target.renders != 2 || target.lastTime() != 3 {
		t.Errorf("after resume: renders=%d times=%v", target.renders, target.times)
	}
	if c.State() != Running {
		t.Errorf("State() = %v, want running", c.State())
	}
}

func TestEnableBeforeStartWaitsForStart(t *testing.T) {
	c, q, _, target := newTestLoop(config.Animation{Animate: false, Speed: 10})
	c.SetAnimate(true)
	if q.Pending() != 0 || target.renders != 0 {
		t.Fatal("SetAnimate before Start should not schedule or render")
	}
	c.Start()
	if target.renders != 1 || !c.Pending() {
		t.Errorf("Start after enable: renders=%d pending=%v", target.renders, c.Pending())
	}
}

func TestStopCancelsPendingFrame(t *testing.T) {
	c, q, _, target := newTestLoop(config.Animation{Animate: true, Speed: 10})
	c.Start()
	c.Stop()
	c.Stop()

	if q.Pending() != 0 || c.Pending() {
		t.Error("Stop left a frame scheduled")
	}
	q.Flush()
	c.SetAnimate(true)
	c.Start()
	if target.renders != 1 || q.Pending() != 0 {
		t.Errorf("stopped loop resumed: renders=%d pending=%d", target.renders, q.Pending())
	}
	if c.State() != Stopped {
		t.Errorf("State() = %v, want stopped", c.State())
	}
}

func TestStopBeforeStart(t *testing.T) {
	c, q, _, target := newTestLoop(config.Animation{Animate: true, Speed: 10})
	c.Stop()
	c.Start()
	if target.renders != 0 || q.Pending() != 0 {
		t.Errorf("renders=%d pending=%d, want 0/0", target.renders, q.Pending())
	}
}

func TestTickSkipsWhenTargetNotReady(t *testing.T) {
	c, q, _, target := newTestLoop(config.Animation{Animate: true, Speed: 10})
	c.Start()
	target.ready = false
	q.Flush()

	if target.renders != 1 {
		t.Errorf("renders = %d, want 1", target.renders)
	}
	if c.Pending() {
		t.Error("loop should go idle when resources are gone")
	}
}
