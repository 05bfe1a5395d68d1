// Package loop drives the per-frame shader update: a frame-callback queue
// flushed by the host once per tick, and the animation state machine on top of it.
package loop

import (
	"sort"
	"time"
)

// FrameID identifies a requested frame callback. The zero value is never issued.
type FrameID uint64

// Scheduler runs callbacks on the host's next frame.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a single-threaded Scheduler. The host calls Flush once per frame.
type FrameQueue struct {
	next    FrameID
	pending map[FrameID]func()
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: map[FrameID]func(){}}
}

// RequestFrame queues fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending[q.next] = fn
	return q.next
}

// CancelFrame drops a queued callback. Unknown or already-run ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.pending, id)
}

// Pending reports how many callbacks are waiting.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Flush runs the callbacks queued before the call, in request order.
// Callbacks requested while flushing wait for the next Flush.
func (q *FrameQueue) Flush() {
	if len(q.pending) == 0 {
		return
	}

	ids := make([]FrameID, 0, len(q.pending))
	for id := range q.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		fn, ok := q.pending[id]
		if !ok {
			// cancelled by an earlier callback in this flush
			continue
		}
		delete(q.pending, id)
		fn()
	}
}

// Clock reports elapsed real time in seconds.
type Clock interface {
	Seconds() float64
}

// RealClock measures time since it was created.
type RealClock struct {
	start time.Time
}

// NewRealClock starts a clock at the current instant.
func NewRealClock() *RealClock {
	return &RealClock{start: time.Now()}
}

// Seconds implements Clock.
func (c *RealClock) Seconds() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock is a Clock advanced by hand, for tests and offline rendering.
type ManualClock struct {
	Now float64
}

// Seconds implements Clock.
func (c *ManualClock) Seconds() float64 {
	return c.Now
}

// Advance moves the clock forward by d seconds.
func (c *ManualClock) Advance(d float64) {
	c.Now += d
}
