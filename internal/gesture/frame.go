package gesture

// Scheduler asks the host to call back once on its next display refresh
// with the given token. A bubbletea host answers with a tea.Tick; a canvas
// loop can simply remember the token until its next frame.
type Scheduler interface {
	RequestFrame(token uint64)
}

// Coalescer holds at most one pending pointer position per gesture. Later
// offers within the same frame replace the pending value instead of
// queueing behind it.
type Coalescer struct {
	seq       uint64
	pending   Position
	has       bool
	scheduled bool
}

// Offer stores p as the pending position. It returns the frame token and
// true when no frame is outstanding yet, meaning the caller must request
// one.
func (c *Coalescer) Offer(p Position) (uint64, bool) {
	c.pending = p
	c.has = true
	if c.scheduled {
		return c.seq, false
	}
	c.scheduled = true
	return c.seq, true
}

// Take returns the pending position for a frame scheduled with token. A
// token issued before the last Cancel yields nothing.
func (c *Coalescer) Take(token uint64) (Position, bool) {
	if token != c.seq {
		return Position{}, false
	}
	c.scheduled = false
	if !c.has {
		return Position{}, false
	}
	p := c.pending
	c.has = false
	return p, true
}

// Pending reports whether a position is waiting for a frame.
func (c *Coalescer) Pending() bool {
	return c.has
}

// Cancel drops the pending position and invalidates any outstanding frame.
func (c *Coalescer) Cancel() {
	c.seq++
	c.has = false
	c.scheduled = false
	c.pending = Position{}
}
