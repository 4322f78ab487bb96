package gesture

// ResizeState is the bookkeeping of one resize gesture.
type ResizeState struct {
	Active          bool
	Handle          Corner
	StartPointer    Position
	StartDimensions Dimensions
}

// Resize turns a drag on one of four corner handles into new dimensions.
//
// Every move recomputes the size from the press point, since the corner
// opposite the handle stays anchored to the start rectangle. Candidates
// smaller than MinSize on either side are dropped rather than clamped.
type Resize struct {
	state ResizeState
	dims  Dimensions

	ratio        float64
	gestureRatio float64

	frames   Coalescer
	sched    Scheduler
	onResize func(Dimensions)

	bus *Bus
	sub *Subscription
}

// ResizeOption configures a Resize.
type ResizeOption func(*Resize)

// WithScheduler coalesces moves into one commit per frame requested from s.
// Without a scheduler every move commits synchronously.
func WithScheduler(s Scheduler) ResizeOption {
	return func(r *Resize) {
		r.sched = s
	}
}

// WithAspectRatio locks height to width/ratio from the first gesture on.
func WithAspectRatio(ratio float64) ResizeOption {
	return func(r *Resize) {
		r.SetAspectRatio(ratio)
	}
}

// OnResize registers the callback receiving the final dimensions of each
// completed gesture.
func OnResize(fn func(Dimensions)) ResizeOption {
	return func(r *Resize) {
		r.onResize = fn
	}
}

// NewResize creates a resize controller. Initial dimensions below MinSize
// are raised to it.
func NewResize(bus *Bus, dims Dimensions, opts ...ResizeOption) *Resize {
	r := &Resize{
		dims: dims.AtLeastMin(),
		bus:  bus,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Press starts a resize from corner. It always consumes the event so the
// press never reaches an enclosing drag surface.
func (r *Resize) Press(ev Event, corner Corner) bool {
	r.frames.Cancel()
	r.state = ResizeState{
		Active:          true,
		Handle:          corner,
		StartPointer:    ev.Pos,
		StartDimensions: r.dims,
	}
	r.gestureRatio = r.ratio
	if !r.sub.Active() {
		r.sub = r.bus.Subscribe(r)
	}
	return true
}

// Move records the pointer. With a scheduler the commit waits for Frame.
func (r *Resize) Move(ev Event) {
	if !r.state.Active {
		return
	}
	if r.sched == nil {
		r.apply(ev.Pos)
		return
	}
	if token, first := r.frames.Offer(ev.Pos); first {
		r.sched.RequestFrame(token)
	}
}

// Frame commits the pending move for a frame requested with token. Stale
// tokens are ignored.
func (r *Resize) Frame(token uint64) {
	if !r.state.Active {
		return
	}
	if p, ok := r.frames.Take(token); ok {
		r.apply(p)
	}
}

// Release drops any pending frame, ends the gesture and reports the
// dimensions committed so far. The release position itself is not applied.
func (r *Resize) Release(Event) {
	if !r.state.Active {
		return
	}
	r.frames.Cancel()
	r.state = ResizeState{}
	r.gestureRatio = 0
	r.sub.Close()
	r.sub = nil
	if r.onResize != nil {
		r.onResize(r.dims)
	}
}

// Close tears the controller down without reporting.
func (r *Resize) Close() {
	r.frames.Cancel()
	r.state = ResizeState{}
	r.gestureRatio = 0
	r.sub.Close()
	r.sub = nil
}

// Candidate computes the dimensions a pointer at p would produce, before the
// minimum size check.
func (r *Resize) Candidate(p Position) Dimensions {
	delta := p.Sub(r.state.StartPointer)
	start := r.state.StartDimensions

	d := Dimensions{Width: start.Width + delta.X, Height: start.Height + delta.Y}
	if r.state.Handle.west() {
		d.Width = start.Width - delta.X
	}
	if r.state.Handle.north() {
		d.Height = start.Height - delta.Y
	}
	if r.gestureRatio > 0 {
		d.Height = d.Width / r.gestureRatio
	}
	return d
}

func (r *Resize) apply(p Position) {
	if c := r.Candidate(p); c.Valid() {
		r.dims = c
	}
}

// SetAspectRatio sets the ratio used from the next gesture on. A gesture in
// progress keeps the ratio it started with. Non-positive values clear it.
func (r *Resize) SetAspectRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 0
	}
	r.ratio = ratio
}

// AspectRatio returns the configured ratio, if any.
func (r *Resize) AspectRatio() (float64, bool) {
	return r.ratio, r.ratio > 0
}

// SetDimensions replaces the current size while no gesture is active.
func (r *Resize) SetDimensions(d Dimensions) {
	if r.state.Active {
		return
	}
	r.dims = d.AtLeastMin()
}

// Dimensions returns the last committed size.
func (r *Resize) Dimensions() Dimensions {
	return r.dims
}

// Active reports whether a resize is in progress.
func (r *Resize) Active() bool {
	return r.state.Active
}

// State returns a copy of the gesture bookkeeping.
func (r *Resize) State() ResizeState {
	return r.state
}

// PendingFrame reports whether a coalesced move is waiting for a frame.
func (r *Resize) PendingFrame() bool {
	return r.frames.Pending()
}
