package gesture

// Gesture names the interaction running on a region.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureDrag
	GestureResize
)

func (g Gesture) String() string {
	switch g {
	case GestureDrag:
		return "drag"
	case GestureResize:
		return "resize"
	}
	return "idle"
}

// Region routes presses between the resize handles and the drag surface of
// one item. Resize may be nil for items that only move.
type Region struct {
	Drag   *Drag
	Resize *Resize
}

// Press routes ev. Handle presses go to the resize controller and never
// reach the drag; everything else is offered to the drag controller. While a
// gesture runs, further presses are swallowed.
func (r *Region) Press(ev Event) bool {
	if r.Active() != GestureNone {
		return true
	}
	if h := ev.Target.Closest((*Node).IsHandle); h != nil {
		if r.Resize == nil {
			return false
		}
		return r.Resize.Press(ev, h.Corner)
	}
	return r.Drag.Press(ev)
}

// Active reports the running gesture.
func (r *Region) Active() Gesture {
	switch {
	case r.Resize != nil && r.Resize.Active():
		return GestureResize
	case r.Drag.Active():
		return GestureDrag
	}
	return GestureNone
}

// Close tears down both controllers without reporting.
func (r *Region) Close() {
	r.Drag.Close()
	if r.Resize != nil {
		r.Resize.Close()
	}
}
