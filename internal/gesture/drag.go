package gesture

// DragState is the bookkeeping of one drag gesture.
type DragState struct {
	Active      bool
	LastPointer Position
}

// Drag turns a press/move/release sequence into a cumulative translation of
// the wrapped region.
type Drag struct {
	state    DragState
	position Position
	exclude  ExcludeFunc
	bus      *Bus
	sub      *Subscription
}

// NewDrag creates a drag controller starting at initial. A nil exclude uses
// DefaultExclude.
func NewDrag(bus *Bus, initial Position, exclude ExcludeFunc) *Drag {
	if exclude == nil {
		exclude = DefaultExclude
	}
	return &Drag{
		position: initial,
		exclude:  exclude,
		bus:      bus,
	}
}

// Press starts a drag unless the target sits inside an excluded control.
// It returns true when the press was consumed; the host should then
// suppress its default handling of the event.
func (d *Drag) Press(ev Event) bool {
	if d.exclude(ev.Target) {
		return false
	}
	d.state = DragState{Active: true, LastPointer: ev.Pos}
	if !d.sub.Active() {
		d.sub = d.bus.Subscribe(d)
	}
	return true
}

// Move applies the delta since the last seen pointer position.
func (d *Drag) Move(ev Event) {
	if !d.state.Active {
		return
	}
	d.position = d.position.Add(ev.Pos.Sub(d.state.LastPointer))
	d.state.LastPointer = ev.Pos
}

// Release ends the gesture. The position is kept until the next drag.
func (d *Drag) Release(Event) {
	if !d.state.Active {
		return
	}
	d.state = DragState{}
	d.sub.Close()
	d.sub = nil
}

// Close tears the controller down, dropping an in-flight gesture.
func (d *Drag) Close() {
	d.state = DragState{}
	d.sub.Close()
	d.sub = nil
}

// Position is the translation the renderer applies to the region.
func (d *Drag) Position() Position {
	return d.position
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.state.Active
}

// State returns a copy of the gesture bookkeeping.
func (d *Drag) State() DragState {
	return d.state
}
