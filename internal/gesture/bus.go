package gesture

// Listener receives pointer motion and release for the gesture it belongs
// to.
type Listener interface {
	Move(ev Event)
	Release(ev Event)
}

// Bus is the single pointer stream. Controllers subscribe when a gesture
// starts and close their subscription when it ends, so only the active
// gesture sees move and release events.
type Bus struct {
	subs []*Subscription
}

// Subscription is the handle returned by Subscribe. Close is idempotent.
type Subscription struct {
	bus *Bus
	l   Listener
}

// NewBus creates an empty pointer bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers l until the returned subscription is closed.
func (b *Bus) Subscribe(l Listener) *Subscription {
	s := &Subscription{bus: b, l: l}
	b.subs = append(b.subs, s)
	return s
}

// Close deregisters the listener.
func (s *Subscription) Close() {
	if s == nil || s.bus == nil {
		return
	}
	b := s.bus
	s.bus = nil
	for i, cur := range b.subs {
		if cur == s {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Active reports whether the subscription is still registered.
func (s *Subscription) Active() bool {
	return s != nil && s.bus != nil
}

// Len returns the number of registered listeners.
func (b *Bus) Len() int {
	return len(b.subs)
}

// Move delivers a pointer move to every listener.
func (b *Bus) Move(ev Event) {
	for _, s := range b.snapshot() {
		if s.Active() {
			s.l.Move(ev)
		}
	}
}

// Release delivers a pointer release to every listener. Listeners normally
// close their subscription in response.
func (b *Bus) Release(ev Event) {
	for _, s := range b.snapshot() {
		if s.Active() {
			s.l.Release(ev)
		}
	}
}

func (b *Bus) snapshot() []*Subscription {
	if len(b.subs) == 0 {
		return nil
	}
	out := make([]*Subscription, len(b.subs))
	copy(out, b.subs)
	return out
}
