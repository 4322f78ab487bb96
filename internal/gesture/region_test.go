package gesture

import "testing"

func newRegion(bus *Bus) (*Region, *Node) {
	root := &Node{Kind: KindRegion, ID: "item"}
	return &Region{
		Drag:   NewDrag(bus, Position{}, nil),
		Resize: NewResize(bus, Dimensions{Width: 300, Height: 200}),
	}, root
}

func TestRegion_HandlePressNeverReachesDrag(t *testing.T) {
	bus := NewBus()
	reg, root := newRegion(bus)

	for _, c := range Corners {
		ev := Event{Pos: Position{X: 10, Y: 10}, Target: HandleNode(c, root)}
		if !reg.Press(ev) {
			t.Fatalf("%s: expected handle press to be consumed", c)
		}
		if reg.Active() != GestureResize {
			t.Fatalf("%s: expected resize, got %s", c, reg.Active())
		}
		if reg.Drag.Active() {
			t.Fatalf("%s: drag started alongside resize", c)
		}
		if reg.Resize.State().Handle != c {
			t.Errorf("%s: expected handle %s, got %s", c, c, reg.Resize.State().Handle)
		}
		bus.Release(ev)
	}
}

func TestRegion_BodyPressDrags(t *testing.T) {
	bus := NewBus()
	reg, root := newRegion(bus)
	reg.Press(Event{Pos: Position{X: 5, Y: 5}, Target: &Node{Parent: root}})
	if reg.Active() != GestureDrag {
		t.Fatalf("Expected drag, got %s", reg.Active())
	}
	bus.Move(Event{Pos: Position{X: 15, Y: 25}})
	if reg.Drag.Position() != (Position{X: 10, Y: 20}) {
		t.Errorf("Expected (10,20), got %v", reg.Drag.Position())
	}
	if reg.Resize.Dimensions() != (Dimensions{Width: 300, Height: 200}) {
		t.Errorf("Expected dragging to leave the size alone")
	}
}

func TestRegion_PressSwallowedWhileActive(t *testing.T) {
	bus := NewBus()
	reg, root := newRegion(bus)
	reg.Press(Event{Target: &Node{Parent: root}})
	if !reg.Press(Event{Target: HandleNode(SE, root)}) {
		t.Errorf("Expected press during a drag to be swallowed")
	}
	if reg.Resize.Active() {
		t.Errorf("Expected resize to stay idle while dragging")
	}
	if bus.Len() != 1 {
		t.Errorf("Expected a single listener, got %d", bus.Len())
	}
}

func TestRegion_ButtonPressPassesThrough(t *testing.T) {
	bus := NewBus()
	reg, root := newRegion(bus)
	btn := &Node{Kind: KindButton, ID: "remove", Parent: &Node{Parent: root}}
	if reg.Press(Event{Target: btn}) {
		t.Errorf("Expected button press to pass through")
	}
	if reg.Active() != GestureNone {
		t.Errorf("Expected no gesture, got %s", reg.Active())
	}
}

func TestRegion_HandleWithoutResizeIsIgnored(t *testing.T) {
	bus := NewBus()
	root := &Node{Kind: KindRegion}
	reg := &Region{Drag: NewDrag(bus, Position{}, nil)}
	if reg.Press(Event{Target: HandleNode(NE, root)}) {
		t.Errorf("Expected handle press on a fixed-size region to pass through")
	}
	if reg.Active() != GestureNone {
		t.Errorf("Expected no gesture, got %s", reg.Active())
	}
}

func TestRegion_CloseReleasesListeners(t *testing.T) {
	bus := NewBus()
	reg, root := newRegion(bus)
	reg.Press(Event{Target: HandleNode(SW, root)})
	reg.Close()
	if bus.Len() != 0 || reg.Active() != GestureNone {
		t.Errorf("Expected close to end everything")
	}
}

func TestBus_SubscriptionCloseIsIdempotent(t *testing.T) {
	bus := NewBus()
	d := NewDrag(bus, Position{}, nil)
	s1 := bus.Subscribe(d)
	s2 := bus.Subscribe(d)
	s1.Close()
	s1.Close()
	if bus.Len() != 1 {
		t.Fatalf("Expected one listener left, got %d", bus.Len())
	}
	if !s2.Active() || s1.Active() {
		t.Errorf("Expected only the closed subscription to be inactive")
	}
	var nilSub *Subscription
	nilSub.Close()
}

func TestCoalescer_TakeAfterCancel(t *testing.T) {
	var c Coalescer
	tok, first := c.Offer(Position{X: 1})
	if !first {
		t.Fatalf("Expected first offer to request a frame")
	}
	if _, again := c.Offer(Position{X: 2}); again {
		t.Errorf("Expected second offer to reuse the outstanding frame")
	}
	c.Cancel()
	if _, ok := c.Take(tok); ok {
		t.Errorf("Expected cancelled frame to yield nothing")
	}
	tok, _ = c.Offer(Position{X: 3})
	p, ok := c.Take(tok)
	if !ok || p.X != 3 {
		t.Errorf("Expected fresh frame to deliver (3,0), got %v %v", p, ok)
	}
}
