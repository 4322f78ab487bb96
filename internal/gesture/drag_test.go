package gesture

import (
	"math/rand"
	"testing"
)

func at(x, y float64) Event {
	return Event{Pos: Position{X: x, Y: y}}
}

func TestDrag_PressMoveRelease(t *testing.T) {
	bus := NewBus()
	d := NewDrag(bus, Position{}, nil)

	if !d.Press(at(100, 100)) {
		t.Fatalf("Expected press on plain surface to start a drag")
	}
	if !d.Active() {
		t.Fatalf("Expected drag to be active after press")
	}

	bus.Move(at(130, 115))
	if got := d.Position(); got != (Position{X: 30, Y: 15}) {
		t.Errorf("Expected (30,15), got %v", got)
	}

	bus.Move(at(125, 120))
	if got := d.Position(); got != (Position{X: 25, Y: 20}) {
		t.Errorf("Expected (25,20), got %v", got)
	}

	bus.Release(at(125, 120))
	if d.Active() {
		t.Errorf("Expected drag to be inactive after release")
	}
	if got := d.Position(); got != (Position{X: 25, Y: 20}) {
		t.Errorf("Expected position to persist at (25,20), got %v", got)
	}
	if bus.Len() != 0 {
		t.Errorf("Expected listener to be deregistered on release, %d left", bus.Len())
	}
}

func TestDrag_IncrementalSum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 50; run++ {
		bus := NewBus()
		start := Position{X: float64(rng.Intn(500)), Y: float64(rng.Intn(500))}
		d := NewDrag(bus, start, nil)

		ptr := Position{X: float64(rng.Intn(800)), Y: float64(rng.Intn(600))}
		d.Press(Event{Pos: ptr})

		var sum Position
		moves := rng.Intn(40)
		for i := 0; i < moves; i++ {
			next := Position{X: float64(rng.Intn(800)), Y: float64(rng.Intn(600))}
			sum = sum.Add(next.Sub(ptr))
			ptr = next
			bus.Move(Event{Pos: ptr})
		}
		bus.Release(Event{Pos: ptr})

		if want := start.Add(sum); d.Position() != want {
			t.Fatalf("run %d: expected %v after %d moves, got %v", run, want, moves, d.Position())
		}
	}
}

func TestDrag_ZeroMovePress(t *testing.T) {
	bus := NewBus()
	d := NewDrag(bus, Position{X: 5, Y: 6}, nil)
	d.Press(at(10, 10))
	bus.Release(at(10, 10))
	if got := d.Position(); got != (Position{X: 5, Y: 6}) {
		t.Errorf("Expected unchanged position, got %v", got)
	}
}

func TestDrag_ExcludedControls(t *testing.T) {
	root := &Node{Kind: KindRegion}
	body := &Node{Parent: root}
	for _, kind := range []Kind{KindButton, KindInput, KindTextarea, KindSelect, KindLink} {
		bus := NewBus()
		d := NewDrag(bus, Position{}, nil)

		direct := &Node{Kind: kind, Parent: body}
		if d.Press(Event{Pos: Position{X: 1, Y: 1}, Target: direct}) {
			t.Errorf("%s: expected press to pass through", kind)
		}
		nested := &Node{ID: "label", Parent: direct}
		if d.Press(Event{Pos: Position{X: 1, Y: 1}, Target: nested}) {
			t.Errorf("%s: expected press on a descendant to pass through", kind)
		}
		if d.Active() || bus.Len() != 0 {
			t.Errorf("%s: expected no drag and no listener", kind)
		}
	}

	d := NewDrag(NewBus(), Position{}, nil)
	if d.Press(Event{Target: HandleNode(SE, root)}) {
		t.Errorf("Expected press on a resize handle to pass through")
	}
}

func TestDrag_ExclusionStopsAtRegion(t *testing.T) {
	// A button wrapping the whole region is outside the region's concern.
	outer := &Node{Kind: KindButton}
	root := &Node{Kind: KindRegion, Parent: outer}
	d := NewDrag(NewBus(), Position{}, nil)
	if !d.Press(Event{Target: &Node{Parent: root}}) {
		t.Errorf("Expected ancestors above the region to be ignored")
	}
}

func TestDrag_CustomExclude(t *testing.T) {
	d := NewDrag(NewBus(), Position{}, ExcludeKinds(KindInput))
	if !d.Press(Event{Target: &Node{Kind: KindButton}}) {
		t.Errorf("Expected button to be draggable when only inputs are excluded")
	}
}

func TestDrag_StaleEvents(t *testing.T) {
	bus := NewBus()
	d := NewDrag(bus, Position{}, nil)

	d.Move(at(50, 50))
	d.Release(at(50, 50))
	if d.Position() != (Position{}) {
		t.Errorf("Expected move without press to be ignored, got %v", d.Position())
	}

	d.Press(at(0, 0))
	d.Close()
	bus.Move(at(40, 40))
	d.Move(at(40, 40))
	if d.Position() != (Position{}) || d.Active() {
		t.Errorf("Expected events after teardown to be ignored")
	}
	if bus.Len() != 0 {
		t.Errorf("Expected teardown to deregister, %d left", bus.Len())
	}
}

func TestDrag_RepressKeepsSingleListener(t *testing.T) {
	bus := NewBus()
	d := NewDrag(bus, Position{}, nil)
	d.Press(at(0, 0))
	d.Press(at(10, 10))
	if bus.Len() != 1 {
		t.Fatalf("Expected one listener, got %d", bus.Len())
	}
	bus.Move(at(15, 10))
	if d.Position() != (Position{X: 5}) {
		t.Errorf("Expected the most recent press to anchor the drag, got %v", d.Position())
	}
}
