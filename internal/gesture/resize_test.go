package gesture

import (
	"math"
	"math/rand"
	"testing"
)

type frameRecorder struct {
	tokens []uint64
}

func (f *frameRecorder) RequestFrame(token uint64) {
	f.tokens = append(f.tokens, token)
}

func TestResize_SouthEastRespectsMinimum(t *testing.T) {
	bus := NewBus()
	r := NewResize(bus, Dimensions{Width: 400, Height: 300})
	r.Press(at(0, 0), SE)

	bus.Move(at(50, -250))
	if got := r.Dimensions(); got != (Dimensions{Width: 400, Height: 300}) {
		t.Errorf("Expected undersized candidate to be dropped, got %v", got)
	}

	bus.Move(at(50, 20))
	if got := r.Dimensions(); got != (Dimensions{Width: 450, Height: 320}) {
		t.Errorf("Expected 450x320, got %v", got)
	}
}

func TestResize_LockedRatio(t *testing.T) {
	bus := NewBus()
	r := NewResize(bus, Dimensions{Width: 400, Height: 200}, WithAspectRatio(2))
	r.Press(at(400, 200), SE)
	bus.Move(at(300, 260))

	got := r.Dimensions()
	if got.Width != 300 || got.Height != 150 {
		t.Errorf("Expected 300x150, got %v", got)
	}
}

func TestResize_Corners(t *testing.T) {
	tests := []struct {
		corner Corner
		want   Dimensions
	}{
		{SE, Dimensions{Width: 420, Height: 330}},
		{SW, Dimensions{Width: 380, Height: 330}},
		{NE, Dimensions{Width: 420, Height: 270}},
		{NW, Dimensions{Width: 380, Height: 270}},
	}
	for _, tt := range tests {
		t.Run(tt.corner.String(), func(t *testing.T) {
			bus := NewBus()
			r := NewResize(bus, Dimensions{Width: 400, Height: 300})
			r.Press(at(100, 100), tt.corner)
			bus.Move(at(110, 110))
			bus.Move(at(120, 130))
			if got := r.Dimensions(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestResize_RandomGesturesStayValid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 100; run++ {
		ratio := 0.0
		if run%2 == 1 {
			ratio = 0.5 + rng.Float64()*2
		}
		bus := NewBus()
		start := FitAspect(Dimensions{Width: 200 + float64(rng.Intn(300)), Height: 150 + float64(rng.Intn(300))}, ratio)
		r := NewResize(bus, start, WithAspectRatio(ratio))
		r.Press(at(0, 0), Corners[rng.Intn(len(Corners))])

		for i := 0; i < 30; i++ {
			bus.Move(at(float64(rng.Intn(800)-400), float64(rng.Intn(800)-400)))
			d := r.Dimensions()
			if d.Width < MinSize || d.Height < MinSize {
				t.Fatalf("run %d: committed %v below minimum", run, d)
			}
			if ratio > 0 && math.Abs(d.Height-d.Width/ratio) > 1e-9 {
				t.Fatalf("run %d: committed %v breaks ratio %g", run, d, ratio)
			}
		}
	}
}

func TestResize_ReleaseReportsFinalDimensions(t *testing.T) {
	bus := NewBus()
	var reports []Dimensions
	r := NewResize(bus, Dimensions{Width: 200, Height: 200}, OnResize(func(d Dimensions) {
		reports = append(reports, d)
	}))

	r.Press(at(0, 0), SE)
	bus.Move(at(30, 40))
	bus.Release(at(30, 40))

	if len(reports) != 1 || reports[0] != (Dimensions{Width: 230, Height: 240}) {
		t.Fatalf("Expected one report of 230x240, got %v", reports)
	}
	if r.Active() || bus.Len() != 0 {
		t.Errorf("Expected gesture to end and listener to be gone")
	}

	bus.Release(at(0, 0))
	if len(reports) != 1 {
		t.Errorf("Expected stale release to be ignored, got %d reports", len(reports))
	}
}

func TestResize_CloseDoesNotReport(t *testing.T) {
	bus := NewBus()
	reported := false
	r := NewResize(bus, Dimensions{Width: 200, Height: 200}, OnResize(func(Dimensions) {
		reported = true
	}))
	r.Press(at(0, 0), SE)
	bus.Move(at(10, 10))
	r.Close()
	bus.Release(at(10, 10))

	if reported {
		t.Errorf("Expected teardown to skip the final report")
	}
	if bus.Len() != 0 {
		t.Errorf("Expected teardown to deregister")
	}
}

func TestResize_RatioLoadedMidGesture(t *testing.T) {
	bus := NewBus()
	r := NewResize(bus, Dimensions{Width: 300, Height: 300})
	r.Press(at(0, 0), SE)

	r.SetAspectRatio(3)
	bus.Move(at(20, 10))
	if got := r.Dimensions(); got != (Dimensions{Width: 320, Height: 310}) {
		t.Errorf("Expected the running gesture to stay free-form, got %v", got)
	}
	bus.Release(at(20, 10))

	r.Press(at(0, 0), SE)
	bus.Move(at(10, 0))
	if got := r.Dimensions(); got.Height != got.Width/3 {
		t.Errorf("Expected next gesture to honour ratio 3, got %v", got)
	}
}

func TestResize_CoalescesMovesPerFrame(t *testing.T) {
	bus := NewBus()
	frames := &frameRecorder{}
	r := NewResize(bus, Dimensions{Width: 200, Height: 200}, WithScheduler(frames))
	r.Press(at(0, 0), SE)

	bus.Move(at(10, 10))
	bus.Move(at(20, 20))
	bus.Move(at(30, 30))
	if len(frames.tokens) != 1 {
		t.Fatalf("Expected one frame request, got %d", len(frames.tokens))
	}
	if got := r.Dimensions(); got != (Dimensions{Width: 200, Height: 200}) {
		t.Errorf("Expected no commit before the frame, got %v", got)
	}

	r.Frame(frames.tokens[0])
	if got := r.Dimensions(); got != (Dimensions{Width: 230, Height: 230}) {
		t.Errorf("Expected the latest move to win, got %v", got)
	}

	bus.Move(at(40, 40))
	if len(frames.tokens) != 2 {
		t.Fatalf("Expected a new frame request after flush, got %d", len(frames.tokens))
	}
}

func TestResize_ReleaseCancelsPendingFrame(t *testing.T) {
	bus := NewBus()
	frames := &frameRecorder{}
	var final Dimensions
	r := NewResize(bus, Dimensions{Width: 200, Height: 200},
		WithScheduler(frames),
		OnResize(func(d Dimensions) { final = d }))

	r.Press(at(0, 0), SE)
	bus.Move(at(50, 50))
	bus.Release(at(50, 50))
	if r.PendingFrame() {
		t.Errorf("Expected release to drop the pending commit")
	}
	if final != (Dimensions{Width: 200, Height: 200}) {
		t.Errorf("Expected the last committed size 200x200, got %v", final)
	}

	r.Press(at(0, 0), SE)
	r.Frame(frames.tokens[0])
	if got := r.Dimensions(); got != (Dimensions{Width: 200, Height: 200}) {
		t.Errorf("Expected stale frame to be ignored, got %v", got)
	}
}

func TestResize_ReleasePositionIsNotApplied(t *testing.T) {
	bus := NewBus()
	var reports []Dimensions
	r := NewResize(bus, Dimensions{Width: 400, Height: 300}, OnResize(func(d Dimensions) {
		reports = append(reports, d)
	}))

	r.Press(at(0, 0), SE)
	bus.Move(at(50, 20))
	committed := r.Dimensions()
	bus.Release(at(200, 200))

	if committed != (Dimensions{Width: 450, Height: 320}) {
		t.Fatalf("Expected 450x320 after the move, got %v", committed)
	}
	if len(reports) != 1 || reports[0] != committed {
		t.Errorf("Expected one report of %v, got %v", committed, reports)
	}
	if got := r.Dimensions(); got != committed {
		t.Errorf("Expected release to keep %v, got %v", committed, got)
	}
}

func TestResize_SetDimensionsIgnoredWhileActive(t *testing.T) {
	r := NewResize(NewBus(), Dimensions{Width: 50, Height: 400})
	if got := r.Dimensions(); got.Width != MinSize {
		t.Errorf("Expected initial width raised to minimum, got %v", got)
	}
	r.Press(at(0, 0), NW)
	r.SetDimensions(Dimensions{Width: 999, Height: 999})
	if got := r.Dimensions(); got.Width == 999 {
		t.Errorf("Expected size to be locked during a gesture")
	}
}

func TestFitAspect(t *testing.T) {
	tests := []struct {
		name  string
		in    Dimensions
		ratio float64
		want  Dimensions
	}{
		{"keeps width", Dimensions{Width: 400, Height: 300}, 2, Dimensions{Width: 400, Height: 200}},
		{"grows short side", Dimensions{Width: 150, Height: 300}, 2, Dimensions{Width: 200, Height: 100}},
		{"grows narrow side", Dimensions{Width: 60, Height: 300}, 0.5, Dimensions{Width: 100, Height: 200}},
		{"no ratio", Dimensions{Width: 400, Height: 300}, 0, Dimensions{Width: 400, Height: 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitAspect(tt.in, tt.ratio); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
