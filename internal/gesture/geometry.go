// Package gesture implements the pointer-driven drag and resize state
// machines shared by every movable item on the canvas.
//
// Nothing in this package knows about terminals: the host translates its own
// mouse events into Event values in logical pixels, routes presses through a
// Region and feeds motion and release through a Bus. All methods are meant to
// be called from the single UI goroutine; none of the types lock.
package gesture

import "fmt"

// MinSize is the smallest width or height, in logical pixels, a resizable
// element may be committed at.
const MinSize = 100

// Position is a point or an offset in logical pixels.
type Position struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset from q to p.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Dimensions is the rendered size of a resizable element.
type Dimensions struct {
	Width, Height float64
}

// Valid reports whether both sides are at least MinSize.
func (d Dimensions) Valid() bool {
	return d.Width >= MinSize && d.Height >= MinSize
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%g", d.Width, d.Height)
}

// AtLeastMin grows any side below MinSize up to MinSize.
func (d Dimensions) AtLeastMin() Dimensions {
	if d.Width < MinSize {
		d.Width = MinSize
	}
	if d.Height < MinSize {
		d.Height = MinSize
	}
	return d
}

// FitAspect derives a size with the given aspect ratio (width / height),
// keeping d.Width where possible and growing the result until both sides
// satisfy MinSize. A non-positive ratio returns d unchanged.
func FitAspect(d Dimensions, ratio float64) Dimensions {
	if ratio <= 0 {
		return d
	}
	out := Dimensions{Width: d.Width, Height: d.Width / ratio}
	if out.Height < MinSize {
		out.Height = MinSize
		out.Width = out.Height * ratio
	}
	if out.Width < MinSize {
		out.Width = MinSize
		out.Height = out.Width / ratio
	}
	return out
}

// Corner identifies one of the four resize handles.
type Corner int

const (
	NW Corner = iota
	NE
	SW
	SE
)

// Corners lists every handle in drawing order.
var Corners = []Corner{NW, NE, SW, SE}

func (c Corner) String() string {
	switch c {
	case NW:
		return "nw"
	case NE:
		return "ne"
	case SW:
		return "sw"
	case SE:
		return "se"
	}
	return fmt.Sprintf("corner(%d)", int(c))
}

// west and north report which edges of the start rectangle move with the
// pointer for this handle.
func (c Corner) west() bool  { return c == NW || c == SW }
func (c Corner) north() bool { return c == NW || c == NE }

// Event is a pointer press, move or release. Target is only consulted on
// press.
type Event struct {
	Pos    Position
	Target *Node
}
