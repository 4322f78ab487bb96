package playground

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileylov/canvasplay/internal/config"
	"github.com/rileylov/canvasplay/internal/gesture"
	"github.com/rileylov/canvasplay/internal/media"
)

// ResizedMsg reports the final size of a media item after a resize gesture.
type ResizedMsg struct {
	ID         string
	Dimensions gesture.Dimensions
}

// frameMsg flushes the coalesced resize of one item.
type frameMsg struct {
	id    string
	token uint64
}

type pressedControl struct {
	item    string
	control string
}

// Canvas holds the movable items and feeds terminal mouse events into
// their gesture controllers. Items are kept in paint order; the last one is
// on top.
type Canvas struct {
	bus   *gesture.Bus
	items []*item

	width, height    int
	originX, originY int
	gridSize         int

	frameInterval time.Duration
	coalesce      bool

	feedback   *Feedback
	feedbackAt gesture.Position
	focus      string
	pressed    *pressedControl
	cmds       []tea.Cmd
}

// NewCanvas creates a canvas with the default showcase items.
func NewCanvas(cfg config.Config) *Canvas {
	c := &Canvas{
		bus:           gesture.NewBus(),
		gridSize:      cfg.GridSize,
		frameInterval: cfg.FrameInterval,
		coalesce:      cfg.Coalesce,
		feedback:      NewFeedback(cfg.Feedback),
		feedbackAt:    feedbackAt,
	}
	c.addDefaults()
	return c
}

const feedbackID = "feedback"

var feedbackAt = gesture.Position{X: 16, Y: 224}

func (c *Canvas) addDefaults() {
	c.add("prototype-1", gesture.Position{X: 16, Y: 16}, prototypeOne())
	c.add("prototype-2", gesture.Position{X: 376, Y: 16}, prototypeTwo())
	c.add(feedbackID, feedbackAt, c.feedback)
}

// ToggleFeedback hides or shows the feedback widget and reports whether it
// is now shown. A shown widget returns where it was last dropped.
func (c *Canvas) ToggleFeedback() bool {
	if it := c.find(feedbackID); it != nil {
		c.feedbackAt = it.region.Drag.Position()
		c.Remove(feedbackID)
		return false
	}
	c.add(feedbackID, c.feedbackAt, c.feedback)
	return true
}

func (c *Canvas) add(id string, at gesture.Position, ct content) *item {
	it := &item{
		id:      id,
		content: ct,
		region:  &gesture.Region{Drag: gesture.NewDrag(c.bus, at, nil)},
	}
	c.items = append(c.items, it)
	return it
}

// AddMedia places an asset at the given position. A non-zero size restores
// a size the user chose earlier; otherwise def is used until the asset's
// natural size is known.
func (c *Canvas) AddMedia(a media.Asset, at gesture.Position, size, def gesture.Dimensions) {
	card := &mediaCard{asset: a}
	dims := def
	if size.Width > 0 && size.Height > 0 {
		dims = size
		card.sized = true
	}

	var it *item
	opts := []gesture.ResizeOption{
		gesture.OnResize(func(d gesture.Dimensions) {
			card.sized = true
			it.shift = it.shift.Add(anchorShift(it.resizing, d))
			it.resizing = gesture.ResizeState{}
			c.emit(func() tea.Msg { return ResizedMsg{ID: a.ID, Dimensions: d} })
		}),
	}
	if c.coalesce {
		opts = append(opts, gesture.WithScheduler(frameScheduler{c: c, id: a.ID}))
	}
	card.resize = gesture.NewResize(c.bus, dims, opts...)

	it = c.add(a.ID, at, card)
	it.media = card
	it.region.Resize = card.resize
}

// Remove unmounts an item. A gesture in flight is dropped without report.
func (c *Canvas) Remove(id string) bool {
	for i, it := range c.items {
		if it.id != id {
			continue
		}
		it.region.Close()
		c.items = append(c.items[:i], c.items[i+1:]...)
		if c.focus == id {
			c.focus = ""
		}
		if c.pressed != nil && c.pressed.item == id {
			c.pressed = nil
		}
		return true
	}
	return false
}

// Reset unmounts every item and recreates the showcase items.
func (c *Canvas) Reset() {
	for _, it := range c.items {
		it.region.Close()
	}
	c.items = nil
	c.focus = ""
	c.pressed = nil
	c.feedbackAt = feedbackAt
	c.addDefaults()
}

// FeedbackShown reports whether the feedback widget is on the canvas.
func (c *Canvas) FeedbackShown() bool {
	return c.find(feedbackID) != nil
}

// TopMedia returns the id of the top-most media item.
func (c *Canvas) TopMedia() (string, bool) {
	for i := len(c.items) - 1; i >= 0; i-- {
		if c.items[i].media != nil {
			return c.items[i].id, true
		}
	}
	return "", false
}

// SetSize sets the visible area in cells.
func (c *Canvas) SetSize(width, height int) {
	c.width, c.height = max(0, width), max(0, height)
}

// SetOrigin sets the terminal cell of the canvas' top-left corner.
func (c *Canvas) SetOrigin(x, y int) {
	c.originX, c.originY = x, y
}

// SetGridSize changes the background grid spacing.
func (c *Canvas) SetGridSize(size int) {
	c.gridSize = size
}

// Configure applies reloaded settings. Frame settings affect new items.
func (c *Canvas) Configure(cfg config.Config) {
	c.gridSize = cfg.GridSize
	c.frameInterval = cfg.FrameInterval
	c.coalesce = cfg.Coalesce
	c.feedback.SetLabels(cfg.Feedback.Labels)
	c.feedback.SetAllowComment(cfg.Feedback.AllowComment)
}

// Active returns the gesture currently running, if any.
func (c *Canvas) Active() gesture.Gesture {
	for _, it := range c.items {
		if g := it.region.Active(); g != gesture.GestureNone {
			return g
		}
	}
	return gesture.GestureNone
}

// KeyFocus returns the item content that wants keyboard input.
func (c *Canvas) KeyFocus() (keyReceiver, bool) {
	it := c.find(c.focus)
	if it == nil {
		return nil, false
	}
	kr, ok := it.content.(keyReceiver)
	if !ok || !kr.focused() {
		return nil, false
	}
	return kr, true
}

func (c *Canvas) find(id string) *item {
	if id == "" {
		return nil
	}
	for _, it := range c.items {
		if it.id == id {
			return it
		}
	}
	return nil
}

func (c *Canvas) emit(cmd tea.Cmd) {
	c.cmds = append(c.cmds, cmd)
}

func (c *Canvas) drain() tea.Cmd {
	if len(c.cmds) == 0 {
		return nil
	}
	cmds := c.cmds
	c.cmds = nil
	return tea.Batch(cmds...)
}

// frameScheduler answers frame requests with a tick carrying the token.
type frameScheduler struct {
	c  *Canvas
	id string
}

func (f frameScheduler) RequestFrame(token uint64) {
	id := f.id
	f.c.emit(tea.Tick(f.c.frameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id, token: token}
	}))
}

func (c *Canvas) Init() tea.Cmd {
	return nil
}

func (c *Canvas) Update(msg tea.Msg) (*Canvas, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.SetSize(msg.Width, msg.Height)

	case tea.MouseMsg:
		c.mouse(msg)

	case frameMsg:
		if it := c.find(msg.id); it != nil && it.region.Resize != nil {
			it.region.Resize.Frame(msg.token)
		}

	case media.LoadedMsg:
		if it := c.find(msg.ID); it != nil && it.media != nil {
			it.media.apply(msg)
		}
	}
	return c, c.drain()
}

func (c *Canvas) mouse(msg tea.MouseMsg) {
	col, row := msg.X-c.originX, msg.Y-c.originY
	ev := gesture.Event{Pos: toPixel(col, row)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			c.press(col, row, ev)
		}
	case tea.MouseActionMotion:
		c.bus.Move(ev)
	case tea.MouseActionRelease:
		c.bus.Release(ev)
		c.releaseControl(col, row)
	}
}

func (c *Canvas) press(col, row int, ev gesture.Event) {
	if col < 0 || row < 0 || col >= c.width || row >= c.height {
		return
	}
	for i := len(c.items) - 1; i >= 0; i-- {
		it := c.items[i]
		if !it.contains(col, row) {
			continue
		}
		c.raise(i)
		c.focus = it.id

		target, ctl := it.hit(col, row)
		ev.Target = target
		if !it.region.Press(ev) && ctl != nil {
			c.pressed = &pressedControl{item: it.id, control: ctl.id}
		}
		switch g := it.region.Active(); g {
		case gesture.GestureResize:
			it.resizing = it.region.Resize.State()
			fallthrough
		case gesture.GestureDrag:
			log.Printf("canvas: %s started on %s at %v", g, it.id, ev.Pos)
		}
		return
	}
	c.focus = ""
}

// releaseControl clicks the control pressed earlier when the release lands
// on the same control.
func (c *Canvas) releaseControl(col, row int) {
	p := c.pressed
	c.pressed = nil
	if p == nil {
		return
	}
	it := c.find(p.item)
	if it == nil || !it.contains(col, row) {
		return
	}
	if _, ctl := it.hit(col, row); ctl != nil && ctl.id == p.control {
		if cmd := it.content.click(ctl.id); cmd != nil {
			c.emit(cmd)
		}
	}
}

func (c *Canvas) raise(i int) {
	it := c.items[i]
	c.items = append(append(c.items[:i:i], c.items[i+1:]...), it)
}

func (c *Canvas) View() string {
	if c.width == 0 || c.height == 0 {
		return ""
	}
	lines := make([]string, c.height)
	for row := range lines {
		lines[row] = gridLine(row, c.width, c.gridSize)
	}
	for _, it := range c.items {
		col, row, _, _ := it.rect()
		for i, l := range it.view(it.id == c.focus) {
			if r := row + i; r >= 0 && r < c.height {
				lines[r] = overlay(lines[r], l, col, c.width)
			}
		}
	}
	return strings.Join(lines, "\n")
}

// LayoutEntry describes one item for the layers panel.
type LayoutEntry struct {
	ID     string
	Kind   string
	Name   string
	X, Y   float64
	Width  float64
	Height float64
}

// Layout lists the items from bottom to top.
func (c *Canvas) Layout() []LayoutEntry {
	out := make([]LayoutEntry, 0, len(c.items))
	for _, it := range c.items {
		pos := it.origin()
		e := LayoutEntry{ID: it.id, X: pos.X, Y: pos.Y, Kind: "card", Name: it.id}
		if it.media != nil {
			d := it.media.resize.Dimensions()
			e.Kind, e.Name = it.media.asset.Kind.String(), it.media.asset.Name
			e.Width, e.Height = d.Width, d.Height
		} else {
			w, h := it.content.cells()
			e.Width, e.Height = float64(w*cellWidth), float64(h*cellHeight)
		}
		out = append(out, e)
	}
	return out
}

func (e LayoutEntry) String() string {
	return fmt.Sprintf("%s\t%s\t%s\t%.0f\t%.0f\t%.0f\t%.0f", e.ID, e.Kind, e.Name, e.X, e.Y, e.Width, e.Height)
}
