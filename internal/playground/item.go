package playground

import (
	"strings"

	"github.com/rileylov/canvasplay/internal/gesture"
)

var handleGlyphs = map[gesture.Corner]string{
	gesture.NW: "◤",
	gesture.NE: "◥",
	gesture.SW: "◣",
	gesture.SE: "◢",
}

// item is one movable entry on the canvas.
type item struct {
	id      string
	region  *gesture.Region
	content content
	media   *mediaCard

	// shift keeps the corner opposite a west or north handle in place after
	// a resize. resizing is the state of the resize in progress.
	shift    gesture.Position
	resizing gesture.ResizeState
}

// anchorShift is how far the top-left corner moves so that the corner
// opposite the handle stays fixed.
func anchorShift(st gesture.ResizeState, d gesture.Dimensions) gesture.Position {
	var p gesture.Position
	if st.Handle == gesture.NW || st.Handle == gesture.SW {
		p.X = st.StartDimensions.Width - d.Width
	}
	if st.Handle == gesture.NW || st.Handle == gesture.NE {
		p.Y = st.StartDimensions.Height - d.Height
	}
	return p
}

// origin is the item's top-left corner in logical pixels.
func (it *item) origin() gesture.Position {
	pos := it.region.Drag.Position().Add(it.shift)
	if it.resizable() && it.region.Resize.Active() {
		pos = pos.Add(anchorShift(it.region.Resize.State(), it.region.Resize.Dimensions()))
	}
	return pos
}

func (it *item) resizable() bool {
	return it.region.Resize != nil
}

// rect returns the item's outer box in canvas cells.
func (it *item) rect() (col, row, w, h int) {
	pos := it.origin()
	col, row = toCell(pos.X, cellWidth), toCell(pos.Y, cellHeight)
	if it.resizable() {
		w, h = cellSize(it.region.Resize.Dimensions())
	} else {
		w, h = it.content.cells()
	}
	return col, row, max(w, 3), max(h, 3)
}

func (it *item) contains(col, row int) bool {
	c, r, w, h := it.rect()
	return col >= c && col < c+w && row >= r && row < r+h
}

// handleAt reports the corner handle at the relative cell, if any. A handle
// covers its corner cell and the border cell next to it.
func (it *item) handleAt(rc, rr, w, h int) (gesture.Corner, bool) {
	if !it.resizable() {
		return 0, false
	}
	left := rc <= 1
	right := rc >= w-2
	switch {
	case rr == 0 && left:
		return gesture.NW, true
	case rr == 0 && right:
		return gesture.NE, true
	case rr == h-1 && left:
		return gesture.SW, true
	case rr == h-1 && right:
		return gesture.SE, true
	}
	return 0, false
}

// hit builds the node chain for a press at the canvas cell. The returned
// control is set when the press landed on one.
func (it *item) hit(col, row int) (*gesture.Node, *control) {
	c, r, w, h := it.rect()
	rc, rr := col-c, row-r

	root := &gesture.Node{ID: it.id, Kind: gesture.KindRegion}
	if corner, ok := it.handleAt(rc, rr, w, h); ok {
		return gesture.HandleNode(corner, root), nil
	}
	surface := &gesture.Node{ID: it.id + "/surface", Parent: root}

	_, ctls := it.content.body(w-2, h-2)
	for i := range ctls {
		if ctls[i].contains(rc-1, rr-1) {
			return &gesture.Node{ID: ctls[i].id, Kind: ctls[i].kind, Parent: surface}, &ctls[i]
		}
	}
	return surface, nil
}

// view renders the bordered item, one string per row.
func (it *item) view(active bool) []string {
	_, _, w, h := it.rect()
	body, _ := it.content.body(w-2, h-2)

	style := itemStyle
	if active {
		style = itemActiveStyle
	}
	lines := strings.Split(style.
		Width(w-2).
		Height(h-2).
		MaxHeight(h).
		Render(strings.Join(fit(body, w-2, h-2), "\n")), "\n")

	if it.resizable() {
		hs := handleStyle
		if it.region.Active() == gesture.GestureResize {
			hs = handleActiveStyle
		}
		last := len(lines) - 1
		lines[0] = overlay(lines[0], hs.Render(handleGlyphs[gesture.NW]), 0, w)
		lines[0] = overlay(lines[0], hs.Render(handleGlyphs[gesture.NE]), w-1, w)
		lines[last] = overlay(lines[last], hs.Render(handleGlyphs[gesture.SW]), 0, w)
		lines[last] = overlay(lines[last], hs.Render(handleGlyphs[gesture.SE]), w-1, w)
	}
	return lines
}
