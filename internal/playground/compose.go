package playground

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/rileylov/canvasplay/internal/gesture"
)

// One terminal cell covers cellWidth x cellHeight logical pixels. Half
// blocks in media previews therefore sample square pixels.
const (
	cellWidth  = 8
	cellHeight = 16
)

const resetStyle = "\x1b[0m"

// toCell converts a logical pixel coordinate into cells.
func toCell(px float64, unit int) int {
	return int(math.Round(px / float64(unit)))
}

// toPixel converts a cell relative to the canvas origin into logical
// pixels.
func toPixel(col, row int) gesture.Position {
	return gesture.Position{X: float64(col * cellWidth), Y: float64(row * cellHeight)}
}

// cellSize converts dimensions into a whole number of cells, at least one.
func cellSize(d gesture.Dimensions) (int, int) {
	return max(1, toCell(d.Width, cellWidth)), max(1, toCell(d.Height, cellHeight))
}

// overlay paints top over base starting at col, clipping it to width cells.
// Both strings may carry ANSI styling.
func overlay(base, top string, col, width int) string {
	tw := ansi.StringWidth(top)
	if tw == 0 || col >= width || col+tw <= 0 {
		return base
	}
	if col < 0 {
		top = ansi.Cut(top, -col, tw)
		tw += col
		col = 0
	}
	if col+tw > width {
		top = ansi.Cut(top, 0, width-col)
		tw = width - col
	}
	return ansi.Cut(base, 0, col) + resetStyle + top + resetStyle + ansi.Cut(base, col+tw, width)
}

// gridLine renders one background row with a dot at every grid
// intersection.
func gridLine(row, width, grid int) string {
	if width <= 0 {
		return ""
	}
	if grid <= 0 || (row*cellHeight)%grid != 0 {
		return strings.Repeat(" ", width)
	}
	var b strings.Builder
	for col := 0; col < width; col++ {
		if (col*cellWidth)%grid == 0 {
			b.WriteString("·")
		} else {
			b.WriteByte(' ')
		}
	}
	return gridStyle.Render(b.String())
}

// fit truncates every line to width cells and pads or cuts the block to
// height lines.
func fit(lines []string, width, height int) []string {
	out := make([]string, 0, height)
	for _, l := range lines {
		if len(out) == height {
			break
		}
		out = append(out, ansi.Truncate(l, width, "…"))
	}
	for len(out) < height {
		out = append(out, "")
	}
	return out
}
