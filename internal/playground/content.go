package playground

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rileylov/canvasplay/internal/gesture"
)

// control is a clickable element inside an item's inner area. Presses on
// controls never start a drag.
type control struct {
	id    string
	kind  gesture.Kind
	row   int
	col   int
	width int
}

func (c control) contains(col, row int) bool {
	return row == c.row && col >= c.col && col < c.col+c.width
}

// content is what an item displays inside its border.
type content interface {
	// body renders the inner area and reports its controls relative to the
	// inner top-left cell.
	body(width, height int) ([]string, []control)
	// cells is the natural outer size of fixed-size content.
	cells() (int, int)
	// click activates the control with the given id.
	click(id string) tea.Cmd
}

// keyReceiver is content that takes keyboard input while it has focus.
type keyReceiver interface {
	focused() bool
	updateKey(msg tea.KeyMsg) tea.Cmd
}

// StatusMsg sets the status line.
type StatusMsg string

func statusCmd(s string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(s) }
}

// buttonRow lays out labelled buttons separated by gap cells and returns
// the rendered line with one control per button.
func buttonRow(row int, gap int, buttons ...button) (string, []control) {
	var (
		parts []string
		ctls  []control
		col   int
	)
	for i, b := range buttons {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", gap))
			col += gap
		}
		label := " " + b.label + " "
		w := ansi.StringWidth(label)
		parts = append(parts, b.style.Render(label))
		ctls = append(ctls, control{id: b.id, kind: gesture.KindButton, row: row, col: col, width: w})
		col += w
	}
	return strings.Join(parts, ""), ctls
}

type button struct {
	id    string
	label string
	style lipgloss.Style
}

// card is a fixed-size prototype showcase: a title, wrapped text, an
// optional percentage strip and a row of buttons.
type card struct {
	title      string
	text       string
	percentage string
	filled     int
	buttons    []button
	width      int
}

func prototypeOne() *card {
	return &card{
		title:      "Prototype 1",
		text:       "Drag this card anywhere on the canvas.",
		percentage: "Completion",
		filled:     7,
		width:      40,
	}
}

func prototypeTwo() *card {
	return &card{
		title: "Prototype 2",
		text:  "This card mixes text and buttons. Buttons stay clickable and never start a drag.",
		buttons: []button{
			{id: "primary", label: "Primary", style: primaryButtonStyle},
			{id: "secondary", label: "Secondary", style: secondaryButtonStyle},
		},
		width: 44,
	}
}

func (c *card) lines(width int) ([]string, []control) {
	out := []string{titleStyle.Render(c.title), ""}
	wrapped := lipgloss.NewStyle().Width(width).Render(c.text)
	for _, l := range strings.Split(wrapped, "\n") {
		out = append(out, bodyStyle.Render(strings.TrimRight(l, " ")))
	}
	if c.percentage != "" {
		out = append(out, "", dimStyle.Render(c.percentage))
		var sq []string
		for i := 1; i <= 10; i++ {
			if i <= c.filled {
				sq = append(sq, squareStyle.Render("■"))
			} else {
				sq = append(sq, squareOffStyle.Render("■"))
			}
		}
		out = append(out, strings.Join(sq, " "))
	}
	var ctls []control
	if len(c.buttons) > 0 {
		out = append(out, "")
		row, bc := buttonRow(len(out), 2, c.buttons...)
		out = append(out, row)
		ctls = bc
	}
	return out, ctls
}

func (c *card) body(width, height int) ([]string, []control) {
	lines, ctls := c.lines(width)
	return fit(lines, width, height), ctls
}

func (c *card) cells() (int, int) {
	lines, _ := c.lines(c.width - 2)
	return c.width, len(lines) + 2
}

func (c *card) click(id string) tea.Cmd {
	for _, b := range c.buttons {
		if b.id == id {
			return statusCmd(c.title + ": " + b.label + " clicked")
		}
	}
	return nil
}
