// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package playground

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/canvasplay/internal/gesture"
)

// footer is the one-line status bar under the canvas.
type footer struct {
	width          int
	terminalWidth  int
	terminalHeight int
	canvasWidth    int
	canvasHeight   int
	gesture        gesture.Gesture
	status         string
}

func newFooter() *footer {
	return &footer{}
}

func (f *footer) Init() tea.Cmd {
	return nil
}

func (f *footer) Update(msg tea.Msg) (*footer, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.terminalWidth = msg.Width
		f.terminalHeight = msg.Height
	case StatusMsg:
		f.status = string(msg)
	}
	return f, nil
}

// segments lists the status fields left to right.
func (f *footer) segments() []string {
	mouse := "mouse off"
	if zone.Enabled() {
		mouse = "mouse on"
	}
	segs := []string{
		fmt.Sprintf("term %dx%d", f.terminalWidth, f.terminalHeight),
		fmt.Sprintf("canvas %dx%d", f.canvasWidth, f.canvasHeight),
		mouse,
	}
	if f.status != "" {
		segs = append(segs, f.status)
	}
	return segs
}

func (f *footer) View() string {
	var badge string
	if f.gesture != gesture.GestureNone {
		badge = gestureBadgeStyle.Render(f.gesture.String())
	}
	room := max(0, f.width-lipgloss.Width(badge)-1)
	info := " " + ansi.Truncate(strings.Join(f.segments(), " · "), room, "…")
	return statusBarStyle.Width(f.width).MaxHeight(1).Render(badge + info)
}
