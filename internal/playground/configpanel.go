// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package playground

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/canvasplay/internal/config"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(textColor).
			Height(1)

	headerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(highlight).
				Background(subtle)

	headerButtonStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
				Margin(0, 1).
				Padding(0, 1)

	headerButtonActiveStyle = headerButtonStyle.
				Background(special).
				Bold(true)

	headerLabelStyle = lipgloss.NewStyle().
				Background(subtle).
				Foreground(textColor)
)

// Messages emitted by the config panel buttons.
type (
	ThemeToggleMsg    struct{}
	OpenPickerMsg     struct{}
	LayersToggleMsg   struct{}
	FeedbackToggleMsg struct{}
	GridStepMsg       struct{ Delta int }
)

type panelAction int

const (
	actionTheme panelAction = iota
	actionUpload
	actionGridDown
	actionGridUp
	actionLayers
	actionFeedback
)

type panelButton struct {
	action panelAction
	label  string
	active bool
}

// configPanel is the toolbar across the top of the playground.
type configPanel struct {
	id      string
	width   int
	title   string
	dark    bool
	grid    int
	buttons []panelButton
}

func newConfigPanel(title string) *configPanel {
	p := &configPanel{
		id:    zone.NewPrefix(),
		title: title,
		buttons: []panelButton{
			{action: actionTheme},
			{action: actionUpload, label: "Upload"},
			{action: actionGridDown, label: "−"},
			{action: actionGridUp, label: "+"},
			{action: actionLayers, label: "Layers"},
			{action: actionFeedback, label: "Feedback"},
		},
	}
	p.SetState(false, 24, false, true)
	return p
}

// SetState refreshes the labels from the playground state.
func (p *configPanel) SetState(dark bool, grid int, layersOpen, feedbackShown bool) {
	p.dark, p.grid = dark, grid
	for i := range p.buttons {
		switch p.buttons[i].action {
		case actionTheme:
			// The button offers the mode you would switch to.
			if dark {
				p.buttons[i].label = "Light"
			} else {
				p.buttons[i].label = "Dark"
			}
		case actionGridDown:
			p.buttons[i].active = grid <= config.MinGrid
		case actionGridUp:
			p.buttons[i].active = grid >= config.MaxGrid
		case actionLayers:
			p.buttons[i].active = layersOpen
		case actionFeedback:
			p.buttons[i].active = feedbackShown
		}
	}
}

func (p *configPanel) Init() tea.Cmd {
	return nil
}

func (p *configPanel) Update(msg tea.Msg) (*configPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return p, nil
		}
		for i := range p.buttons {
			if zone.Get(p.buttonID(i)).InBounds(msg) {
				return p, p.trigger(i)
			}
		}
	}
	return p, nil
}

// trigger returns the message for button i.
func (p *configPanel) trigger(i int) tea.Cmd {
	var msg tea.Msg
	switch p.buttons[i].action {
	case actionTheme:
		msg = ThemeToggleMsg{}
	case actionUpload:
		msg = OpenPickerMsg{}
	case actionGridDown:
		msg = GridStepMsg{Delta: -config.GridStep}
	case actionGridUp:
		msg = GridStepMsg{Delta: config.GridStep}
	case actionLayers:
		msg = LayersToggleMsg{}
	case actionFeedback:
		msg = FeedbackToggleMsg{}
	default:
		return nil
	}
	return func() tea.Msg { return msg }
}

func (p *configPanel) View() string {
	var buttonViews []string
	for i, b := range p.buttons {
		style := headerButtonStyle
		if b.active {
			style = headerButtonActiveStyle
		}
		buttonViews = append(buttonViews, zone.Mark(p.buttonID(i), style.Render(b.label)))
		if b.action == actionGridDown {
			buttonViews = append(buttonViews, headerLabelStyle.Render(fmt.Sprintf("grid %dpx", p.grid)))
		}
	}
	buttonsSection := lipgloss.JoinHorizontal(lipgloss.Center, buttonViews...)
	buttonsWidth := lipgloss.Width(buttonsSection)

	// Room for the title, keeping one cell between title and buttons.
	maxTitleWidth := p.width - buttonsWidth - 2
	if maxTitleWidth < 0 {
		maxTitleWidth = 0
	}
	titleText := p.title
	if lipgloss.Width(titleText) > maxTitleWidth {
		runes := []rune(titleText)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > maxTitleWidth {
			runes = runes[:len(runes)-1]
		}
		if maxTitleWidth > 0 {
			titleText = string(runes) + "…"
		} else {
			titleText = ""
		}
	}
	title := headerTitleStyle.Render(titleText)

	spacingWidth := p.width - lipgloss.Width(title) - buttonsWidth - 2
	if spacingWidth < 0 {
		spacingWidth = 0
	}
	spacing := lipgloss.NewStyle().Background(subtle).Width(spacingWidth).Render("")
	content := lipgloss.JoinHorizontal(lipgloss.Center, title, spacing, buttonsSection)
	return headerStyle.Width(p.width).Render(content)
}

func (p *configPanel) buttonID(index int) string {
	return p.id + "button_" + string(rune('0'+index))
}
