// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package playground is the terminal playground: a canvas of draggable
// prototype cards, a feedback widget and resizable media items, with a
// toolbar, an upload picker and a layers panel.
package playground

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/canvasplay/internal/config"
	"github.com/rileylov/canvasplay/internal/gesture"
	"github.com/rileylov/canvasplay/internal/media"
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayPicker
	overlayLayers
)

// mediaRecord is the playground's own copy of an uploaded item. Sizes set
// by the user survive recreation of the canvas item.
type mediaRecord struct {
	asset media.Asset
	at    gesture.Position
	size  gesture.Dimensions
}

// Model is the root bubbletea model.
type Model struct {
	cfg    config.Config
	height int
	width  int

	header *configPanel
	canvas *Canvas
	footer *footer
	picker *Picker
	layers *Layers

	overlay overlayKind
	records []mediaRecord
	reloads <-chan config.ReloadedMsg
}

// New builds the playground. reloads may be nil when the config file is not
// watched.
func New(cfg config.Config, reloads <-chan config.ReloadedMsg) *Model {
	applyTheme(cfg.Dark())
	m := &Model{
		cfg:     cfg,
		header:  newConfigPanel("Canvas Playground"),
		canvas:  NewCanvas(cfg),
		footer:  newFooter(),
		picker:  NewPicker(cfg.UploadDir),
		layers:  NewLayers(),
		reloads: reloads,
	}
	m.syncHeader()
	return m
}

func waitForReload(ch <-chan config.ReloadedMsg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) Init() tea.Cmd {
	return waitForReload(m.reloads)
}

func (m *Model) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.isInitialized() {
		switch msg.(type) {
		case tea.WindowSizeMsg, config.ReloadedMsg:
		default:
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m, m.key(msg)

	case tea.MouseMsg:
		return m, m.mouse(msg)

	case ThemeToggleMsg:
		m.setDark(!m.cfg.Dark())
	case GridStepMsg:
		m.setGrid(m.cfg.GridSize + msg.Delta)
	case OpenPickerMsg:
		return m, m.openPicker()
	case LayersToggleMsg:
		m.toggleLayers()
	case FeedbackToggleMsg:
		m.toggleFeedback()
	case PickerClosedMsg, LayersClosedMsg:
		m.overlay = overlayNone
		m.syncHeader()

	case UploadMsg:
		m.overlay = overlayNone
		return m, m.upload(msg.Assets)
	case RemoveMediaMsg:
		m.remove(msg.ID)
	case ResizedMsg:
		for i := range m.records {
			if m.records[i].asset.ID == msg.ID {
				m.records[i].size = msg.Dimensions
			}
		}
		log.Printf("playground: %s resized to %v", msg.ID, msg.Dimensions)

	case FeedbackSubmittedMsg:
		log.Printf("playground: feedback submitted: %+v", msg)
		status := fmt.Sprintf("Thank you for your %s feedback!", msg.Type)
		if msg.Comment != "" {
			status += " Comment: " + msg.Comment
		}
		m.setStatus(status)
	case FeedbackDismissedMsg:
		m.setStatus("Feedback dismissed")
	case StatusMsg:
		m.setStatus(string(msg))

	case config.ReloadedMsg:
		if msg.Err != nil {
			m.setStatus("Config reload failed: " + msg.Err.Error())
		} else {
			m.applyConfig(msg.Config)
			m.setStatus("Config reloaded")
		}
		return m, waitForReload(m.reloads)

	case scannedMsg:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	default:
		var cmd tea.Cmd
		switch m.overlay {
		case overlayPicker:
			m.picker, cmd = m.picker.Update(msg)
		case overlayLayers:
			m.layers, cmd = m.layers.Update(msg)
		}
		canvasCmd := m.updateCanvas(msg)
		return m, tea.Batch(cmd, canvasCmd)
	}
	return m, nil
}

func (m *Model) key(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+e":
		zone.SetEnabled(!zone.Enabled())
		return nil
	case "ctrl+t":
		m.setDark(!m.cfg.Dark())
		return nil
	case "ctrl+o":
		return m.openPicker()
	case "ctrl+l":
		m.toggleLayers()
		return nil
	case "ctrl+f":
		m.toggleFeedback()
		return nil
	case "ctrl+r":
		return m.resetLayout()
	}

	switch m.overlay {
	case overlayPicker:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return cmd
	case overlayLayers:
		var cmd tea.Cmd
		m.layers, cmd = m.layers.Update(msg)
		return cmd
	}

	if kr, ok := m.canvas.KeyFocus(); ok {
		return kr.updateKey(msg)
	}

	switch msg.String() {
	case "+", "=":
		m.setGrid(m.cfg.GridSize + config.GridStep)
	case "-":
		m.setGrid(m.cfg.GridSize - config.GridStep)
	case "delete", "backspace":
		if id, ok := m.canvas.TopMedia(); ok {
			m.remove(id)
		}
	case "ctrl+y":
		m.layers.SetEntries(m.canvas.Layout())
		if err := m.layers.Copy(); err != nil {
			m.setStatus(err.Error())
		} else {
			m.setStatus("Layout copied")
		}
	}
	return nil
}

func (m *Model) mouse(msg tea.MouseMsg) tea.Cmd {
	var cmd tea.Cmd
	m.header, cmd = m.header.Update(msg)
	if m.overlay != overlayNone {
		// Gestures started before the overlay opened still need their
		// release.
		if msg.Action == tea.MouseActionRelease {
			return tea.Batch(cmd, m.updateCanvas(msg))
		}
		return cmd
	}
	return tea.Batch(cmd, m.updateCanvas(msg))
}

func (m *Model) updateCanvas(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.canvas, cmd = m.canvas.Update(msg)
	m.footer.gesture = m.canvas.Active()
	return cmd
}

func (m *Model) layout() {
	m.header, _ = m.header.Update(tea.WindowSizeMsg{Width: m.width - 2, Height: 1})
	m.footer, _ = m.footer.Update(tea.WindowSizeMsg{Width: m.width - 2, Height: m.height})
	m.footer.terminalWidth, m.footer.terminalHeight = m.width, m.height

	headerH := lipgloss.Height(m.header.View())
	footerH := lipgloss.Height(m.footer.View())
	cw := m.width - 2
	ch := m.height - 2 - headerH - footerH
	if ch < 1 {
		ch = 1
	}
	m.canvas.SetSize(cw, ch)
	m.canvas.SetOrigin(1, 1+headerH)
	m.footer.canvasWidth, m.footer.canvasHeight = cw, ch
}

func (m *Model) setStatus(s string) {
	m.footer, _ = m.footer.Update(StatusMsg(s))
}

func (m *Model) setDark(dark bool) {
	if dark {
		m.cfg.Theme = "dark"
	} else {
		m.cfg.Theme = "light"
	}
	applyTheme(dark)
	m.syncHeader()
}

func (m *Model) setGrid(size int) {
	m.cfg.GridSize = config.ClampGrid(size)
	m.canvas.SetGridSize(m.cfg.GridSize)
	m.syncHeader()
}

func (m *Model) syncHeader() {
	m.header.SetState(m.cfg.Dark(), m.cfg.GridSize, m.overlay == overlayLayers, m.canvas.FeedbackShown())
}

func (m *Model) openPicker() tea.Cmd {
	m.overlay = overlayPicker
	m.syncHeader()
	return m.picker.Open()
}

func (m *Model) toggleLayers() {
	if m.overlay == overlayLayers {
		m.overlay = overlayNone
	} else {
		m.layers.SetEntries(m.canvas.Layout())
		m.overlay = overlayLayers
	}
	m.syncHeader()
}

func (m *Model) toggleFeedback() {
	if m.canvas.ToggleFeedback() {
		m.setStatus("Feedback shown")
	} else {
		m.setStatus("Feedback hidden")
	}
	m.syncHeader()
}

// upload places new assets diagonally from (100,100) and starts loading
// their natural sizes.
func (m *Model) upload(assets []media.Asset) tea.Cmd {
	var cmds []tea.Cmd
	stamp := time.Now().UnixNano()
	for i, a := range assets {
		a.ID = fmt.Sprintf("%d-%d", stamp, i)
		rec := mediaRecord{
			asset: a,
			at:    gesture.Position{X: 100 + float64(i)*50, Y: 100 + float64(i)*50},
		}
		m.records = append(m.records, rec)
		m.canvas.AddMedia(a, rec.at, rec.size, m.cfg.MediaSize())
		cmds = append(cmds, media.LoadCmd(a))
		log.Printf("playground: uploaded %s as %s (%s)", a.Name, a.ID, a.Kind)
	}
	m.setStatus(fmt.Sprintf("Uploaded %d files", len(assets)))
	m.syncHeader()
	return tea.Batch(cmds...)
}

func (m *Model) remove(id string) {
	m.canvas.Remove(id)
	for i, r := range m.records {
		if r.asset.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			log.Printf("playground: removed %s", id)
			return
		}
	}
}

// resetLayout recreates every item at its initial placement. Media items
// keep the size the user gave them.
func (m *Model) resetLayout() tea.Cmd {
	m.canvas.Reset()
	var cmds []tea.Cmd
	for _, r := range m.records {
		m.canvas.AddMedia(r.asset, r.at, r.size, m.cfg.MediaSize())
		cmds = append(cmds, media.LoadCmd(r.asset))
	}
	m.setStatus("Layout reset")
	m.syncHeader()
	return tea.Batch(cmds...)
}

func (m *Model) applyConfig(cfg config.Config) {
	m.cfg = cfg
	applyTheme(cfg.Dark())
	m.canvas.Configure(cfg)
	m.picker.SetDir(cfg.UploadDir)
	m.syncHeader()
}

func (m *Model) View() string {
	if !m.isInitialized() {
		return ""
	}
	middle := m.canvas.View()
	switch m.overlay {
	case overlayPicker:
		middle = lipgloss.Place(m.canvas.width, m.canvas.height, lipgloss.Center, lipgloss.Center, m.picker.View())
	case overlayLayers:
		middle = lipgloss.Place(m.canvas.width, m.canvas.height, lipgloss.Center, lipgloss.Center, m.layers.View())
	}
	s := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(highlight).
		MaxHeight(m.height).
		MaxWidth(m.width)
	return zone.Scan(s.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		middle,
		m.footer.View(),
	)))
}
