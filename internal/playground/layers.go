package playground

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LayersClosedMsg is sent when the layers panel is dismissed.
type LayersClosedMsg struct{}

// copyLayout is swapped in tests.
var copyLayout = clipboard.WriteAll

// Layers lists every canvas item with its position and size.
type Layers struct {
	table   table.Model
	entries []LayoutEntry
	status  string
}

func NewLayers() *Layers {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Kind", Width: 6},
			{Title: "Name", Width: 24},
			{Title: "X", Width: 7},
			{Title: "Y", Width: 7},
			{Title: "Width", Width: 7},
			{Title: "Height", Width: 7},
		}),
		table.WithFocused(true),
		table.WithHeight(visibleRows),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return &Layers{table: t}
}

// SetEntries shows entries, top-most item first.
func (l *Layers) SetEntries(entries []LayoutEntry) {
	l.entries = entries
	rows := make([]table.Row, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			e.Kind,
			e.Name,
			fmt.Sprintf("%.0f", e.X),
			fmt.Sprintf("%.0f", e.Y),
			fmt.Sprintf("%.0f", e.Width),
			fmt.Sprintf("%.0f", e.Height),
		})
	}
	l.table.SetRows(rows)
}

// Copy puts the layout on the clipboard.
func (l *Layers) Copy() error {
	if err := copyLayout(FormatLayout(l.entries)); err != nil {
		l.status = fmt.Sprintf("Couldn't write to clipboard: %v", err)
		return err
	}
	l.status = fmt.Sprintf("Copied %d items", len(l.entries))
	return nil
}

// FormatLayout renders entries as tab separated lines with a header.
func FormatLayout(entries []LayoutEntry) string {
	var b strings.Builder
	b.WriteString("id\tkind\tname\tx\ty\twidth\theight\n")
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (l *Layers) Update(msg tea.Msg) (*Layers, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return l, func() tea.Msg { return LayersClosedMsg{} }
		case "ctrl+y":
			_ = l.Copy()
			return l, nil
		}
	}
	var cmd tea.Cmd
	l.table, cmd = l.table.Update(msg)
	return l, cmd
}

func (l *Layers) View() string {
	help := dimStyle.Render("ctrl+y copy layout · esc close")
	out := titleStyle.Render("Layers") + "\n\n" + l.table.View() + "\n\n" + help
	if l.status != "" {
		out += "\n" + l.status
	}
	return overlayBoxStyle.Render(out)
}
