package playground

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rileylov/canvasplay/internal/gesture"
	"github.com/rileylov/canvasplay/internal/media"
)

// RemoveMediaMsg asks the owner to drop a media item.
type RemoveMediaMsg struct {
	ID string
}

// mediaCard shows an uploaded asset inside a resizable item.
type mediaCard struct {
	asset   media.Asset
	resize  *gesture.Resize
	loaded  bool
	sized   bool
	natural [2]int
	preview image.Image
	err     error

	cacheW, cacheH int
	cached         []string
}

func (m *mediaCard) body(width, height int) ([]string, []control) {
	name := ansi.Truncate(m.asset.Name, max(0, width-2), "…")
	gap := max(1, width-ansi.StringWidth(name)-1)
	lines := []string{
		titleStyle.Render(name) + strings.Repeat(" ", gap) + removeButtonStyle.Render("×"),
		dimStyle.Render(m.describe()),
	}
	ctls := []control{{id: "remove", kind: gesture.KindButton, row: 0, col: width - 1, width: 1}}

	dims := m.resize.Dimensions()
	footer := dimStyle.Render(fmt.Sprintf("%.0f×%.0f", dims.Width, dims.Height))
	if r, ok := m.resize.AspectRatio(); ok {
		footer += dimStyle.Render(fmt.Sprintf("  ratio %.2f", r))
	} else {
		footer += dimStyle.Render("  free-form")
	}

	if avail := height - len(lines) - 1; avail > 0 {
		lines = append(lines, m.previewLines(width, avail)...)
	}
	lines = append(fit(lines, width, height-1), footer)
	return lines, ctls
}

func (m *mediaCard) describe() string {
	switch {
	case m.asset.Kind == media.Video:
		return "▶ video"
	case m.err != nil:
		return "image (unreadable)"
	case !m.loaded:
		return "image, loading…"
	}
	return fmt.Sprintf("image %d×%d", m.natural[0], m.natural[1])
}

// previewLines renders the image with half blocks, two pixels per cell.
func (m *mediaCard) previewLines(width, height int) []string {
	if m.preview == nil || width <= 0 || height <= 0 {
		return nil
	}
	if m.cacheW == width && m.cacheH == height {
		return m.cached
	}
	b := m.preview.Bounds()
	sample := func(x, y int) lipgloss.Color {
		px := b.Min.X + x*b.Dx()/width
		py := b.Min.Y + y*b.Dy()/(height*2)
		r, g, bl, _ := m.preview.At(px, py).RGBA()
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8))
	}
	out := make([]string, height)
	for y := 0; y < height; y++ {
		var sb strings.Builder
		for x := 0; x < width; x++ {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(sample(x, 2*y)).
				Background(sample(x, 2*y+1)).
				Render("▀"))
		}
		out[y] = sb.String()
	}
	m.cacheW, m.cacheH, m.cached = width, height, out
	return out
}

func (m *mediaCard) cells() (int, int) {
	return cellSize(m.resize.Dimensions())
}

func (m *mediaCard) click(id string) tea.Cmd {
	if id != "remove" {
		return nil
	}
	assetID := m.asset.ID
	return func() tea.Msg { return RemoveMediaMsg{ID: assetID} }
}

// apply takes an asset load result. The ratio is stored for the next
// gesture; the size is derived from it only when the item has no user-set
// size and no gesture is running.
func (m *mediaCard) apply(msg media.LoadedMsg) {
	m.loaded = true
	m.err = msg.Err
	if msg.Err != nil {
		return
	}
	m.natural = [2]int{msg.Width, msg.Height}
	m.preview = msg.Preview
	m.cacheW, m.cacheH = 0, 0
	if r, ok := msg.AspectRatio(); ok {
		m.resize.SetAspectRatio(r)
		if !m.sized && !m.resize.Active() {
			m.resize.SetDimensions(gesture.FitAspect(m.resize.Dimensions(), r))
		}
	}
}
