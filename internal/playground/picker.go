package playground

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/rileylov/canvasplay/internal/media"
)

var visibleRows = 12

// UploadMsg carries the assets picked for upload.
type UploadMsg struct {
	Assets []media.Asset
}

// PickerClosedMsg is sent when the picker is dismissed without uploading.
type PickerClosedMsg struct{}

type scannedMsg struct {
	dir    string
	assets []media.Asset
	err    error
}

// scanDir lists the image and video files directly inside dir.
func scanDir(dir string) tea.Msg {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return scannedMsg{dir: dir, err: fmt.Errorf("reading %s: %w", dir, err)}
	}
	var assets []media.Asset
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		a, err := media.Open(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		assets = append(assets, a)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].Name < assets[j].Name })
	return scannedMsg{dir: dir, assets: assets}
}

// Picker is the upload dialog: a fuzzy filter over the media files of one
// directory.
type Picker struct {
	table     table.Model
	textInput textinput.Model
	dir       string
	assets    []media.Asset
	shown     []media.Asset
	siUnit    bool
	status    string
}

// NewPicker creates a picker over dir.
func NewPicker(dir string) *Picker {
	columns := []table.Column{
		{Title: "", Width: 2},
		{Title: "Filename", Width: 30},
		{Title: "Path", Width: 40},
		{Title: "Size", Width: 10},
		{Title: "Modified Time", Width: 20},
	}
	t := table.New(
		table.WithColumns(columns),
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

	ti := textinput.New()
	ti.Placeholder = "Filter images and videos..."
	ti.CharLimit = 64
	ti.Width = 30

	return &Picker{
		table:     t,
		textInput: ti,
		dir:       dir,
	}
}

// SetDir changes the scanned directory for the next Open.
func (p *Picker) SetDir(dir string) {
	p.dir = dir
}

// Open resets the filter and rescans the directory.
func (p *Picker) Open() tea.Cmd {
	p.textInput.SetValue("")
	p.status = "Scanning " + p.dir + "..."
	dir := p.dir
	return tea.Batch(
		p.textInput.Focus(),
		textinput.Blink,
		func() tea.Msg { return scanDir(dir) },
	)
}

func (p *Picker) Update(msg tea.Msg) (*Picker, tea.Cmd) {
	switch msg := msg.(type) {
	case scannedMsg:
		if msg.dir != p.dir {
			return p, nil
		}
		if msg.err != nil {
			p.status = msg.err.Error()
		} else {
			p.status = fmt.Sprintf("%d media files in %s", len(msg.assets), msg.dir)
		}
		p.assets = msg.assets
		p.filter()
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			p.textInput.Blur()
			return p, func() tea.Msg { return PickerClosedMsg{} }
		case "enter":
			if a, ok := p.selected(); ok {
				return p, upload(a)
			}
			return p, nil
		case "ctrl+a":
			if len(p.shown) == 0 {
				return p, nil
			}
			return p, upload(p.shown...)
		case "ctrl+s":
			p.siUnit = !p.siUnit
			p.filter()
			return p, nil
		case "up", "down", "pgup", "pgdown", "home", "end":
			var cmd tea.Cmd
			p.table, cmd = p.table.Update(msg)
			return p, cmd
		}
	}

	before := p.textInput.Value()
	var cmd tea.Cmd
	p.textInput, cmd = p.textInput.Update(msg)
	if p.textInput.Value() != before {
		p.filter()
		p.table.SetCursor(0)
	}
	return p, cmd
}

func upload(assets ...media.Asset) tea.Cmd {
	picked := append([]media.Asset(nil), assets...)
	return func() tea.Msg { return UploadMsg{Assets: picked} }
}

func (p *Picker) selected() (media.Asset, bool) {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.shown) {
		return media.Asset{}, false
	}
	return p.shown[i], true
}

// filter applies the query and rebuilds the table rows. Fuzzy matches are
// ordered best first.
func (p *Picker) filter() {
	query := strings.TrimSpace(p.textInput.Value())
	if query == "" {
		p.shown = p.assets
	} else {
		names := make([]string, len(p.assets))
		for i, a := range p.assets {
			names[i] = a.Name
		}
		matches := fuzzy.Find(query, names)
		p.shown = make([]media.Asset, 0, len(matches))
		for _, m := range matches {
			p.shown = append(p.shown, p.assets[m.Index])
		}
	}

	rows := make([]table.Row, 0, len(p.shown))
	for _, a := range p.shown {
		rows = append(rows, table.Row{
			assetIcon(a),
			a.Name,
			a.Path,
			readableSize(a.Size, p.siUnit),
			a.ModTime.Format("2006-01-02 15:04:05"),
		})
	}
	p.table.SetRows(rows)
}

func assetIcon(a media.Asset) string {
	switch strings.ToLower(filepath.Ext(a.Name)) {
	case ".gif":
		return "🎞"
	}
	if a.Kind == media.Video {
		return "📹"
	}
	return "🖼"
}

func (p *Picker) View() string {
	help := dimStyle.Render("enter upload · ctrl+a upload all · ctrl+s units · esc close")
	return overlayBoxStyle.Render(
		titleStyle.Render("Upload media") + "\n\n" +
			p.textInput.View() + "\n\n" +
			p.table.View() + "\n\n" +
			"Item Count: " + strconv.Itoa(len(p.shown)) +
			" | Status: " + p.status + "\n" + help,
	)
}

func readableSize(bytes int64, si bool) string {
	if bytes == 0 {
		return "0 B"
	}
	unit := 1024.0
	suffixes := []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if si {
		unit = 1000
		suffixes = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}
	}
	i := math.Floor(math.Log(float64(bytes)) / math.Log(unit))
	val := float64(bytes) / math.Pow(unit, i)
	return fmt.Sprintf("%.2f %s", val, suffixes[int(i)])
}
