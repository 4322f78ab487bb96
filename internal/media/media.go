// Package media classifies uploaded files and loads the natural size of
// image assets so the canvas can lock their aspect ratio.
package media

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ErrUnsupported is returned for files that are neither images nor videos.
var ErrUnsupported = errors.New("unsupported media type")

// Kind is the broad type of an asset.
type Kind int

const (
	Image Kind = iota
	Video
)

func (k Kind) String() string {
	if k == Video {
		return "video"
	}
	return "image"
}

var extensions = map[string]Kind{
	".png":  Image,
	".jpg":  Image,
	".jpeg": Image,
	".gif":  Image,
	".webp": Image,
	".bmp":  Image,
	".mp4":  Video,
	".mov":  Video,
	".webm": Video,
	".mkv":  Video,
	".avi":  Video,
}

// Asset is one uploaded file.
type Asset struct {
	ID      string
	Path    string
	Name    string
	Kind    Kind
	Size    int64
	ModTime time.Time
}

// KindOf classifies path by extension, falling back to sniffing its first
// bytes.
func KindOf(path string) (Kind, error) {
	if k, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return k, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("reading header: %w", err)
	}
	switch ct := http.DetectContentType(buf[:n]); {
	case strings.HasPrefix(ct, "image/"):
		return Image, nil
	case strings.HasPrefix(ct, "video/"):
		return Video, nil
	default:
		return 0, fmt.Errorf("%s (%s): %w", filepath.Base(path), ct, ErrUnsupported)
	}
}

// Open stats and classifies path.
func Open(path string) (Asset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Asset{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Asset{}, fmt.Errorf("%s is a directory: %w", path, ErrUnsupported)
	}
	kind, err := KindOf(path)
	if err != nil {
		return Asset{}, err
	}
	return Asset{
		Path:    path,
		Name:    filepath.Base(path),
		Kind:    kind,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// NaturalSize reads the image dimensions without decoding pixels. Images
// whose EXIF orientation rotates them by 90 or 270 degrees report swapped
// sides, matching how they are displayed.
func NaturalSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	config, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image config: %w", err)
	}
	w, h := config.Width, config.Height

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, 0, fmt.Errorf("seeking file for exif: %w", err)
	}
	if rotated(orientation(f)) {
		w, h = h, w
	}
	return w, h, nil
}

// orientation returns the EXIF orientation tag, or 1 when absent.
func orientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return v
}

func rotated(o int) bool {
	return o >= 5 && o <= 8
}

// LoadedMsg reports the natural size of an image asset. Preview holds the
// decoded pixels when they could be read.
type LoadedMsg struct {
	ID      string
	Width   int
	Height  int
	Preview image.Image
	Err     error
}

// AspectRatio returns width/height when the load succeeded.
func (m LoadedMsg) AspectRatio() (float64, bool) {
	if m.Err != nil || m.Width <= 0 || m.Height <= 0 {
		return 0, false
	}
	return float64(m.Width) / float64(m.Height), true
}

// LoadCmd loads an image asset in the background. Videos have no natural
// size to lock to and yield a nil command.
func LoadCmd(a Asset) tea.Cmd {
	if a.Kind != Image {
		return nil
	}
	return func() tea.Msg {
		return Load(a)
	}
}

// Load reads the natural size and a preview of an image asset.
func Load(a Asset) LoadedMsg {
	w, h, err := NaturalSize(a.Path)
	if err != nil {
		log.Printf("media: loading %s: %v", a.Name, err)
		return LoadedMsg{ID: a.ID, Err: err}
	}
	msg := LoadedMsg{ID: a.ID, Width: w, Height: h}

	f, err := os.Open(a.Path)
	if err != nil {
		return msg
	}
	defer f.Close()
	if img, _, err := image.Decode(f); err == nil {
		msg.Preview = img
	}
	return msg
}
