// Package config loads playground settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rileylov/canvasplay/internal/gesture"
)

// DefaultPath is looked up in the working directory when -config is not
// given.
const DefaultPath = "canvasplay.yaml"

// Grid size bounds and step, in logical pixels.
const (
	MinGrid  = 8
	MaxGrid  = 64
	GridStep = 4
)

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("invalid config")

// Labels are the feedback widget captions.
type Labels struct {
	Positive           string `yaml:"positive"`
	Negative           string `yaml:"negative"`
	Submit             string `yaml:"submit"`
	Cancel             string `yaml:"cancel"`
	CommentPlaceholder string `yaml:"comment_placeholder"`
}

// Feedback configures the feedback widget.
type Feedback struct {
	AllowComment bool   `yaml:"allow_comment"`
	Labels       Labels `yaml:"labels"`
}

// Config is the full set of playground settings.
type Config struct {
	Theme         string        `yaml:"theme"`
	GridSize      int           `yaml:"grid_size"`
	MediaWidth    float64       `yaml:"media_width"`
	MediaHeight   float64       `yaml:"media_height"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	Coalesce      bool          `yaml:"coalesce"`
	UploadDir     string        `yaml:"upload_dir"`
	Feedback      Feedback      `yaml:"feedback"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:         "light",
		GridSize:      24,
		MediaWidth:    400,
		MediaHeight:   300,
		FrameInterval: time.Second / 60,
		Coalesce:      true,
		UploadDir:     ".",
		Feedback: Feedback{
			AllowComment: true,
			Labels: Labels{
				Positive:           "👍 Good",
				Negative:           "👎 Not Good",
				Submit:             "Submit",
				Cancel:             "Cancel",
				CommentPlaceholder: "Tell us more... (optional)",
			},
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects unknown themes and normalizes out-of-range values.
func (c *Config) Validate() error {
	switch c.Theme {
	case "", "light":
		c.Theme = "light"
	case "dark":
	default:
		return fmt.Errorf("theme %q: %w", c.Theme, ErrInvalid)
	}
	c.GridSize = ClampGrid(c.GridSize)

	d := gesture.Dimensions{Width: c.MediaWidth, Height: c.MediaHeight}.AtLeastMin()
	c.MediaWidth, c.MediaHeight = d.Width, d.Height

	if c.FrameInterval < 0 {
		return fmt.Errorf("frame_interval %s: %w", c.FrameInterval, ErrInvalid)
	}
	if c.FrameInterval == 0 {
		c.FrameInterval = Default().FrameInterval
	}
	if c.UploadDir == "" {
		c.UploadDir = "."
	}
	return nil
}

// Dark reports whether the dark theme is selected.
func (c Config) Dark() bool {
	return c.Theme == "dark"
}

// MediaSize is the default size of new media items.
func (c Config) MediaSize() gesture.Dimensions {
	return gesture.Dimensions{Width: c.MediaWidth, Height: c.MediaHeight}
}

// ClampGrid snaps size onto the grid step within [MinGrid, MaxGrid].
func ClampGrid(size int) int {
	if size < MinGrid {
		return MinGrid
	}
	if size > MaxGrid {
		return MaxGrid
	}
	return size - (size-MinGrid)%GridStep
}
