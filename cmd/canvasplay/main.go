package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/canvasplay/internal/config"
	"github.com/rileylov/canvasplay/internal/playground"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the exit code after its deferred cleanups have run.
func run(args []string) int {
	flags := flag.NewFlagSet("canvasplay", flag.ContinueOnError)
	configPath := flags.String("config", config.DefaultPath, "Path to the YAML config file (optional)")
	theme := flags.String("theme", "", "Color theme: light or dark (overrides config)")
	grid := flags.Int("grid", 0, "Background grid spacing in pixels (overrides config)")
	dir := flags.String("dir", "", "Directory offered by the upload picker (overrides config)")
	logPath := flags.String("log", "", "Write debug logs to this file")
	showVersion := flags.Bool("version", false, "Show version and exit")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: canvasplay [options]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal playground for draggable cards and resizable media.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Printf("canvasplay %s\n", version)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *grid != 0 {
		cfg.GridSize = *grid
	}
	if *dir != "" {
		cfg.UploadDir = *dir
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *logPath == "" && os.Getenv("DEBUG") != "" {
		*logPath = "debug.log"
	}
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "canvasplay")
		if err != nil {
			fmt.Println("fatal:", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	zone.NewGlobal()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads <-chan config.ReloadedMsg
	if w, err := config.Watch(ctx, *configPath); err != nil {
		log.Printf("config: not watching %s: %v", *configPath, err)
	} else {
		reloads = w.Events()
	}

	p := tea.NewProgram(playground.New(cfg, reloads), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		return 1
	}
	return 0
}
