package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ReloadedMsg carries a freshly loaded configuration, or the error that
// prevented loading it.
type ReloadedMsg struct {
	Config Config
	Err    error
}

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	debounce *Debouncer
	reload   chan struct{}
	out      chan ReloadedMsg
}

// Watch starts watching path until ctx is done. The parent directory is
// watched so that editors replacing the file by rename are noticed.
func Watch(ctx context.Context, path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		fs:       fw,
		debounce: NewDebouncer(0),
		reload:   make(chan struct{}, 1),
		out:      make(chan ReloadedMsg, 1),
	}
	go w.loop(ctx)
	return w, nil
}

// Events delivers reloads. It is closed when the watcher stops.
func (w *Watcher) Events() <-chan ReloadedMsg {
	return w.out
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.out)
	defer w.debounce.Cancel()
	defer w.fs.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.debounce.Trigger(func() {
				select {
				case w.reload <- struct{}{}:
				default:
				}
			})
		case <-w.reload:
			cfg, err := Load(w.path)
			if err != nil {
				log.Printf("config: reload failed: %v", err)
			}
			select {
			case w.out <- ReloadedMsg{Config: cfg, Err: err}:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("config: watcher error: %v", err)
		}
	}
}
