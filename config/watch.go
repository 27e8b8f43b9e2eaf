package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to a config file. Reloading is left to the caller so
// config values are only ever mutated on the game loop.
type Watcher struct {
	Path    string
	Changed <-chan struct{}

	watcher *fsnotify.Watcher
}

// Watch starts watching the YAML file at path.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}

	// Watch the directory so editors that replace the file are still seen.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	changed := make(chan struct{}, 1)
	target := filepath.Clean(path)
	go func() {
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				select {
				case changed <- struct{}{}:
				default:
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				log.Printf("Warning: config watcher: %v", err)
			}
		}
	}()

	return &Watcher{Path: path, Changed: changed, watcher: fw}, nil
}

// Poll reloads the file if it changed since the last call. It never blocks.
func (w *Watcher) Poll() (reloaded bool, err error) {
	select {
	case <-w.Changed:
		return true, LoadFile(w.Path)
	default:
		return false, nil
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
