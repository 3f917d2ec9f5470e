package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	fs      *fsnotify.Watcher
	path    string
	updates chan RaceConfig
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching path. The file's directory is watched rather than
// the file itself so editors that save by rename are picked up too.
// Only valid configurations are delivered on Updates.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fs:      fw,
		path:    abs,
		updates: make(chan RaceConfig, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			cfg, err := loadFile(w.path)
			if err == nil {
				err = cfg.Validate()
			}
			if err != nil {
				w.send(w.errs, err)
				continue
			}
			w.sendConfig(cfg)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.send(w.errs, err)
		}
	}
}

// sendConfig keeps only the newest pending config.
func (w *Watcher) sendConfig(cfg RaceConfig) {
	for {
		select {
		case w.updates <- cfg:
			return
		case <-w.done:
			return
		default:
			select {
			case <-w.updates:
			default:
			}
		}
	}
}

func (w *Watcher) send(ch chan error, err error) {
	select {
	case ch <- err:
	default:
	}
}

// Updates delivers reloaded configurations.
func (w *Watcher) Updates() <-chan RaceConfig {
	return w.updates
}

// Errors delivers read, parse and validation failures.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Done is closed once the watcher stops.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}
