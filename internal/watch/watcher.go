// Package watch notifies callers when a configuration root's settings.json
// or commands/ tree changes on disk, so a host can decide to rebuild its
// Settings view or command Registry.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/codexplus/ext/internal/logging"
	"github.com/codexplus/ext/internal/paths"
)

const debounceInterval = 300 * time.Millisecond

// ReloadKind distinguishes what changed within a root.
type ReloadKind string

const (
	KindSettings ReloadKind = "settings"
	KindCommands ReloadKind = "commands"
)

// ReloadEvent signals that something changed; it never carries a rebuilt
// value, since rebuilding Settings/Registry stays the host's job.
type ReloadEvent struct {
	Scope paths.Scope
	Path  string
	Kind  ReloadKind
}

// Watcher watches a fixed set of roots and emits debounced ReloadEvents.
// Only directories that exist when New is called are watched from the
// start. A directory created later inside an already-watched directory
// (such as a root's commands/) is added once its creation is seen; a root
// directory that does not exist when New is called is not watched.
type Watcher struct {
	roots  []paths.Root
	fsnw   *fsnotify.Watcher
	events chan ReloadEvent
	done   chan struct{}

	mu      sync.Mutex
	pending map[string]ReloadEvent
}

// New starts watching roots and returns a Watcher whose Events channel
// receives a ReloadEvent for every settled change.
func New(roots []paths.Root) (*Watcher, error) {
	fsnw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		roots:   roots,
		fsnw:    fsnw,
		events:  make(chan ReloadEvent, 16),
		done:    make(chan struct{}),
		pending: make(map[string]ReloadEvent),
	}

	for _, root := range roots {
		w.addExisting(root.Dir)
		w.addExisting(root.Commands)
	}

	go w.loop()
	return w, nil
}

// Events returns the channel ReloadEvents arrive on.
func (w *Watcher) Events() <-chan ReloadEvent {
	return w.events
}

// Close stops the watcher and releases its fsnotify resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsnw.Close()
}

func (w *Watcher) addExisting(dir string) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return
	}
	if err := w.fsnw.Add(dir); err != nil {
		logging.Logger.Warn().Str("dir", dir).Err(err).Msg("failed to watch directory")
	}
	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.IsDir() || path == dir {
			return nil
		}
		if err := w.fsnw.Add(path); err != nil {
			logging.Logger.Warn().Str("dir", path).Err(err).Msg("failed to watch subdirectory")
		}
		return nil
	})
}

func (w *Watcher) loop() {
	ticker := time.NewTicker(debounceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsnw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsnw.Errors:
			if !ok {
				return
			}
			logging.Logger.Warn().Err(err).Msg("watch error")
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if ev.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.fsnw.Add(ev.Name); err != nil {
				logging.Logger.Warn().Str("dir", ev.Name).Err(err).Msg("failed to watch new directory")
			}
			return
		}
	}

	root, kind, ok := w.classify(ev.Name)
	if !ok {
		return
	}

	w.mu.Lock()
	w.pending[ev.Name] = ReloadEvent{Scope: root.Scope, Path: ev.Name, Kind: kind}
	w.mu.Unlock()
}

func (w *Watcher) classify(path string) (paths.Root, ReloadKind, bool) {
	for _, root := range w.roots {
		if path == root.Settings {
			return root, KindSettings, true
		}
		if strings.HasPrefix(path, root.Commands+string(filepath.Separator)) && strings.EqualFold(filepath.Ext(path), ".md") {
			return root, KindCommands, true
		}
	}
	return paths.Root{}, "", false
}

func (w *Watcher) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for key, ev := range w.pending {
		select {
		case w.events <- ev:
		default:
			logging.Logger.Warn().Str("path", ev.Path).Msg("dropping reload event, channel full")
		}
		delete(w.pending, key)
	}
}
