package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Overrides.Watch when another process writes to the
// override store. A second CLI invocation (or a background command) racing
// a running UI is the local-store equivalent of a second browser tab; the
// watch lets the UI refresh instead of going stale.
type Event struct {
	// Kind of the namespace that changed.
	Kind Kind
	// Checklist id the change belongs to; empty for the global kinds.
	Checklist string
}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel; it is closed when ctx is done or the watcher hits
// an unrecoverable error.
func (o *overrides) Watch(ctx context.Context) (<-chan Event, error) {
	if o.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(o.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	dirs, err := collectDirs(o.basePath)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case fe, ok := <-watcher.Events:
				if !ok {
					return
				}
				if fe.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(fe.Name); err == nil && info.IsDir() {
						if _, seen := watched[fe.Name]; !seen {
							if err := watcher.Add(fe.Name); err == nil {
								watched[fe.Name] = struct{}{}
							}
						}
						continue
					}
				}
				if ev, ok := o.eventFor(fe.Name); ok {
					select {
					case events <- ev:
					case <-ctx.Done():
						return
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watch error: %v\n", err)
			}
		}
	}()

	return events, nil
}

// eventFor maps a changed file back to its namespace. Layout is
// basePath/<kind>/<base64 namespace>.
func (o *overrides) eventFor(path string) (Event, bool) {
	rel, err := filepath.Rel(o.basePath, path)
	if err != nil {
		return Event{}, false
	}
	parts := splitPath(rel)
	if len(parts) != 2 {
		return Event{}, false
	}
	kind := Kind(parts[0])
	namespace := fromNamespace(parts[1])
	switch kind {
	case KindItemNames, KindItemCompletion:
		return Event{Kind: kind, Checklist: namespace}, true
	case KindColors, KindOrder, KindSession:
		return Event{Kind: kind}, true
	}
	return Event{}, false
}

func splitPath(rel string) []string {
	dir, file := filepath.Split(rel)
	dir = filepath.Clean(dir)
	if dir == "." || dir == string(filepath.Separator) {
		return []string{file}
	}
	return []string{dir, file}
}

func collectDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}
