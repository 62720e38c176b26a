package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// ChangeKind says what a changed file feeds.
type ChangeKind uint8

const (
	ChangeSpec ChangeKind = iota + 1
	ChangeScript
	ChangeLevel
)

// Change is a debounced edit of a prefab file.
type Change struct {
	Kind ChangeKind
	// Name is relative to the prefabs directory, e.g. "physics.yaml" or
	// "scripts/patrol.tengo". Level changes carry the file name only.
	Name string
}

// Watcher reports edits to physics specs, scripts and level files. Changes are delivered
// on Changes; the game loop drains them between ticks.
type Watcher struct {
	watcher *fsnotify.Watcher
	Changes chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	if len(dirs) == 0 {
		dirs = []string{"prefabs", filepath.Join("prefabs", "scripts"), "levels"}
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Pending returns the changes received so far without blocking.
func (w *Watcher) Pending() []Change {
	var out []Change
	for {
		select {
		case c := <-w.Changes:
			out = append(out, c)
		default:
			return out
		}
	}
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			change, ok := classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[change.Name]; seen && now.Sub(t) < reloadDebounce {
				continue
			}
			last[change.Name] = now
			select {
			case w.Changes <- change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(path string) (Change, bool) {
	name := cleanPrefabPath(filepath.ToSlash(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return Change{Kind: ChangeSpec, Name: filepath.Base(name)}, true
	case ".tengo":
		return Change{Kind: ChangeScript, Name: "scripts/" + filepath.Base(name)}, true
	case ".json":
		return Change{Kind: ChangeLevel, Name: filepath.Base(name)}, true
	}
	return Change{}, false
}
