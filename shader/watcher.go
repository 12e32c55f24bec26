package shader

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a watched file must stay quiet before a change
// is reported. Editors often save in several writes.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a set of shader files. A burst of events closer
// together than the debounce interval yields one notification, and pending
// notifications are coalesced until Changes is read.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	changes  chan struct{}
	done     chan struct{}
	debounce time.Duration
	timer    *time.Timer
}

// NewWatcher watches the directories holding paths. Editors that save by
// rename replace the file, so the directory is watched rather than the file.
func NewWatcher(paths ...string) (*Watcher, error) {
	return newWatcher(DefaultDebounce, paths)
}

func newWatcher(debounce time.Duration, paths []string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	w := &Watcher{
		watcher:  fw,
		files:    make(map[string]bool),
		changes:  make(chan struct{}, 1),
		done:     make(chan struct{}),
		debounce: debounce,
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			if w.timer != nil {
				w.timer.Stop()
			}
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			if w.timer == nil {
				w.timer = time.AfterFunc(w.debounce, w.notify)
			} else {
				w.timer.Reset(w.debounce)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Shader watcher error: %v", err)
		}
	}
}

func (w *Watcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

// Changes delivers a value after a watched file was written or replaced.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Changed reports, without blocking, whether a change is pending.
func (w *Watcher) Changed() bool {
	select {
	case <-w.changes:
		return true
	default:
		return false
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
