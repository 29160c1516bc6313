package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/penwyp/go-linechart/internal/util"
)

// Event reports a change of the watched file
type Event struct {
	Path      string
	Operation string
}

// FileWatcher reports changes of a single file. The parent directory is
// watched so editors that replace the file on save are still observed.
// Bursts of events closer than the debounce delay are reported once.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	events   chan Event
	done     chan struct{}
	once     sync.Once
}

// NewFileWatcher starts watching path
func NewFileWatcher(path string, debounce time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	fw := &FileWatcher{
		watcher:  watcher,
		path:     abs,
		debounce: debounce,
		events:   make(chan Event, 1),
		done:     make(chan struct{}),
	}
	go fw.processEvents()

	util.LogDebugf("Watching %s", abs)
	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending Event
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-fw.done:
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			pending = Event{Path: event.Name, Operation: event.Op.String()}
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			select {
			case fw.events <- pending:
			default:
				// a change is already queued, the reader reloads the latest content
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogWarn("File monitoring error: " + err.Error())
		}
	}
}

// Events returns the change notifications
func (fw *FileWatcher) Events() <-chan Event {
	return fw.events
}

// Close stops watching. It may be called more than once.
func (fw *FileWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		close(fw.done)
		err = fw.watcher.Close()
	})
	return err
}
