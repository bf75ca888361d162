// Package watcher reports source-file changes while the server runs. Results
// are recomputed per request, so a change needs no invalidation; the watcher
// exists so operators can correlate differing responses with data edits.
package watcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"factoryflow/internal/util"
)

// FileEvent is one observed change to a source file.
type FileEvent struct {
	Path      string
	Operation string
}

// SourceWatcher watches the data directory for CSV changes.
type SourceWatcher struct {
	watcher *fsnotify.Watcher
	events  chan FileEvent
}

// NewSourceWatcher starts watching dir and logging CSV change events.
func NewSourceWatcher(dir string) (*SourceWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	sw := &SourceWatcher{
		watcher: watcher,
		events:  make(chan FileEvent, 100),
	}
	go sw.processEvents()
	return sw, nil
}

func (sw *SourceWatcher) processEvents() {
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				close(sw.events)
				return
			}
			if filepath.Ext(event.Name) != ".csv" {
				continue
			}
			util.LogInfof("Source data changed: %s %s; later responses may differ", event.Op, event.Name)
			select {
			case sw.events <- FileEvent{Path: event.Name, Operation: event.Op.String()}:
			default:
				// Drop when nobody is draining; logging is the primary output.
			}

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("Source watch error: " + err.Error())
		}
	}
}

// Events exposes the change stream for callers that want more than logs.
func (sw *SourceWatcher) Events() <-chan FileEvent {
	return sw.events
}

func (sw *SourceWatcher) Close() error {
	return sw.watcher.Close()
}
