package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kardel/brep2graph/pkg/logging"
)

// ChangeEvent represents a batch of scene file changes
type ChangeEvent struct {
	Paths     []string
	Timestamp time.Time
}

// SceneWatcher watches a scene document for changes so the conversion
// can be re-run. The containing directory is watched rather than the
// file itself: most editors replace the file on save, which would
// otherwise drop the watch.
type SceneWatcher struct {
	watcher *fsnotify.Watcher
	scene   string
	events  chan ChangeEvent
}

// NewSceneWatcher creates a watcher for the given scene file
func NewSceneWatcher(scene string) (*SceneWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	abs, err := filepath.Abs(scene)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to resolve scene path: %w", err)
	}

	return &SceneWatcher{
		watcher: watcher,
		scene:   abs,
		events:  make(chan ChangeEvent, 100),
	}, nil
}

// Start begins watching for scene changes
func (sw *SceneWatcher) Start(ctx context.Context) error {
	if err := sw.watcher.Add(filepath.Dir(sw.scene)); err != nil {
		return fmt.Errorf("failed to watch scene directory: %w", err)
	}

	logging.Info("watching scene", "path", sw.scene)

	go sw.processEvents(ctx)
	return nil
}

// processEvents filters raw file system events down to the scene file
// and batches rapid successions of them
func (sw *SceneWatcher) processEvents(ctx context.Context) {
	var pending []string

	flushTimer := time.NewTimer(100 * time.Millisecond)
	flushTimer.Stop()

	flush := func() {
		if len(pending) == 0 {
			return
		}
		sw.events <- ChangeEvent{
			Paths:     pending,
			Timestamp: time.Now(),
		}
		pending = nil
	}

	for {
		select {
		case <-ctx.Done():
			sw.watcher.Close()
			close(sw.events)
			return

		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}

			// Only the scene file itself is interesting, and only
			// operations that change its content.
			if filepath.Clean(event.Name) != sw.scene {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			pending = append(pending, event.Name)
			flushTimer.Reset(100 * time.Millisecond)

		case <-flushTimer.C:
			flush()

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			logging.Error("watcher error", "error", err)
		}
	}
}

// Events returns the channel of change events
func (sw *SceneWatcher) Events() <-chan ChangeEvent {
	return sw.events
}

// Stop stops the scene watcher
func (sw *SceneWatcher) Stop() error {
	return sw.watcher.Close()
}
