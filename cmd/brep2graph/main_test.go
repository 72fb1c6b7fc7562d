package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchSceneTriggersOnChange(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.json")
	doc := `{"name":"one box","solids":[{"kind":"box","dims":[1,1,1]}]}`
	if err := os.WriteFile(scene, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing scene: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- watchScene(ctx, scene, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher time to arm before touching the file.
	time.Sleep(200 * time.Millisecond)
	doc = `{"name":"two boxes","solids":[{"kind":"box","dims":[1,1,1]},{"kind":"box","at":[5,0,0],"dims":[1,1,1]}]}`
	if err := os.WriteFile(scene, []byte(doc), 0o644); err != nil {
		t.Fatalf("rewriting scene: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("scene change did not trigger a re-conversion")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watchScene returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchScene did not stop on context cancel")
	}
}
