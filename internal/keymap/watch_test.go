package keymap

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nav.json")
	if err := os.WriteFile(path, []byte(jsonKeymap), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	updated := `{"name": "nav2", "bindings": [{"keys": "k", "action": "up"}]}`
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case km := <-w.Keymaps():
		if km.Name != "nav2" {
			t.Errorf("reloaded Name = %q, want %q", km.Name, "nav2")
		}
		if len(km.Bindings) != 1 {
			t.Errorf("reloaded bindings = %d, want 1", len(km.Bindings))
		}
	case err := <-w.Errors():
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nav.json")
	if err := os.WriteFile(path, []byte(jsonKeymap), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
