package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestFileWatcherHandleEvent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	writeFile(t, path, "<p>Hi</p>")

	var changed []string
	w := New(dir)
	fw, err := NewFileWatcher(w, func(path string) {
		changed = append(changed, path)
	})
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Stop()

	fw.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Create})
	if w.GetFile(path) == nil {
		t.Fatal("create event did not scan the file")
	}
	if len(changed) != 1 {
		t.Fatalf("onChange ran %d times, want 1", len(changed))
	}

	writeFile(t, path, "<p>Hi")
	fw.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	if f := w.GetFile(path); f.ParseErr == nil {
		t.Error("write event did not pick up the broken content")
	}

	fw.handleEvent(fsnotify.Event{Name: filepath.Join(dir, "notes.txt"), Op: fsnotify.Write})
	if len(changed) != 2 {
		t.Errorf("onChange ran %d times, want 2: non-html files are ignored", len(changed))
	}

	os.Remove(path)
	fw.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Remove})
	if w.GetFile(path) != nil {
		t.Error("remove event did not drop the file")
	}
	if len(changed) != 3 {
		t.Errorf("onChange ran %d times, want 3", len(changed))
	}
}
