package workspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher keeps a Workspace in sync with filesystem events for the
// HTML files under its root. onChange runs after the workspace has been
// updated for a path.
type FileWatcher struct {
	workspace *Workspace
	watcher   *fsnotify.Watcher
	onChange  func(path string)
	stopCh    chan struct{}
}

func NewFileWatcher(ws *Workspace, onChange func(path string)) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FileWatcher{
		workspace: ws,
		watcher:   watcher,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
	}, nil
}

func (w *FileWatcher) Start() error {
	if err := w.addRecursive(w.workspace.RootDir()); err != nil {
		return err
	}
	go w.run()
	return nil
}

func (w *FileWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
}

func (w *FileWatcher) run() {
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *FileWatcher) handleEvent(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !strings.HasPrefix(filepath.Base(event.Name), ".") {
				w.addRecursive(event.Name)
			}
			return
		}
	}

	if !IsHTMLFile(event.Name) {
		return
	}

	switch {
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		w.workspace.RemoveFile(event.Name)
	case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
		if err := w.workspace.ScanFile(event.Name); err != nil {
			// The file may be gone already, a remove event follows.
			return
		}
	default:
		return
	}

	if w.onChange != nil {
		w.onChange(event.Name)
	}
}

func (w *FileWatcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}
