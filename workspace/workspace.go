package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/hast/html"
)

// Workspace tracks the parse state of every HTML file under a root
// directory. All methods are safe for concurrent use.
type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
}

type FileInfo struct {
	Path     string
	Content  []byte
	Document *html.Document
	ParseErr error
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != w.rootDir {
				return filepath.SkipDir
			}
			return nil
		}
		if IsHTMLFile(path) {
			w.ScanFile(path)
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return w.UpdateFile(path, content)
}

func (w *Workspace) UpdateFile(path string, content []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc, parseErr := html.Parse(string(content))
	w.files[path] = &FileInfo{
		Path:     path,
		Content:  content,
		Document: doc,
		ParseErr: parseErr,
	}
	return nil
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns the tracked files ordered by path.
func (w *Workspace) Files() []*FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()

	files := make([]*FileInfo, 0, len(w.files))
	for _, f := range w.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}

// Diagnostic couples a file path with the parse failure found in it.
type Diagnostic struct {
	Path string
	Err  *html.ParseError
}

// Diagnostics returns one entry per failing file, ordered by path.
func (w *Workspace) Diagnostics() []Diagnostic {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var diags []Diagnostic
	for _, f := range w.files {
		var perr *html.ParseError
		if errors.As(f.ParseErr, &perr) {
			diags = append(diags, Diagnostic{Path: f.Path, Err: perr})
		}
	}
	sort.Slice(diags, func(i, j int) bool {
		return diags[i].Path < diags[j].Path
	})
	return diags
}

// IsHTMLFile reports whether path has an extension this toolchain
// handles.
func IsHTMLFile(path string) bool {
	switch filepath.Ext(path) {
	case ".html", ".htm":
		return true
	}
	return false
}
