// Package watch re-triggers work when files under a directory tree change.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

// Watcher observes Root recursively. Hidden directories are never watched.
type Watcher struct {
	Root     string
	Debounce time.Duration

	// Ignore reports whether an event path should not trigger a run.
	Ignore func(path string) bool
	Logger ports.Logger
}

// New creates a watcher with the default debounce.
func New(root string, ignore func(string) bool, log ports.Logger) *Watcher {
	return &Watcher{Root: root, Debounce: domain.DefaultWatchDebounce, Ignore: ignore, Logger: log}
}

// Run blocks until ctx is done, calling trigger once per burst of changes.
// trigger runs on the calling goroutine, so runs never overlap.
func (w *Watcher) Run(ctx context.Context, trigger func(context.Context)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch init failed: %w", err)
	}
	defer watcher.Close()

	if err := addRecursive(watcher, w.Root); err != nil {
		return fmt.Errorf("watch %s: %w", w.Root, err)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if w.skip(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = addRecursive(watcher, ev.Name)
				}
			}
			w.Logger.Debug("change detected", map[string]interface{}{"path": ev.Name, "op": ev.Op.String()})
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.Debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			trigger(ctx)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn("watch error", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (w *Watcher) skip(path string) bool {
	rel, err := filepath.Rel(w.Root, path)
	if err == nil {
		for _, part := range strings.Split(rel, string(filepath.Separator)) {
			if strings.HasPrefix(part, ".") && part != "." && part != ".." {
				return true
			}
		}
	}
	return w.Ignore != nil && w.Ignore(path)
}

func addRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

// ReportArtifacts ignores files the diagnostic itself produces inside the
// project: the report (and its temp files) and Python bytecode caches.
func ReportArtifacts(reportFileName string) func(string) bool {
	return func(path string) bool {
		name := filepath.Base(path)
		if strings.HasPrefix(name, reportFileName) {
			return true
		}
		if name == "__pycache__" || strings.HasSuffix(name, domain.CompiledArtifactExt) {
			return true
		}
		return strings.Contains(path, string(filepath.Separator)+"__pycache__"+string(filepath.Separator))
	}
}
