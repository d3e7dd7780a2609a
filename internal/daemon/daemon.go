// Package daemon implements the optional long-lived "serve" mode: a
// compiled policy kept warm in memory and hot-reloaded when its backing
// TOML files change, so a high-frequency caller doesn't pay a fresh
// parse-and-compile cost per invocation. The default single-shot "check"
// path never touches this package.
package daemon

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/fnzv/security-hook/internal/policy"
)

// Watcher holds the current compiled policy behind an RWMutex, swapped
// wholesale on every reload; readers never block each other and never see
// a partially-updated policy.
type Watcher struct {
	mu      sync.RWMutex
	current *policy.Compiled
	cwd     string

	fsw *fsnotify.Watcher
}

// NewWatcher loads and compiles the policy for cwd once, then starts
// watching the user and project config files for changes.
func NewWatcher(cwd string) (*Watcher, error) {
	compiled, err := loadAndCompile(cwd)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{current: compiled, cwd: cwd, fsw: fsw}

	for _, dir := range configDirs(cwd) {
		if err := fsw.Add(dir); err != nil {
			log.Printf("security-hook: serve: cannot watch %s: %v", dir, err)
		}
	}

	go w.handleEvents(fsw.Events, fsw.Errors)

	return w, nil
}

// Policy returns the currently active compiled policy.
func (w *Watcher) Policy() *policy.Compiled {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Close stops watching and releases the underlying fsnotify handle.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) handleEvents(events <-chan fsnotify.Event, errors <-chan error) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-errors:
			if !ok {
				return
			}
			log.Printf("security-hook: serve: watch error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	compiled, err := loadAndCompile(w.cwd)
	if err != nil {
		log.Printf("security-hook: serve: reload failed, keeping previous policy: %v", err)
		return
	}
	w.mu.Lock()
	w.current = compiled
	w.mu.Unlock()
	log.Println("security-hook: serve: policy reloaded")
}

func loadAndCompile(cwd string) (*policy.Compiled, error) {
	cfg, err := policy.Load(cwd)
	if err != nil {
		return nil, err
	}
	return policy.Compile(cfg)
}

func configDirs(cwd string) []string {
	dirs := []string{cwd}
	if dir, err := userHomeConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	return dirs
}

func userHomeConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".claude"), nil
}
