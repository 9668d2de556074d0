package wptokens

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yacobolo/wptokens/internal/themejson"
)

// DefaultDebounce collapses the burst of events editors produce on save
const DefaultDebounce = 500 * time.Millisecond

// ThemeWatcher reloads a store whenever the theme.json at its source path changes.
// Reloads run one at a time on a single goroutine, so the store sees one update after another.
type ThemeWatcher struct {
	store    *themejson.Store
	debounce time.Duration

	mu         sync.Mutex
	watcher    *fsnotify.Watcher
	path       string
	stopChan   chan struct{}
	reloadChan chan struct{}
	wg         sync.WaitGroup
}

// NewThemeWatcher creates a watcher for store. A zero debounce uses DefaultDebounce.
func NewThemeWatcher(store *themejson.Store, debounce time.Duration) *ThemeWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &ThemeWatcher{
		store:    store,
		debounce: debounce,
	}
}

// Start watches the directory holding the store's source path. The store must have
// been loaded first.
func (tw *ThemeWatcher) Start(ctx context.Context) error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.watcher != nil {
		return errors.New("theme watcher already started")
	}

	source := tw.store.SourcePath()
	if source == "" {
		return ErrThemeNotFound
	}

	absPath, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("failed to resolve theme path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory, editors often save by writing a temp file and renaming it
	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch theme directory %s: %w", dir, err)
	}

	tw.watcher = watcher
	tw.path = absPath
	tw.stopChan = make(chan struct{})
	tw.reloadChan = make(chan struct{}, 1)

	tw.wg.Add(2)
	go tw.watchLoop(ctx, watcher, tw.stopChan)
	go tw.reloadLoop(ctx, tw.stopChan)

	slog.Debug("Started watching theme file", "path", absPath)
	return nil
}

// Stop ends watching and waits for a running reload to finish
func (tw *ThemeWatcher) Stop() {
	tw.mu.Lock()
	if tw.stopChan != nil {
		close(tw.stopChan)
		tw.stopChan = nil
	}
	if tw.watcher != nil {
		tw.watcher.Close()
		tw.watcher = nil
	}
	tw.mu.Unlock()

	tw.wg.Wait()
}

func (tw *ThemeWatcher) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, stop <-chan struct{}) {
	defer tw.wg.Done()

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !tw.isRelevant(event) {
				continue
			}

			// Debounce: reset timer on each event
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(tw.debounce, tw.requestReload)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Theme file watcher error", "error", err)
		}
	}
}

// isRelevant reports whether event may have changed the watched file.
// Atomic saves show up as Create or Rename of the target name.
func (tw *ThemeWatcher) isRelevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != tw.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (tw *ThemeWatcher) requestReload() {
	select {
	case tw.reloadChan <- struct{}{}:
	default:
		// a reload is already pending
	}
}

func (tw *ThemeWatcher) reloadLoop(ctx context.Context, stop <-chan struct{}) {
	defer tw.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-tw.reloadChan:
			if err := Reload(tw.store); err != nil {
				// Keep serving the previous tokens until the file parses again
				slog.Warn("Failed to reload theme.json", "path", tw.path, "error", err)
				continue
			}
			slog.Info("Reloaded theme.json", "path", tw.path, "tokens", len(tw.store.ToArray()))
		}
	}
}
