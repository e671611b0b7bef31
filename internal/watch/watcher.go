// Package watch re-runs a build action when its inputs change.
//
// The directories holding the registered inputs are watched recursively.
// Events are coalesced over a debounce window, and the callback never runs
// twice at the same time: events arriving during a run are replayed once it
// finishes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before the callback fires.
const DefaultDebounce = 500 * time.Millisecond

// Config holds the parameters of a Watcher.
type Config struct {
	// Roots are watched recursively. Missing roots are skipped.
	Roots []string

	// Debounce falls back to DefaultDebounce when not positive.
	Debounce time.Duration

	// OnChange receives the sorted set of changed paths.
	OnChange func(ctx context.Context, changed []string) error

	Logger *log.Logger
}

// Watcher watches a set of directory trees. Run may be called once.
type Watcher struct {
	cfg      Config
	fsw      *fsnotify.Watcher
	logger   *log.Logger
	debounce time.Duration
	started  atomic.Bool
}

// New creates a Watcher and registers every directory under cfg.Roots.
func New(cfg Config) (*Watcher, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}
	w := &Watcher{cfg: cfg, fsw: fsw, logger: logger, debounce: debounce}

	for _, root := range Roots(cfg.Roots) {
		if err := w.addTree(root); err != nil {
			fsw.Close() //nolint:errcheck
			return nil, err
		}
	}
	return w, nil
}

// Roots reduces paths to the directories to watch: files are replaced by
// their parent, and directories nested in another one are dropped.
func Roots(paths []string) []string {
	var dirs []string
	for _, p := range paths {
		p = filepath.Clean(p)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			p = filepath.Dir(p)
		}
		dirs = append(dirs, p)
	}
	slices.Sort(dirs)
	dirs = slices.Compact(dirs)

	var out []string
	for _, d := range dirs {
		if !slices.ContainsFunc(out, func(parent string) bool { return within(d, parent) }) {
			out = append(out, d)
		}
	}
	return out
}

func within(path, dir string) bool {
	if dir == string(filepath.Separator) {
		return true
	}
	return path == dir || strings.HasPrefix(path, dir+string(filepath.Separator))
}

// Run blocks until ctx is cancelled, dispatching debounced callbacks.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return errors.New("watch: Run called more than once")
	}

	var (
		mu      sync.Mutex
		pending = map[string]struct{}{}
		timer   *time.Timer
		running atomic.Bool
	)

	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if !running.CompareAndSwap(false, true) {
			w.logger.Debug("build still running, postponing re-run")
			mu.Lock()
			timer.Reset(w.debounce)
			mu.Unlock()
			return
		}
		defer running.Store(false)

		mu.Lock()
		changed := make([]string, 0, len(pending))
		for p := range pending {
			changed = append(changed, p)
		}
		clear(pending)
		mu.Unlock()
		if len(changed) == 0 {
			return
		}
		slices.Sort(changed)

		w.logger.Info("inputs changed, re-running", "count", len(changed))
		if w.cfg.OnChange != nil {
			if err := w.cfg.OnChange(ctx, changed); err != nil {
				w.logger.Error("build failed", "err", err)
			}
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
		if err := w.fsw.Close(); err != nil {
			w.logger.Warn("watch: close fsnotify", "err", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: fsnotify event channel closed unexpectedly")
			}
			if evt.Has(fsnotify.Chmod) && !evt.Has(fsnotify.Write) {
				continue
			}
			if evt.Has(fsnotify.Create) {
				if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
					if err := w.addTree(evt.Name); err != nil {
						w.logger.Warn("cannot watch new directory", "path", evt.Name, "err", err)
					}
				}
			}

			mu.Lock()
			pending[evt.Name] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: fsnotify error channel closed unexpectedly")
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.logger.Warn("watch: events dropped", "err", err)
				continue
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}

func (w *Watcher) addTree(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root && errors.Is(walkErr, fs.ErrNotExist) {
				w.logger.Debug("watch root does not exist", "path", root)
				return nil
			}
			w.logger.Warn("watch: skipping inaccessible path", "path", path, "err", walkErr)
			return nil //nolint:nilerr
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch: add directory %q: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch: walk %s: %w", root, err)
	}
	return nil
}
