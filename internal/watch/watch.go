// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package watch re-runs a callback when TypeScript sources change.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tsgram/tsgram/internal/fs"
	"github.com/tsgram/tsgram/internal/source"
)

const DefaultDebounce = 100 * time.Millisecond

// Handler receives the sorted set of paths that changed within one
// debounce window.
type Handler func(ctx context.Context, changed []string) error

type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger
	// dirs are watched whole; files are watched through their parent.
	dirs  map[string]bool
	files map[string]bool
}

// New watches each path. Directories are watched without recursion.
func New(paths []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	self := &Watcher{
		watcher:  w,
		debounce: debounce,
		logger:   logger,
		dirs:     map[string]bool{},
		files:    map[string]bool{},
	}
	added := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			w.Close()
			return nil, err
		}
		dir := abs
		if info.IsDir() {
			self.dirs[abs] = true
		} else {
			self.files[abs] = true
			dir = filepath.Dir(abs)
		}
		if added[dir] {
			continue
		}
		added[dir] = true
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, err
		}
	}
	return self, nil
}

func (self *Watcher) Close() error {
	return self.watcher.Close()
}

// Run blocks until ctx is done or the handler fails.
func (self *Watcher) Run(ctx context.Context, h Handler) error {
	changes := make(chan string)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-self.watcher.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if !self.wanted(ev.Name) {
					continue
				}
				self.logger.Debug("watch event", "path", ev.Name, "op", ev.Op.String())
				select {
				case changes <- ev.Name:
				case <-ctx.Done():
					return
				}
			case err, ok := <-self.watcher.Errors:
				if !ok {
					return
				}
				self.logger.Warn("watch error", "error", err)
			}
		}
	}()
	return debounce(ctx, changes, self.debounce, h)
}

func (self *Watcher) wanted(path string) bool {
	if fs.KindOf(path) == source.FileKindNone {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return self.files[abs] || self.dirs[filepath.Dir(abs)]
}

// debounce collects paths until the window passes with no new path, then
// calls h with the batch.
func debounce(ctx context.Context, in <-chan string, window time.Duration, h Handler) error {
	pending := map[string]bool{}
	timer := time.NewTimer(window)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case p := <-in:
			pending[p] = true
			timer.Reset(window)
		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := make([]string, 0, len(pending))
			for p := range pending {
				batch = append(batch, p)
			}
			sort.Strings(batch)
			pending = map[string]bool{}
			if err := h(ctx, batch); err != nil {
				return err
			}
		}
	}
}
