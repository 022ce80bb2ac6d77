package app

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/iw2rmb/postcursor/internal/checksum"
	"github.com/iw2rmb/postcursor/post"
)

// ReloadFunc receives a freshly decoded post, or the error that prevented
// decoding it.
type ReloadFunc func(*post.Post, error)

// WatchPost reloads the document at path whenever it changes on disk and
// passes the result to fn, until ctx is cancelled.
//
// The parent directory is watched rather than the file so that editors that
// save by renaming a temporary file are picked up. Bursts of events are
// debounced by delay, and writes that leave the content unchanged are
// dropped.
func WatchPost(ctx context.Context, path string, delay time.Duration, logger *slog.Logger, fn ReloadFunc) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	r := newReloader(abs, logger, fn)
	logger.Info("watcher: started", slog.String("path", abs))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(delay)
			fire = timer.C
			return
		}
		timer.Reset(delay)
		fire = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-fire:
			fire = nil
			r.reload()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			logger.Debug("watcher: event", slog.String("op", ev.Op.String()))
			schedule()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

type reloader struct {
	path   string
	logger *slog.Logger
	fn     ReloadFunc
	last   string
}

func newReloader(path string, logger *slog.Logger, fn ReloadFunc) *reloader {
	r := &reloader{path: path, logger: logger, fn: fn}
	if data, err := os.ReadFile(path); err == nil {
		r.last = checksum.Sum(data)
	}
	return r
}

func (r *reloader) reload() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.Warn("watcher: read failed", slog.String("path", r.path), slog.String("error", err.Error()))
		r.fn(nil, fmt.Errorf("reload %s: %w", r.path, err))
		return
	}
	sum := checksum.Sum(data)
	if sum == r.last {
		r.logger.Debug("watcher: content unchanged", slog.String("path", r.path))
		return
	}
	r.last = sum

	p, err := post.Decode(bytes.NewReader(data))
	if err != nil {
		r.logger.Warn("watcher: decode failed", slog.String("path", r.path), slog.String("error", err.Error()))
		r.fn(nil, fmt.Errorf("reload %s: %w", r.path, err))
		return
	}
	r.logger.Info("watcher: reloaded", slog.String("path", r.path), slog.Int("leaves", p.LeafCount()))
	r.fn(p, nil)
}
