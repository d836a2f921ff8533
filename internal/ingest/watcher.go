package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

type WatchConfig struct {
	Roots       []string // drop directories to watch (recursive)
	AllowedExts map[string]struct{}
	InitialScan bool          // if true, walk roots and emit existing files
	Debounce    time.Duration // coalesce rapid update/rename bursts
}

// StartWatcher emits paths of contract documents appearing under the roots.
// The caller feeds emitted paths into Ingestor.IngestPath.
func StartWatcher(ctx context.Context, cfg WatchConfig) (<-chan string, <-chan error, error) {
	if len(cfg.Roots) == 0 {
		slog.Error("watcher start failed: no roots provided")
		return nil, nil, errors.New("no roots provided")
	}
	evCh := make(chan string, 256)
	errCh := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("failed to create fsnotify watcher", "error", err)
		return nil, nil, err
	}

	allowed := func(path string) bool {
		if cfg.AllowedExts != nil {
			_, ok := cfg.AllowedExts[filepath.Ext(path)]
			if ok {
				return true
			}
		}
		return AllowedExt(filepath.Ext(path))
	}

	// Add roots recursively
	addDir := func(root string) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return w.Add(path)
			}
			if cfg.InitialScan && allowed(path) {
				select {
				case evCh <- path:
				default:
				}
			}
			return nil
		})
	}
	for _, r := range cfg.Roots {
		if err := addDir(r); err != nil {
			slog.Error("failed to add root directory", "root", r, "error", err)
			_ = w.Close()
			return nil, nil, err
		}
	}

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer func() {
			_ = w.Close()
		}()

		var timer *time.Timer
		pending := map[string]struct{}{}

		sendPending := func() {
			for p := range pending {
				select {
				case evCh <- p:
				default:
				}
				delete(pending, p)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case e := <-w.Events:
				if e.Op&fsnotify.Create == fsnotify.Create {
					// new directories join the watch set; non-dirs fail silently
					_ = w.Add(e.Name)
				}

				if allowed(e.Name) && (e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename)) != 0 {
					pending[e.Name] = struct{}{}
					if cfg.Debounce > 0 {
						if timer != nil {
							timer.Stop()
						}
						timer = time.AfterFunc(cfg.Debounce, sendPending)
					} else {
						sendPending()
					}
				}
			case err := <-w.Errors:
				slog.Error("watcher error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}
