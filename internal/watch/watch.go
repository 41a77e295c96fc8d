// Package watch reports changes to a fixed set of source files.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const changeOps = fsnotify.Create | fsnotify.Write | fsnotify.Rename

// Run calls onChange with the path of each watched file that is written or
// replaced, until ctx is done. Parent directories are watched so files
// saved by rename are still seen.
func Run(ctx context.Context, paths []string, onChange func(path string)) error {
	logger := zerolog.Ctx(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	watched := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		watched[abs] = p
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	logger.Debug().Strs("paths", paths).Msg("watching")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&changeOps == 0 {
				continue
			}
			name, ok := watched[filepath.Clean(ev.Name)]
			if !ok {
				continue
			}
			logger.Debug().Str("path", name).Str("op", ev.Op.String()).Msg("changed")
			onChange(name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watch error")
		}
	}
}
