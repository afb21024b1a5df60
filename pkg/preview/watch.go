package preview

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const reloadOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// Watch reloads the definition whenever its file is written, created or
// renamed over. The parent directory is watched because editors commonly
// replace files instead of writing in place. Watch blocks until ctx is done.
// onReload, when non nil, is called after every reload attempt.
func (s *Server) Watch(ctx context.Context, onReload func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("preview: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("preview: watch %s: %w", s.path, err)
	}
	s.logger.Info("watching site definition", zap.String("path", s.path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path || event.Op&reloadOps == 0 {
				continue
			}
			err := s.Reload(ctx)
			if err != nil {
				s.logger.Warn("reload failed, keeping last good definition",
					zap.String("path", s.path), zap.Error(err))
			} else {
				s.logger.Info("site definition reloaded",
					zap.String("path", s.path), zap.String("op", event.Op.String()))
			}
			if onReload != nil {
				onReload(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watcher error", zap.Error(err))
		}
	}
}
