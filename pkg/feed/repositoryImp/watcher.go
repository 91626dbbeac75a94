package repositoryImp

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads path into d whenever the file changes, until ctx is done.
// The parent directory is watched so editors that replace the file are seen.
// A reload that fails keeps the previous table.
func Watch(ctx context.Context, path string, d *Directory, log *zap.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return err
	}
	target := filepath.Clean(path)

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				list, err := LoadFile(path)
				if err != nil {
					log.Warn("supplier reload failed, keeping previous table", zap.String("file", path), zap.Error(err))
					continue
				}
				d.Replace(list)
				log.Info("supplier table reloaded", zap.String("file", path), zap.Int("suppliers", len(list)))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("supplier watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}
