package server

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Bitlatte/portfolio/internal/blog"
)

// DefaultDebounce is how long the watcher waits after the last change
// before reloading.
const DefaultDebounce = 500 * time.Millisecond

// WatchPosts reloads posts from contentDir whenever a file under it
// changes, until ctx is cancelled. A reload that fails keeps the previous
// posts.
func (s *Server) WatchPosts(ctx context.Context, contentDir string, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	root := filepath.Join(contentDir, blog.Dir)
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("Blog directory not found, not watching", zap.String("dir", root))
		<-ctx.Done()
		return nil
	}
	if err := addTree(watcher, root); err != nil {
		return err
	}

	reload := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			s.logger.Debug("Change detected", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := addTree(watcher, event.Name); err != nil {
					s.logger.Warn("Failed to watch new directory", zap.String("dir", event.Name), zap.Error(err))
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			posts, err := blog.Load(contentDir)
			if err != nil {
				s.logger.Error("Reloading posts failed, keeping previous posts", zap.Error(err))
				continue
			}
			s.SetPosts(posts)
			s.logger.Info("Posts reloaded", zap.Int("count", len(posts)))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("Watcher error", zap.Error(err))
		}
	}
}

func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
