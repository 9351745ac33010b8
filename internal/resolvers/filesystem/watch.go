package filesystem

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/seqres/internal/logger"
)

// watchLocked starts watching the directory containing path.
// Directories are watched rather than files so that editors replacing a
// file by rename are still observed. Caller must hold r.mu.
func (r *Resolver) watchLocked(path string) {
	if r.watcher == nil {
		return
	}
	dir := filepath.Dir(path)
	if r.watched[dir] {
		return
	}
	if err := r.watcher.Add(dir); err != nil {
		logger.Warn("not watching %s for changes: %v", dir, err)
		return
	}
	r.watched[dir] = true
}

func (r *Resolver) watchLoop() {
	defer r.wg.Done()

	for {
		select {
		case <-r.done:
			return
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			r.handleFsEvent(event)
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("file watcher: %v", err)
		}
	}
}

// handleFsEvent evicts the memo entry named by event and reports whether it did.
// Chmod-only events leave content unchanged and are ignored.
func (r *Resolver) handleFsEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	path, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	if r.Evict(path) {
		logger.Debug("evicted %s after %s", path, event.Op)
		return true
	}
	return false
}
