package catalog

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads catalog files as they change on disk. It blocks until
// the context is canceled. Files are reloaded on create and write
// events; a failed reload is logged and watching continues, so a
// half-written file does not stop the watcher.
func (l *Loader) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create catalog watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch catalog directory %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !isCatalogFile(filepath.Base(event.Name)) {
				continue
			}
			result, err := l.LoadFile(event.Name)
			if err != nil {
				log.Printf("catalog reload of %s failed: %v", event.Name, err)
				continue
			}
			log.Printf("catalog reloaded framework %s (%d requirements) from %s",
				result.FrameworkCode, result.Requirements, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("catalog watcher error: %v", err)
		}
	}
}
