// File: watch.go
// Title: Bundle File Watching
// Description: Reloads a directory backed bundle when its files change so
//              message edits take effect without a restart.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Replaced modification time polling with fsnotify

package i18n

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	ruerror "github.com/bastawesy/reactorutils/core/error"
	rulog "github.com/bastawesy/reactorutils/core/log"
)

// Watch reloads the bundle whenever one of its files is written, created,
// removed or renamed. It returns once the watcher is running; watching
// stops when ctx is done. Only bundles built from Options.Dir can be watched.
func (b *Bundle) Watch(ctx context.Context) error {
	if b.dir == "" {
		return ruerror.New("bundle is not backed by a directory").
			WithCode(ruerror.CodeInvalidArgument).
			WithOperation("i18n.Watch").
			WithDetail("base", b.baseName)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return ruerror.Wrap(err, "failed to create bundle watcher").
			WithCode(ruerror.CodeInternal).
			WithOperation("i18n.Watch")
	}

	dir, err := filepath.Abs(filepath.Clean(b.dir))
	if err != nil {
		watcher.Close()
		return ruerror.Wrap(err, "failed to resolve bundle directory").
			WithCode(ruerror.CodeConfigError).
			WithOperation("i18n.Watch").
			WithDetail("directory", b.dir)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return ruerror.Wrap(err, "failed to watch bundle directory").
			WithCode(ruerror.CodeConfigError).
			WithOperation("i18n.Watch").
			WithDetail("directory", dir)
	}

	go b.watchLoop(ctx, watcher)
	return nil
}

func (b *Bundle) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !isReloadEvent(event) {
				continue
			}
			if _, ok := b.localeOf(filepath.Base(event.Name)); !ok {
				continue
			}

			b.logger.Debug("bundle file changed", rulog.Fields{
				"file": event.Name,
				"op":   event.Op.String(),
			})
			if err := b.Reload(); err != nil {
				b.logger.WarnWithErr("bundle reload failed, keeping previous messages", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			b.logger.WarnWithErr("bundle watcher error", err)
		}
	}
}

func isReloadEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
