package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/sro/foundation/core/error"
)

// reloadDelay collapses the burst of events editors emit for one save
const reloadDelay = 200 * time.Millisecond

// Watch reloads the file at path whenever it changes and passes each
// valid configuration to onChange until ctx is done. Files that fail to
// load go to onError and the previous configuration stays in effect.
//
// The directory is watched rather than the file, so saves that replace
// the file through a rename are seen too.
func Watch(ctx context.Context, path string, onChange func(*Config), onError func(error)) error {
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create config watcher").
			WithCode(mdwerror.CodeInternal).
			WithOperation("config.Watch")
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("path", path)
	}

	if onError == nil {
		onError = func(error) {}
	}

	go func() {
		defer watcher.Close()

		timer := time.NewTimer(reloadDelay)
		timer.Stop()
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					timer.Reset(reloadDelay)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				onError(mdwerror.Wrap(err, "config watcher failed").
					WithCode(mdwerror.CodeInternal).
					WithOperation("config.Watch"))
			case <-timer.C:
				cfg, err := Load(path)
				if err != nil {
					onError(err)
					continue
				}
				onChange(cfg)
			}
		}
	}()

	return nil
}
