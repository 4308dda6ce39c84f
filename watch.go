package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// WatchInputs calls `onChange` with the path of an input every time it is
// written to, until the context is cancelled
//
// The directories holding the inputs are watched rather than the files
// themselves, since many editors save by replacing the file
func WatchInputs(ctx context.Context, inputs []string, onChange func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not start file watcher")
	}
	defer watcher.Close()

	// Cleaned absolute path of each input, mapped to the path it was given as
	watched := make(map[string]string, len(inputs))
	dirs := make(map[string]bool)
	for _, input := range inputs {
		abs, err := filepath.Abs(input)
		if err != nil {
			return errors.WithStack(err)
		}
		watched[abs] = input

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "could not watch %s", dir)
		}
		dirs[dir] = true
	}

	log.WithField("inputs", len(inputs)).Info("Watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			input, ok := watched[filepath.Clean(event.Name)]
			if !ok {
				continue
			}
			log.WithFields(log.Fields{
				"input": input,
				"op":    event.Op.String(),
			}).Debug("Input changed")
			onChange(input)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithField("error", err).Warn("File watcher error")
		}
	}
}
