// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"log/slog"
	"path/filepath"
	"sync"

	"cogentcore.org/animedit/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a motion path file into a [Provider]
// whenever the file changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
	stopped chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// Watch loads the given motion path file into the given provider and
// then keeps it updated until [Watcher.Close] is called. The directory
// is watched rather than the file, so that editors that replace the
// file on save are followed.
func Watch(filename string, p *Provider) (*Watcher, error) {
	filename = filepath.Clean(filename)
	if err := Reload(filename, p); err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(filename)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{watcher: fw, done: make(chan struct{}), stopped: make(chan struct{})}
	go w.watch(filename, p)
	return w, nil
}

func (w *Watcher) watch(filename string, p *Provider) {
	defer close(w.stopped)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				paths, err := OpenPaths(filename)
				if err != nil {
					errors.Log(err)
					continue
				}
				p.Update(paths) // logs its own errors
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("anim.Watcher", "file", filename, "err", err)
		}
	}
}

// Close stops watching and waits for the watch goroutine to exit.
// Later calls return the result of the first one.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.watcher.Close()
		<-w.stopped
	})
	return w.closeErr
}

// Reload reads the given motion path file and updates the provider.
func Reload(filename string, p *Provider) error {
	paths, err := OpenPaths(filename)
	if err != nil {
		return err
	}
	return p.Update(paths)
}
