// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package devices

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a catalog file whenever it changes on disk, so a
// design tool can live-edit device definitions. The reload callback
// runs on the watch goroutine; callers that feed the catalog into a
// window must marshal it onto their event goroutine themselves.
type Watcher struct {

	// Filename is the catalog file being watched.
	Filename string

	watcher *fsnotify.Watcher
	done    chan bool
}

// Watch starts watching the given catalog file and calls onReload with
// the freshly loaded catalog each time it changes, or with the load or
// watch error when one occurs. The watch is on the file's directory,
// because editors typically save through a rename of a temporary file,
// which ends the watch on the file itself.
func Watch(filename string, onReload func(*Catalog, error)) (*Watcher, error) {
	w := &Watcher{Filename: filepath.Clean(filename)}
	var err error
	w.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.watcher.Add(filepath.Dir(w.Filename)); err != nil {
		w.watcher.Close()
		return nil, err
	}
	w.done = make(chan bool)
	go w.watch(onReload)
	return w, nil
}

// watch is the event loop, filtering directory events to the catalog
// file. A rename-style save surfaces as Create or Rename on the target
// path, so those ops reload along with Write.
func (w *Watcher) watch(onReload func(*Catalog, error)) {
	for {
		select {
		case <-w.done:
			return
		case event := <-w.watcher.Events:
			if filepath.Clean(event.Name) != w.Filename {
				continue
			}
			switch {
			case event.Op&fsnotify.Create == fsnotify.Create ||
				event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Rename == fsnotify.Rename:
				onReload(Open(w.Filename))
			}
		case err := <-w.watcher.Errors:
			if err != nil {
				onReload(nil, err)
			}
		}
	}
}

// Close stops watching and releases the underlying watcher. It is safe
// to call more than once.
func (w *Watcher) Close() error {
	if w.done == nil {
		return nil
	}
	close(w.done)
	w.done = nil
	return w.watcher.Close()
}
