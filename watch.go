// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duotone

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/duotone-dev/duotone/base/errors"
	"github.com/duotone-dev/duotone/base/logx"
	"github.com/fsnotify/fsnotify"
)

// debounceDelay is how long a file must stay quiet after a change
// before it is reloaded. Editors produce a burst of write events on
// save; waiting out the burst means the reload sees the final
// contents, not a partially-written intermediate.
const debounceDelay = 100 * time.Millisecond

// shaderWatcher watches on-disk shader source files and reports
// changed paths on the out channel. GPU calls stay in the render
// loop; the watcher goroutine only forwards paths.
type shaderWatcher struct {
	watcher *fsnotify.Watcher
	out     chan<- string

	// files maps absolute paths back to the configured paths,
	// which is what the reload logic matches on.
	files map[string]string

	// timers holds the pending debounce timer per file; each new
	// event during a burst pushes the timer back.
	mu     sync.Mutex
	timers map[string]*time.Timer

	done chan struct{}
}

// newShaderWatcher watches the given shader files, skipping empty
// paths (embedded shaders have no file to watch). Directories are
// watched rather than the files themselves, because editors commonly
// replace files on save.
func newShaderWatcher(out chan<- string, files ...string) (*shaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Log(err)
	}
	sw := &shaderWatcher{
		watcher: w,
		out:     out,
		files:   make(map[string]string),
		timers:  make(map[string]*time.Timer),
		done:    make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, f := range files {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if errors.Log(err) != nil {
			continue
		}
		sw.files[abs] = f
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			errors.Log(err)
		}
	}
	go sw.loop()
	return sw, nil
}

func (sw *shaderWatcher) loop() {
	for {
		select {
		case <-sw.done:
			return
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			fname, watched := sw.files[abs]
			if !watched {
				continue
			}
			sw.schedule(abs, fname)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			logx.Warn("shader watcher", "err", err)
		}
	}
}

// schedule (re)starts the debounce timer for the given file: the
// reload fires once per burst, after the file has been quiet for
// debounceDelay.
func (sw *shaderWatcher) schedule(abs, fname string) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if tm, ok := sw.timers[abs]; ok {
		tm.Reset(debounceDelay)
		return
	}
	sw.timers[abs] = time.AfterFunc(debounceDelay, func() {
		sw.mu.Lock()
		delete(sw.timers, abs)
		sw.mu.Unlock()
		select {
		case sw.out <- fname:
		default: // reload already pending
		}
	})
}

func (sw *shaderWatcher) close() {
	close(sw.done)
	sw.mu.Lock()
	for abs, tm := range sw.timers {
		tm.Stop()
		delete(sw.timers, abs)
	}
	sw.mu.Unlock()
	errors.Log(sw.watcher.Close())
}
