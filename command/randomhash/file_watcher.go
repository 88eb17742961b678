// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/randomhashd/fault"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// watches the configuration file and signals on its channels, each
// holds at most one pending event
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
	done     chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrFileDoesNotExist
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}, nil
}

// watch the directory so that editors which replace the file are seen
func (w *fileWatcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.filePath)); nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go w.run()
	return nil
}

func (w *fileWatcher) Stop() {
	w.watcher.Close()
	<-w.done
}

func (w *fileWatcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Warnf("file: %s removed", w.filePath)
				w.sendEvent(w.remove, "remove")
			} else if watcherEventFileChange(event) {
				w.log.Info("configuration changed")
				w.sendEvent(w.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	if isChannelFull(ch) {
		w.log.Debugf("event channel %s full, discard event", name)
		return
	}
	ch <- struct{}{}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
