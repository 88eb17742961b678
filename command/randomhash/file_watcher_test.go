// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/randomhashd/fault"
)

const watcherTimeout = 5 * time.Second

func TestNewFileWatcherMissingFile(t *testing.T) {
	directory := testDirectory(t)
	_, err := newFileWatcher(filepath.Join(directory, "absent.conf"), logger.New("test"))
	assert.Equal(t, fault.ErrFileDoesNotExist, err, "missing file")
}

func TestFileWatcherEvents(t *testing.T) {
	directory := testDirectory(t)
	fileName := writeFile(t, directory, "watched.conf", "return {}")
	other := filepath.Join(directory, "other.conf")

	w, err := newFileWatcher(fileName, logger.New("test"))
	if nil != err {
		t.Fatalf("new watcher error: %s", err)
	}
	if err := w.Start(); nil != err {
		t.Fatalf("start watcher error: %s", err)
	}
	defer w.Stop()

	// other files in the directory are ignored
	err = ioutil.WriteFile(other, []byte("x"), 0o600)
	assert.Nil(t, err, "write other file")

	err = ioutil.WriteFile(fileName, []byte("return { threads = 1 }"), 0o600)
	assert.Nil(t, err, "write file")

	select {
	case <-w.change:
	case <-time.After(watcherTimeout):
		t.Fatal("no change event")
	}

	os.Remove(fileName)
	select {
	case <-w.remove:
	case <-time.After(watcherTimeout):
		t.Fatal("no remove event")
	}
}

func TestSendEventDiscardsWhenFull(t *testing.T) {
	w := &fileWatcher{
		log:    logger.New("test"),
		change: make(chan struct{}, 1),
	}

	assert.False(t, isChannelFull(w.change), "empty channel full")
	w.sendEvent(w.change, "change")
	assert.True(t, isChannelFull(w.change), "channel not full")

	// must not block
	w.sendEvent(w.change, "change")
	assert.Equal(t, 1, len(w.change), "pending events")
}

func TestEventClassification(t *testing.T) {
	tests := []struct {
		op     fsnotify.Op
		change bool
		remove bool
	}{
		{fsnotify.Write, true, false},
		{fsnotify.Create, true, false},
		{fsnotify.Remove, false, true},
		{fsnotify.Chmod, false, false},
		{fsnotify.Rename, false, false},
	}

	for i, test := range tests {
		event := fsnotify.Event{Name: "x", Op: test.op}
		assert.Equal(t, test.change, watcherEventFileChange(event), "%d: change", i)
		assert.Equal(t, test.remove, watcherEventFileRemove(event), "%d: remove", i)
	}
}
