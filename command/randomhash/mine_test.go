// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/randomhashd/fault"
	"github.com/bitmark-inc/randomhashd/miner"
)

func TestReloadMiner(t *testing.T) {
	directory := testDirectory(t)
	fileName := writeFile(t, directory, "miner.conf", minerConfiguration)

	c, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	flag := commandFlags{program: "randomhash", quiet: true, substitute: true}
	log := logger.New("main")

	m, first, err := startMiner(flag, c, log)
	if nil != err {
		t.Fatalf("start miner error: %s", err)
	}
	assert.Equal(t, miner.JobIdentifier(1), first, "first job")

	// new job, same miner
	moved := *c
	moved.Mining.StartNonce = 9000
	kept, second, err := reloadMiner(flag, m, c, &moved, log)
	assert.Nil(t, err, "reload")
	assert.True(t, m == kept, "miner replaced")
	assert.True(t, kept.Running(), "not running after reload")
	assert.Equal(t, miner.JobIdentifier(2), second, "second job")

	// thread count change needs a new miner
	wider := moved
	wider.Threads = moved.Threads + 1
	rebuilt, third, err := reloadMiner(flag, kept, &moved, &wider, log)
	assert.Nil(t, err, "rebuild")
	assert.True(t, kept != rebuilt, "miner kept")
	assert.False(t, kept.Running(), "old miner still running")
	assert.True(t, rebuilt.Running(), "new miner not running")
	assert.Equal(t, miner.JobIdentifier(1), third, "job of new miner")

	assert.Nil(t, rebuilt.Stop(), "stop")
}

func TestReloadBadJob(t *testing.T) {
	directory := testDirectory(t)
	fileName := writeFile(t, directory, "miner.conf", minerConfiguration)

	c, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	flag := commandFlags{program: "randomhash", quiet: true, substitute: true}
	log := logger.New("main")

	m, _, err := startMiner(flag, c, log)
	if nil != err {
		t.Fatalf("start miner error: %s", err)
	}

	broken := *c
	broken.Mining.Header = "zz"
	kept, _, err := reloadMiner(flag, m, c, &broken, log)
	assert.Equal(t, fault.ErrInvalidHeader, err, "bad header accepted")
	assert.True(t, m == kept, "miner replaced")
	assert.False(t, kept.Running(), "running with a bad job")
}
