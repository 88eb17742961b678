// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/randomhashd/fault"
)

const minerConfiguration = `
local M = {}
M.data_directory = "."
M.pidfile = "randomhash.pid"
M.threads = 2
M.mining = {
    header = "0102030405060708090a0b0c0d0e0f10" .. "00000000",
    bits = "1f00ffff",
    start_nonce = 500,
    report_seconds = 5,
}
M.logging = {
    directory = "log",
    file = "miner.log",
    size = 1048576,
    count = 5,
    levels = {
        DEFAULT = "info",
    },
}
return M
`

func TestGetConfiguration(t *testing.T) {
	directory := testDirectory(t)
	fileName := writeFile(t, directory, "miner.conf", minerConfiguration)

	c, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, directory, c.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(directory, "randomhash.pid"), c.PidFile, "pid file")
	assert.Equal(t, 2, c.Threads, "threads")
	assert.Equal(t, 5*time.Second, c.reportInterval(), "report interval")
	assert.Equal(t, filepath.Join(directory, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "miner.log", c.Logging.File, "log file")

	info, err := os.Stat(c.Logging.Directory)
	assert.Nil(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log directory")

	job, err := c.job()
	assert.Nil(t, err, "job")
	assert.Equal(t, 20, len(job.Header), "header length")
	assert.Equal(t, uint32(500), job.StartNonce, "start nonce")
	assert.Equal(t, uint32(0x1f00ffff), job.Difficulty.Bits(), "bits")
}

func TestConfigurationDefaults(t *testing.T) {
	directory := testDirectory(t)
	fileName := writeFile(t, directory, "miner.conf", `
return {
    data_directory = ".",
    mining = {
        header = "00000000",
        difficulty = 2,
    },
}
`)

	c, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, runtime.NumCPU(), c.Threads, "threads")
	assert.Equal(t, "", c.PidFile, "pid file")
	assert.Equal(t, defaultReportSeconds*time.Second, c.reportInterval(), "report interval")
	assert.Equal(t, defaultLogFile, c.Logging.File, "log file")

	job, err := c.job()
	assert.Nil(t, err, "job")
	assert.Equal(t, 2.0, job.Difficulty.Pdiff(), "pool difficulty")
	assert.Equal(t, uint32(0x20008000), job.Difficulty.Bits(), "bits")
}

func TestConfigurationErrors(t *testing.T) {
	directory := testDirectory(t)

	tests := []struct {
		content  string
		expected error
	}{
		{`return { data_directory = "", mining = { header = "00000000" } }`, fault.ErrConfigurationInvalidDir},
		{`return { data_directory = "." }`, fault.ErrMissingMiningHeader},
		{`return { data_directory = ".", mining = { header = "0000zz00" } }`, fault.ErrInvalidHeader},
		{`return { data_directory = ".", mining = { header = "000000" } }`, fault.ErrInvalidHeader},
		{`return { data_directory = ".", mining = { header = "00000000", bits = "21008000" } }`, fault.ErrInvalidDifficulty},
		{`return { data_directory = ".", mining = { header = "00000000", bits = "8000" } }`, fault.ErrInvalidDifficulty},
		{`return { data_directory = ".", mining = { header = "00000000" }, logging = { file = "a/b.log" } }`, fault.ErrNotAPlainFilename},
	}

	for i, test := range tests {
		fileName := writeFile(t, directory, "error.conf", test.content)
		_, err := getConfiguration(fileName)
		assert.Equal(t, test.expected, err, "%d: %s", i, test.content)
	}
}
