// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"runtime"
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/randomhashd/configuration"
	"github.com/bitmark-inc/randomhashd/difficulty"
	"github.com/bitmark-inc/randomhashd/fault"
	"github.com/bitmark-inc/randomhashd/miner"
	"github.com/bitmark-inc/randomhashd/randomhash"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "randomhash.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultReportSeconds = 60
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// MiningType - the job to search
type MiningType struct {
	Header        string  `gluamapper:"header" json:"header"`
	Bits          string  `gluamapper:"bits" json:"bits"`
	Difficulty    float64 `gluamapper:"difficulty" json:"difficulty"`
	StartNonce    uint32  `gluamapper:"start_nonce" json:"start_nonce"`
	ReportSeconds int     `gluamapper:"report_seconds" json:"report_seconds"`
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Threads       int                  `gluamapper:"threads" json:"threads"`
	Substitute    bool                 `gluamapper:"substitute" json:"substitute"`
	Mining        MiningType           `gluamapper:"mining" json:"mining"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {
	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Threads:       0,  // one per CPU

		Mining: MiningType{
			ReportSeconds: defaultReportSeconds,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	globals := map[string]string{
		"cpu_count": strconv.Itoa(runtime.NumCPU()),
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, globals, options); err != nil {
		return nil, err
	}

	dataDirectory, err := configuration.DataDirectory(configurationFileName, options.DataDirectory)
	if nil != err {
		return nil, err
	}
	options.DataDirectory = dataDirectory

	if options.Threads <= 0 {
		options.Threads = runtime.NumCPU()
	}

	if options.Mining.ReportSeconds <= 0 {
		options.Mining.ReportSeconds = defaultReportSeconds
	}

	if "" != options.PidFile {
		options.PidFile = configuration.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	if err := configuration.PlainFilename(options.Logging.File); nil != err {
		return nil, err
	}
	options.Logging.Directory, err = configuration.MakeDirectory(options.DataDirectory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}

	// validate the job now rather than at each restart
	if _, err := options.job(); nil != err {
		return nil, err
	}

	return options, nil
}

// the mining job described by the configuration
func (c *Configuration) job() (miner.Job, error) {
	if "" == c.Mining.Header {
		return miner.Job{}, fault.ErrMissingMiningHeader
	}
	header, err := hex.DecodeString(c.Mining.Header)
	if nil != err || len(header) < randomhash.NonceSize {
		return miner.Job{}, fault.ErrInvalidHeader
	}

	d := difficulty.New()
	if "" != c.Mining.Bits {
		b, err := hex.DecodeString(c.Mining.Bits)
		if nil != err || 4 != len(b) {
			return miner.Job{}, fault.ErrInvalidDifficulty
		}
		// configuration holds the big endian hex form
		if err := d.SetBits(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])); nil != err {
			return miner.Job{}, err
		}
	} else {
		d.SetPdiff(c.Mining.Difficulty)
	}

	return miner.Job{
		Header:     header,
		Difficulty: d,
		StartNonce: c.Mining.StartNonce,
	}, nil
}

func (c *Configuration) reportInterval() time.Duration {
	return time.Duration(c.Mining.ReportSeconds) * time.Second
}
