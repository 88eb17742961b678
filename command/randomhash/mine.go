// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/randomhashd/fault"
	"github.com/bitmark-inc/randomhashd/miner"
)

// run the miner until a signal arrives or the configuration file is
// removed
func runMiner(flag commandFlags, configurationFile string) {
	program := flag.program

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != masterConfiguration.PidFile {
		lockFile, err := os.OpenFile(masterConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, masterConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(masterConfiguration.PidFile)
	}

	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix))
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err = watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	m, jobId, err := startMiner(flag, masterConfiguration, log)
	if nil != err {
		exitwithstatus.Message("%s: miner start failed with error: %s", program, err)
	}

	if !flag.quiet {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…\n")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

loop:
	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if !flag.quiet {
				fmt.Printf("\nreceived signal: %v\n", sig)
			}
			break loop

		case <-watcher.remove:
			log.Warn("configuration file removed")
			break loop

		case <-watcher.change:
			c, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("configuration reload error: %s  continuing with job: %s", err, jobId)
				continue loop
			}
			m, jobId, err = reloadMiner(flag, m, masterConfiguration, c, log)
			masterConfiguration = c
			if nil != err {
				fault.Criticalf("miner restart error: %s", err)
				exitwithstatus.Message("%s: miner restart failed with error: %s", program, err)
			}

		case s := <-m.Solutions():
			if s.Job != jobId {
				log.Debugf("discard solution for old job: %s", s.Job)
				continue loop
			}
			log.Infof("solution: job: %s  nonce: %d  digest: %s", s.Job, s.Nonce, s.Digest)
			if !flag.quiet {
				fmt.Printf("nonce: %d  digest: %s  header: %x\n", s.Nonce, s.Digest, s.Header)
			}
		}
	}

	_ = m.Stop()
	if !flag.quiet {
		fmt.Printf("\nshutting down...\n")
	}
}

// create and start a miner for the configuration
func startMiner(flag commandFlags, c *Configuration, log *logger.L) (*miner.Miner, miner.JobIdentifier, error) {
	m, err := newMiner(flag, c)
	if nil != err {
		return nil, 0, err
	}
	jobId, err := startJob(m, c, log)
	if nil != err {
		return nil, 0, err
	}
	return m, jobId, nil
}

// stop the current job and start the reloaded one, the same miner is
// kept unless threads, digest table or report interval changed so job
// identifiers keep increasing
func reloadMiner(flag commandFlags, m *miner.Miner, previous *Configuration, c *Configuration, log *logger.L) (*miner.Miner, miner.JobIdentifier, error) {
	if m.Running() {
		_ = m.Stop()
	}

	if c.Threads != previous.Threads || c.Substitute != previous.Substitute || c.reportInterval() != previous.reportInterval() {
		log.Infof("rebuild miner  threads: %d", c.Threads)
		r, err := newMiner(flag, c)
		if nil != err {
			return m, 0, err
		}
		m = r
	}

	jobId, err := startJob(m, c, log)
	return m, jobId, err
}

func newMiner(flag commandFlags, c *Configuration) (*miner.Miner, error) {
	table, err := digestTable(flag.substitute || c.Substitute)
	if nil != err {
		return nil, err
	}
	return miner.New(miner.NewHasher(table), c.Threads, c.reportInterval(), logger.New("miner"))
}

func startJob(m *miner.Miner, c *Configuration, log *logger.L) (miner.JobIdentifier, error) {
	job, err := c.job()
	if nil != err {
		return 0, err
	}

	jobId, err := m.Start(job)
	if nil != err {
		return 0, err
	}
	log.Infof("job: %s  threads: %d  header: %x", jobId, c.Threads, job.Header)
	return jobId, nil
}
