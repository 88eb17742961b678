// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package miner

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/randomhashd/background"
	"github.com/bitmark-inc/randomhashd/fault"
)

const (
	maximumThreads        = 1024
	solutionQueueSize     = 16
	defaultReportInterval = time.Minute
)

// Miner - a set of workers sharing one job
type Miner struct {
	sync.Mutex

	log            *logger.L
	factory        HasherFactory
	threads        int
	reportInterval time.Duration

	// only incremented, skips the nil identifier on wrap
	jobIdAllocator JobIdentifier

	solutions  chan Solution
	background *background.T

	// updated atomically by the workers
	hashes   uint64
	found    uint64
	revisits uint64
}

// New - create a stopped miner
func New(factory HasherFactory, threads int, reportInterval time.Duration, log *logger.L) (*Miner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if threads < 1 || threads > maximumThreads {
		return nil, fault.ErrInvalidThreadCount
	}
	if reportInterval <= 0 {
		reportInterval = defaultReportInterval
	}

	return &Miner{
		log:            log,
		factory:        factory,
		threads:        threads,
		reportInterval: reportInterval,
		solutions:      make(chan Solution, solutionQueueSize),
	}, nil
}

// Start - begin searching, each call allocates a new job identifier
func (m *Miner) Start(job Job) (JobIdentifier, error) {
	if err := job.validate(); nil != err {
		return jobIdentifierNil, err
	}

	m.Lock()
	defer m.Unlock()

	if nil != m.background {
		return jobIdentifierNil, fault.ErrAlreadyStarted
	}

	m.jobIdAllocator += 1
	if jobIdentifierNil == m.jobIdAllocator {
		m.jobIdAllocator += 1
	}
	jobId := m.jobIdAllocator

	// private copy so the caller may reuse its buffer
	header := make([]byte, len(job.Header))
	copy(header, job.Header)
	job.Header = header

	limiter := rate.NewLimiter(rate.Every(m.reportInterval), 1)
	limiter.Allow() // no report straight after start

	searched := newClaims(defaultClaimLimit)

	processes := make(background.Processes, m.threads)
	for i := range processes {
		h, err := m.factory()
		if nil != err {
			return jobIdentifierNil, err
		}
		processes[i] = &worker{
			id:      i,
			jobId:   jobId,
			job:     job,
			target:  job.Difficulty.BigInt(),
			hasher:  h,
			miner:   m,
			limiter: limiter,
			claims:  searched,
			started: time.Now(),
		}
	}

	m.log.Infof("job: %s  threads: %d  difficulty: %s  start nonce: %d", jobId, m.threads, job.Difficulty, job.StartNonce)
	m.background = background.Start(processes, m.log)

	return jobId, nil
}

// Stop - shut down all workers and wait for them
func (m *Miner) Stop() error {
	m.Lock()
	defer m.Unlock()

	if nil == m.background {
		return fault.ErrNotStarted
	}

	m.background.Stop()
	m.background = nil

	m.log.Infof("stopped  hashes: %d  solutions: %d  revisits: %d", m.Hashes(), m.Found(), m.Revisits())
	return nil
}

// Running - true between Start and Stop
func (m *Miner) Running() bool {
	m.Lock()
	defer m.Unlock()
	return nil != m.background
}

// Solutions - found solutions from all jobs, solutions found while the
// queue is full are dropped
func (m *Miner) Solutions() <-chan Solution {
	return m.solutions
}

// Hashes - total digests computed
func (m *Miner) Hashes() uint64 {
	return atomic.LoadUint64(&m.hashes)
}

// Found - total solutions found
func (m *Miner) Found() uint64 {
	return atomic.LoadUint64(&m.found)
}

// Revisits - neighbour chain steps abandoned because the nonce had
// already been searched
func (m *Miner) Revisits() uint64 {
	return atomic.LoadUint64(&m.revisits)
}
