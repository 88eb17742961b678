// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package miner

import (
	"math/big"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/randomhashd/blockdigest"
	"github.com/bitmark-inc/randomhashd/randomhash"
)

type worker struct {
	id      int
	jobId   JobIdentifier
	job     Job
	target  *big.Int
	hasher  Hasher
	miner   *Miner
	limiter *rate.Limiter
	claims  *claims
	started time.Time

	// this worker's residue class: StartNonce + id + k × threads
	cursor uint32
}

func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {
	log := args.(*logger.L)

	w.cursor = w.job.StartNonce + uint32(w.id)
	header := randomhash.ChangeNonce(w.job.Header, w.cursor)
	if !w.claims.claim(w.cursor) {
		header = w.advance()
	}
	log.Debugf("worker: %d  job: %s  first nonce: %d", w.id, w.jobId, randomhash.GetNonce(header))

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}

		digest := blockdigest.Digest(w.hasher.Compute(header))
		hashes := atomic.AddUint64(&w.miner.hashes, 1)

		if digest.Cmp(w.target) <= 0 {
			w.submit(log, header, digest)
		}

		if w.limiter.Allow() {
			elapsed := time.Since(w.started).Seconds()
			log.Infof("job: %s  hashes: %d  rate: %.2f H/s", w.jobId, hashes, float64(hashes)/elapsed)
		}

		// follow the neighbour chain until it reaches a searched nonce,
		// either its own cycle or another worker's chain
		next, err := w.hasher.NextHeader()
		if nil != err {
			log.Warnf("worker: %d  next header error: %s", w.id, err)
			next = w.advance()
		} else if !w.claims.claim(randomhash.GetNonce(next)) {
			atomic.AddUint64(&w.miner.revisits, 1)
			next = w.advance()
		}
		header = next
	}

	log.Debugf("worker: %d  job: %s  stopped", w.id, w.jobId)
}

// next unsearched nonce of the residue class
func (w *worker) advance() []byte {
	for {
		w.cursor += uint32(w.miner.threads)
		if w.claims.claim(w.cursor) {
			return randomhash.ChangeNonce(w.job.Header, w.cursor)
		}
	}
}

func (w *worker) submit(log *logger.L, header []byte, digest blockdigest.Digest) {
	atomic.AddUint64(&w.miner.found, 1)

	nonce := randomhash.GetNonce(header)
	log.Infof("job: %s  nonce: %d  digest: %s", w.jobId, nonce, digest)

	solution := Solution{
		Job:    w.jobId,
		Nonce:  nonce,
		Header: header,
		Digest: digest,
	}
	select {
	case w.miner.solutions <- solution:
	default:
		log.Warnf("job: %s  solution queue full, dropped nonce: %d", w.jobId, nonce)
	}
}
