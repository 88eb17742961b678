// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest

import (
	"encoding/hex"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/randomhashd/algorithm"
	"github.com/bitmark-inc/randomhashd/difficulty"
	"github.com/bitmark-inc/randomhashd/fault"
	"github.com/bitmark-inc/randomhashd/randomhash"
)

const (
	defaultExpiration = 10 * time.Minute
	cleanupInterval   = 20 * time.Minute
)

// Verifier - digests of unrelated headers, with recent results
// remembered since each one costs a full RandomHash
type Verifier struct {
	sync.Mutex
	log    *logger.L
	hasher *randomhash.Hasher
	recent *cache.Cache
}

// NewVerifier - create a verifier over a complete digest table
func NewVerifier(algorithms algorithm.Table, log *logger.L) (*Verifier, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	hasher, err := randomhash.New(algorithms)
	if nil != err {
		return nil, err
	}

	// headers arrive in no particular order so neighbours never match
	hasher.SetCaching(false)

	return &Verifier{
		log:    log,
		hasher: hasher,
		recent: cache.New(defaultExpiration, cleanupInterval),
	}, nil
}

// Digest - the RandomHash digest of a header
func (v *Verifier) Digest(header []byte) Digest {
	key := hex.EncodeToString(header)
	if obj, found := v.recent.Get(key); found {
		v.log.Tracef("cached digest for header: %s", key)
		return obj.(Digest)
	}

	v.Lock()
	digest := Digest(v.hasher.Compute(header))
	v.Unlock()

	v.log.Debugf("header: %s  digest: %s", key, digest)
	v.recent.Set(key, digest, cache.DefaultExpiration)
	return digest
}

// Meets - digest of header and whether it is within the target
func (v *Verifier) Meets(header []byte, target *difficulty.Difficulty) (Digest, bool) {
	digest := v.Digest(header)
	return digest, digest.Cmp(target.BigInt()) <= 0
}

// Remembered - number of digests currently held
func (v *Verifier) Remembered() int {
	return v.recent.ItemCount()
}

// Forget - drop all remembered digests
func (v *Verifier) Forget() {
	v.recent.Flush()
}
