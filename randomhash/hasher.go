// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package randomhash

import (
	"bytes"

	"github.com/bitmark-inc/randomhashd/algorithm"
	"github.com/bitmark-inc/randomhashd/checksum"
	"github.com/bitmark-inc/randomhashd/collection"
	"github.com/bitmark-inc/randomhashd/fault"
	"github.com/bitmark-inc/randomhashd/prng"
)

// the neighbour derived at the top round of the last computation
type miningCache struct {
	nonce   uint32
	header  []byte
	outputs *collection.Checksummed
}

// Hasher - RandomHash engine
//
// not safe for concurrent use, give each goroutine its own Hasher
type Hasher struct {
	algorithms algorithm.Table
	caching    bool
	cache      *miningCache
}

// New - create a hasher over a complete digest table
func New(algorithms algorithm.Table) (*Hasher, error) {
	if err := algorithms.Validate(); nil != err {
		return nil, err
	}
	return &Hasher{
		algorithms: algorithms,
		caching:    true,
	}, nil
}

// Compute - the 32 byte digest of a header
func (h *Hasher) Compute(header []byte) [DigestLength]byte {
	outputs := h.hashRound(header, Rounds)
	d := h.algorithms[algorithm.SHA2_256](Compress(outputs))

	var digest [DigestLength]byte
	copy(digest[:], d)
	return digest
}

// HashRound - all outputs of one round for a header
func (h *Hasher) HashRound(header []byte, round int) (*collection.Checksummed, error) {
	if round < 1 || round > Rounds {
		return nil, fault.ErrInvalidRound
	}
	return h.hashRound(header, round), nil
}

func (h *Hasher) hashRound(header []byte, round int) *collection.Checksummed {
	var (
		gen          *prng.Mersenne32
		roundInput   []byte
		roundOutputs *collection.Checksummed
	)

	if 1 == round {
		gen = prng.NewMersenne32(checksum.Checksum(header))
		roundInput = header
		roundOutputs = collection.New()
	} else {
		var parentOutputs *collection.Checksummed
		if Rounds == round && h.cacheHit(header) {
			parentOutputs = h.cache.outputs
		} else {
			parentOutputs = h.hashRound(header, round-1)
		}

		gen = prng.NewMersenne32(parentOutputs.Checksum())
		roundOutputs = parentOutputs.Clone()

		neighbourNonce := gen.NextUInt32()
		neighbourHeader := ChangeNonce(header, neighbourNonce)
		neighbourOutputs := h.hashRound(neighbourHeader, round-1)

		if Rounds == round && h.caching {
			h.cache = &miningCache{
				nonce:   neighbourNonce,
				header:  neighbourHeader,
				outputs: neighbourOutputs.Clone(),
			}
		}

		roundOutputs.AddRange(neighbourOutputs)
		roundInput = Compress(roundOutputs)
	}

	index := gen.NextUInt32() % algorithm.Count
	digest := h.algorithms[index](roundInput)
	roundOutputs.Add(Expand(digest, Rounds-round))
	return roundOutputs
}

func (h *Hasher) cacheHit(header []byte) bool {
	c := h.cache
	return h.caching && nil != c && c.nonce == GetNonce(header) && bytes.Equal(c.header, header)
}

// NextHeader - the neighbour header of the last computation, hashing
// it next reuses the cached round outputs
func (h *Hasher) NextHeader() ([]byte, error) {
	if nil == h.cache {
		return nil, fault.ErrNoCachedHeader
	}
	result := make([]byte, len(h.cache.header))
	copy(result, h.cache.header)
	return result, nil
}

// NextNonce - the nonce of NextHeader
func (h *Hasher) NextNonce() (uint32, error) {
	if nil == h.cache {
		return 0, fault.ErrNoCachedHeader
	}
	return h.cache.nonce, nil
}

// SetCaching - enable or disable the mining cache, disabling also clears it
func (h *Hasher) SetCaching(enabled bool) {
	h.caching = enabled
	if !enabled {
		h.cache = nil
	}
}

// ClearCache - forget the last neighbour
func (h *Hasher) ClearCache() {
	h.cache = nil
}
