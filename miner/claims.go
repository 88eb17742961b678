// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package miner

import (
	"sync"
)

// holds more than the expected length of a neighbour chain before it
// cycles, about 82k nonces
const defaultClaimLimit = 1 << 18

// nonces already searched by the workers of one job
type claims struct {
	sync.Mutex
	limit  int
	nonces map[uint32]struct{}
	resets uint64
}

func newClaims(limit int) *claims {
	return &claims{
		limit:  limit,
		nonces: make(map[uint32]struct{}, limit),
	}
}

// claim - true if the nonce has not been searched; a full set is
// emptied first
func (c *claims) claim(nonce uint32) bool {
	c.Lock()
	defer c.Unlock()

	if _, ok := c.nonces[nonce]; ok {
		return false
	}
	if len(c.nonces) >= c.limit {
		c.nonces = make(map[uint32]struct{}, c.limit)
		c.resets += 1
	}
	c.nonces[nonce] = struct{}{}
	return true
}
