// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package miner

import (
	"github.com/bitmark-inc/randomhashd/algorithm"
	"github.com/bitmark-inc/randomhashd/randomhash"
)

//go:generate mockgen -destination=mocks/hasher.go -package=mocks github.com/bitmark-inc/randomhashd/miner Hasher

// Hasher - the part of randomhash.Hasher a worker needs
type Hasher interface {
	Compute(header []byte) [randomhash.DigestLength]byte
	NextHeader() ([]byte, error)
}

// HasherFactory - create a hasher for one worker
type HasherFactory func() (Hasher, error)

// NewHasher - factory of RandomHash engines over a digest table
func NewHasher(algorithms algorithm.Table) HasherFactory {
	return func() (Hasher, error) {
		h, err := randomhash.New(algorithms)
		if nil != err {
			return nil, err
		}
		return h, nil
	}
}
