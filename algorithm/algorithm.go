// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package algorithm - the table of digest functions RandomHash selects from
//
// each entry is consumed only as "bytes in, fixed length digest out" and
// must be bit-exact with its published reference; a non-conforming entry
// silently yields wrong proof-of-work results
package algorithm

import (
	"fmt"

	"github.com/bitmark-inc/randomhashd/fault"
)

// Count - number of entries in a table
const Count = 18

// table indices
const (
	SHA2_256 = iota
	SHA2_384
	SHA2_512
	SHA3_256
	SHA3_384
	SHA3_512
	RIPEMD160
	RIPEMD256
	RIPEMD320
	Blake2b_512
	Blake2s_256
	Tiger2_5_192
	Snefru_8_256
	Grindahl512
	Haval_5_256
	MD5
	RadioGatun32
	Whirlpool
)

// Function - compute a digest of a byte slice
type Function func([]byte) []byte

// Table - immutable dispatch table, copy to modify
type Table [Count]Function

type description struct {
	name string
	size int
}

var descriptions = [Count]description{
	SHA2_256:     {"SHA2-256", 32},
	SHA2_384:     {"SHA2-384", 48},
	SHA2_512:     {"SHA2-512", 64},
	SHA3_256:     {"SHA3-256", 32},
	SHA3_384:     {"SHA3-384", 48},
	SHA3_512:     {"SHA3-512", 64},
	RIPEMD160:    {"RIPEMD-160", 20},
	RIPEMD256:    {"RIPEMD-256", 32},
	RIPEMD320:    {"RIPEMD-320", 40},
	Blake2b_512:  {"BLAKE2b-512", 64},
	Blake2s_256:  {"BLAKE2s-256", 32},
	Tiger2_5_192: {"Tiger2-5-192", 24},
	Snefru_8_256: {"Snefru-8-256", 32},
	Grindahl512:  {"Grindahl-512", 64},
	Haval_5_256:  {"HAVAL-5-256", 32},
	MD5:          {"MD5", 16},
	RadioGatun32: {"RadioGatun32", 32},
	Whirlpool:    {"Whirlpool", 64},
}

// Name - printable name of an entry
func Name(index int) string {
	if index < 0 || index >= Count {
		return fmt.Sprintf("*unknown-%d*", index)
	}
	return descriptions[index].name
}

// Size - published output length in bytes of an entry
func Size(index int) int {
	if index < 0 || index >= Count {
		return 0
	}
	return descriptions[index].size
}

// With - copy of the table with one entry replaced
func (t Table) With(index int, f Function) (Table, error) {
	if index < 0 || index >= Count {
		return t, fault.ErrInvalidAlgorithmIndex
	}
	t[index] = f
	return t, nil
}

// Available - true if an entry is present
func (t *Table) Available(index int) bool {
	return index >= 0 && index < Count && nil != t[index]
}

// Missing - indices of all absent entries
func (t *Table) Missing() []int {
	missing := make([]int, 0, Count)
	for i, f := range t {
		if nil == f {
			missing = append(missing, i)
		}
	}
	return missing
}

// Validate - every entry must be present and produce its published size
func (t *Table) Validate() error {
	sample := []byte("randomhash")
	for i, f := range t {
		if nil == f {
			return fault.ErrAlgorithmMissing
		}
		if len(f(sample)) != descriptions[i].size {
			return fault.ErrAlgorithmSizeMismatch
		}
	}
	return nil
}
