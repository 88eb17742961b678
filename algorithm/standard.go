// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package algorithm

import (
	"crypto/md5"
	"crypto/sha512"

	"github.com/jzelinskie/whirlpool"
	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/randomhashd/fault"
)

// Standard - table populated with every conforming Go implementation
// available; the remaining entries are nil and must be supplied with
// Table.With before the table will validate
func Standard() Table {
	return Table{
		SHA2_256: func(b []byte) []byte {
			d := sha256.Sum256(b)
			return d[:]
		},
		SHA2_384: func(b []byte) []byte {
			d := sha512.Sum384(b)
			return d[:]
		},
		SHA2_512: func(b []byte) []byte {
			d := sha512.Sum512(b)
			return d[:]
		},
		SHA3_256: func(b []byte) []byte {
			d := sha3.Sum256(b)
			return d[:]
		},
		SHA3_384: func(b []byte) []byte {
			d := sha3.Sum384(b)
			return d[:]
		},
		SHA3_512: func(b []byte) []byte {
			d := sha3.Sum512(b)
			return d[:]
		},
		RIPEMD160: func(b []byte) []byte {
			h := ripemd160.New()
			h.Write(b)
			return h.Sum(nil)
		},
		Blake2b_512: func(b []byte) []byte {
			d := blake2b.Sum512(b)
			return d[:]
		},
		Blake2s_256: func(b []byte) []byte {
			d := blake2s.Sum256(b)
			return d[:]
		},
		MD5: func(b []byte) []byte {
			d := md5.Sum(b)
			return d[:]
		},
		Whirlpool: func(b []byte) []byte {
			h := whirlpool.New()
			h.Write(b)
			return h.Sum(nil)
		},
	}
}

// Substitute - copy of the table with every absent entry replaced by
// BLAKE2b of the published size keyed with the entry's name
//
// digests from a substituted table do not match other RandomHash
// implementations, use only for testing and private networks
func (t Table) Substitute() Table {
	for _, index := range t.Missing() {
		t[index] = keyedBlake2b(index)
	}
	return t
}

func keyedBlake2b(index int) Function {
	size := Size(index)
	key := []byte(Name(index))
	return func(b []byte) []byte {
		h, err := blake2b.New(size, key)
		fault.PanicIfError("blake2b stand-in", err)
		h.Write(b)
		return h.Sum(nil)
	}
}
