// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package randomhash_test

import (
	"github.com/bitmark-inc/randomhashd/algorithm"
)

// the standard table with stand-ins for entries that have no Go
// implementation
func completeTable() algorithm.Table {
	return algorithm.Standard().Substitute()
}

// a block header shaped input ending in a 4 byte nonce
func sampleHeader(nonce uint32) []byte {
	header := make([]byte, 0, 64)
	header = append(header, []byte("bitmark-randomhash-sample-header:")...)
	for i := 0; i < 24; i += 1 {
		header = append(header, byte(i*7+3))
	}
	return append(header, byte(nonce), byte(nonce>>8), byte(nonce>>16), byte(nonce>>24))
}
