// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package randomhash

// protocol constants, changing any of these changes every digest
const (
	Rounds         = 5             // recursion depth
	ExpansionUnit  = 10 * 1024 * 5 // bytes added per expansion factor
	CompressedSize = 100           // output of Compress
	DigestLength   = 32            // output of Compute
	NonceSize      = 4             // little endian nonce at the end of a header
)

// number of memory transforms
const transformCount = 8
