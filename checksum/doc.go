// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package checksum - streaming 32 bit Murmur3 (x86 variant)
//
// non-cryptographic, only used to seed the pseudo-random generators
// that steer RandomHash; the digest can be cloned so a prefix can be
// finalised while the original continues to accumulate
package checksum
