// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package randomhash - memory-hard multi-algorithm proof-of-work digest
//
// A header is hashed by a bounded recursion of Rounds levels. Each level
// mixes the outputs of its parent and of a pseudo-randomly chosen
// neighbour header (same header, different nonce), compresses them,
// runs one of the eighteen table digests selected by a Mersenne Twister
// and inflates the result with Expand. The final 100 byte compression
// of all outputs is hashed with SHA2-256.
//
// A Hasher remembers the neighbour it derived at the top level so a
// caller that continues with NextHeader skips half the work. This is
// purely an optimisation: Compute returns the same digest for a header
// whatever the cache holds.
package randomhash
