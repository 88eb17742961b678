// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prng - deterministic pseudo-random generators
//
// Mersenne32 is the canonical 32 bit MT19937, XorShift32 is
// Marsaglia's 13/17/5 generator. Both are plain values: copying one
// copies its complete state.
package prng
