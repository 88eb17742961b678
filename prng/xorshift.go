// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// XorShift32 - single word generator state, must never be zero
type XorShift32 uint32

// NewXorShift32 - create a generator, a zero seed is replaced by one
func NewXorShift32(seed uint32) XorShift32 {
	if 0 == seed {
		seed = 1
	}
	return XorShift32(seed)
}

// Next - advance the state and return it
func (x *XorShift32) Next() uint32 {
	state := uint32(*x)
	state ^= state << 13
	state ^= state >> 17
	state ^= state << 5
	*x = XorShift32(state)
	return state
}
