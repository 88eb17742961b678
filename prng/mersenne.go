// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// MT19937 parameters
const (
	stateSize   = 624
	shiftSize   = 397
	matrixA     = 0x9908b0df
	upperMask   = 0x80000000
	lowerMask   = 0x7fffffff
	initFactor  = 1812433253
	temperingB  = 0x9d2c5680
	temperingC  = 0xefc60000
	temperingU  = 11
	temperingS  = 7
	temperingT  = 15
	temperingL  = 18
)

// Mersenne32 - 32 bit Mersenne Twister state
type Mersenne32 struct {
	state [stateSize]uint32
	index int
}

// NewMersenne32 - create a generator from a seed
func NewMersenne32(seed uint32) *Mersenne32 {
	m := &Mersenne32{}
	m.Initialise(seed)
	return m
}

// Initialise - reseed the generator
func (m *Mersenne32) Initialise(seed uint32) {
	m.state[0] = seed
	for i := 1; i < stateSize; i += 1 {
		previous := m.state[i-1]
		m.state[i] = initFactor*(previous^(previous>>30)) + uint32(i)
	}
	m.index = stateSize
}

// NextUInt32 - next tempered output
func (m *Mersenne32) NextUInt32() uint32 {
	if m.index >= stateSize {
		m.twist()
	}

	y := m.state[m.index]
	m.index += 1

	y ^= y >> temperingU
	y ^= (y << temperingS) & temperingB
	y ^= (y << temperingT) & temperingC
	y ^= y >> temperingL
	return y
}

// regenerate the whole state block
func (m *Mersenne32) twist() {
	for i := 0; i < stateSize; i += 1 {
		y := m.state[i]&upperMask | m.state[(i+1)%stateSize]&lowerMask
		next := m.state[(i+shiftSize)%stateSize] ^ y>>1
		if 0 != y&1 {
			next ^= matrixA
		}
		m.state[i] = next
	}
	m.index = 0
}
