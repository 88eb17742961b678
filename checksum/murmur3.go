// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package checksum

import (
	"encoding/binary"
	"math/bits"
)

// Size - number of bytes in a checksum
const Size = 4

// mixing constants
const (
	c1 = 0xcc9e2d51
	c2 = 0x1b873593
	c3 = 0xe6546b64
	f1 = 0x85ebca6b
	f2 = 0xc2b2ae35
)

// Murmur3 - streaming digest state
//
// implements hash.Hash32
type Murmur3 struct {
	seed       uint32
	h          uint32
	length     uint32 // total bytes written, modulo 2^32
	tail       [4]byte
	tailLength int
}

// New - create a digest with a specific seed
func New(seed uint32) *Murmur3 {
	return &Murmur3{
		seed: seed,
		h:    seed,
	}
}

// Checksum - one-shot checksum with the zero seed
func Checksum(data []byte) uint32 {
	m := Murmur3{}
	m.Write(data)
	return m.Sum32()
}

// Write - accumulate more data, never fails
func (m *Murmur3) Write(p []byte) (int, error) {
	n := len(p)
	m.length += uint32(n)

	// complete a previously buffered partial word
	if m.tailLength > 0 {
		for m.tailLength < 4 && len(p) > 0 {
			m.tail[m.tailLength] = p[0]
			m.tailLength += 1
			p = p[1:]
		}
		if m.tailLength < 4 {
			return n, nil
		}
		m.h = mixBlock(m.h, binary.LittleEndian.Uint32(m.tail[:]))
		m.tailLength = 0
	}

	for len(p) >= 4 {
		m.h = mixBlock(m.h, binary.LittleEndian.Uint32(p))
		p = p[4:]
	}
	m.tailLength = copy(m.tail[:], p)

	return n, nil
}

// Sum32 - finalise a copy of the state, the digest itself is unchanged
func (m *Murmur3) Sum32() uint32 {
	h := m.h

	if m.tailLength > 0 {
		k := uint32(0)
		for i := m.tailLength - 1; i >= 0; i -= 1 {
			k = k<<8 | uint32(m.tail[i])
		}
		h ^= mixK(k)
	}

	h ^= m.length
	h ^= h >> 16
	h *= f1
	h ^= h >> 13
	h *= f2
	h ^= h >> 16
	return h
}

// Sum - append the big endian checksum to b
func (m *Murmur3) Sum(b []byte) []byte {
	var buffer [Size]byte
	binary.BigEndian.PutUint32(buffer[:], m.Sum32())
	return append(b, buffer[:]...)
}

// Clone - independent copy of the running state
func (m *Murmur3) Clone() *Murmur3 {
	c := *m
	return &c
}

// Reset - restart from the original seed
func (m *Murmur3) Reset() {
	*m = Murmur3{
		seed: m.seed,
		h:    m.seed,
	}
}

// Size - bytes in the output of Sum
func (m *Murmur3) Size() int { return Size }

// BlockSize - natural write size
func (m *Murmur3) BlockSize() int { return 4 }

func mixK(k uint32) uint32 {
	k *= c1
	k = bits.RotateLeft32(k, 15)
	return k * c2
}

func mixBlock(h uint32, k uint32) uint32 {
	h ^= mixK(k)
	h = bits.RotateLeft32(h, 13)
	return h*5 + c3
}
