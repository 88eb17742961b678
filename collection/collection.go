// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package collection - ordered list of byte buffers with a running checksum
//
// the checksum covers the concatenation of all buffers in order and is
// maintained incrementally as buffers are appended; buffers are shared,
// not copied, so callers must not modify a buffer after adding it
package collection

import (
	"github.com/bitmark-inc/randomhashd/checksum"
)

// Checksummed - the collection
type Checksummed struct {
	items  [][]byte
	length int

	digest   *checksum.Murmur3 // never finalised
	checksum uint32
	valid    bool // checksum is current
}

// New - create an empty collection
func New() *Checksummed {
	return &Checksummed{
		items:  make([][]byte, 0, 16),
		digest: checksum.New(0),
	}
}

// Count - number of buffers
func (c *Checksummed) Count() int {
	return len(c.items)
}

// Length - total number of bytes over all buffers
func (c *Checksummed) Length() int {
	return c.length
}

// Item - the i'th buffer
func (c *Checksummed) Item(i int) []byte {
	return c.items[i]
}

// Add - append one buffer
func (c *Checksummed) Add(buffer []byte) {
	c.items = append(c.items, buffer)
	c.length += len(buffer)
	c.digest.Write(buffer)
	c.valid = false
}

// AddRange - append all buffers of another collection in order
func (c *Checksummed) AddRange(other *Checksummed) {
	if 0 == len(c.items) {
		c.items = append(c.items, other.items...)
		c.length = other.length
		c.digest = other.digest.Clone()
		c.checksum = other.checksum
		c.valid = other.valid
		return
	}
	for _, buffer := range other.items {
		c.Add(buffer)
	}
}

// Checksum - checksum of the concatenated buffers
func (c *Checksummed) Checksum() uint32 {
	if !c.valid {
		c.checksum = c.digest.Clone().Sum32()
		c.valid = true
	}
	return c.checksum
}

// Clone - independent collection sharing the same buffers
func (c *Checksummed) Clone() *Checksummed {
	items := make([][]byte, len(c.items), cap(c.items))
	copy(items, c.items)
	return &Checksummed{
		items:    items,
		length:   c.length,
		digest:   c.digest.Clone(),
		checksum: c.checksum,
		valid:    c.valid,
	}
}

// Bytes - concatenation of all buffers as a new slice
func (c *Checksummed) Bytes() []byte {
	result := make([]byte, 0, c.length)
	for _, buffer := range c.items {
		result = append(result, buffer...)
	}
	return result
}
