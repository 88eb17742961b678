// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package randomhash

import (
	"github.com/bitmark-inc/randomhashd/checksum"
	"github.com/bitmark-inc/randomhashd/collection"
	"github.com/bitmark-inc/randomhashd/fault"
	"github.com/bitmark-inc/randomhashd/prng"
)

// one transform application inside Expand, always reads from offset zero
type region struct {
	writeStart int
	length     int
}

// the doubling sequence of write regions that fills size bytes
// starting from inputSize bytes of seed data
func expansionRegions(inputSize int, size int) []region {
	regions := make([]region, 0, 16)
	readEnd := inputSize - 1
	copyLength := inputSize
	for readEnd < size-1 {
		if readEnd+1+copyLength > size {
			copyLength = size - (readEnd + 1)
		}
		regions = append(regions, region{
			writeStart: readEnd + 1,
			length:     copyLength,
		})
		readEnd += copyLength
		copyLength += copyLength
	}
	return regions
}

// Expand - inflate input by expansionFactor units of pseudo-random
// transforms of itself, the input is the unchanged prefix of the result
func Expand(input []byte, expansionFactor int) []byte {
	size := len(input) + expansionFactor*ExpansionUnit
	output := make([]byte, size)
	copy(output, input)

	if 0 == expansionFactor {
		return output
	}
	if 0 == len(input) {
		fault.Panicf("randomhash.Expand: empty input with expansion factor: %d", expansionFactor)
	}

	gen := prng.NewMersenne32(checksum.Checksum(input))
	for _, r := range expansionRegions(len(input), size) {
		kind := int(gen.NextUInt32()%transformCount) + 1
		Transform(kind, output, 0, r.writeStart, r.length)
	}
	return output
}

// Compress - pseudo-randomly sample CompressedSize bytes from a collection
func Compress(inputs *collection.Checksummed) []byte {
	result := make([]byte, CompressedSize)
	count := uint32(inputs.Count())
	gen := prng.NewMersenne32(inputs.Checksum())
	for i := range result {
		source := inputs.Item(int(gen.NextUInt32() % count))
		position := gen.NextUInt32() % uint32(len(source))
		result[i] = source[position]
	}
	return result
}
