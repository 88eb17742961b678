// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package randomhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// every region written by Expand must follow the data it reads and
// lie inside the output, and together they must cover the expansion
func TestExpansionRegions(t *testing.T) {
	for _, inputSize := range []int{16, 20, 24, 32, 40, 48, 64, 100} {
		for factor := 1; factor < Rounds; factor += 1 {
			size := inputSize + factor*ExpansionUnit
			regions := expansionRegions(inputSize, size)

			next := inputSize
			for i, r := range regions {
				assert.Equal(t, next, r.writeStart, "input: %d  factor: %d  region: %d not contiguous", inputSize, factor, i)
				assert.True(t, r.writeStart > r.length-1, "input: %d  factor: %d  region: %d overlaps read", inputSize, factor, i)
				assert.True(t, r.writeStart+r.length-1 < size, "input: %d  factor: %d  region: %d beyond buffer", inputSize, factor, i)
				assert.True(t, r.length > 0, "input: %d  factor: %d  region: %d empty", inputSize, factor, i)
				next += r.length
			}
			assert.Equal(t, size, next, "input: %d  factor: %d  not fully covered", inputSize, factor)
		}
	}
}

func TestExpansionRegionsDoubling(t *testing.T) {
	regions := expansionRegions(32, 32+ExpansionUnit)

	expected := []region{
		{32, 32},
		{64, 64},
		{128, 128},
		{256, 256},
		{512, 512},
		{1024, 1024},
		{2048, 2048},
		{4096, 4096},
		{8192, 8192},
		{16384, 16384},
		{32768, 18464},
	}
	assert.Equal(t, expected, regions, "wrong regions")
}
