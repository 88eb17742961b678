// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package randomhash

import (
	"math/bits"

	"github.com/bitmark-inc/randomhashd/checksum"
	"github.com/bitmark-inc/randomhashd/fault"
	"github.com/bitmark-inc/randomhashd/prng"
)

// Transform - rewrite buffer[writeStart:writeStart+length] from buffer[readStart:readStart+length]
//
// kind is 1..8; the write region must lie entirely after the read
// region and inside the buffer, anything else is a programming error
// and panics
func Transform(kind int, buffer []byte, readStart int, writeStart int, length int) {
	readEnd := readStart + length - 1
	writeEnd := writeStart + length - 1
	if readStart < 0 || length <= 0 || readEnd >= writeStart || writeEnd >= len(buffer) {
		fault.Panicf("randomhash.Transform: invalid regions read: %d  write: %d  length: %d  buffer: %d", readStart, writeStart, length, len(buffer))
	}

	read := buffer[readStart : readEnd+1]
	write := buffer[writeStart : writeEnd+1]

	switch kind {
	case 1:
		transformSelect(read, write)
	case 2:
		transformSwap(read, write)
	case 3:
		transformReverse(read, write)
	case 4:
		transformInterleave(read, write)
	case 5:
		transformInterleaveReversed(read, write)
	case 6:
		transformXorFold(read, write)
	case 7:
		transformRotateLeft(read, write)
	case 8:
		transformRotateRight(read, write)
	default:
		fault.Panicf("randomhash.Transform: invalid kind: %d", kind)
	}
}

// pseudo-random selection of input bytes
func transformSelect(read []byte, write []byte) {
	length := uint32(len(read))
	x := prng.NewXorShift32(checksum.Checksum(read))
	for i := range write {
		write[i] = read[x.Next()%length]
	}
}

// swap the two halves, the middle byte of an odd length stays put
func transformSwap(read []byte, write []byte) {
	pivot, odd := len(read)/2, len(read)%2
	copy(write[:pivot], read[pivot+odd:])
	copy(write[pivot+odd:], read[:pivot])
	if 1 == odd {
		write[pivot] = read[pivot]
	}
}

func transformReverse(read []byte, write []byte) {
	last := len(read) - 1
	for k, b := range read {
		write[last-k] = b
	}
}

// interleave first half with second half
func transformInterleave(read []byte, write []byte) {
	pivot, odd := len(read)/2, len(read)%2
	for i := 0; i < pivot; i += 1 {
		write[2*i] = read[i]
		write[2*i+1] = read[i+pivot+odd]
	}
	if 1 == odd {
		write[len(write)-1] = read[pivot]
	}
}

// interleave second half with first half
func transformInterleaveReversed(read []byte, write []byte) {
	pivot, odd := len(read)/2, len(read)%2
	for i := 0; i < pivot; i += 1 {
		write[2*i] = read[i+pivot+odd]
		write[2*i+1] = read[i]
	}
	if 1 == odd {
		write[len(write)-1] = read[pivot]
	}
}

// adjacent pairs into the first half, mirrored pairs into the second
func transformXorFold(read []byte, write []byte) {
	length := len(read)
	pivot, odd := length/2, length%2
	for i := 0; i < pivot; i += 1 {
		write[i] = read[2*i] ^ read[2*i+1]
		write[i+pivot+odd] = read[i] ^ read[length-1-i]
	}
	if 1 == odd {
		write[pivot] = read[length-1]
	}
}

func transformRotateLeft(read []byte, write []byte) {
	length := len(read)
	for i, b := range read {
		write[i] = bits.RotateLeft8(b, (length-i)&7)
	}
}

func transformRotateRight(read []byte, write []byte) {
	length := len(read)
	for i, b := range read {
		write[i] = bits.RotateLeft8(b, -((length - i) & 7))
	}
}
