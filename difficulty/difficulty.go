// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty - mining target in compact and pool difficulty forms
//
// a RandomHash digest is roughly five orders of magnitude more costly
// than double SHA-256, so pool difficulty 1 is one leading zero byte
// rather than four
package difficulty

import (
	"fmt"
	"math"
	"math/big"
	"sync"

	"github.com/bitmark-inc/randomhashd/fault"
)

// DefaultUint32 - the compact form of difficulty 1
const DefaultUint32 = 0x2000ffff

// compact form limits: 0xEEMMMMMM, target = MMMMMM × 256^(EE-3)
const (
	minimumExponent = 3
	maximumExponent = 0x20
	minimumMantissa = 0x008000
	maximumMantissa = 0x7fffff
)

// bits of precision for target and pool difficulty arithmetic
const precision = 256

// Difficulty - a target held with its pool and compact forms
type Difficulty struct {
	sync.RWMutex

	target big.Int // digests at or below this meet the difficulty
	pdiff  float64
	bits   uint32
}

// target of pool difficulty 1: 2^248 - 1
var unity = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 248), big.NewInt(1))

// New - create a difficulty with the default value
func New() *Difficulty {
	d := new(Difficulty)
	d.setUnity()
	return d
}

// Pdiff - pool difficulty, the unity target divided by this target
func (difficulty *Difficulty) Pdiff() float64 {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return difficulty.pdiff
}

// Bits - compact form
func (difficulty *Difficulty) Bits() uint32 {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return difficulty.bits
}

// String - big endian hex of the compact form
func (difficulty *Difficulty) String() string {
	return fmt.Sprintf("%08x", difficulty.Bits())
}

// GoString - for the %#v format use 256 bit value
func (difficulty *Difficulty) GoString() string {
	return fmt.Sprintf("%064x", difficulty.BigInt())
}

// BigInt - copy of the 256 bit target
func (difficulty *Difficulty) BigInt() *big.Int {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return new(big.Int).Set(&difficulty.target)
}

// caller holds the write lock
func (difficulty *Difficulty) setUnity() {
	difficulty.target.Set(unity)
	difficulty.pdiff = 1.0
	difficulty.bits = DefaultUint32
}

// SetBits - set from the compact form
func (difficulty *Difficulty) SetBits(u uint32) error {
	if DefaultUint32 == u {
		difficulty.Lock()
		difficulty.setUnity()
		difficulty.Unlock()
		return nil
	}

	target, err := expand(u)
	if nil != err {
		return err
	}
	pdiff, _ := new(big.Float).SetPrec(precision).Quo(
		new(big.Float).SetInt(unity),
		new(big.Float).SetInt(target),
	).Float64()

	difficulty.Lock()
	defer difficulty.Unlock()

	difficulty.target.Set(target)
	difficulty.pdiff = pdiff
	difficulty.bits = u
	return nil
}

// SetBytes - set from the little endian form of the compact value
func (difficulty *Difficulty) SetBytes(b []byte) error {
	if len(b) < 4 {
		return fault.ErrInvalidDifficulty
	}
	u := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return difficulty.SetBits(u)
}

// SetPdiff - set from a pool difficulty, values up to 1.0 give unity
//
// the compact form is rounded to the nearest mantissa, the target is
// exact
func (difficulty *Difficulty) SetPdiff(f float64) float64 {
	difficulty.Lock()
	defer difficulty.Unlock()

	if f <= 1.0 || math.IsNaN(f) || math.IsInf(f, 0) {
		difficulty.setUnity()
		return 1.0
	}

	target, _ := new(big.Float).SetPrec(precision).Quo(
		new(big.Float).SetInt(unity),
		big.NewFloat(f),
	).Int(nil)
	if target.Sign() <= 0 {
		target.SetInt64(1)
	}

	difficulty.target.Set(target)
	difficulty.pdiff = f
	difficulty.bits = compact(target)
	return f
}

// target of a compact value
func expand(u uint32) (*big.Int, error) {
	exponent := int(u >> 24)
	mantissa := int64(u & 0x00ffffff)

	if exponent < minimumExponent || exponent > maximumExponent ||
		mantissa < minimumMantissa || mantissa > maximumMantissa {
		return nil, fault.ErrInvalidDifficulty
	}
	return new(big.Int).Lsh(big.NewInt(mantissa), uint(8*(exponent-minimumExponent))), nil
}

// nearest compact value of a positive target
func compact(target *big.Int) uint32 {
	b := target.Bytes()

	// mantissa is signed, keep its top bit clear
	if 0 != b[0]&0x80 {
		b = append([]byte{0}, b...)
	}
	size := len(b)

	var m [3]byte
	copy(m[:], b)
	mantissa := uint32(m[0])<<16 | uint32(m[1])<<8 | uint32(m[2])

	if size > 3 && 0 != b[3]&0x80 {
		mantissa += 1
	}
	if mantissa > maximumMantissa {
		mantissa >>= 8
		size += 1
	}
	return uint32(size)<<24 | mantissa
}
