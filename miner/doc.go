// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package miner - search for nonces whose RandomHash digest meets a
// difficulty target
//
// each worker owns a hasher and, after its first computation, always
// hashes the neighbour header of the previous one so that only the
// final round needs fresh work
package miner
