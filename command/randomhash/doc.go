// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// randomhash - compute, benchmark and mine RandomHash digests
//
// the mine command reads a Lua configuration file and restarts its
// workers whenever that file is written
package main
