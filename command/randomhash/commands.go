// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/randomhashd/algorithm"
	"github.com/bitmark-inc/randomhashd/blockdigest"
	"github.com/bitmark-inc/randomhashd/fault"
	"github.com/bitmark-inc/randomhashd/randomhash"
)

const (
	defaultBenchCount = 100
)

type commandFlags struct {
	program    string
	verbose    bool
	quiet      bool
	substitute bool
}

// command handler
//
// returns false for the commands that need the configuration file
func processCommand(flag commandFlags, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	var err error

	switch command {
	case "mine", "run", "start":
		return false // continue processing

	case "hash", "h":
		err = runHash(os.Stdout, flag.substitute, arguments)

	case "nonce", "n":
		err = runNonce(os.Stdout, flag.substitute, arguments)

	case "bench", "b":
		err = runBench(os.Stdout, flag.substitute, arguments)

	case "algorithms", "a":
		runAlgorithms(os.Stdout, flag.substitute)

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--substitute] [--config-file=FILE] [command|help] arguments...\n", flag.program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (?)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  hash HEX...                (h)      - digest of each hex encoded header\n")
		fmt.Printf("  nonce HEX NONCE            (n)      - replace the nonce of a header and digest it\n")
		fmt.Printf("  bench [COUNT]              (b)      - time COUNT digests with and without the mining cache\n")
		fmt.Printf("  algorithms                 (a)      - list the digest table\n")
		fmt.Printf("\n")

		fmt.Printf("  mine                       (run)    - search for nonces as set in the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  --substitute fills digests that have no Go implementation with keyed BLAKE2b,\n")
		fmt.Printf("  the results do not match other RandomHash implementations\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	if nil != err {
		exitwithstatus.Message("%s: %s error: %s", flag.program, command, err)
	}
	return true
}

// the digest table, complete or an error
func digestTable(substitute bool) (algorithm.Table, error) {
	table := algorithm.Standard()
	if substitute {
		table = table.Substitute()
	}
	return table, table.Validate()
}

func runHash(w io.Writer, substitute bool, arguments []string) error {
	if 0 == len(arguments) {
		return fault.ErrInvalidCount
	}

	table, err := digestTable(substitute)
	if nil != err {
		return err
	}

	h, err := randomhash.New(table)
	if nil != err {
		return err
	}

	for _, s := range arguments {
		header, err := hex.DecodeString(s)
		if nil != err {
			return fault.ErrInvalidHeader
		}
		fmt.Fprintf(w, "%s  %s\n", blockdigest.Digest(h.Compute(header)), s)
	}
	return nil
}

func runNonce(w io.Writer, substitute bool, arguments []string) error {
	if 2 != len(arguments) {
		return fault.ErrInvalidCount
	}

	header, err := hex.DecodeString(arguments[0])
	if nil != err || len(header) < randomhash.NonceSize {
		return fault.ErrInvalidHeader
	}

	nonce, err := strconv.ParseUint(arguments[1], 0, 32)
	if nil != err {
		return fault.ErrInvalidNonce
	}

	table, err := digestTable(substitute)
	if nil != err {
		return err
	}

	h, err := randomhash.New(table)
	if nil != err {
		return err
	}

	header = randomhash.ChangeNonce(header, uint32(nonce))
	fmt.Fprintf(w, "header: %x\n", header)
	fmt.Fprintf(w, "digest: %s\n", blockdigest.Digest(h.Compute(header)))
	return nil
}

func runBench(w io.Writer, substitute bool, arguments []string) error {
	count := defaultBenchCount
	if len(arguments) > 0 {
		n, err := strconv.Atoi(arguments[0])
		if nil != err || n < 1 {
			return fault.ErrInvalidCount
		}
		count = n
	}

	table, err := digestTable(substitute)
	if nil != err {
		return err
	}

	for _, caching := range []bool{true, false} {
		h, err := randomhash.New(table)
		if nil != err {
			return err
		}
		h.SetCaching(caching)

		header := randomhash.ChangeNonce([]byte("randomhash benchmark header:0000"), 0)
		start := time.Now()
		for i := 0; i < count; i += 1 {
			h.Compute(header)
			if next, err := h.NextHeader(); nil == err {
				header = next
			} else {
				header = randomhash.ChangeNonce(header, randomhash.GetNonce(header)+1)
			}
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "caching: %-5t  hashes: %d  time: %s  rate: %.2f H/s\n",
			caching, count, elapsed, float64(count)/elapsed.Seconds())
	}
	return nil
}

func runAlgorithms(w io.Writer, substitute bool) {
	standard := algorithm.Standard()
	table := standard
	if substitute {
		table = table.Substitute()
	}

	for i := 0; i < algorithm.Count; i += 1 {
		state := "available"
		if !standard.Available(i) {
			if table.Available(i) {
				state = "substituted"
			} else {
				state = "missing"
			}
		}
		fmt.Fprintf(w, "%2d  %-14s %3d  %s\n", i, algorithm.Name(i), algorithm.Size(i), state)
	}
}
