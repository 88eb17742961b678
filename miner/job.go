// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package miner

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/randomhashd/blockdigest"
	"github.com/bitmark-inc/randomhashd/difficulty"
	"github.com/bitmark-inc/randomhashd/fault"
	"github.com/bitmark-inc/randomhashd/randomhash"
)

// JobIdentifier - changes each time the miner is started
type JobIdentifier uint16

// this identifier is never allocated
const jobIdentifierNil = JobIdentifier(0)

// Job - a header template and the target its digest must meet
type Job struct {
	Header     []byte
	Difficulty *difficulty.Difficulty
	StartNonce uint32
}

// Solution - a header whose digest meets the job's target
type Solution struct {
	Job    JobIdentifier
	Nonce  uint32
	Header []byte
	Digest blockdigest.Digest
}

// String - job identifier as four hex digits
func (jobId JobIdentifier) String() string {
	return fmt.Sprintf("%04x", uint16(jobId))
}

// JobIdentifierFromString - parse four hex digits, any error gives
// the nil identifier
func JobIdentifierFromString(s string) JobIdentifier {
	h, err := hex.DecodeString(s)
	if nil != err || 2 != len(h) {
		return jobIdentifierNil
	}
	// big endian
	return JobIdentifier(h[1]) + 256*JobIdentifier(h[0])
}

// check a job can be mined
func (job Job) validate() error {
	if len(job.Header) < randomhash.NonceSize {
		return fault.ErrInvalidHeader
	}
	if nil == job.Difficulty {
		return fault.ErrInvalidDifficulty
	}
	return nil
}
