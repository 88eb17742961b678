// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/randomhashd/background"
)

type counter struct {
	start    uint32
	nonce    uint32
	returned bool
}

const (
	startNonce1 = 246
	startNonce2 = 0x80000000
)

func (state *counter) Run(args interface{}, shutdown <-chan struct{}) {
	t := args.(*testing.T)

	if startNonce1 != state.start && startNonce2 != state.start {
		t.Errorf("unexpected start nonce: %d", state.start)
	}
	state.nonce = state.start

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		state.nonce += 1
		time.Sleep(time.Millisecond)
	}

	state.returned = true
}

func TestBackground(t *testing.T) {
	proc1 := &counter{start: startNonce1}
	proc2 := &counter{start: startNonce2}

	p := background.Start(background.Processes{proc1, proc2}, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.True(t, proc1.returned, "first process still running")
	assert.True(t, proc2.returned, "second process still running")
	assert.True(t, proc1.nonce > startNonce1, "first process did not advance")
	assert.True(t, proc2.nonce > startNonce2, "second process did not advance")
}

func TestStopTwice(t *testing.T) {
	proc := &counter{start: startNonce1}

	p := background.Start(background.Processes{proc}, t)
	p.Stop()
	p.Stop()

	select {
	case <-p.Done():
	default:
		t.Fatal("done channel not closed")
	}
	assert.True(t, proc.returned, "process still running")
}

func TestEmpty(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
