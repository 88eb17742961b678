// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package randomhash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/randomhashd/randomhash"
)

func TestGetNonce(t *testing.T) {
	assert.Equal(t, uint32(0x78563412), randomhash.GetNonce([]byte{0xff, 0x12, 0x34, 0x56, 0x78}), "little endian trailing nonce")
	assert.Equal(t, uint32(0), randomhash.GetNonce([]byte{0x12, 0x34, 0x56}), "short header")
	assert.Equal(t, uint32(0), randomhash.GetNonce(nil), "nil header")
}

func TestChangeNonce(t *testing.T) {
	header := []byte{0xaa, 0xbb, 0x01, 0x02, 0x03, 0x04}
	changed := randomhash.ChangeNonce(header, 0xdeadbeef)

	assert.Equal(t, []byte{0xaa, 0xbb, 0xef, 0xbe, 0xad, 0xde}, changed, "changed header")
	assert.Equal(t, []byte{0xaa, 0xbb, 0x01, 0x02, 0x03, 0x04}, header, "original modified")
	assert.Equal(t, uint32(0xdeadbeef), randomhash.GetNonce(changed), "round trip")
}

func TestChangeNonceShortHeader(t *testing.T) {
	header := []byte{1, 2, 3}
	changed := randomhash.ChangeNonce(header, 0x11223344)
	assert.Equal(t, header, changed, "short header must be unmodified")

	changed[0] = 9
	assert.Equal(t, byte(1), header[0], "result must be a copy")
}
