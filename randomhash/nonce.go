// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package randomhash

import (
	"encoding/binary"
)

// GetNonce - the trailing little endian nonce, zero if the header is too short
func GetNonce(header []byte) uint32 {
	if len(header) < NonceSize {
		return 0
	}
	return binary.LittleEndian.Uint32(header[len(header)-NonceSize:])
}

// ChangeNonce - copy of header with the trailing nonce replaced
//
// a header shorter than a nonce is copied unmodified
func ChangeNonce(header []byte, nonce uint32) []byte {
	result := make([]byte, len(header))
	copy(result, header)
	if len(result) >= NonceSize {
		binary.LittleEndian.PutUint32(result[len(result)-NonceSize:], nonce)
	}
	return result
}
