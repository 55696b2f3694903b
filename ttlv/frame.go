package ttlv

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// HeaderSize is the size of the leading TTLV item header: 3 bytes of tag,
// 1 byte of type and a 4-byte big-endian length of the remaining body.
const HeaderSize = 8

// MessageLength returns the body length declared by a TTLV item header.
//
// The length is the big-endian signed 32-bit integer at byte offset 4; the
// total message occupies HeaderSize + length bytes on the wire. The first
// four header bytes (tag and type) are not interpreted here.
func MessageLength(header []byte) (int32, error) {
	if len(header) < HeaderSize {
		return 0, errors.Errorf("message header is %d bytes, need %d", len(header), HeaderSize)
	}

	return int32(binary.BigEndian.Uint32(header[4:8])), nil
}
