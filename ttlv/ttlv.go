// Package ttlv implements the TTLV encoding used by the KMIP protocol.
//
// Values are encoded as Tag-Type-Length-Value items. Go structures are
// translated to TTLV structures field by field, driven by `kmip` struct
// tags, e.g.:
//
//	Value string `kmip:"TAG_NAME,required"`
//
// The KMIP tag is looked up by name, the Go field type selects the TTLV
// item type, and lengths are computed automatically. Optional fields with
// zero values are skipped while encoding and tolerated while decoding.
//
// Every top-level TTLV item starts with a 3-byte tag, a 1-byte type and a
// 4-byte big-endian length, which is what allows a transport layer to read
// an 8-byte item header and learn the size of the remaining body before
// committing to it (see MessageLength).
package ttlv

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"reflect"
	"time"
)

// Tag is a number that designates the specific Protocol Field or Object that the TTLV item represents
type Tag uint32

// Type is a byte containing a coded value that indicates the data type of the data item
type Type uint8

// Enum is KMIP Enumeration type
type Enum uint32

// TTLV item types
const (
	STRUCTURE    Type = 0x01
	INTEGER      Type = 0x02
	LONG_INTEGER Type = 0x03
	BIG_INTEGER  Type = 0x04
	ENUMERATION  Type = 0x05
	BOOLEAN      Type = 0x06
	TEXT_STRING  Type = 0x07
	BYTE_STRING  Type = 0x08
	DATE_TIME    Type = 0x09
	INTERVAL     Type = 0x0A
)

// DynamicDispatch is implemented by structures which pick the Go type of a
// field based on the values of other fields already decoded (e.g. a payload
// type selected by an operation enum)
type DynamicDispatch interface {
	BuildFieldValue(name string) (interface{}, error)
}

var (
	typeOfTag      = reflect.TypeOf(Tag(0))
	typeOfEnum     = reflect.TypeOf(Enum(0))
	typeOfInt32    = reflect.TypeOf(int32(0))
	typeOfInt64    = reflect.TypeOf(int64(0))
	typeOfBool     = reflect.TypeOf(false)
	typeOfBytes    = reflect.TypeOf([]byte(nil))
	typeOfString   = reflect.TypeOf("")
	typeOfTime     = reflect.TypeOf(time.Time{})
	typeOfDuration = reflect.TypeOf(time.Duration(0))
)
