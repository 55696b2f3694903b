package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import "github.com/rs/zerolog"

// DefaultBlockSize is the growth increment of the encoding buffer
const DefaultBlockSize = 1024

// Context carries the state of KMIP exchanges: the protocol version to
// speak, the buffer allocation strategy, the codec, and the single working
// buffer of the call in flight.
//
// The zero value is usable. A Context owns at most one working buffer at
// any time and is not safe for concurrent use; wrap calls with external
// locking to share one between goroutines.
type Context struct {
	// Version of the KMIP protocol written into every request header
	//
	// Defaults to DefaultVersion if not set
	Version ProtocolVersion

	// BlockSize is the increment by which the encoding buffer grows when
	// the codec reports it is too small
	//
	// Defaults to DefaultBlockSize if not set
	BlockSize int

	// Alloc is the buffer lifecycle strategy
	//
	// Defaults to HeapAllocator; use SecureAllocator to wipe buffers on
	// release
	Alloc Allocator

	// Codec encodes requests and decodes responses
	//
	// Defaults to TTLVCodec
	Codec Codec

	// Log, if set, receives debug-level traces of each exchange
	Log *zerolog.Logger

	buf []byte
}

// NewContext builds a Context speaking the given protocol version
func NewContext(version ProtocolVersion) *Context {
	return &Context{Version: version}
}

func (ctx *Context) version() ProtocolVersion {
	var zero ProtocolVersion
	if ctx.Version == zero {
		return DefaultVersion
	}

	return ctx.Version
}

func (ctx *Context) blockSize() int {
	if ctx.BlockSize == 0 {
		return DefaultBlockSize
	}

	return ctx.BlockSize
}

func (ctx *Context) allocator() Allocator {
	if ctx.Alloc == nil {
		return defaultAllocator
	}

	return ctx.Alloc
}

func (ctx *Context) codec() Codec {
	if ctx.Codec == nil {
		return defaultCodec
	}

	return ctx.Codec
}

var nopLogger = zerolog.Nop()

func (ctx *Context) logger() *zerolog.Logger {
	if ctx.Log != nil {
		return ctx.Log
	}

	return &nopLogger
}

// releaseBuffer releases the working buffer, if any, and clears the handle
// so no path can release it twice
func (ctx *Context) releaseBuffer() {
	if ctx.buf != nil {
		ctx.allocator().Release(ctx.buf)
		ctx.buf = nil
	}
}

// disownBuffer hands the working buffer to the caller without releasing it
func (ctx *Context) disownBuffer() []byte {
	buf := ctx.buf
	ctx.buf = nil

	return buf
}
