package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"io"

	"github.com/pkg/errors"
)

// transmit encodes req into the working buffer and writes the encoding to w.
//
// The buffer starts at one block and is discarded and re-allocated one
// block larger for as long as the codec reports it is too small. The loop
// has no iteration cap: growth is bounded only by available memory, on the
// assumption that the codec terminates for any well-formed request. On
// success the buffer is released right away; it is not needed once the
// bytes are on the wire.
func (ctx *Context) transmit(w io.Writer, req *Request) (err error) {
	blocks := 1
	blockSize := ctx.blockSize()

	ctx.buf, err = ctx.allocator().Alloc(blocks * blockSize)
	if err != nil {
		return errors.WithMessage(ErrAllocFailed, err.Error())
	}

	var n int
	for {
		n, err = ctx.codec().EncodeRequest(ctx.buf, req)
		if err == nil {
			break
		}

		if errors.Cause(err) != ErrBufferFull {
			ctx.releaseBuffer()
			return err
		}

		ctx.releaseBuffer()

		blocks++

		ctx.buf, err = ctx.allocator().Alloc(blocks * blockSize)
		if err != nil {
			return errors.WithMessage(ErrAllocFailed, err.Error())
		}
	}

	ctx.logger().Debug().
		Int("size", n).
		Int("blocks", blocks).
		Msg("request encoded")

	sent, err := w.Write(ctx.buf[:n])
	if err != nil || sent != n {
		ctx.releaseBuffer()

		if err != nil {
			return errors.Wrapf(ErrIOFailure, "error writing request: %v", err)
		}

		return errors.Wrapf(ErrIOFailure, "short write: %d of %d bytes", sent, n)
	}

	ctx.releaseBuffer()

	return nil
}
