package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"io"

	"github.com/pkg/errors"

	"github.com/openkmip/kmipbio/ttlv"
)

// receive reads one framed response message from r into the working buffer.
//
// The 8-byte message header is read first; the body length it declares is
// checked against maxMessageSize before a single body byte is read, so a
// server cannot drive allocation beyond the caller's ceiling. The buffer
// is then grown by exactly the declared length (new region zero-filled)
// and the body is read into it at offset 8.
//
// Reads are issued once and never retried: a short read fails the exchange.
// On success the working buffer holds the full 8+length message and stays
// owned by the context.
func (ctx *Context) receive(r io.Reader, maxMessageSize int32) (err error) {
	ctx.buf, err = ctx.allocator().Alloc(ttlv.HeaderSize)
	if err != nil {
		return errors.WithMessage(ErrAllocFailed, err.Error())
	}

	n, err := r.Read(ctx.buf)
	if err != nil || n != ttlv.HeaderSize {
		ctx.releaseBuffer()

		if err != nil {
			return errors.Wrapf(ErrIOFailure, "error reading response header: %v", err)
		}

		return errors.Wrapf(ErrIOFailure, "short header read: %d of %d bytes", n, ttlv.HeaderSize)
	}

	length, err := ctx.codec().MessageLength(ctx.buf)
	if err != nil {
		ctx.releaseBuffer()
		return errors.Wrap(err, "error reading message length")
	}

	if length < 0 {
		ctx.releaseBuffer()
		return errors.Wrapf(ErrMalformedResponse, "negative message length %d", length)
	}

	if length > maxMessageSize {
		ctx.releaseBuffer()
		return errors.Wrapf(ErrExceedsMaxMessageSize, "declared %d, maximum %d", length, maxMessageSize)
	}

	ctx.logger().Debug().
		Int32("length", length).
		Msg("response header received")

	if length == 0 {
		return nil
	}

	ctx.buf, err = ctx.allocator().Grow(ctx.buf, int(length))
	if err != nil {
		ctx.buf = nil
		return errors.WithMessage(ErrAllocFailed, err.Error())
	}

	n, err = r.Read(ctx.buf[ttlv.HeaderSize:])
	if err != nil || n != int(length) {
		ctx.releaseBuffer()

		if err != nil {
			return errors.Wrapf(ErrIOFailure, "error reading response body: %v", err)
		}

		return errors.Wrapf(ErrIOFailure, "short body read: %d of %d bytes", n, length)
	}

	return nil
}
