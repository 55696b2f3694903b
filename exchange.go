package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"io"
	"time"

	"github.com/pkg/errors"
)

// operation is the strategy an exchange is parameterized with: the KMIP
// operation code, the request payload to send, and the extraction of
// results from the successful batch item.
type operation interface {
	code() Enum
	payload() interface{}
	extract(item *ResponseBatchItem, alloc Allocator) error
}

// exchange runs one complete request/response round trip over rw.
//
// The pipeline is strictly linear: build the single-item request, transmit
// it, receive the framed response, decode it, validate its shape, check
// the result status and hand the batch item to the operation's extractor.
// Whatever the exit path, the working buffer is released exactly once
// before returning, unless an extractor transferred output ownership to
// the caller (those outputs are separate allocations).
func (ctx *Context) exchange(rw io.ReadWriter, maxMessageSize int32, op operation) error {
	req := &Request{
		Header: RequestHeader{
			Version:         ctx.version(),
			MaxResponseSize: maxMessageSize,
			TimeStamp:       time.Now(),
			BatchCount:      1,
		},
		BatchItems: []RequestBatchItem{
			{
				Operation:      op.code(),
				RequestPayload: op.payload(),
			},
		},
	}

	if err := ctx.transmit(rw, req); err != nil {
		return err
	}

	if err := ctx.receive(rw, maxMessageSize); err != nil {
		return err
	}

	resp, err := ctx.codec().DecodeResponse(ctx.buf)
	if err != nil {
		ctx.releaseBuffer()
		return err
	}

	if resp.Header.BatchCount != 1 || len(resp.BatchItems) != 1 {
		ctx.releaseBuffer()
		return errors.Wrapf(ErrMalformedResponse, "batch count %d, %d batch items",
			resp.Header.BatchCount, len(resp.BatchItems))
	}

	item := &resp.BatchItems[0]

	ctx.logger().Debug().
		Uint32("operation", uint32(item.Operation)).
		Uint32("status", uint32(item.ResultStatus)).
		Msg("response received")

	if item.ResultStatus != RESULT_STATUS_SUCCESS {
		ctx.releaseBuffer()
		return wrapError(errors.Errorf("operation failed: %s", item.ResultMessage), item.ResultReason)
	}

	if err = op.extract(item, ctx.allocator()); err != nil {
		ctx.releaseBuffer()
		return err
	}

	ctx.releaseBuffer()

	return nil
}
