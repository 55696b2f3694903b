package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"github.com/pkg/errors"

	"github.com/openkmip/kmipbio/ttlv"
)

// Exchange outcomes other than server-reported operation failures.
//
// These are returned wrapped with call context; classify with
// errors.Cause, e.g. errors.Cause(err) == ErrIOFailure.
var (
	// ErrAllocFailed means the allocator could not provide a working
	// buffer; the call aborts without further I/O.
	ErrAllocFailed = errors.New("memory allocation failed")

	// ErrIOFailure means the transport completed a read or write only
	// partially, or failed it outright. The exchange is not retried.
	ErrIOFailure = errors.New("transport i/o failure")

	// ErrBufferFull is reported by the codec when the encoding does not
	// fit the working buffer; the transmitter grows the buffer and
	// retries. It never escapes to the caller.
	ErrBufferFull = errors.New("encoding buffer full")

	// ErrExceedsMaxMessageSize means the server declared a response body
	// larger than the caller's ceiling; the body is never read.
	ErrExceedsMaxMessageSize = errors.New("response exceeds maximum message size")

	// ErrMalformedResponse means the response decoded but did not carry
	// exactly one batch item.
	ErrMalformedResponse = errors.New("malformed response message")

	// ErrObjectMismatch means the returned object type, key format or
	// wrapping state does not match what was requested.
	ErrObjectMismatch = errors.New("returned object does not match request")
)

// Error enhances error with "Result Reason" field
//
// The server reporting an application-level operation failure surfaces as
// an Error carrying the result message and result reason; transport and
// codec faults surface as the sentinel errors above instead.
type Error interface {
	error
	ResultReason() ttlv.Enum
}

type protocolError struct {
	error
	reason ttlv.Enum
}

func (e protocolError) ResultReason() ttlv.Enum {
	return e.reason
}

func wrapError(err error, reason ttlv.Enum) protocolError {
	return protocolError{err, reason}
}
