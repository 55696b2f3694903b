package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/openkmip/kmipbio/ttlv"
)

// Codec turns request messages into wire bytes and wire bytes back into
// response messages.
//
// EncodeRequest encodes req into buf and returns the number of bytes
// written; when the encoding does not fit it returns ErrBufferFull so the
// transmitter can grow the buffer and retry. DecodeResponse decodes a full
// received message (header included). MessageLength reads the body length
// a message header declares, before the body has been received.
//
// The default codec speaks TTLV; tests substitute their own.
type Codec interface {
	EncodeRequest(buf []byte, req *Request) (int, error)
	DecodeResponse(buf []byte) (*Response, error)
	MessageLength(header []byte) (int32, error)
}

// TTLVCodec implements Codec using the ttlv package
type TTLVCodec struct{}

func (TTLVCodec) EncodeRequest(buf []byte, req *Request) (int, error) {
	w := cappedWriter{buf: buf}

	if err := ttlv.NewEncoder(&w).Encode(req); err != nil {
		if errors.Cause(err) == ErrBufferFull {
			return 0, ErrBufferFull
		}

		return 0, errors.Wrap(err, "error encoding request message")
	}

	return w.n, nil
}

func (TTLVCodec) DecodeResponse(buf []byte) (*Response, error) {
	var resp Response

	if err := ttlv.NewDecoder(bytes.NewReader(buf)).Decode(&resp); err != nil {
		return nil, errors.Wrap(err, "error decoding response message")
	}

	return &resp, nil
}

func (TTLVCodec) MessageLength(header []byte) (int32, error) {
	return ttlv.MessageLength(header)
}

// cappedWriter writes into a fixed-size buffer, reporting ErrBufferFull
// once the encoding outgrows it
type cappedWriter struct {
	buf []byte
	n   int
}

func (w *cappedWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > len(w.buf) {
		return 0, ErrBufferFull
	}

	copy(w.buf[w.n:], p)
	w.n += len(p)

	return len(p), nil
}

var defaultCodec Codec = TTLVCodec{}
