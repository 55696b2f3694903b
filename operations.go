package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"io"

	"github.com/pkg/errors"
)

// Create asks the server to create a symmetric key parameterized by attrs
// and returns the server-assigned unique identifier in a freshly allocated
// buffer owned by the caller.
//
// rw must be an established, authenticated byte stream (typically a TLS
// connection, see LoadClientTLSConfig); this layer performs no handshake
// and enforces no timeouts. maxMessageSize bounds the response size the
// server may declare.
func Create(rw io.ReadWriter, maxMessageSize int32, attrs TemplateAttribute) ([]byte, error) {
	return NewContext(DefaultVersion).Create(rw, maxMessageSize, attrs)
}

// Create is the Context variant of the package-level Create, reusing the
// context's version, allocator and codec
func (ctx *Context) Create(rw io.ReadWriter, maxMessageSize int32, attrs TemplateAttribute) ([]byte, error) {
	op := createOp{attrs: attrs}

	if err := ctx.exchange(rw, maxMessageSize, &op); err != nil {
		return nil, err
	}

	return op.id, nil
}

// Destroy asks the server to destroy the object with the given unique
// identifier. There is no payload to extract: a nil error means the
// server reported success.
func Destroy(rw io.ReadWriter, maxMessageSize int32, uid string) error {
	return NewContext(DefaultVersion).Destroy(rw, maxMessageSize, uid)
}

// Destroy is the Context variant of the package-level Destroy
func (ctx *Context) Destroy(rw io.ReadWriter, maxMessageSize int32, uid string) error {
	return ctx.exchange(rw, maxMessageSize, &destroyOp{uid: uid})
}

// GetSymmetricKey fetches the object with the given unique identifier and
// returns its raw key material in a freshly allocated buffer owned by the
// caller.
//
// Only unwrapped symmetric keys in raw format are accepted; anything else
// the server returns fails with ErrObjectMismatch rather than handing
// back material in an unexpected shape.
func GetSymmetricKey(rw io.ReadWriter, maxMessageSize int32, uid string) ([]byte, error) {
	return NewContext(DefaultVersion).GetSymmetricKey(rw, maxMessageSize, uid)
}

// GetSymmetricKey is the Context variant of the package-level GetSymmetricKey
func (ctx *Context) GetSymmetricKey(rw io.ReadWriter, maxMessageSize int32, uid string) ([]byte, error) {
	op := getOp{uid: uid}

	if err := ctx.exchange(rw, maxMessageSize, &op); err != nil {
		return nil, err
	}

	return op.key, nil
}

// SendRawRequest writes an already-encoded request message to rw and
// returns the complete framed response, header included, without decoding
// it. The caller keeps full control of both encodings: request bytes are
// sent as given (no growth-on-overflow retry), and the returned buffer is
// exactly the 8+length bytes the server sent, owned by the caller.
//
// Only transport and size failures are reported here; result statuses,
// batch shape and payloads are the caller's to interpret.
func (ctx *Context) SendRawRequest(rw io.ReadWriter, maxMessageSize int32, request []byte) ([]byte, error) {
	sent, err := rw.Write(request)
	if err != nil || sent != len(request) {
		if err != nil {
			return nil, errors.Wrapf(ErrIOFailure, "error writing request: %v", err)
		}

		return nil, errors.Wrapf(ErrIOFailure, "short write: %d of %d bytes", sent, len(request))
	}

	if err = ctx.receive(rw, maxMessageSize); err != nil {
		return nil, err
	}

	return ctx.disownBuffer(), nil
}

type createOp struct {
	attrs TemplateAttribute
	id    []byte
}

func (op *createOp) code() Enum { return OPERATION_CREATE }

func (op *createOp) payload() interface{} {
	return CreateRequest{
		ObjectType:        OBJECT_TYPE_SYMMETRIC_KEY,
		TemplateAttribute: op.attrs,
	}
}

func (op *createOp) extract(item *ResponseBatchItem, alloc Allocator) error {
	pld, ok := item.ResponsePayload.(CreateResponse)
	if !ok {
		return errors.Wrap(ErrMalformedResponse, "missing create response payload")
	}

	id, err := copyOut(alloc, []byte(pld.UniqueIdentifier))
	if err != nil {
		return err
	}

	op.id = id

	return nil
}

type destroyOp struct {
	uid string
}

func (op *destroyOp) code() Enum { return OPERATION_DESTROY }

func (op *destroyOp) payload() interface{} {
	return DestroyRequest{UniqueIdentifier: op.uid}
}

func (op *destroyOp) extract(*ResponseBatchItem, Allocator) error {
	// result status is all a destroy returns
	return nil
}

type getOp struct {
	uid string
	key []byte
}

func (op *getOp) code() Enum { return OPERATION_GET }

func (op *getOp) payload() interface{} {
	return GetRequest{UniqueIdentifier: op.uid}
}

func (op *getOp) extract(item *ResponseBatchItem, alloc Allocator) error {
	pld, ok := item.ResponsePayload.(GetResponse)
	if !ok {
		return errors.Wrap(ErrMalformedResponse, "missing get response payload")
	}

	if pld.ObjectType != OBJECT_TYPE_SYMMETRIC_KEY {
		return errors.Wrapf(ErrObjectMismatch, "object type %#x", uint32(pld.ObjectType))
	}

	block := &pld.SymmetricKey.KeyBlock

	if block.FormatType != KEY_FORMAT_RAW || block.WrappingData.present() {
		return errors.Wrapf(ErrObjectMismatch, "key format %#x, wrapped %v",
			uint32(block.FormatType), block.WrappingData.present())
	}

	key, err := copyOut(alloc, block.Value.KeyMaterial)
	if err != nil {
		return err
	}

	op.key = key

	return nil
}

// copyOut copies operation results into a caller-owned allocation
func copyOut(alloc Allocator, src []byte) ([]byte, error) {
	out, err := alloc.Alloc(len(src))
	if err != nil {
		return nil, errors.WithMessage(ErrAllocFailed, err.Error())
	}

	copy(out, src)

	return out, nil
}
