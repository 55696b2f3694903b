package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"bytes"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"

	"github.com/openkmip/kmipbio/ttlv"
)

// countingAllocator tracks buffer lifecycle so tests can assert that every
// buffer allocated on a code path is either released or handed to the caller
type countingAllocator struct {
	allocSizes  []int
	outstanding int
}

func (a *countingAllocator) Alloc(size int) ([]byte, error) {
	a.allocSizes = append(a.allocSizes, size)
	a.outstanding++

	return make([]byte, size), nil
}

func (a *countingAllocator) Grow(buf []byte, extra int) ([]byte, error) {
	grown := make([]byte, len(buf)+extra)
	copy(grown, buf)

	return grown, nil
}

func (a *countingAllocator) Release([]byte) {
	a.outstanding--
}

// mockConn is a scripted transport: requests accumulate in out, responses
// are served from in
type mockConn struct {
	in  *bytes.Reader
	out bytes.Buffer
}

func (c *mockConn) Read(p []byte) (int, error) {
	return c.in.Read(p)
}

func (c *mockConn) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func newMockConn(response []byte) *mockConn {
	return &mockConn{in: bytes.NewReader(response)}
}

func encodeResponse(s *suite.Suite, items ...ResponseBatchItem) []byte {
	resp := Response{
		Header: ResponseHeader{
			Version:    ProtocolVersion{Major: 1, Minor: 0},
			TimeStamp:  time.Unix(12345, 0),
			BatchCount: 1,
		},
		BatchItems: items,
	}

	b, err := ttlv.Marshal(&resp)
	s.Require().NoError(err)

	return b
}

type ExchangeSuite struct {
	suite.Suite
}

func (s *ExchangeSuite) newContext(alloc Allocator) *Context {
	ctx := NewContext(DefaultVersion)
	ctx.Alloc = alloc

	return ctx
}

func (s *ExchangeSuite) TestCreate() {
	conn := newMockConn(encodeResponse(&s.Suite, ResponseBatchItem{
		Operation:    OPERATION_CREATE,
		ResultStatus: RESULT_STATUS_SUCCESS,
		ResponsePayload: CreateResponse{
			ObjectType:       OBJECT_TYPE_SYMMETRIC_KEY,
			UniqueIdentifier: "new-key-1",
		},
	}))

	alloc := &countingAllocator{}
	ctx := s.newContext(alloc)

	id, err := ctx.Create(conn, 8192, TemplateAttribute{
		Attributes: Attributes{
			{
				Name:  ATTRIBUTE_NAME_CRYPTOGRAPHIC_ALGORITHM,
				Value: CRYPTO_AES,
			},
			{
				Name:  ATTRIBUTE_NAME_CRYPTOGRAPHIC_LENGTH,
				Value: int32(256),
			},
		},
	})
	s.Require().NoError(err)
	s.Assert().Equal([]byte("new-key-1"), id)

	// only the returned identifier is still allocated
	s.Assert().Equal(1, alloc.outstanding)

	var sent Request
	s.Require().NoError(ttlv.Unmarshal(conn.out.Bytes(), &sent))
	s.Assert().EqualValues(1, sent.Header.BatchCount)
	s.Assert().EqualValues(8192, sent.Header.MaxResponseSize)
	s.Require().Len(sent.BatchItems, 1)
	s.Assert().Equal(OPERATION_CREATE, sent.BatchItems[0].Operation)
}

func (s *ExchangeSuite) TestGetSymmetricKey() {
	material := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	conn := newMockConn(encodeResponse(&s.Suite, ResponseBatchItem{
		Operation:    OPERATION_GET,
		ResultStatus: RESULT_STATUS_SUCCESS,
		ResponsePayload: GetResponse{
			ObjectType:       OBJECT_TYPE_SYMMETRIC_KEY,
			UniqueIdentifier: "key-1",
			SymmetricKey: SymmetricKey{
				KeyBlock: KeyBlock{
					FormatType: KEY_FORMAT_RAW,
					Value: KeyValue{
						KeyMaterial: material,
					},
					CryptographicAlgorithm: CRYPTO_AES,
					CryptographicLength:    128,
				},
			},
		},
	}))

	alloc := &countingAllocator{}
	ctx := s.newContext(alloc)

	key, err := ctx.GetSymmetricKey(conn, 8192, "key-1")
	s.Require().NoError(err)
	s.Assert().Equal(material, key)
	s.Assert().Equal(1, alloc.outstanding)

	var sent Request
	s.Require().NoError(ttlv.Unmarshal(conn.out.Bytes(), &sent))
	s.Require().Len(sent.BatchItems, 1)
	s.Assert().Equal(OPERATION_GET, sent.BatchItems[0].Operation)
	s.Assert().Equal(GetRequest{UniqueIdentifier: "key-1"}, sent.BatchItems[0].RequestPayload)
}

func (s *ExchangeSuite) TestGetObjectTypeMismatch() {
	conn := newMockConn(encodeResponse(&s.Suite, ResponseBatchItem{
		Operation:    OPERATION_GET,
		ResultStatus: RESULT_STATUS_SUCCESS,
		ResponsePayload: GetResponse{
			ObjectType:       OBJECT_TYPE_PUBLIC_KEY,
			UniqueIdentifier: "key-1",
		},
	}))

	alloc := &countingAllocator{}
	ctx := s.newContext(alloc)

	key, err := ctx.GetSymmetricKey(conn, 8192, "key-1")
	s.Assert().Equal(ErrObjectMismatch, errors.Cause(err))
	s.Assert().Nil(key)
	s.Assert().Equal(0, alloc.outstanding)
}

func (s *ExchangeSuite) TestGetKeyFormatMismatch() {
	conn := newMockConn(encodeResponse(&s.Suite, ResponseBatchItem{
		Operation:    OPERATION_GET,
		ResultStatus: RESULT_STATUS_SUCCESS,
		ResponsePayload: GetResponse{
			ObjectType:       OBJECT_TYPE_SYMMETRIC_KEY,
			UniqueIdentifier: "key-1",
			SymmetricKey: SymmetricKey{
				KeyBlock: KeyBlock{
					FormatType: KEY_FORMAT_OPAQUE,
					Value: KeyValue{
						KeyMaterial: []byte{1, 2, 3},
					},
				},
			},
		},
	}))

	alloc := &countingAllocator{}
	ctx := s.newContext(alloc)

	key, err := ctx.GetSymmetricKey(conn, 8192, "key-1")
	s.Assert().Equal(ErrObjectMismatch, errors.Cause(err))
	s.Assert().Nil(key)
	s.Assert().Equal(0, alloc.outstanding)
}

func (s *ExchangeSuite) TestGetWrappedKeyMismatch() {
	conn := newMockConn(encodeResponse(&s.Suite, ResponseBatchItem{
		Operation:    OPERATION_GET,
		ResultStatus: RESULT_STATUS_SUCCESS,
		ResponsePayload: GetResponse{
			ObjectType:       OBJECT_TYPE_SYMMETRIC_KEY,
			UniqueIdentifier: "key-1",
			SymmetricKey: SymmetricKey{
				KeyBlock: KeyBlock{
					FormatType: KEY_FORMAT_RAW,
					Value: KeyValue{
						KeyMaterial: []byte{1, 2, 3},
					},
					WrappingData: KeyWrappingData{
						WrappingMethod: WRAPPING_METHOD_ENCRYPT,
					},
				},
			},
		},
	}))

	alloc := &countingAllocator{}
	ctx := s.newContext(alloc)

	key, err := ctx.GetSymmetricKey(conn, 8192, "key-1")
	s.Assert().Equal(ErrObjectMismatch, errors.Cause(err))
	s.Assert().Nil(key)
	s.Assert().Equal(0, alloc.outstanding)
}

func (s *ExchangeSuite) TestOperationFailed() {
	conn := newMockConn(encodeResponse(&s.Suite, ResponseBatchItem{
		Operation:     OPERATION_DESTROY,
		ResultStatus:  RESULT_STATUS_OPERATION_FAILED,
		ResultReason:  RESULT_REASON_ITEM_NOT_FOUND,
		ResultMessage: "no such object",
	}))

	alloc := &countingAllocator{}
	ctx := s.newContext(alloc)

	err := ctx.Destroy(conn, 8192, "key-1")
	s.Require().Error(err)

	kmipErr, ok := err.(Error)
	s.Require().True(ok)
	s.Assert().Equal(RESULT_REASON_ITEM_NOT_FOUND, kmipErr.ResultReason())
	s.Assert().Contains(err.Error(), "no such object")
	s.Assert().Equal(0, alloc.outstanding)
}

func (s *ExchangeSuite) TestMalformedBatchCount() {
	resp := Response{
		Header: ResponseHeader{
			Version:    ProtocolVersion{Major: 1, Minor: 0},
			TimeStamp:  time.Unix(12345, 0),
			BatchCount: 2,
		},
		BatchItems: []ResponseBatchItem{
			{
				Operation:    OPERATION_DESTROY,
				ResultStatus: RESULT_STATUS_SUCCESS,
			},
		},
	}

	b, err := ttlv.Marshal(&resp)
	s.Require().NoError(err)

	alloc := &countingAllocator{}
	ctx := s.newContext(alloc)

	err = ctx.Destroy(newMockConn(b), 8192, "key-1")
	s.Assert().Equal(ErrMalformedResponse, errors.Cause(err))
	s.Assert().Equal(0, alloc.outstanding)
}

// stubCodec replaces the wire format entirely: the request encoding is
// canned and any received body decodes to the configured response
type stubCodec struct {
	resp    *Response
	decoded [][]byte
}

func (c *stubCodec) EncodeRequest(buf []byte, req *Request) (int, error) {
	if len(buf) < 8 {
		return 0, ErrBufferFull
	}

	return copy(buf, "req01234"), nil
}

func (c *stubCodec) DecodeResponse(buf []byte) (*Response, error) {
	c.decoded = append(c.decoded, buf)

	return c.resp, nil
}

func (c *stubCodec) MessageLength(header []byte) (int32, error) {
	return ttlv.MessageLength(header)
}

func (s *ExchangeSuite) TestDestroyWithStubCodec() {
	// 8-byte header declaring a 16-byte body, followed by 16 zero bytes
	frame := make([]byte, 24)
	frame[7] = 16

	codec := &stubCodec{
		resp: &Response{
			Header: ResponseHeader{
				Version:    ProtocolVersion{Major: 1, Minor: 0},
				BatchCount: 1,
			},
			BatchItems: []ResponseBatchItem{
				{
					Operation:    OPERATION_DESTROY,
					ResultStatus: RESULT_STATUS_SUCCESS,
				},
			},
		},
	}

	alloc := &countingAllocator{}
	ctx := s.newContext(alloc)
	ctx.Codec = codec

	conn := newMockConn(frame)

	err := ctx.Destroy(conn, 8192, "key-1")
	s.Require().NoError(err)

	// destroy hands nothing to the caller
	s.Assert().Equal(0, alloc.outstanding)

	s.Require().Len(codec.decoded, 1)
	s.Assert().Equal(frame, codec.decoded[0])
	s.Assert().Equal([]byte("req01234"), conn.out.Bytes())
}

// trackingCodec counts decode calls on top of the real wire format
type trackingCodec struct {
	TTLVCodec
	decodeCalls int
}

func (c *trackingCodec) DecodeResponse(buf []byte) (*Response, error) {
	c.decodeCalls++

	return c.TTLVCodec.DecodeResponse(buf)
}

func (s *ExchangeSuite) TestSendRawRequest() {
	frame := make([]byte, 24)
	frame[7] = 16
	for i := 8; i < 24; i++ {
		frame[i] = byte(i)
	}

	codec := &trackingCodec{}
	alloc := &countingAllocator{}
	ctx := s.newContext(alloc)
	ctx.Codec = codec

	conn := newMockConn(frame)

	request := []byte{0x42, 0x00, 0x78, 0x01, 0x00, 0x00, 0x00, 0x00}

	resp, err := ctx.SendRawRequest(conn, 8192, request)
	s.Require().NoError(err)

	// the full framed response comes back undecoded, header included
	s.Assert().Equal(frame, resp)
	s.Assert().Equal(0, codec.decodeCalls)
	s.Assert().Equal(request, conn.out.Bytes())

	// response ownership moved to the caller
	s.Assert().Equal(1, alloc.outstanding)
}

func (s *ExchangeSuite) TestSendRawRequestOversizeResponse() {
	frame := make([]byte, 8)
	frame[6] = 0x01 // declares 256 bytes

	alloc := &countingAllocator{}
	ctx := s.newContext(alloc)

	resp, err := ctx.SendRawRequest(newMockConn(frame), 100, []byte{1, 2, 3})
	s.Assert().Equal(ErrExceedsMaxMessageSize, errors.Cause(err))
	s.Assert().Nil(resp)
	s.Assert().Equal(0, alloc.outstanding)
}

func TestExchangeSuite(t *testing.T) {
	suite.Run(t, new(ExchangeSuite))
}
