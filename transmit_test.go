package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"

	"github.com/openkmip/kmipbio/ttlv"
)

type TransmitSuite struct {
	suite.Suite
}

func (s *TransmitSuite) createRequest(nameLen int) *Request {
	return &Request{
		Header: RequestHeader{
			Version:    ProtocolVersion{Major: 1, Minor: 0},
			TimeStamp:  time.Unix(12345, 0),
			BatchCount: 1,
		},
		BatchItems: []RequestBatchItem{
			{
				Operation: OPERATION_CREATE,
				RequestPayload: CreateRequest{
					ObjectType: OBJECT_TYPE_SYMMETRIC_KEY,
					TemplateAttribute: TemplateAttribute{
						Attributes: Attributes{
							{
								Name: ATTRIBUTE_NAME_NAME,
								Value: Name{
									Value: strings.Repeat("x", nameLen),
									Type:  NAME_TYPE_UNINTERPRETED_TEXT_STRING,
								},
							},
						},
					},
				},
			},
		},
	}
}

func (s *TransmitSuite) TestSingleBlock() {
	req := s.createRequest(8)

	expected, err := ttlv.Marshal(req)
	s.Require().NoError(err)
	s.Require().Less(len(expected), DefaultBlockSize)

	alloc := &countingAllocator{}
	ctx := NewContext(DefaultVersion)
	ctx.Alloc = alloc

	var out bytes.Buffer
	s.Require().NoError(ctx.transmit(&out, req))

	s.Assert().Equal(expected, out.Bytes())
	s.Assert().Equal([]int{DefaultBlockSize}, alloc.allocSizes)
	s.Assert().Equal(0, alloc.outstanding)
}

func (s *TransmitSuite) TestGrowsUntilEncodingFits() {
	req := s.createRequest(2500)

	expected, err := ttlv.Marshal(req)
	s.Require().NoError(err)
	s.Require().Greater(len(expected), 2*DefaultBlockSize)

	alloc := &countingAllocator{}
	ctx := NewContext(DefaultVersion)
	ctx.Alloc = alloc

	var out bytes.Buffer
	s.Require().NoError(ctx.transmit(&out, req))

	s.Assert().Equal(expected, out.Bytes())

	// one block, then one block more per retry, stopping at the first
	// multiple that fits
	blocks := (len(expected) + DefaultBlockSize - 1) / DefaultBlockSize
	sizes := make([]int, 0, blocks)
	for i := 1; i <= blocks; i++ {
		sizes = append(sizes, i*DefaultBlockSize)
	}

	s.Assert().Equal(sizes, alloc.allocSizes)
	s.Assert().Equal(0, alloc.outstanding)
}

func (s *TransmitSuite) TestBlockSizeOverride() {
	req := s.createRequest(8)

	expected, err := ttlv.Marshal(req)
	s.Require().NoError(err)

	alloc := &countingAllocator{}
	ctx := NewContext(DefaultVersion)
	ctx.Alloc = alloc
	ctx.BlockSize = 64

	var out bytes.Buffer
	s.Require().NoError(ctx.transmit(&out, req))

	s.Assert().Equal(expected, out.Bytes())
	s.Require().NotEmpty(alloc.allocSizes)
	s.Assert().Equal(64, alloc.allocSizes[0])
	s.Assert().Equal(0, alloc.outstanding)
}

type failingAllocator struct {
	countingAllocator
	failAfter int
}

func (a *failingAllocator) Alloc(size int) ([]byte, error) {
	if a.failAfter == 0 {
		return nil, errors.New("out of memory")
	}
	a.failAfter--

	return a.countingAllocator.Alloc(size)
}

func (s *TransmitSuite) TestAllocFailure() {
	alloc := &failingAllocator{}
	ctx := NewContext(DefaultVersion)
	ctx.Alloc = alloc

	var out bytes.Buffer
	err := ctx.transmit(&out, s.createRequest(8))

	s.Assert().Equal(ErrAllocFailed, errors.Cause(err))
	s.Assert().Zero(out.Len())
	s.Assert().Equal(0, alloc.outstanding)
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) - 1, nil
}

func (s *TransmitSuite) TestShortWrite() {
	alloc := &countingAllocator{}
	ctx := NewContext(DefaultVersion)
	ctx.Alloc = alloc

	err := ctx.transmit(shortWriter{}, s.createRequest(8))

	s.Assert().Equal(ErrIOFailure, errors.Cause(err))
	s.Assert().Equal(0, alloc.outstanding)
}

func TestTransmitSuite(t *testing.T) {
	suite.Run(t, new(TransmitSuite))
}
