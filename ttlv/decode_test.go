package ttlv

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type DecoderSuite struct {
	suite.Suite
}

func (s *DecoderSuite) parseSpecValue(val string) []byte {
	val = strings.ReplaceAll(strings.ReplaceAll(strings.ReplaceAll(val, "_", ""), "|", ""), " ", "")

	res, err := hex.DecodeString(val)
	s.Require().NoError(err)

	return res
}

func (s *DecoderSuite) TestReadInteger() {
	v, err := NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 02 | 00 00 00 04 | 00 00 00 08 00 00 00 00"))).readInteger(ACTIVATION_DATE)
	s.Assert().NoError(err)
	s.Assert().EqualValues(8, v)

	// padding missing
	_, err = NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 02 | 00 00 00 04 | 00 00 00 08 00 00 00 "))).readInteger(ACTIVATION_DATE)
	s.Assert().EqualError(err, "unexpected EOF")

	// no value
	_, err = NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 02 | 00 00 00 04 | 00"))).readInteger(ACTIVATION_DATE)
	s.Assert().EqualError(err, "unexpected EOF")

	// no length
	_, err = NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 02 | 00 00 "))).readInteger(ACTIVATION_DATE)
	s.Assert().EqualError(err, "unexpected EOF")

	// no type
	_, err = NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | "))).readInteger(ACTIVATION_DATE)
	s.Assert().EqualError(err, "EOF")

	// no tag
	_, err = NewDecoder(bytes.NewReader(s.parseSpecValue("42"))).readInteger(ACTIVATION_DATE)
	s.Assert().EqualError(err, "unexpected EOF")

	_, err = NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 02 | 00 00 00 04 | 00 00 00 08 00 00 00 00"))).readInteger(CRYPTOGRAPHIC_ALGORITHM)
	s.Assert().EqualError(err, "expecting tag 420028, but 420001 was encountered")

	_, err = NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 01 | 00 00 00 04 | 00 00 00 08 00 00 00 00"))).readInteger(ACTIVATION_DATE)
	s.Assert().EqualError(err, "expecting type 2, but 1 was encountered")

	_, err = NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 02 | 00 00 00 03 | 00 00 00 08 00 00 00 00"))).readInteger(ACTIVATION_DATE)
	s.Assert().EqualError(err, "expecting length 4, but 3 was encountered")
}

func (s *DecoderSuite) TestReadLongInteger() {
	v, err := NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 03 | 00 00 00 08 | 01 B6 9B 4B A5 74 92 00"))).readLongInteger(ACTIVATION_DATE)
	s.Assert().NoError(err)
	s.Assert().EqualValues(123456789000000000, v)
}

func (s *DecoderSuite) TestReadEnum() {
	v, err := NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 05 | 00 00 00 04 | 00 00 00 FF 00 00 00 00"))).readEnum(ACTIVATION_DATE)
	s.Assert().NoError(err)
	s.Assert().EqualValues(255, v)
}

func (s *DecoderSuite) TestReadBool() {
	v, err := NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 06 | 00 00 00 08 | 00 00 00 00 00 00 00 01"))).readBool(ACTIVATION_DATE)
	s.Assert().NoError(err)
	s.Assert().True(v)

	v, err = NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 06 | 00 00 00 08 | 00 00 00 00 00 00 00 00"))).readBool(ACTIVATION_DATE)
	s.Assert().NoError(err)
	s.Assert().False(v)

	_, err = NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 06 | 00 00 00 08 | 00 00 00 00 00 00 00 03"))).readBool(ACTIVATION_DATE)
	s.Assert().EqualError(err, "unexpected boolean value: [0 0 0 0 0 0 0 3]")

	_, err = NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 06 | 00 00 00 08 | 00 00 00 00 01 00 00 00"))).readBool(ACTIVATION_DATE)
	s.Assert().EqualError(err, "unexpected boolean value: [0 0 0 0 1 0 0 0]")
}

func (s *DecoderSuite) TestReadString() {
	n, v, err := NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 07 | 00 00 00 0B | 48 65 6C 6C 6F 20 57 6F 72 6C 64 00 00 00 00 00"))).readString(ACTIVATION_DATE)
	s.Assert().NoError(err)
	s.Assert().EqualValues("Hello World", v)
	s.Assert().EqualValues(24, n)
}

func (s *DecoderSuite) TestReadBytes() {
	n, v, err := NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 08 | 00 00 00 03 | 01 02 03 00 00 00 00 00"))).readBytes(ACTIVATION_DATE)
	s.Assert().NoError(err)
	s.Assert().EqualValues([]byte{1, 2, 3}, v)
	s.Assert().EqualValues(16, n)
}

func (s *DecoderSuite) TestReadTime() {
	v, err := NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 09 | 00 00 00 08 | 00 00 00 00 47 DA 67 F8"))).readTime(ACTIVATION_DATE)
	s.Assert().NoError(err)
	s.Assert().Equal("2008-03-14T11:56:40Z", v.UTC().Format(time.RFC3339))
}

func (s *DecoderSuite) TestReadDuration() {
	v, err := NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 01 | 0A | 00 00 00 04 | 00 0D 2F 00 00 00 00 00"))).readDuration(ACTIVATION_DATE)
	s.Assert().NoError(err)
	s.Assert().Equal(10*24*time.Hour, v)
}

func (s *DecoderSuite) TestDecodeStruct() {
	type tt struct {
		Tag   `kmip:"CRYPTOGRAPHIC_PARAMETERS"`
		Other string
		A     Enum   `kmip:"CRYPTOGRAPHIC_ALGORITHM,required"`
		B     int32  `kmip:"CRYPTOGRAPHIC_LENGTH,required"`
		C     string `kmip:"NAME_VALUE"`
		D     []byte `kmip:"ACTIVATION_DATE"`
	}

	var v tt

	err := NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 2B | 01 | 00 00 00 20 | 42 00 28 | 05 | 00 00 00 04 | 00 00 00 FE 00 00 00 00 |" +
		" 42 00 2A | 02 | 00 00 00 04 | 00 00 00 FF 00 00 00 00"))).Decode(&v)
	s.Assert().NoError(err)

	s.Assert().EqualValues(254, v.A)
	s.Assert().EqualValues(255, v.B)
}

func (s *DecoderSuite) TestDecodeStructRepeated() {
	type tt struct {
		Tag `kmip:"CRYPTOGRAPHIC_PARAMETERS"`
		A   Enum `kmip:"CRYPTOGRAPHIC_ALGORITHM,required"`
	}

	data := s.parseSpecValue("42 00 2B | 01 | 00 00 00 10 | 42 00 28 | 05 | 00 00 00 04 | 00 00 00 FE 00 00 00 00")

	// the second decode runs off the cached field layout
	for i := 0; i < 2; i++ {
		var v tt

		err := NewDecoder(bytes.NewReader(data)).Decode(&v)
		s.Assert().NoError(err)
		s.Assert().EqualValues(254, v.A)
	}
}

func (s *DecoderSuite) TestDecodeStructSkip() {
	type tt struct {
		Tag `kmip:"CRYPTOGRAPHIC_PARAMETERS"`
		A   Enum  `kmip:"CRYPTOGRAPHIC_ALGORITHM,required"`
		B   int32 `kmip:"CRYPTOGRAPHIC_LENGTH,skip"`
	}

	var v tt

	err := NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 2B | 01 | 00 00 00 20 | 42 00 28 | 05 | 00 00 00 04 | 00 00 00 FE 00 00 00 00 |" +
		" 42 00 2A | 02 | 00 00 00 04 | 00 00 00 FF 00 00 00 00"))).Decode(&v)
	s.Assert().NoError(err)

	s.Assert().EqualValues(254, v.A)
	s.Assert().EqualValues(0, v.B)
}

func (s *DecoderSuite) TestDecodeStructSkipAny() {
	type tt struct {
		Tag `kmip:"CRYPTOGRAPHIC_PARAMETERS"`
		A   Enum        `kmip:"CRYPTOGRAPHIC_ALGORITHM"`
		B   interface{} `kmip:"-,skip"`
	}

	var v tt

	err := NewDecoder(bytes.NewReader(s.parseSpecValue("42 00 2B | 01 | 00 00 00 20 | 42 00 28 | 05 | 00 00 00 04 | 00 00 00 FE 00 00 00 00 |" +
		" 42 00 2A | 02 | 00 00 00 04 | 00 00 00 FF 00 00 00 00"))).Decode(&v)
	s.Assert().NoError(err)

	s.Assert().EqualValues(254, v.A)
	s.Assert().EqualValues(nil, v.B)
}

func TestDecoderSuite(t *testing.T) {
	suite.Run(t, new(DecoderSuite))
}
