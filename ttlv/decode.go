package ttlv

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"reflect"
	"time"

	"github.com/pkg/errors"
)

// Decoder reads TTLV items and maps them onto tagged struct fields, the
// mirror image of Encoder.
type Decoder struct {
	r io.Reader
	s io.ByteScanner

	// tag consumed by peekTag but not yet claimed by a read
	peeked Tag
}

// NewDecoder builds a Decoder reading from r. The reader is buffered
// unless it already implements io.ByteScanner.
func NewDecoder(r io.Reader) *Decoder {
	d := &Decoder{
		r: r,
	}

	if s, ok := r.(io.ByteScanner); ok {
		d.s = s
	} else {
		br := bufio.NewReader(r)
		d.r = br
		d.s = br
	}

	return d
}

// Unmarshal decodes a single TTLV structure from b into v
func Unmarshal(b []byte, v interface{}) error {
	return NewDecoder(bytes.NewReader(b)).Decode(v)
}

// Decode reads one structure from the stream into v, which must be a
// settable struct pointer.
func (d *Decoder) Decode(v interface{}) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return errors.New("invalid value")
	}
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return errors.New("invalid pointer value")
	}
	if !rv.CanSet() {
		return errors.New("unsettable value")
	}

	sd, err := getStructDesc(rv.Type())
	if err != nil {
		return err
	}

	_, err = d.decode(rv, sd)

	return err
}

// tags are 3 bytes on the wire
func (d *Decoder) readRawTag() (t Tag, err error) {
	var b [4]byte

	if _, err = io.ReadFull(d.r, b[1:]); err != nil {
		return
	}

	t = Tag(binary.BigEndian.Uint32(b[:]))

	return
}

func (d *Decoder) readTag() (t Tag, err error) {
	if d.peeked != 0 {
		t, d.peeked = d.peeked, 0
		return
	}

	return d.readRawTag()
}

func (d *Decoder) peekTag() (Tag, error) {
	if d.peeked == 0 {
		t, err := d.readRawTag()
		if err != nil {
			return t, err
		}

		d.peeked = t
	}

	return d.peeked, nil
}

func (d *Decoder) expectTag(expected Tag) error {
	t, err := d.readTag()
	if err != nil {
		return err
	}

	if expected != t && expected != ANY_TAG {
		return errors.Errorf("expecting tag %x, but %x was encountered", expected, t)
	}

	return nil
}

func (d *Decoder) readType() (Type, error) {
	b, err := d.s.ReadByte()

	return Type(b), err
}

func (d *Decoder) expectType(expected Type) error {
	t, err := d.readType()
	if err != nil {
		return err
	}

	if expected != t {
		return errors.Errorf("expecting type %d, but %d was encountered", expected, t)
	}

	return nil
}

func (d *Decoder) readLength() (uint32, error) {
	var b [4]byte

	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(b[:]), nil
}

func (d *Decoder) expectLength(expected uint32) error {
	l, err := d.readLength()
	if err != nil {
		return err
	}

	if expected != l {
		return errors.Errorf("expecting length %d, but %d was encountered", expected, l)
	}

	return nil
}

// readFixed consumes one fixed-width item: tag, type, the expected length
// and the 8-byte padded value block.
func (d *Decoder) readFixed(t Tag, typ Type, l uint32) (b [8]byte, err error) {
	if err = d.expectTag(t); err != nil {
		return
	}

	if err = d.expectType(typ); err != nil {
		return
	}

	if err = d.expectLength(l); err != nil {
		return
	}

	_, err = io.ReadFull(d.r, b[:])

	return
}

func (d *Decoder) readInteger(t Tag) (int32, error) {
	b, err := d.readFixed(t, INTEGER, 4)

	return int32(binary.BigEndian.Uint32(b[:4])), err
}

func (d *Decoder) readLongInteger(t Tag) (int64, error) {
	b, err := d.readFixed(t, LONG_INTEGER, 8)

	return int64(binary.BigEndian.Uint64(b[:])), err
}

func (d *Decoder) readEnum(t Tag) (Enum, error) {
	b, err := d.readFixed(t, ENUMERATION, 4)

	return Enum(binary.BigEndian.Uint32(b[:4])), err
}

func (d *Decoder) readBool(t Tag) (v bool, err error) {
	b, err := d.readFixed(t, BOOLEAN, 8)
	if err != nil {
		return
	}

	for _, c := range b[:7] {
		if c != 0 {
			return false, errors.Errorf("unexpected boolean value: %v", b)
		}
	}

	switch b[7] {
	case 0, 1:
		v = b[7] == 1
	default:
		err = errors.Errorf("unexpected boolean value: %v", b)
	}

	return
}

func (d *Decoder) readTime(t Tag) (time.Time, error) {
	b, err := d.readFixed(t, DATE_TIME, 8)
	if err != nil {
		return time.Time{}, err
	}

	return time.Unix(int64(binary.BigEndian.Uint64(b[:])), 0), nil
}

func (d *Decoder) readDuration(t Tag) (time.Duration, error) {
	b, err := d.readFixed(t, INTERVAL, 4)

	return time.Duration(binary.BigEndian.Uint32(b[:4])) * time.Second, err
}

// readByteSlice consumes a variable-width item and its trailing padding,
// returning the number of wire bytes consumed alongside the value.
func (d *Decoder) readByteSlice(t Tag, typ Type) (n int, v []byte, err error) {
	if err = d.expectTag(t); err != nil {
		return
	}

	if err = d.expectType(typ); err != nil {
		return
	}

	var l uint32
	if l, err = d.readLength(); err != nil {
		return
	}

	v = make([]byte, l)
	if _, err = io.ReadFull(d.r, v); err != nil {
		return
	}

	n = int(l) + 8

	if pad := padLength(l); pad > 0 {
		var b [8]byte
		if _, err = io.ReadFull(d.r, b[:pad]); err != nil {
			return
		}

		n += pad
	}

	return
}

func padLength(l uint32) int {
	if l%8 == 0 {
		return 0
	}

	return int(8 - l%8)
}

func (d *Decoder) readBytes(t Tag) (int, []byte, error) {
	return d.readByteSlice(t, BYTE_STRING)
}

func (d *Decoder) readString(t Tag) (n int, v string, err error) {
	var b []byte
	n, b, err = d.readByteSlice(t, TEXT_STRING)
	v = string(b)

	return
}

// discardValue reads one item of any type and throws the value away
func (d *Decoder) discardValue(t Tag) (n int, err error) {
	if err = d.expectTag(t); err != nil {
		return
	}

	if _, err = d.readType(); err != nil {
		return
	}

	var l uint32
	if l, err = d.readLength(); err != nil {
		return
	}

	l += uint32(padLength(l))

	_, err = io.CopyN(io.Discard, d.r, int64(l))

	return int(l) + 8, err
}

func (d *Decoder) decodeValue(f field, t reflect.Type, rv reflect.Value) (n int, v interface{}, err error) {
	if f.skip {
		n, err = d.discardValue(f.tag)
		return
	}

	switch f.typ {
	case INTEGER:
		v, err = d.readInteger(f.tag)
		n = 16
	case LONG_INTEGER:
		v, err = d.readLongInteger(f.tag)
		n = 16
	case ENUMERATION:
		v, err = d.readEnum(f.tag)
		n = 16
	case BOOLEAN:
		v, err = d.readBool(f.tag)
		n = 16
	case DATE_TIME:
		v, err = d.readTime(f.tag)
		n = 16
	case INTERVAL:
		v, err = d.readDuration(f.tag)
		n = 16
	case BYTE_STRING:
		n, v, err = d.readBytes(f.tag)
	case TEXT_STRING:
		n, v, err = d.readString(f.tag)
	case STRUCTURE:
		n, v, err = d.decodeStruct(f, t, rv)
	default:
		panic("unsupported type")
	}

	return
}

// decodeStruct decodes a nested structure. For a dynamic field the value
// type is obtained from the enclosing struct via DynamicDispatch, and may
// turn out to be a primitive rather than a structure.
func (d *Decoder) decodeStruct(f field, t reflect.Type, rv reflect.Value) (n int, v interface{}, err error) {
	var (
		sd *structDesc
		vv reflect.Value
	)

	if f.dynamic {
		dd, ok := rv.Addr().Interface().(DynamicDispatch)
		if !ok {
			err = errors.New("field is dynamic, but DynamicDispatch is not implemented")
			return
		}

		var val interface{}
		if val, err = dd.BuildFieldValue(f.name); err != nil {
			return
		}

		vv = reflect.ValueOf(val)

		if typ, ok := typeBindings[vv.Type()]; ok {
			f.typ = typ
			return d.decodeValue(f, t, rv)
		}

		if sd, err = getStructDesc(vv.Type().Elem()); err != nil {
			return
		}
	} else {
		if sd, err = getStructDesc(t); err != nil {
			return
		}

		vv = reflect.New(t)
	}

	sd.tag = f.tag
	n, err = d.decode(vv, sd)
	v = vv.Elem().Interface()

	return
}

// decodeSlice decodes consecutive items carrying the field's tag into a
// fresh slice, stopping at the structure boundary or the first foreign tag.
func (d *Decoder) decodeSlice(f field, rv, ff reflect.Value, remaining uint32) (int, error) {
	ff.Set(reflect.MakeSlice(ff.Type(), 0, 0))

	n := 0

	for {
		nn, v, err := d.decodeValue(f, ff.Type().Elem(), rv)
		if err != nil {
			return n, err
		}

		n += nn

		if !f.skip {
			ff.Set(reflect.Append(ff, reflect.ValueOf(v)))
		}

		if uint32(n) >= remaining {
			return n, nil
		}

		tag, err := d.peekTag()
		if err != nil {
			return n, err
		}

		if tag != f.tag {
			return n, nil
		}
	}
}

func (d *Decoder) decode(rv reflect.Value, sd *structDesc) (n int, err error) {
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	if err = d.expectTag(sd.tag); err != nil {
		return
	}

	if err = d.expectType(STRUCTURE); err != nil {
		return
	}

	var expectedLen uint32
	if expectedLen, err = d.readLength(); err != nil {
		return
	}

	n = 8

	// the nested decoder cannot read past the structure boundary
	dd := NewDecoder(io.LimitReader(d.r, int64(expectedLen)))

	var contentLen uint32

	for _, f := range sd.fields {
		var tag Tag

		tag, err = dd.peekTag()
		if err == io.EOF && !f.required {
			err = nil
			continue
		}

		if err != nil {
			return n, errors.Wrapf(err, "error reading field %v", f.name)
		}

		if !f.required && tag != f.tag && f.tag != ANY_TAG {
			continue
		}

		var nn int

		ff := rv.FieldByIndex(f.idx)

		if f.sliceof {
			nn, err = dd.decodeSlice(f, rv, ff, expectedLen-contentLen)
		} else {
			var v interface{}

			nn, v, err = dd.decodeValue(f, ff.Type(), rv)
			if err == nil && !f.skip {
				ff.Set(reflect.ValueOf(v))
			}
		}

		if err != nil {
			return n, errors.Wrapf(err, "error reading field %v", f.name)
		}

		n += nn
		contentLen += uint32(nn)
	}

	if contentLen != expectedLen {
		err = errors.Errorf("error reading structure expected %d != actual %d", expectedLen, contentLen)
	}

	return
}
