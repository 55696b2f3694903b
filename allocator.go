package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

// Allocator is the buffer lifecycle strategy of a Context.
//
// Alloc returns a zero-filled buffer of the given size. Grow returns a
// buffer holding the same leading bytes with extra zero-filled bytes
// appended; the original buffer must not be used afterwards, and a failed
// Grow consumes it (the allocator releases what it was given). Release
// returns a buffer obtained from Alloc or Grow; callers are expected to
// clear their handle after releasing so a buffer is never released twice.
//
// An Allocator may be shared between contexts, but each working buffer is
// owned by exactly one in-flight call.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Grow(buf []byte, extra int) ([]byte, error)
	Release(buf []byte)
}

// HeapAllocator allocates plain garbage-collected buffers
type HeapAllocator struct{}

func (HeapAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (HeapAllocator) Grow(buf []byte, extra int) ([]byte, error) {
	grown := make([]byte, len(buf)+extra)
	copy(grown, buf)

	return grown, nil
}

func (HeapAllocator) Release([]byte) {}

// SecureAllocator wipes buffer contents as soon as a buffer is released
// or left behind by growth, so encoded requests and received key material
// do not linger in memory longer than the exchange that used them.
type SecureAllocator struct{}

func (SecureAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (a SecureAllocator) Grow(buf []byte, extra int) ([]byte, error) {
	grown := make([]byte, len(buf)+extra)
	copy(grown, buf)
	a.Release(buf)

	return grown, nil
}

func (SecureAllocator) Release(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

var defaultAllocator Allocator = HeapAllocator{}
