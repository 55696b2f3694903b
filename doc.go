// Package kmipbio implements the client side of the KMIP protocol over an
// established stream.
//
// The package does not dial or manage connections. Callers hand each
// operation an io.ReadWriter, typically a *tls.Conn, and kmipbio takes care
// of encoding the request message, writing it, reading the response frame
// and decoding and validating the result:
//
//	id, err := kmipbio.Create(conn, maxSize, kmipbio.TemplateAttribute{
//		Attributes: kmipbio.Attributes{...},
//	})
//
// The package-level Create, GetSymmetricKey and Destroy functions run with
// KMIP protocol version 1.0 and default buffer management. A Context allows
// overriding the protocol version, the buffer allocation policy and the
// message codec:
//
//	ctx := kmipbio.NewContext(kmipbio.ProtocolVersion{Major: 1, Minor: 2})
//	ctx.Alloc = kmipbio.SecureAllocator{}
//	key, err := ctx.GetSymmetricKey(conn, maxSize, id)
//
// Exactly one request is encoded per message and exactly one batch item is
// expected in each response. Responses whose declared length exceeds the
// caller's maximum message size are rejected before the body is read.
package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */
