package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import "github.com/openkmip/kmipbio/ttlv"

// CreateRequest is a Create Request Payload
type CreateRequest struct {
	ObjectType        ttlv.Enum         `kmip:"OBJECT_TYPE,required"`
	TemplateAttribute TemplateAttribute `kmip:"TEMPLATE_ATTRIBUTE,required"`
}

// CreateResponse is a Create Response Payload
type CreateResponse struct {
	ObjectType        ttlv.Enum         `kmip:"OBJECT_TYPE,required"`
	UniqueIdentifier  string            `kmip:"UNIQUE_IDENTIFIER,required"`
	TemplateAttribute TemplateAttribute `kmip:"TEMPLATE_ATTRIBUTE"`
}

// GetRequest is a Get Request Payload
type GetRequest struct {
	UniqueIdentifier   string                   `kmip:"UNIQUE_IDENTIFIER"`
	KeyFormatType      ttlv.Enum                `kmip:"KEY_FORMAT_TYPE"`
	KeyCompressionType ttlv.Enum                `kmip:"KEY_COMPRESSION_TYPE"`
	KeyWrappingSpec    KeyWrappingSpecification `kmip:"KEY_WRAPPING_SPECIFICATION"`
}

// GetResponse is a Get Response Payload
//
// Only symmetric keys are extracted by this layer; other managed objects
// are rejected as a mismatch before any material is copied out.
type GetResponse struct {
	ObjectType       ttlv.Enum    `kmip:"OBJECT_TYPE,required"`
	UniqueIdentifier string       `kmip:"UNIQUE_IDENTIFIER,required"`
	SymmetricKey     SymmetricKey `kmip:"SYMMETRIC_KEY"`
}

// DestroyRequest is a Destroy Request Payload
type DestroyRequest struct {
	UniqueIdentifier string `kmip:"UNIQUE_IDENTIFIER"`
}

// DestroyResponse is a Destroy Response Payload
type DestroyResponse struct {
	UniqueIdentifier string `kmip:"UNIQUE_IDENTIFIER,required"`
}
