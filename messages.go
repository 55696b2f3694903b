package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"time"

	"github.com/pkg/errors"

	"github.com/openkmip/kmipbio/ttlv"
)

// ProtocolVersion is a Protocol Version structure
type ProtocolVersion struct {
	ttlv.Tag `kmip:"PROTOCOL_VERSION"`

	Major int32 `kmip:"PROTOCOL_VERSION_MAJOR"`
	Minor int32 `kmip:"PROTOCOL_VERSION_MINOR"`
}

// DefaultVersion is the protocol version spoken when a Context does not
// configure one. There is no version negotiation in this layer.
var DefaultVersion = ProtocolVersion{Major: 1, Minor: 0}

// Request is a Request Message Structure
//
// The exchange layer always sends exactly one batch item per request.
type Request struct {
	ttlv.Tag `kmip:"REQUEST_MESSAGE"`

	Header     RequestHeader      `kmip:"REQUEST_HEADER,required"`
	BatchItems []RequestBatchItem `kmip:"REQUEST_BATCH_ITEM,required"`
}

// RequestHeader is a Request Header Structure
type RequestHeader struct {
	ttlv.Tag `kmip:"REQUEST_HEADER"`

	Version                ProtocolVersion `kmip:"PROTOCOL_VERSION,required"`
	MaxResponseSize        int32           `kmip:"MAXIMUM_RESPONSE_SIZE"`
	ClientCorrelationValue string          `kmip:"CLIENT_CORRELATION_VALUE"`
	ServerCorrelationValue string          `kmip:"SERVER_CORRELATION_VALUE"`
	TimeStamp              time.Time       `kmip:"TIME_STAMP"`
	BatchCount             int32           `kmip:"BATCH_COUNT,required"`
}

// RequestBatchItem is a Request Batch Item Structure
type RequestBatchItem struct {
	ttlv.Tag `kmip:"REQUEST_BATCH_ITEM"`

	Operation        ttlv.Enum        `kmip:"OPERATION,required"`
	UniqueID         []byte           `kmip:"UNIQUE_BATCH_ITEM_ID"`
	RequestPayload   interface{}      `kmip:"REQUEST_PAYLOAD,required"`
	MessageExtension MessageExtension `kmip:"MESSAGE_EXTENSION"`
}

// BuildFieldValue builds value for RequestPayload based on Operation
func (bi *RequestBatchItem) BuildFieldValue(name string) (v interface{}, err error) {
	switch bi.Operation {
	case OPERATION_CREATE:
		v = &CreateRequest{}
	case OPERATION_GET:
		v = &GetRequest{}
	case OPERATION_DESTROY:
		v = &DestroyRequest{}
	default:
		err = errors.Errorf("unsupported operation: %v", bi.Operation)
	}

	return
}

// Response is a Response Message Structure
type Response struct {
	ttlv.Tag `kmip:"RESPONSE_MESSAGE"`

	Header     ResponseHeader      `kmip:"RESPONSE_HEADER,required"`
	BatchItems []ResponseBatchItem `kmip:"RESPONSE_BATCH_ITEM,required"`
}

// ResponseHeader is a Response Header Structure
type ResponseHeader struct {
	ttlv.Tag `kmip:"RESPONSE_HEADER"`

	Version                ProtocolVersion `kmip:"PROTOCOL_VERSION,required"`
	TimeStamp              time.Time       `kmip:"TIME_STAMP,required"`
	Nonce                  Nonce           `kmip:"NONCE"`
	AttestationType        []ttlv.Enum     `kmip:"ATTESTATION_TYPE"`
	ClientCorrelationValue string          `kmip:"CLIENT_CORRELATION_VALUE"`
	ServerCorrelationValue string          `kmip:"SERVER_CORRELATION_VALUE"`
	BatchCount             int32           `kmip:"BATCH_COUNT,required"`
}

// ResponseBatchItem is a Response Batch Item Structure
type ResponseBatchItem struct {
	Operation                   ttlv.Enum        `kmip:"OPERATION,required"`
	UniqueID                    []byte           `kmip:"UNIQUE_BATCH_ITEM_ID"`
	ResultStatus                ttlv.Enum        `kmip:"RESULT_STATUS,required"`
	ResultReason                ttlv.Enum        `kmip:"RESULT_REASON"`
	ResultMessage               string           `kmip:"RESULT_MESSAGE"`
	AsyncronousCorrelationValue []byte           `kmip:"ASYNCHRONOUS_CORRELATION_VALUE"`
	ResponsePayload             interface{}      `kmip:"RESPONSE_PAYLOAD"`
	MessageExtension            MessageExtension `kmip:"MESSAGE_EXTENSION"`
}

// BuildFieldValue builds value for ResponsePayload based on Operation
func (bi *ResponseBatchItem) BuildFieldValue(name string) (v interface{}, err error) {
	switch bi.Operation {
	case OPERATION_CREATE:
		v = &CreateResponse{}
	case OPERATION_GET:
		v = &GetResponse{}
	case OPERATION_DESTROY:
		v = &DestroyResponse{}
	default:
		err = errors.Errorf("unsupported operation: %v", bi.Operation)
	}

	return
}

// MessageExtension is a Message Extension structure in a Batch Item
type MessageExtension struct {
	ttlv.Tag `kmip:"MESSAGE_EXTENSION"`

	VendorIdentification string      `kmip:"VENDOR_IDENTIFICATION,required"`
	CriticalityIndicator bool        `kmip:"CRITICALITY_INDICATOR,required"`
	VendorExtension      interface{} `kmip:"-,skip"`
}

// Nonce object is a structure used by the server to send a random value to the client
type Nonce struct {
	ttlv.Tag `kmip:"NONCE"`

	NonceID    []byte `kmip:"NONCE_ID,required"`
	NonceValue []byte `kmip:"NONCE_VALUE,required"`
}
