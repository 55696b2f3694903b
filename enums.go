package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import "github.com/openkmip/kmipbio/ttlv"

// Enum is re-exported so that callers building attributes and inspecting
// result reasons do not need to import ttlv directly.
type Enum = ttlv.Enum

// Operations supported by the exchange layer
const (
	OPERATION_CREATE  Enum = 0x00000001
	OPERATION_GET     Enum = 0x0000000A
	OPERATION_DESTROY Enum = 0x00000014
)

// Object Types
const (
	OBJECT_TYPE_CERTIFICATE   Enum = 0x00000001
	OBJECT_TYPE_SYMMETRIC_KEY Enum = 0x00000002
	OBJECT_TYPE_PUBLIC_KEY    Enum = 0x00000003
	OBJECT_TYPE_PRIVATE_KEY   Enum = 0x00000004
	OBJECT_TYPE_SECRET_DATA   Enum = 0x00000007
	OBJECT_TYPE_OPAQUE_DATA   Enum = 0x00000008
)

// Key Format Types
const (
	KEY_FORMAT_RAW    Enum = 0x00000001
	KEY_FORMAT_OPAQUE Enum = 0x00000002
)

// Wrapping Methods
const (
	WRAPPING_METHOD_ENCRYPT               Enum = 0x00000001
	WRAPPING_METHOD_MAC_SIGN              Enum = 0x00000002
	WRAPPING_METHOD_ENCRYPT_THEN_MAC_SIGN Enum = 0x00000003
	WRAPPING_METHOD_MAC_SIGN_THEN_ENCRYPT Enum = 0x00000004
)

// Name Types
const (
	NAME_TYPE_UNINTERPRETED_TEXT_STRING Enum = 0x00000001
	NAME_TYPE_URI                       Enum = 0x00000002
)

// Cryptographic Algorithms
const (
	CRYPTO_DES  Enum = 0x00000001
	CRYPTO_3DES Enum = 0x00000002
	CRYPTO_AES  Enum = 0x00000003
	CRYPTO_RSA  Enum = 0x00000004
)

// Cryptographic Usage Mask bits
const (
	USAGE_MASK_SIGN    int32 = 0x00000001
	USAGE_MASK_VERIFY  int32 = 0x00000002
	USAGE_MASK_ENCRYPT int32 = 0x00000004
	USAGE_MASK_DECRYPT int32 = 0x00000008
)

// Result Statuses
const (
	RESULT_STATUS_SUCCESS           Enum = 0x00000000
	RESULT_STATUS_OPERATION_FAILED  Enum = 0x00000001
	RESULT_STATUS_OPERATION_PENDING Enum = 0x00000002
	RESULT_STATUS_OPERATION_UNDONE  Enum = 0x00000003
)

// Result Reasons
const (
	RESULT_REASON_ITEM_NOT_FOUND                Enum = 0x00000001
	RESULT_REASON_RESPONSE_TOO_LARGE            Enum = 0x00000002
	RESULT_REASON_AUTHENTICATION_NOT_SUCCESSFUL Enum = 0x00000003
	RESULT_REASON_INVALID_MESSAGE               Enum = 0x00000004
	RESULT_REASON_OPERATION_NOT_SUPPORTED       Enum = 0x00000005
	RESULT_REASON_MISSING_DATA                  Enum = 0x00000006
	RESULT_REASON_INVALID_FIELD                 Enum = 0x00000007
	RESULT_REASON_FEATURE_NOT_SUPPORTED         Enum = 0x00000008
	RESULT_REASON_CRYPTOGRAPHIC_FAILURE         Enum = 0x0000000A
	RESULT_REASON_ILLEGAL_OPERATION             Enum = 0x0000000B
	RESULT_REASON_PERMISSION_DENIED             Enum = 0x0000000C
	RESULT_REASON_OBJECT_ARCHIVED               Enum = 0x0000000D
	RESULT_REASON_GENERAL_FAILURE               Enum = 0x00000100
)

// Attribute Names
const (
	ATTRIBUTE_NAME_UNIQUE_IDENTIFIER        = "Unique Identifier"
	ATTRIBUTE_NAME_NAME                     = "Name"
	ATTRIBUTE_NAME_OBJECT_TYPE              = "Object Type"
	ATTRIBUTE_NAME_CRYPTOGRAPHIC_ALGORITHM  = "Cryptographic Algorithm"
	ATTRIBUTE_NAME_CRYPTOGRAPHIC_LENGTH     = "Cryptographic Length"
	ATTRIBUTE_NAME_CRYPTOGRAPHIC_USAGE_MASK = "Cryptographic Usage Mask"
	ATTRIBUTE_NAME_INITIAL_DATE             = "Initial Date"
	ATTRIBUTE_NAME_ACTIVATION_DATE          = "Activation Date"
	ATTRIBUTE_NAME_DEACTIVATION_DATE        = "Deactivation Date"
	ATTRIBUTE_NAME_LAST_CHANGE_DATE         = "Last Change Date"
	ATTRIBUTE_NAME_STATE                    = "State"
	ATTRIBUTE_NAME_OPERATION_POLICY_NAME    = "Operation Policy Name"
	ATTRIBUTE_NAME_DIGEST                   = "Digest"
)
