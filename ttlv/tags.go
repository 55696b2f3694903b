package ttlv

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

// KMIP tags used by the exchange layer
const (
	// Internal
	ANY_TAG Tag = 0xffffff

	ACTIVATION_DATE                 Tag = 0x420001
	ASYNCHRONOUS_CORRELATION_VALUE  Tag = 0x420006
	ASYNCHRONOUS_INDICATOR          Tag = 0x420007
	ATTRIBUTE                       Tag = 0x420008
	ATTRIBUTE_INDEX                 Tag = 0x420009
	ATTRIBUTE_NAME                  Tag = 0x42000A
	ATTRIBUTE_VALUE                 Tag = 0x42000B
	AUTHENTICATION                  Tag = 0x42000C
	BATCH_COUNT                     Tag = 0x42000D
	BATCH_ERROR_CONTINUATION_OPTION Tag = 0x42000E
	BATCH_ORDER_OPTION              Tag = 0x420010
	BLOCK_CIPHER_MODE               Tag = 0x420011
	CRITICALITY_INDICATOR           Tag = 0x420026
	CRYPTOGRAPHIC_ALGORITHM         Tag = 0x420028
	CRYPTOGRAPHIC_LENGTH            Tag = 0x42002A
	CRYPTOGRAPHIC_PARAMETERS        Tag = 0x42002B
	CRYPTOGRAPHIC_USAGE_MASK        Tag = 0x42002C
	DEACTIVATION_DATE               Tag = 0x42002F
	DIGEST                          Tag = 0x420034
	DIGEST_VALUE                    Tag = 0x420035
	ENCRYPTION_KEY_INFORMATION      Tag = 0x420036
	HASHING_ALGORITHM               Tag = 0x420038
	INITIAL_DATE                    Tag = 0x420039
	IV_COUNTER_NONCE                Tag = 0x42003D
	KEY_BLOCK                       Tag = 0x420040
	KEY_COMPRESSION_TYPE            Tag = 0x420041
	KEY_FORMAT_TYPE                 Tag = 0x420042
	KEY_MATERIAL                    Tag = 0x420043
	KEY_VALUE                       Tag = 0x420045
	KEY_WRAPPING_DATA               Tag = 0x420046
	KEY_WRAPPING_SPECIFICATION      Tag = 0x420047
	LAST_CHANGE_DATE                Tag = 0x420048
	MAC_SIGNATURE                   Tag = 0x42004D
	MAC_SIGNATURE_KEY_INFORMATION   Tag = 0x42004E
	MAXIMUM_RESPONSE_SIZE           Tag = 0x420050
	MESSAGE_EXTENSION               Tag = 0x420051
	NAME                            Tag = 0x420053
	NAME_TYPE                       Tag = 0x420054
	NAME_VALUE                      Tag = 0x420055
	OBJECT_TYPE                     Tag = 0x420057
	OPERATION                       Tag = 0x42005C
	OPERATION_POLICY_NAME           Tag = 0x42005D
	PADDING_METHOD                  Tag = 0x42005F
	PROTOCOL_VERSION                Tag = 0x420069
	PROTOCOL_VERSION_MAJOR          Tag = 0x42006A
	PROTOCOL_VERSION_MINOR          Tag = 0x42006B
	REQUEST_BATCH_ITEM              Tag = 0x42000F
	REQUEST_HEADER                  Tag = 0x420077
	REQUEST_MESSAGE                 Tag = 0x420078
	REQUEST_PAYLOAD                 Tag = 0x420079
	RESPONSE_BATCH_ITEM             Tag = 0x42000F
	RESPONSE_HEADER                 Tag = 0x42007A
	RESPONSE_MESSAGE                Tag = 0x42007B
	RESPONSE_PAYLOAD                Tag = 0x42007C
	RESULT_MESSAGE                  Tag = 0x42007D
	RESULT_REASON                   Tag = 0x42007E
	RESULT_STATUS                   Tag = 0x42007F
	STATE                           Tag = 0x42008D
	SYMMETRIC_KEY                   Tag = 0x42008F
	TEMPLATE_ATTRIBUTE              Tag = 0x420091
	TIME_STAMP                      Tag = 0x420092
	UNIQUE_BATCH_ITEM_ID            Tag = 0x420093
	UNIQUE_IDENTIFIER               Tag = 0x420094
	VENDOR_IDENTIFICATION           Tag = 0x42009D
	WRAPPING_METHOD                 Tag = 0x42009E
	ENCODING_OPTION                 Tag = 0x4200A3
	ATTESTATION_TYPE                Tag = 0x4200C7
	NONCE                           Tag = 0x4200C8
	NONCE_ID                        Tag = 0x4200C9
	NONCE_VALUE                     Tag = 0x4200CA
	ATTESTATION_CAPABLE_INDICATOR   Tag = 0x4200D3
	CLIENT_CORRELATION_VALUE        Tag = 0x420105
	SERVER_CORRELATION_VALUE        Tag = 0x420106
)

var tagMap = map[string]Tag{
	"-":                               ANY_TAG,
	"ANY_TAG":                         ANY_TAG,
	"ACTIVATION_DATE":                 ACTIVATION_DATE,
	"ASYNCHRONOUS_CORRELATION_VALUE":  ASYNCHRONOUS_CORRELATION_VALUE,
	"ASYNCHRONOUS_INDICATOR":          ASYNCHRONOUS_INDICATOR,
	"ATTRIBUTE":                       ATTRIBUTE,
	"ATTRIBUTE_INDEX":                 ATTRIBUTE_INDEX,
	"ATTRIBUTE_NAME":                  ATTRIBUTE_NAME,
	"ATTRIBUTE_VALUE":                 ATTRIBUTE_VALUE,
	"AUTHENTICATION":                  AUTHENTICATION,
	"BATCH_COUNT":                     BATCH_COUNT,
	"BATCH_ERROR_CONTINUATION_OPTION": BATCH_ERROR_CONTINUATION_OPTION,
	"BATCH_ORDER_OPTION":              BATCH_ORDER_OPTION,
	"BLOCK_CIPHER_MODE":               BLOCK_CIPHER_MODE,
	"CRITICALITY_INDICATOR":           CRITICALITY_INDICATOR,
	"CRYPTOGRAPHIC_ALGORITHM":         CRYPTOGRAPHIC_ALGORITHM,
	"CRYPTOGRAPHIC_LENGTH":            CRYPTOGRAPHIC_LENGTH,
	"CRYPTOGRAPHIC_PARAMETERS":        CRYPTOGRAPHIC_PARAMETERS,
	"CRYPTOGRAPHIC_USAGE_MASK":        CRYPTOGRAPHIC_USAGE_MASK,
	"DEACTIVATION_DATE":               DEACTIVATION_DATE,
	"DIGEST":                          DIGEST,
	"DIGEST_VALUE":                    DIGEST_VALUE,
	"ENCRYPTION_KEY_INFORMATION":      ENCRYPTION_KEY_INFORMATION,
	"HASHING_ALGORITHM":               HASHING_ALGORITHM,
	"INITIAL_DATE":                    INITIAL_DATE,
	"IV_COUNTER_NONCE":                IV_COUNTER_NONCE,
	"KEY_BLOCK":                       KEY_BLOCK,
	"KEY_COMPRESSION_TYPE":            KEY_COMPRESSION_TYPE,
	"KEY_FORMAT_TYPE":                 KEY_FORMAT_TYPE,
	"KEY_MATERIAL":                    KEY_MATERIAL,
	"KEY_VALUE":                       KEY_VALUE,
	"KEY_WRAPPING_DATA":               KEY_WRAPPING_DATA,
	"KEY_WRAPPING_SPECIFICATION":      KEY_WRAPPING_SPECIFICATION,
	"LAST_CHANGE_DATE":                LAST_CHANGE_DATE,
	"MAC_SIGNATURE":                   MAC_SIGNATURE,
	"MAC_SIGNATURE_KEY_INFORMATION":   MAC_SIGNATURE_KEY_INFORMATION,
	"MAXIMUM_RESPONSE_SIZE":           MAXIMUM_RESPONSE_SIZE,
	"MESSAGE_EXTENSION":               MESSAGE_EXTENSION,
	"NAME":                            NAME,
	"NAME_TYPE":                       NAME_TYPE,
	"NAME_VALUE":                      NAME_VALUE,
	"OBJECT_TYPE":                     OBJECT_TYPE,
	"OPERATION":                       OPERATION,
	"OPERATION_POLICY_NAME":           OPERATION_POLICY_NAME,
	"PADDING_METHOD":                  PADDING_METHOD,
	"PROTOCOL_VERSION":                PROTOCOL_VERSION,
	"PROTOCOL_VERSION_MAJOR":          PROTOCOL_VERSION_MAJOR,
	"PROTOCOL_VERSION_MINOR":          PROTOCOL_VERSION_MINOR,
	"REQUEST_BATCH_ITEM":              REQUEST_BATCH_ITEM,
	"REQUEST_HEADER":                  REQUEST_HEADER,
	"REQUEST_MESSAGE":                 REQUEST_MESSAGE,
	"REQUEST_PAYLOAD":                 REQUEST_PAYLOAD,
	"RESPONSE_BATCH_ITEM":             RESPONSE_BATCH_ITEM,
	"RESPONSE_HEADER":                 RESPONSE_HEADER,
	"RESPONSE_MESSAGE":                RESPONSE_MESSAGE,
	"RESPONSE_PAYLOAD":                RESPONSE_PAYLOAD,
	"RESULT_MESSAGE":                  RESULT_MESSAGE,
	"RESULT_REASON":                   RESULT_REASON,
	"RESULT_STATUS":                   RESULT_STATUS,
	"STATE":                           STATE,
	"SYMMETRIC_KEY":                   SYMMETRIC_KEY,
	"TEMPLATE_ATTRIBUTE":              TEMPLATE_ATTRIBUTE,
	"TIME_STAMP":                      TIME_STAMP,
	"UNIQUE_BATCH_ITEM_ID":            UNIQUE_BATCH_ITEM_ID,
	"UNIQUE_IDENTIFIER":               UNIQUE_IDENTIFIER,
	"VENDOR_IDENTIFICATION":           VENDOR_IDENTIFICATION,
	"WRAPPING_METHOD":                 WRAPPING_METHOD,
	"ENCODING_OPTION":                 ENCODING_OPTION,
	"ATTESTATION_TYPE":                ATTESTATION_TYPE,
	"ATTESTATION_CAPABLE_INDICATOR":   ATTESTATION_CAPABLE_INDICATOR,
	"NONCE":                           NONCE,
	"NONCE_ID":                        NONCE_ID,
	"NONCE_VALUE":                     NONCE_VALUE,
	"CLIENT_CORRELATION_VALUE":        CLIENT_CORRELATION_VALUE,
	"SERVER_CORRELATION_VALUE":        SERVER_CORRELATION_VALUE,
}
