/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

// Package handshake encodes and decodes the few messages needed to learn whether a server accepts a protocol
// version and cipher suite. It does not implement a TLS stack, a handshake is only followed until the server has
// made its choice, respectively until the server certificate was received.
package handshake

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// ErrMalformed is returned for server responses that can not be decoded
var ErrMalformed = errors.New("malformed server response")

// TLS and SSLv3 record content types
const (
	recordTypeChangeCipherSpec uint8 = 20
	recordTypeAlert            uint8 = 21
	recordTypeHandshake        uint8 = 22
	recordTypeApplicationData  uint8 = 23
)

// Handshake message types
const (
	typeClientHello     uint8 = 1
	typeServerHello     uint8 = 2
	typeCertificate     uint8 = 11
	typeServerHelloDone uint8 = 14
)

// SSLv2 message types
const (
	v2TypeError       uint8 = 0
	v2TypeClientHello uint8 = 1
	v2TypeServerHello uint8 = 4
)

// SSLv2 error codes
const (
	V2ErrorNoCipher            uint16 = 0x0001
	V2ErrorNoCertificate       uint16 = 0x0002
	V2ErrorBadCertificate      uint16 = 0x0004
	V2ErrorUnsupportedCertType uint16 = 0x0006
)

// Alert levels and the descriptions servers typically answer with when refusing a hello
const (
	AlertLevelWarning uint8 = 1
	AlertLevelFatal   uint8 = 2

	AlertCloseNotify       uint8 = 0
	AlertUnexpectedMessage uint8 = 10
	AlertHandshakeFailure  uint8 = 40
	AlertIllegalParameter  uint8 = 47
	AlertProtocolVersion   uint8 = 70
	AlertInsufficientSec   uint8 = 71
	AlertInternalError     uint8 = 80
)

// TLS extension types sent in TLSv1 hellos
const (
	extensionServerName     uint16 = 0x0000
	extensionSupportedGroup uint16 = 0x000a
	extensionPointFormats   uint16 = 0x000b
)

const (
	maxRecordPayload   = 1 << 14 // Maximum plaintext fragment length
	maxRecordLength    = maxRecordPayload + 2048
	maxResponseLength  = 1 << 20 // Upper bound for everything read from the server, certificate chains included
	sslv2ChallengeSize = 16
	randomSize         = 32
)

var alertNames = map[uint8]string{
	AlertCloseNotify:       "close_notify",
	AlertUnexpectedMessage: "unexpected_message",
	AlertHandshakeFailure:  "handshake_failure",
	AlertIllegalParameter:  "illegal_parameter",
	AlertProtocolVersion:   "protocol_version",
	AlertInsufficientSec:   "insufficient_security",
	AlertInternalError:     "internal_error",
}

// AlertName returns the name of an alert description
func AlertName(description uint8) string {
	if name, ok := alertNames[description]; ok {
		return name
	}
	return fmt.Sprintf("alert(%d)", description)
}

// marshalRecords wraps a payload into as many records of the given type as necessary. Fragment limits the payload
// per record, zero means the protocol maximum.
func marshalRecords(contentType uint8, version uint16, payload []byte, fragment int) ([]byte, error) {
	if fragment <= 0 || fragment > maxRecordPayload {
		fragment = maxRecordPayload
	}
	b := cryptobyte.NewBuilder(nil)
	for {
		n := len(payload)
		if n > fragment {
			n = fragment
		}
		chunk := payload[:n]
		b.AddUint8(contentType)
		b.AddUint16(version)
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(chunk)
		})
		payload = payload[n:]
		if len(payload) == 0 {
			break
		}
	}
	return b.Bytes()
}

// marshalHandshake frames a handshake message body with its type and length
func marshalHandshake(msgType uint8, body func(b *cryptobyte.Builder)) ([]byte, error) {
	b := cryptobyte.NewBuilder(nil)
	b.AddUint8(msgType)
	b.AddUint24LengthPrefixed(body)
	return b.Bytes()
}

// marshalV2Record frames an SSLv2 message with the two byte record header
func marshalV2Record(msg []byte) ([]byte, error) {
	if len(msg) > 0x7fff {
		return nil, fmt.Errorf("SSLv2 message too long (%d bytes)", len(msg))
	}
	out := make([]byte, 0, len(msg)+2)
	out = append(out, byte(0x80|len(msg)>>8), byte(len(msg)))
	return append(out, msg...), nil
}
