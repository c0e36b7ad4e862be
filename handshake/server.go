/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package handshake

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// The encoders below produce server answers. They are used by test responders to script a server's behaviour.

// MarshalServerHello returns the server's flight up to ServerHelloDone: ServerHello, Certificate (if certificates
// are given) and ServerHelloDone. Fragment limits the payload per record to exercise reassembly, zero disables it.
func MarshalServerHello(version uint16, cipherId uint16, certificates [][]byte, fragment int) ([]byte, error) {
	hello, err := marshalHandshake(typeServerHello, func(b *cryptobyte.Builder) {
		b.AddUint16(version)
		b.AddBytes(make([]byte, randomSize))
		b.AddUint8(0) // Session id length
		b.AddUint16(cipherId)
		b.AddUint8(0) // Null compression
	})
	if err != nil {
		return nil, err
	}
	flight := hello

	if len(certificates) > 0 {
		certificate, errCert := marshalHandshake(typeCertificate, func(b *cryptobyte.Builder) {
			b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) {
				for _, der := range certificates {
					b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) {
						b.AddBytes(der)
					})
				}
			})
		})
		if errCert != nil {
			return nil, errCert
		}
		flight = append(flight, certificate...)
	}

	done, err := marshalHandshake(typeServerHelloDone, func(b *cryptobyte.Builder) {})
	if err != nil {
		return nil, err
	}
	flight = append(flight, done...)

	return marshalRecords(recordTypeHandshake, version, flight, fragment)
}

// MarshalAlert returns an alert record
func MarshalAlert(version uint16, level uint8, description uint8) ([]byte, error) {
	return marshalRecords(recordTypeAlert, version, []byte{level, description}, 0)
}

// MarshalV2ServerHello returns an SSLv2 SERVER-HELLO carrying the certificate and the cipher kinds the server
// shares with the client
func MarshalV2ServerHello(cipherSpecs []uint32, certificate []byte) ([]byte, error) {
	b := cryptobyte.NewBuilder(nil)
	b.AddUint8(v2TypeServerHello)
	b.AddUint8(0) // Session id hit
	b.AddUint8(1) // Certificate type X.509
	b.AddUint16(0x0002)
	b.AddUint16(uint16(len(certificate)))
	b.AddUint16(uint16(3 * len(cipherSpecs)))
	b.AddUint16(16) // Connection id length
	b.AddBytes(certificate)
	for _, spec := range cipherSpecs {
		if spec > 0xffffff {
			return nil, fmt.Errorf("invalid SSLv2 cipher kind 0x%X", spec)
		}
		b.AddUint24(spec)
	}
	b.AddBytes(make([]byte, 16))
	msg, err := b.Bytes()
	if err != nil {
		return nil, err
	}
	return marshalV2Record(msg)
}

// MarshalV2Error returns an SSLv2 ERROR message
func MarshalV2Error(code uint16) ([]byte, error) {
	return marshalV2Record([]byte{v2TypeError, byte(code >> 8), byte(code)})
}
