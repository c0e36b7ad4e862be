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
	"crypto/rand"
	"fmt"
	"net"
	"strings"

	"github.com/coleton/ssl-scan/ciphers"
	"golang.org/x/crypto/cryptobyte"
)

// Named groups and point formats advertised in TLSv1 hellos, so servers are willing to pick elliptic curve suites
var (
	supportedGroups = []uint16{23, 24, 25} // secp256r1, secp384r1, secp521r1
	pointFormats    = []uint8{0}           // uncompressed
)

// ClientHello is the first message of a handshake, restricted to the cipher suites a probe wants to offer
type ClientHello struct {
	Protocol   ciphers.Protocol // Framing and message format
	Version    uint16           // Advertised client version, defaults to the protocol's wire version
	Random     []byte           // Client random, respectively the challenge for SSLv2. Generated if empty
	CipherIds  []uint32         // Offered suites, 3 byte cipher kinds for SSLv2
	ServerName string           // Sent as SNI in TLSv1 hellos, unless it is an IP address
}

// NewClientHello prepares a hello offering the given suites
func NewClientHello(p ciphers.Protocol, serverName string, suites ...*ciphers.Suite) *ClientHello {
	ids := make([]uint32, 0, len(suites))
	for _, s := range suites {
		ids = append(ids, s.Id)
	}
	return &ClientHello{
		Protocol:   p,
		Version:    p.Wire(),
		CipherIds:  ids,
		ServerName: serverName,
	}
}

// Marshal returns the hello framed in its record, ready to be written to the wire
func (h *ClientHello) Marshal() ([]byte, error) {
	if !ciphers.IsValidProtocol(h.Protocol) {
		return nil, fmt.Errorf("invalid protocol '%s'", h.Protocol)
	}
	if len(h.CipherIds) == 0 {
		return nil, fmt.Errorf("client hello without cipher suites")
	}
	if h.Version == 0 {
		h.Version = h.Protocol.Wire()
	}

	size := randomSize
	if h.Protocol == ciphers.Sslv2 {
		size = sslv2ChallengeSize
	}
	if len(h.Random) == 0 {
		h.Random = make([]byte, size)
		if _, err := rand.Read(h.Random); err != nil {
			return nil, fmt.Errorf("could not generate client random: %s", err)
		}
	}
	if len(h.Random) != size {
		return nil, fmt.Errorf("client random must be %d bytes, is %d", size, len(h.Random))
	}

	if h.Protocol == ciphers.Sslv2 {
		return h.marshalV2()
	}
	return h.marshalTls()
}

func (h *ClientHello) marshalV2() ([]byte, error) {
	b := cryptobyte.NewBuilder(nil)
	b.AddUint8(v2TypeClientHello)
	b.AddUint16(h.Version)
	b.AddUint16(uint16(3 * len(h.CipherIds)))
	b.AddUint16(0) // Session id length
	b.AddUint16(uint16(len(h.Random)))
	for _, id := range h.CipherIds {
		if id > 0xffffff {
			return nil, fmt.Errorf("invalid SSLv2 cipher kind 0x%X", id)
		}
		b.AddUint24(id)
	}
	b.AddBytes(h.Random)
	msg, err := b.Bytes()
	if err != nil {
		return nil, err
	}
	return marshalV2Record(msg)
}

func (h *ClientHello) marshalTls() ([]byte, error) {
	for _, id := range h.CipherIds {
		if id > 0xffff {
			return nil, fmt.Errorf("invalid cipher suite 0x%X for %s", id, h.Protocol)
		}
	}

	msg, err := marshalHandshake(typeClientHello, func(b *cryptobyte.Builder) {
		b.AddUint16(h.Version)
		b.AddBytes(h.Random)
		b.AddUint8(0) // Session id length
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			for _, id := range h.CipherIds {
				b.AddUint16(uint16(id))
			}
		})
		b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddUint8(0) // Null compression only
		})

		// SSLv3 has no extensions
		if h.Protocol == ciphers.Sslv3 {
			return
		}
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			if sni := sniHostname(h.ServerName); sni != "" {
				b.AddUint16(extensionServerName)
				b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
					b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
						b.AddUint8(0) // host_name
						b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
							b.AddBytes([]byte(sni))
						})
					})
				})
			}
			b.AddUint16(extensionSupportedGroup)
			b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
				b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
					for _, group := range supportedGroups {
						b.AddUint16(group)
					}
				})
			})
			b.AddUint16(extensionPointFormats)
			b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
				b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
					b.AddBytes(pointFormats)
				})
			})
		})
	})
	if err != nil {
		return nil, err
	}

	// The record layer announces the same version as the hello, servers implementing only one of them are picky
	return marshalRecords(recordTypeHandshake, h.Version, msg, 0)
}

// sniHostname returns the name to send as server name indication, IP addresses are not allowed
func sniHostname(name string) string {
	name = strings.TrimSuffix(name, ".")
	if name == "" || net.ParseIP(name) != nil {
		return ""
	}
	return name
}

// ParseClientHello decodes a complete hello as written by Marshal. It is the server side counterpart used by test
// responders.
func ParseClientHello(data []byte) (*ClientHello, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: client hello too short", ErrMalformed)
	}
	if data[0]&0x80 != 0 {
		return parseV2ClientHello(data)
	}
	return parseTlsClientHello(data)
}

func parseV2ClientHello(data []byte) (*ClientHello, error) {
	length := int(data[0]&0x7f)<<8 | int(data[1])
	if len(data) < 2+length {
		return nil, fmt.Errorf("%w: truncated SSLv2 record", ErrMalformed)
	}
	s := cryptobyte.String(data[2 : 2+length])

	var msgType uint8
	var version, specsLength, sessionLength, challengeLength uint16
	if !s.ReadUint8(&msgType) || msgType != v2TypeClientHello ||
		!s.ReadUint16(&version) ||
		!s.ReadUint16(&specsLength) ||
		!s.ReadUint16(&sessionLength) ||
		!s.ReadUint16(&challengeLength) ||
		specsLength%3 != 0 {
		return nil, fmt.Errorf("%w: invalid SSLv2 client hello", ErrMalformed)
	}

	var specBytes, session, challenge []byte
	if !s.ReadBytes(&specBytes, int(specsLength)) ||
		!s.ReadBytes(&session, int(sessionLength)) ||
		!s.ReadBytes(&challenge, int(challengeLength)) {
		return nil, fmt.Errorf("%w: truncated SSLv2 client hello", ErrMalformed)
	}

	hello := &ClientHello{
		Protocol: ciphers.Sslv2,
		Version:  version,
		Random:   challenge,
	}
	specs := cryptobyte.String(specBytes)
	for !specs.Empty() {
		var id uint32
		specs.ReadUint24(&id)
		hello.CipherIds = append(hello.CipherIds, id)
	}
	return hello, nil
}

func parseTlsClientHello(data []byte) (*ClientHello, error) {
	s := cryptobyte.String(data)

	var contentType uint8
	var recordVersion uint16
	var record cryptobyte.String
	if !s.ReadUint8(&contentType) || contentType != recordTypeHandshake ||
		!s.ReadUint16(&recordVersion) ||
		!s.ReadUint16LengthPrefixed(&record) {
		return nil, fmt.Errorf("%w: invalid client hello record", ErrMalformed)
	}

	var msgType uint8
	var body cryptobyte.String
	if !record.ReadUint8(&msgType) || msgType != typeClientHello || !record.ReadUint24LengthPrefixed(&body) {
		return nil, fmt.Errorf("%w: invalid client hello message", ErrMalformed)
	}

	hello := &ClientHello{}
	var random []byte
	var session, suites, compression cryptobyte.String
	if !body.ReadUint16(&hello.Version) ||
		!body.ReadBytes(&random, randomSize) ||
		!body.ReadUint8LengthPrefixed(&session) ||
		!body.ReadUint16LengthPrefixed(&suites) ||
		!body.ReadUint8LengthPrefixed(&compression) {
		return nil, fmt.Errorf("%w: truncated client hello", ErrMalformed)
	}
	hello.Random = random
	hello.Protocol = ciphers.ProtocolFromWire(hello.Version)
	if !ciphers.IsValidProtocol(hello.Protocol) || hello.Protocol == ciphers.Sslv2 {
		hello.Protocol = ciphers.ProtocolFromWire(recordVersion)
	}

	for !suites.Empty() {
		var id uint16
		if !suites.ReadUint16(&id) {
			return nil, fmt.Errorf("%w: odd cipher suite list", ErrMalformed)
		}
		hello.CipherIds = append(hello.CipherIds, uint32(id))
	}

	// Extensions are optional, only the server name is of interest
	if body.Empty() {
		return hello, nil
	}
	var extensions cryptobyte.String
	if !body.ReadUint16LengthPrefixed(&extensions) {
		return nil, fmt.Errorf("%w: invalid extensions", ErrMalformed)
	}
	for !extensions.Empty() {
		var extType uint16
		var extData cryptobyte.String
		if !extensions.ReadUint16(&extType) || !extensions.ReadUint16LengthPrefixed(&extData) {
			return nil, fmt.Errorf("%w: invalid extension", ErrMalformed)
		}
		if extType != extensionServerName {
			continue
		}
		var names cryptobyte.String
		if !extData.ReadUint16LengthPrefixed(&names) {
			return nil, fmt.Errorf("%w: invalid server name extension", ErrMalformed)
		}
		for !names.Empty() {
			var nameType uint8
			var name cryptobyte.String
			if !names.ReadUint8(&nameType) || !names.ReadUint16LengthPrefixed(&name) {
				return nil, fmt.Errorf("%w: invalid server name", ErrMalformed)
			}
			if nameType == 0 {
				hello.ServerName = string(name)
			}
		}
	}
	return hello, nil
}
