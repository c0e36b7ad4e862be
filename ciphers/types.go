/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package ciphers

import (
	"fmt"
	"strings"
)

// Protocol is one of the legacy protocol versions probed by the scanner. The set is closed, adding a version
// requires extending the suite table in lockstep.
type Protocol uint8

const (
	PROTO_Unknown Protocol = iota //
	Sslv2                         // SSLv2
	Sslv3                         // SSLv3
	Tlsv1                         // TLSv1
)

var protocolNames = map[Protocol]string{
	Sslv2: "SSLv2",
	Sslv3: "SSLv3",
	Tlsv1: "TLSv1",
}

// Wire versions as used in the record layer and hello messages
const (
	WireSslv2 uint16 = 0x0002
	WireSslv3 uint16 = 0x0300
	WireTlsv1 uint16 = 0x0301
)

func IsValidProtocol(p Protocol) bool {
	return p > 0 && p <= Tlsv1
}

// Protocols returns all supported protocol versions in ascending order
func Protocols() []Protocol {
	return []Protocol{Sslv2, Sslv3, Tlsv1}
}

func (p Protocol) String() string {
	if name, ok := protocolNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Protocol(%d)", uint8(p))
}

// MarshalText allows protocols to be used as readable map keys and values in JSON and YAML output
func (p Protocol) MarshalText() ([]byte, error) {
	if !IsValidProtocol(p) {
		return nil, fmt.Errorf("invalid protocol '%d'", uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *Protocol) UnmarshalText(text []byte) error {
	parsed, err := ParseProtocol(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Wire returns the version number sent on the wire
func (p Protocol) Wire() uint16 {
	switch p {
	case Sslv2:
		return WireSslv2
	case Sslv3:
		return WireSslv3
	case Tlsv1:
		return WireTlsv1
	default:
		return 0
	}
}

// ProtocolFromWire maps a wire version number back to the protocol, PROTO_Unknown if it is not one we probe.
func ProtocolFromWire(v uint16) Protocol {
	switch v {
	case WireSslv2:
		return Sslv2
	case WireSslv3:
		return Sslv3
	case WireTlsv1:
		return Tlsv1
	default:
		return PROTO_Unknown
	}
}

// ParseProtocol accepts the common spellings, e.g. "SSLv2", "sslv3", "ssl3", "tls1" or "TLSv1.0".
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sslv2", "ssl2":
		return Sslv2, nil
	case "sslv3", "ssl3":
		return Sslv3, nil
	case "tlsv1", "tls1", "tlsv1.0", "tls1.0":
		return Tlsv1, nil
	default:
		return PROTO_Unknown, fmt.Errorf("unknown protocol '%s'", s)
	}
}

// Algorithms used for the key exchange.
type KeyExchange uint8

const (
	KEX_NONE  KeyExchange = iota //
	KEX_RSA                      // RSA
	KEX_DHE                      // DHE
	KEX_DH_RSA                   // DH/RSA
	KEX_DH_DSS                   // DH/DSS
	KEX_ECDH_RSA                 // ECDH/RSA
	KEX_ECDH_ECDSA               // ECDH/ECDSA
	KEX_ECDHE                    // ECDHE
	KEX_PSK                      // PSK
	KEX_SRP                      // SRP
)

var keyExchangeNames = map[KeyExchange]string{
	KEX_RSA:        "RSA",
	KEX_DHE:        "DHE",
	KEX_DH_RSA:     "DH/RSA",
	KEX_DH_DSS:     "DH/DSS",
	KEX_ECDH_RSA:   "ECDH/RSA",
	KEX_ECDH_ECDSA: "ECDH/ECDSA",
	KEX_ECDHE:      "ECDHE",
	KEX_PSK:        "PSK",
	KEX_SRP:        "SRP",
}

func (k KeyExchange) String() string {
	if name, ok := keyExchangeNames[k]; ok {
		return name
	}
	return "None"
}

// ProvidesForwardSecrecy is true for ephemeral key exchanges
func (k KeyExchange) ProvidesForwardSecrecy() bool {
	return k == KEX_DHE || k == KEX_ECDHE
}

// Algorithms used to authenticate the server.
type Authentication uint8

const (
	AUTH_NONE  Authentication = iota + 1 // None
	AUTH_RSA                             // RSA
	AUTH_DSS                             // DSS
	AUTH_ECDSA                           // ECDSA
	AUTH_ECDH                            // ECDH
	AUTH_PSK                             // PSK
	AUTH_SRP                             // SRP
)

var authenticationNames = map[Authentication]string{
	AUTH_NONE:  "None",
	AUTH_RSA:   "RSA",
	AUTH_DSS:   "DSS",
	AUTH_ECDSA: "ECDSA",
	AUTH_ECDH:  "ECDH",
	AUTH_PSK:   "PSK",
	AUTH_SRP:   "SRP",
}

func (a Authentication) String() string {
	if name, ok := authenticationNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Authentication(%d)", uint8(a))
}

// Encryption algorithms
type Encryption uint8

const (
	ENC_NONE       Encryption = iota + 1 // None
	ENC_DES                              // DES
	ENC_TRIPLE_DES                       // 3DES
	ENC_RC2                              // RC2
	ENC_RC4                              // RC4
	ENC_IDEA                             // IDEA
	ENC_SEED                             // SEED
	ENC_CAMELLIA                         // Camellia
	ENC_AES                              // AES
)

var encryptionNames = map[Encryption]string{
	ENC_NONE:       "None",
	ENC_DES:        "DES",
	ENC_TRIPLE_DES: "3DES",
	ENC_RC2:        "RC2",
	ENC_RC4:        "RC4",
	ENC_IDEA:       "IDEA",
	ENC_SEED:       "SEED",
	ENC_CAMELLIA:   "Camellia",
	ENC_AES:        "AES",
}

func (e Encryption) String() string {
	if name, ok := encryptionNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Encryption(%d)", uint8(e))
}

// Modes of operation for block ciphers.
type EncryptionMode uint8

const (
	ENC_M_NONE EncryptionMode = iota + 1 // None
	ENC_M_CBC                            // CBC
	ENC_M_GCM                            // GCM
)

func (m EncryptionMode) String() string {
	switch m {
	case ENC_M_CBC:
		return "CBC"
	case ENC_M_GCM:
		return "GCM"
	default:
		return "None"
	}
}

// Hash algorithms used for message authentication
type Mac uint8

const (
	MAC_MD5    Mac = iota + 1 // MD5
	MAC_SHA1                  // SHA1
	MAC_SHA256                // SHA256
	MAC_SHA384                // SHA384
	MAC_AEAD                  // AEAD
)

var macNames = map[Mac]string{
	MAC_MD5:    "MD5",
	MAC_SHA1:   "SHA1",
	MAC_SHA256: "SHA256",
	MAC_SHA384: "SHA384",
	MAC_AEAD:   "AEAD",
}

func (m Mac) String() string {
	if name, ok := macNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mac(%d)", uint8(m))
}

// Strength is the coarse classification used by the HIGH, MEDIUM, LOW and EXPORT selection aliases
type Strength uint8

const (
	STRENGTH_NONE   Strength = iota + 1 // NONE
	STRENGTH_EXPORT                     // EXPORT
	STRENGTH_LOW                        // LOW
	STRENGTH_MEDIUM                     // MEDIUM
	STRENGTH_HIGH                       // HIGH
)

var strengthNames = map[Strength]string{
	STRENGTH_NONE:   "NONE",
	STRENGTH_EXPORT: "EXPORT",
	STRENGTH_LOW:    "LOW",
	STRENGTH_MEDIUM: "MEDIUM",
	STRENGTH_HIGH:   "HIGH",
}

func (s Strength) String() string {
	if name, ok := strengthNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strength(%d)", uint8(s))
}
