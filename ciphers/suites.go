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
)

// Suite describes a cipher suite the handshake codec is able to offer. Names follow OpenSSL's conventions, the
// same names the strong cipher selection string refers to.
type Suite struct {
	Id        uint32         `json:"id"`        // Wire id, 3 bytes for SSLv2 cipher specs, 2 bytes otherwise
	Name      string         `json:"name"`      // OpenSSL name
	IanaName  string         `json:"iana_name"` // IANA name, or the SSLv2 cipher kind constant
	Kx        KeyExchange    `json:"kx"`        // Key exchange algorithm
	Au        Authentication `json:"au"`        // Server authentication algorithm
	Enc       Encryption     `json:"enc"`       // Bulk encryption algorithm
	EncMode   EncryptionMode `json:"enc_mode"`  //
	Bits      int            `json:"bits"`      // Secret bits, what the scan reports as key length
	AlgBits   int            `json:"alg_bits"`  // Bits of the algorithm, differs from Bits for export ciphers
	Mac       Mac            `json:"mac"`       // Message authentication algorithm
	Strength  Strength       `json:"strength"`  //
	Protocols []Protocol     `json:"protocols"` // Protocol versions the suite can be offered in
}

// Export indicates export-grade suites
func (s *Suite) Export() bool {
	return s.Strength == STRENGTH_EXPORT
}

// OfferedIn reports whether the suite can be offered in the given protocol version
func (s *Suite) OfferedIn(p Protocol) bool {
	for _, offered := range s.Protocols {
		if offered == p {
			return true
		}
	}
	return false
}

// IdBytes returns the wire representation of the suite id for the given protocol
func (s *Suite) IdBytes(p Protocol) []byte {
	if p == Sslv2 {
		return []byte{byte(s.Id >> 16), byte(s.Id >> 8), byte(s.Id)}
	}
	return []byte{byte(s.Id >> 8), byte(s.Id)}
}

func (s *Suite) String() string {
	return fmt.Sprintf("%s (0x%04X)", s.Name, s.Id)
}

var (
	onlySslv2  = []Protocol{Sslv2}
	sslv3Up    = []Protocol{Sslv3, Tlsv1}
	onlyTlsv1  = []Protocol{Tlsv1}
	suiteTable = buildSuiteTable()
)

func suite(
	id uint32,
	name string,
	iana string,
	kx KeyExchange,
	au Authentication,
	enc Encryption,
	bits int,
	algBits int,
	mac Mac,
	strength Strength,
	protocols []Protocol,
) *Suite {
	mode := ENC_M_CBC
	if enc == ENC_NONE || enc == ENC_RC4 {
		mode = ENC_M_NONE
	}
	return &Suite{
		Id:        id,
		Name:      name,
		IanaName:  iana,
		Kx:        kx,
		Au:        au,
		Enc:       enc,
		EncMode:   mode,
		Bits:      bits,
		AlgBits:   algBits,
		Mac:       mac,
		Strength:  strength,
		Protocols: protocols,
	}
}

// buildSuiteTable returns all suites known to the codec. The order is the preference order used when a selection
// string adds several suites at once, strongest first within each family.
func buildSuiteTable() []*Suite {
	return []*Suite{

		// SSLv2 cipher kinds
		suite(0x0700C0, "DES-CBC3-MD5", "SSL_CK_DES_192_EDE3_CBC_WITH_MD5", KEX_RSA, AUTH_RSA, ENC_TRIPLE_DES, 168, 168, MAC_MD5, STRENGTH_MEDIUM, onlySslv2),
		suite(0x050080, "IDEA-CBC-MD5", "SSL_CK_IDEA_128_CBC_WITH_MD5", KEX_RSA, AUTH_RSA, ENC_IDEA, 128, 128, MAC_MD5, STRENGTH_MEDIUM, onlySslv2),
		suite(0x030080, "RC2-CBC-MD5", "SSL_CK_RC2_128_CBC_WITH_MD5", KEX_RSA, AUTH_RSA, ENC_RC2, 128, 128, MAC_MD5, STRENGTH_MEDIUM, onlySslv2),
		suite(0x010080, "RC4-MD5", "SSL_CK_RC4_128_WITH_MD5", KEX_RSA, AUTH_RSA, ENC_RC4, 128, 128, MAC_MD5, STRENGTH_MEDIUM, onlySslv2),
		suite(0x060040, "DES-CBC-MD5", "SSL_CK_DES_64_CBC_WITH_MD5", KEX_RSA, AUTH_RSA, ENC_DES, 56, 56, MAC_MD5, STRENGTH_LOW, onlySslv2),
		suite(0x040080, "EXP-RC2-CBC-MD5", "SSL_CK_RC2_128_CBC_EXPORT40_WITH_MD5", KEX_RSA, AUTH_RSA, ENC_RC2, 40, 128, MAC_MD5, STRENGTH_EXPORT, onlySslv2),
		suite(0x020080, "EXP-RC4-MD5", "SSL_CK_RC4_128_EXPORT40_WITH_MD5", KEX_RSA, AUTH_RSA, ENC_RC4, 40, 128, MAC_MD5, STRENGTH_EXPORT, onlySslv2),

		// Elliptic curve suites, TLS only
		suite(0xC014, "ECDHE-RSA-AES256-SHA", "TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA", KEX_ECDHE, AUTH_RSA, ENC_AES, 256, 256, MAC_SHA1, STRENGTH_HIGH, onlyTlsv1),
		suite(0xC00A, "ECDHE-ECDSA-AES256-SHA", "TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA", KEX_ECDHE, AUTH_ECDSA, ENC_AES, 256, 256, MAC_SHA1, STRENGTH_HIGH, onlyTlsv1),
		suite(0xC019, "AECDH-AES256-SHA", "TLS_ECDH_anon_WITH_AES_256_CBC_SHA", KEX_ECDHE, AUTH_NONE, ENC_AES, 256, 256, MAC_SHA1, STRENGTH_HIGH, onlyTlsv1),
		suite(0xC00F, "ECDH-RSA-AES256-SHA", "TLS_ECDH_RSA_WITH_AES_256_CBC_SHA", KEX_ECDH_RSA, AUTH_ECDH, ENC_AES, 256, 256, MAC_SHA1, STRENGTH_HIGH, onlyTlsv1),
		suite(0xC005, "ECDH-ECDSA-AES256-SHA", "TLS_ECDH_ECDSA_WITH_AES_256_CBC_SHA", KEX_ECDH_ECDSA, AUTH_ECDH, ENC_AES, 256, 256, MAC_SHA1, STRENGTH_HIGH, onlyTlsv1),
		suite(0xC013, "ECDHE-RSA-AES128-SHA", "TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA", KEX_ECDHE, AUTH_RSA, ENC_AES, 128, 128, MAC_SHA1, STRENGTH_HIGH, onlyTlsv1),
		suite(0xC009, "ECDHE-ECDSA-AES128-SHA", "TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA", KEX_ECDHE, AUTH_ECDSA, ENC_AES, 128, 128, MAC_SHA1, STRENGTH_HIGH, onlyTlsv1),
		suite(0xC018, "AECDH-AES128-SHA", "TLS_ECDH_anon_WITH_AES_128_CBC_SHA", KEX_ECDHE, AUTH_NONE, ENC_AES, 128, 128, MAC_SHA1, STRENGTH_HIGH, onlyTlsv1),
		suite(0xC00E, "ECDH-RSA-AES128-SHA", "TLS_ECDH_RSA_WITH_AES_128_CBC_SHA", KEX_ECDH_RSA, AUTH_ECDH, ENC_AES, 128, 128, MAC_SHA1, STRENGTH_HIGH, onlyTlsv1),
		suite(0xC004, "ECDH-ECDSA-AES128-SHA", "TLS_ECDH_ECDSA_WITH_AES_128_CBC_SHA", KEX_ECDH_ECDSA, AUTH_ECDH, ENC_AES, 128, 128, MAC_SHA1, STRENGTH_HIGH, onlyTlsv1),
		suite(0xC012, "ECDHE-RSA-DES-CBC3-SHA", "TLS_ECDHE_RSA_WITH_3DES_EDE_CBC_SHA", KEX_ECDHE, AUTH_RSA, ENC_TRIPLE_DES, 168, 168, MAC_SHA1, STRENGTH_MEDIUM, onlyTlsv1),
		suite(0xC008, "ECDHE-ECDSA-DES-CBC3-SHA", "TLS_ECDHE_ECDSA_WITH_3DES_EDE_CBC_SHA", KEX_ECDHE, AUTH_ECDSA, ENC_TRIPLE_DES, 168, 168, MAC_SHA1, STRENGTH_MEDIUM, onlyTlsv1),
		suite(0xC017, "AECDH-DES-CBC3-SHA", "TLS_ECDH_anon_WITH_3DES_EDE_CBC_SHA", KEX_ECDHE, AUTH_NONE, ENC_TRIPLE_DES, 168, 168, MAC_SHA1, STRENGTH_MEDIUM, onlyTlsv1),
		suite(0xC00D, "ECDH-RSA-DES-CBC3-SHA", "TLS_ECDH_RSA_WITH_3DES_EDE_CBC_SHA", KEX_ECDH_RSA, AUTH_ECDH, ENC_TRIPLE_DES, 168, 168, MAC_SHA1, STRENGTH_MEDIUM, onlyTlsv1),
		suite(0xC003, "ECDH-ECDSA-DES-CBC3-SHA", "TLS_ECDH_ECDSA_WITH_3DES_EDE_CBC_SHA", KEX_ECDH_ECDSA, AUTH_ECDH, ENC_TRIPLE_DES, 168, 168, MAC_SHA1, STRENGTH_MEDIUM, onlyTlsv1),
		suite(0xC011, "ECDHE-RSA-RC4-SHA", "TLS_ECDHE_RSA_WITH_RC4_128_SHA", KEX_ECDHE, AUTH_RSA, ENC_RC4, 128, 128, MAC_SHA1, STRENGTH_MEDIUM, onlyTlsv1),
		suite(0xC007, "ECDHE-ECDSA-RC4-SHA", "TLS_ECDHE_ECDSA_WITH_RC4_128_SHA", KEX_ECDHE, AUTH_ECDSA, ENC_RC4, 128, 128, MAC_SHA1, STRENGTH_MEDIUM, onlyTlsv1),
		suite(0xC016, "AECDH-RC4-SHA", "TLS_ECDH_anon_WITH_RC4_128_SHA", KEX_ECDHE, AUTH_NONE, ENC_RC4, 128, 128, MAC_SHA1, STRENGTH_MEDIUM, onlyTlsv1),
		suite(0xC00C, "ECDH-RSA-RC4-SHA", "TLS_ECDH_RSA_WITH_RC4_128_SHA", KEX_ECDH_RSA, AUTH_ECDH, ENC_RC4, 128, 128, MAC_SHA1, STRENGTH_MEDIUM, onlyTlsv1),
		suite(0xC002, "ECDH-ECDSA-RC4-SHA", "TLS_ECDH_ECDSA_WITH_RC4_128_SHA", KEX_ECDH_ECDSA, AUTH_ECDH, ENC_RC4, 128, 128, MAC_SHA1, STRENGTH_MEDIUM, onlyTlsv1),
		suite(0xC010, "ECDHE-RSA-NULL-SHA", "TLS_ECDHE_RSA_WITH_NULL_SHA", KEX_ECDHE, AUTH_RSA, ENC_NONE, 0, 0, MAC_SHA1, STRENGTH_NONE, onlyTlsv1),
		suite(0xC006, "ECDHE-ECDSA-NULL-SHA", "TLS_ECDHE_ECDSA_WITH_NULL_SHA", KEX_ECDHE, AUTH_ECDSA, ENC_NONE, 0, 0, MAC_SHA1, STRENGTH_NONE, onlyTlsv1),
		suite(0xC015, "AECDH-NULL-SHA", "TLS_ECDH_anon_WITH_NULL_SHA", KEX_ECDHE, AUTH_NONE, ENC_NONE, 0, 0, MAC_SHA1, STRENGTH_NONE, onlyTlsv1),
		suite(0xC00B, "ECDH-RSA-NULL-SHA", "TLS_ECDH_RSA_WITH_NULL_SHA", KEX_ECDH_RSA, AUTH_ECDH, ENC_NONE, 0, 0, MAC_SHA1, STRENGTH_NONE, onlyTlsv1),
		suite(0xC001, "ECDH-ECDSA-NULL-SHA", "TLS_ECDH_ECDSA_WITH_NULL_SHA", KEX_ECDH_ECDSA, AUTH_ECDH, ENC_NONE, 0, 0, MAC_SHA1, STRENGTH_NONE, onlyTlsv1),

		// Pre-shared key suites, TLS only
		suite(0x008D, "PSK-AES256-CBC-SHA", "TLS_PSK_WITH_AES_256_CBC_SHA", KEX_PSK, AUTH_PSK, ENC_AES, 256, 256, MAC_SHA1, STRENGTH_HIGH, onlyTlsv1),
		suite(0x008C, "PSK-AES128-CBC-SHA", "TLS_PSK_WITH_AES_128_CBC_SHA", KEX_PSK, AUTH_PSK, ENC_AES, 128, 128, MAC_SHA1, STRENGTH_HIGH, onlyTlsv1),
		suite(0x008B, "PSK-3DES-EDE-CBC-SHA", "TLS_PSK_WITH_3DES_EDE_CBC_SHA", KEX_PSK, AUTH_PSK, ENC_TRIPLE_DES, 168, 168, MAC_SHA1, STRENGTH_MEDIUM, onlyTlsv1),
		suite(0x008A, "PSK-RC4-SHA", "TLS_PSK_WITH_RC4_128_SHA", KEX_PSK, AUTH_PSK, ENC_RC4, 128, 128, MAC_SHA1, STRENGTH_MEDIUM, onlyTlsv1),

		// SRP suites, TLS only
		suite(0xC020, "SRP-RSA-AES-256-CBC-SHA", "TLS_SRP_SHA_RSA_WITH_AES_256_CBC_SHA", KEX_SRP, AUTH_RSA, ENC_AES, 256, 256, MAC_SHA1, STRENGTH_HIGH, onlyTlsv1),
		suite(0xC01F, "SRP-RSA-AES-128-CBC-SHA", "TLS_SRP_SHA_RSA_WITH_AES_128_CBC_SHA", KEX_SRP, AUTH_RSA, ENC_AES, 128, 128, MAC_SHA1, STRENGTH_HIGH, onlyTlsv1),
		suite(0xC01C, "SRP-RSA-3DES-EDE-CBC-SHA", "TLS_SRP_SHA_RSA_WITH_3DES_EDE_CBC_SHA", KEX_SRP, AUTH_RSA, ENC_TRIPLE_DES, 168, 168, MAC_SHA1, STRENGTH_MEDIUM, onlyTlsv1),

		// SSLv3 and TLSv1 suites
		suite(0x0039, "DHE-RSA-AES256-SHA", "TLS_DHE_RSA_WITH_AES_256_CBC_SHA", KEX_DHE, AUTH_RSA, ENC_AES, 256, 256, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x0038, "DHE-DSS-AES256-SHA", "TLS_DHE_DSS_WITH_AES_256_CBC_SHA", KEX_DHE, AUTH_DSS, ENC_AES, 256, 256, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x003A, "ADH-AES256-SHA", "TLS_DH_anon_WITH_AES_256_CBC_SHA", KEX_DHE, AUTH_NONE, ENC_AES, 256, 256, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x0088, "DHE-RSA-CAMELLIA256-SHA", "TLS_DHE_RSA_WITH_CAMELLIA_256_CBC_SHA", KEX_DHE, AUTH_RSA, ENC_CAMELLIA, 256, 256, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x0087, "DHE-DSS-CAMELLIA256-SHA", "TLS_DHE_DSS_WITH_CAMELLIA_256_CBC_SHA", KEX_DHE, AUTH_DSS, ENC_CAMELLIA, 256, 256, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x0089, "ADH-CAMELLIA256-SHA", "TLS_DH_anon_WITH_CAMELLIA_256_CBC_SHA", KEX_DHE, AUTH_NONE, ENC_CAMELLIA, 256, 256, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x0035, "AES256-SHA", "TLS_RSA_WITH_AES_256_CBC_SHA", KEX_RSA, AUTH_RSA, ENC_AES, 256, 256, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x0084, "CAMELLIA256-SHA", "TLS_RSA_WITH_CAMELLIA_256_CBC_SHA", KEX_RSA, AUTH_RSA, ENC_CAMELLIA, 256, 256, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x0033, "DHE-RSA-AES128-SHA", "TLS_DHE_RSA_WITH_AES_128_CBC_SHA", KEX_DHE, AUTH_RSA, ENC_AES, 128, 128, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x0032, "DHE-DSS-AES128-SHA", "TLS_DHE_DSS_WITH_AES_128_CBC_SHA", KEX_DHE, AUTH_DSS, ENC_AES, 128, 128, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x0034, "ADH-AES128-SHA", "TLS_DH_anon_WITH_AES_128_CBC_SHA", KEX_DHE, AUTH_NONE, ENC_AES, 128, 128, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x009A, "DHE-RSA-SEED-SHA", "TLS_DHE_RSA_WITH_SEED_CBC_SHA", KEX_DHE, AUTH_RSA, ENC_SEED, 128, 128, MAC_SHA1, STRENGTH_MEDIUM, sslv3Up),
		suite(0x0099, "DHE-DSS-SEED-SHA", "TLS_DHE_DSS_WITH_SEED_CBC_SHA", KEX_DHE, AUTH_DSS, ENC_SEED, 128, 128, MAC_SHA1, STRENGTH_MEDIUM, sslv3Up),
		suite(0x009B, "ADH-SEED-SHA", "TLS_DH_anon_WITH_SEED_CBC_SHA", KEX_DHE, AUTH_NONE, ENC_SEED, 128, 128, MAC_SHA1, STRENGTH_MEDIUM, sslv3Up),
		suite(0x0045, "DHE-RSA-CAMELLIA128-SHA", "TLS_DHE_RSA_WITH_CAMELLIA_128_CBC_SHA", KEX_DHE, AUTH_RSA, ENC_CAMELLIA, 128, 128, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x0044, "DHE-DSS-CAMELLIA128-SHA", "TLS_DHE_DSS_WITH_CAMELLIA_128_CBC_SHA", KEX_DHE, AUTH_DSS, ENC_CAMELLIA, 128, 128, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x0046, "ADH-CAMELLIA128-SHA", "TLS_DH_anon_WITH_CAMELLIA_128_CBC_SHA", KEX_DHE, AUTH_NONE, ENC_CAMELLIA, 128, 128, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x002F, "AES128-SHA", "TLS_RSA_WITH_AES_128_CBC_SHA", KEX_RSA, AUTH_RSA, ENC_AES, 128, 128, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x0096, "SEED-SHA", "TLS_RSA_WITH_SEED_CBC_SHA", KEX_RSA, AUTH_RSA, ENC_SEED, 128, 128, MAC_SHA1, STRENGTH_MEDIUM, sslv3Up),
		suite(0x0041, "CAMELLIA128-SHA", "TLS_RSA_WITH_CAMELLIA_128_CBC_SHA", KEX_RSA, AUTH_RSA, ENC_CAMELLIA, 128, 128, MAC_SHA1, STRENGTH_HIGH, sslv3Up),
		suite(0x0007, "IDEA-CBC-SHA", "TLS_RSA_WITH_IDEA_CBC_SHA", KEX_RSA, AUTH_RSA, ENC_IDEA, 128, 128, MAC_SHA1, STRENGTH_MEDIUM, sslv3Up),
		suite(0x0016, "EDH-RSA-DES-CBC3-SHA", "TLS_DHE_RSA_WITH_3DES_EDE_CBC_SHA", KEX_DHE, AUTH_RSA, ENC_TRIPLE_DES, 168, 168, MAC_SHA1, STRENGTH_MEDIUM, sslv3Up),
		suite(0x0013, "EDH-DSS-DES-CBC3-SHA", "TLS_DHE_DSS_WITH_3DES_EDE_CBC_SHA", KEX_DHE, AUTH_DSS, ENC_TRIPLE_DES, 168, 168, MAC_SHA1, STRENGTH_MEDIUM, sslv3Up),
		suite(0x001B, "ADH-DES-CBC3-SHA", "TLS_DH_anon_WITH_3DES_EDE_CBC_SHA", KEX_DHE, AUTH_NONE, ENC_TRIPLE_DES, 168, 168, MAC_SHA1, STRENGTH_MEDIUM, sslv3Up),
		suite(0x000A, "DES-CBC3-SHA", "TLS_RSA_WITH_3DES_EDE_CBC_SHA", KEX_RSA, AUTH_RSA, ENC_TRIPLE_DES, 168, 168, MAC_SHA1, STRENGTH_MEDIUM, sslv3Up),
		suite(0x0005, "RC4-SHA", "TLS_RSA_WITH_RC4_128_SHA", KEX_RSA, AUTH_RSA, ENC_RC4, 128, 128, MAC_SHA1, STRENGTH_MEDIUM, sslv3Up),
		suite(0x0004, "RC4-MD5", "TLS_RSA_WITH_RC4_128_MD5", KEX_RSA, AUTH_RSA, ENC_RC4, 128, 128, MAC_MD5, STRENGTH_MEDIUM, sslv3Up),
		suite(0x0018, "ADH-RC4-MD5", "TLS_DH_anon_WITH_RC4_128_MD5", KEX_DHE, AUTH_NONE, ENC_RC4, 128, 128, MAC_MD5, STRENGTH_MEDIUM, sslv3Up),
		suite(0x0015, "EDH-RSA-DES-CBC-SHA", "TLS_DHE_RSA_WITH_DES_CBC_SHA", KEX_DHE, AUTH_RSA, ENC_DES, 56, 56, MAC_SHA1, STRENGTH_LOW, sslv3Up),
		suite(0x0012, "EDH-DSS-DES-CBC-SHA", "TLS_DHE_DSS_WITH_DES_CBC_SHA", KEX_DHE, AUTH_DSS, ENC_DES, 56, 56, MAC_SHA1, STRENGTH_LOW, sslv3Up),
		suite(0x001A, "ADH-DES-CBC-SHA", "TLS_DH_anon_WITH_DES_CBC_SHA", KEX_DHE, AUTH_NONE, ENC_DES, 56, 56, MAC_SHA1, STRENGTH_LOW, sslv3Up),
		suite(0x0009, "DES-CBC-SHA", "TLS_RSA_WITH_DES_CBC_SHA", KEX_RSA, AUTH_RSA, ENC_DES, 56, 56, MAC_SHA1, STRENGTH_LOW, sslv3Up),
		suite(0x0014, "EXP-EDH-RSA-DES-CBC-SHA", "TLS_DHE_RSA_EXPORT_WITH_DES40_CBC_SHA", KEX_DHE, AUTH_RSA, ENC_DES, 40, 56, MAC_SHA1, STRENGTH_EXPORT, sslv3Up),
		suite(0x0011, "EXP-EDH-DSS-DES-CBC-SHA", "TLS_DHE_DSS_EXPORT_WITH_DES40_CBC_SHA", KEX_DHE, AUTH_DSS, ENC_DES, 40, 56, MAC_SHA1, STRENGTH_EXPORT, sslv3Up),
		suite(0x0019, "EXP-ADH-DES-CBC-SHA", "TLS_DH_anon_EXPORT_WITH_DES40_CBC_SHA", KEX_DHE, AUTH_NONE, ENC_DES, 40, 56, MAC_SHA1, STRENGTH_EXPORT, sslv3Up),
		suite(0x0008, "EXP-DES-CBC-SHA", "TLS_RSA_EXPORT_WITH_DES40_CBC_SHA", KEX_RSA, AUTH_RSA, ENC_DES, 40, 56, MAC_SHA1, STRENGTH_EXPORT, sslv3Up),
		suite(0x0006, "EXP-RC2-CBC-MD5", "TLS_RSA_EXPORT_WITH_RC2_CBC_40_MD5", KEX_RSA, AUTH_RSA, ENC_RC2, 40, 128, MAC_MD5, STRENGTH_EXPORT, sslv3Up),
		suite(0x0017, "EXP-ADH-RC4-MD5", "TLS_DH_anon_EXPORT_WITH_RC4_40_MD5", KEX_DHE, AUTH_NONE, ENC_RC4, 40, 128, MAC_MD5, STRENGTH_EXPORT, sslv3Up),
		suite(0x0003, "EXP-RC4-MD5", "TLS_RSA_EXPORT_WITH_RC4_40_MD5", KEX_RSA, AUTH_RSA, ENC_RC4, 40, 128, MAC_MD5, STRENGTH_EXPORT, sslv3Up),
		suite(0x0002, "NULL-SHA", "TLS_RSA_WITH_NULL_SHA", KEX_RSA, AUTH_RSA, ENC_NONE, 0, 0, MAC_SHA1, STRENGTH_NONE, sslv3Up),
		suite(0x0001, "NULL-MD5", "TLS_RSA_WITH_NULL_MD5", KEX_RSA, AUTH_RSA, ENC_NONE, 0, 0, MAC_MD5, STRENGTH_NONE, sslv3Up),
	}
}
