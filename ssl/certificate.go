/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package ssl

import (
	"crypto/dsa"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/asn1"
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"time"

	"github.com/coleton/ssl-scan/utils"
)

type PublicKey uint8

const (
	PUB_K_Unknown PublicKey = iota //
	PUB_K_RSA                      // RSA
	PUB_K_DSA                      // DSA
	PUB_K_ECDSA                    // ECDSA
	PUB_K_ED25519                  // Ed25519
)

var publicKeyNames = map[PublicKey]string{
	PUB_K_RSA:     "RSA",
	PUB_K_DSA:     "DSA",
	PUB_K_ECDSA:   "ECDSA",
	PUB_K_ED25519: "Ed25519",
}

func (k PublicKey) String() string {
	if name, ok := publicKeyNames[k]; ok {
		return name
	}
	return "Unknown"
}

func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func makePublicKey(logger utils.Logger, alg x509.PublicKeyAlgorithm) PublicKey {
	switch alg {
	case x509.RSA:
		return PUB_K_RSA
	case x509.DSA:
		return PUB_K_DSA
	case x509.ECDSA:
		return PUB_K_ECDSA
	case x509.Ed25519:
		return PUB_K_ED25519
	default:
		logger.Warningf("Unknown public key algorithm '%s'.", alg)
		return PUB_K_Unknown
	}
}

// Signature hash algorithms. SIG_H_None is used by signatures without a separate hash (Ed25519).
type SignatureHash uint8

const (
	SIG_H_Unknown SignatureHash = iota //
	SIG_H_None                         // None
	SIG_H_MD2                          // MD2
	SIG_H_MD5                          // MD5
	SIG_H_SHA1                         // SHA1
	SIG_H_SHA256                       // SHA256
	SIG_H_SHA384                       // SHA384
	SIG_H_SHA512                       // SHA512
)

var signatureHashNames = map[SignatureHash]string{
	SIG_H_None:   "None",
	SIG_H_MD2:    "MD2",
	SIG_H_MD5:    "MD5",
	SIG_H_SHA1:   "SHA1",
	SIG_H_SHA256: "SHA256",
	SIG_H_SHA384: "SHA384",
	SIG_H_SHA512: "SHA512",
}

func (h SignatureHash) String() string {
	if name, ok := signatureHashNames[h]; ok {
		return name
	}
	return "Unknown"
}

func (h SignatureHash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func makeSignatureHash(alg x509.SignatureAlgorithm) SignatureHash {
	switch alg {
	case x509.MD2WithRSA:
		return SIG_H_MD2
	case x509.MD5WithRSA:
		return SIG_H_MD5
	case x509.SHA1WithRSA, x509.DSAWithSHA1, x509.ECDSAWithSHA1:
		return SIG_H_SHA1
	case x509.SHA256WithRSA, x509.SHA256WithRSAPSS, x509.DSAWithSHA256, x509.ECDSAWithSHA256:
		return SIG_H_SHA256
	case x509.SHA384WithRSA, x509.SHA384WithRSAPSS, x509.ECDSAWithSHA384:
		return SIG_H_SHA384
	case x509.SHA512WithRSA, x509.SHA512WithRSAPSS, x509.ECDSAWithSHA512:
		return SIG_H_SHA512
	case x509.PureEd25519:
		return SIG_H_None
	default:
		return SIG_H_Unknown
	}
}

// ExtensionKind is the closed set of certificate extensions the scanner knows how to present
type ExtensionKind uint8

const (
	EXT_Unrecognized           ExtensionKind = iota // Unrecognized
	EXT_KeyUsage                                    // keyUsage
	EXT_CertificatePolicies                         // certificatePolicies
	EXT_SubjectAltName                              // subjectAltName
	EXT_BasicConstraints                            // basicConstraints
	EXT_ExtendedKeyUsage                            // extendedKeyUsage
	EXT_CrlDistributionPoints                       // crlDistributionPoints
	EXT_AuthorityInfoAccess                         // authorityInfoAccess
	EXT_SubjectKeyIdentifier                        // subjectKeyIdentifier
	EXT_AuthorityKeyIdentifier                      // authorityKeyIdentifier
)

var extensionOids = map[string]ExtensionKind{
	"2.5.29.15":         EXT_KeyUsage,
	"2.5.29.32":         EXT_CertificatePolicies,
	"2.5.29.17":         EXT_SubjectAltName,
	"2.5.29.19":         EXT_BasicConstraints,
	"2.5.29.37":         EXT_ExtendedKeyUsage,
	"2.5.29.31":         EXT_CrlDistributionPoints,
	"1.3.6.1.5.5.7.1.1": EXT_AuthorityInfoAccess,
	"2.5.29.14":         EXT_SubjectKeyIdentifier,
	"2.5.29.35":         EXT_AuthorityKeyIdentifier,
}

var extensionNames = map[ExtensionKind][2]string{
	EXT_KeyUsage:               {"keyUsage", "X509v3 Key Usage"},
	EXT_CertificatePolicies:    {"certificatePolicies", "X509v3 Certificate Policies"},
	EXT_SubjectAltName:         {"subjectAltName", "X509v3 Subject Alternative Name"},
	EXT_BasicConstraints:       {"basicConstraints", "X509v3 Basic Constraints"},
	EXT_ExtendedKeyUsage:       {"extendedKeyUsage", "X509v3 Extended Key Usage"},
	EXT_CrlDistributionPoints:  {"crlDistributionPoints", "X509v3 CRL Distribution Points"},
	EXT_AuthorityInfoAccess:    {"authorityInfoAccess", "Authority Information Access"},
	EXT_SubjectKeyIdentifier:   {"subjectKeyIdentifier", "X509v3 Subject Key Identifier"},
	EXT_AuthorityKeyIdentifier: {"authorityKeyIdentifier", "X509v3 Authority Key Identifier"},
}

func extensionKindFromOid(oid asn1.ObjectIdentifier) ExtensionKind {
	return extensionOids[oid.String()]
}

func (k ExtensionKind) String() string {
	if names, ok := extensionNames[k]; ok {
		return names[0]
	}
	return "unrecognized"
}

// Label returns the human readable name, empty for unrecognized extensions
func (k ExtensionKind) Label() string {
	return extensionNames[k][1]
}

func (k ExtensionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Extension is a certificate extension with its values in printable form. Unrecognized extensions carry their
// OID and the raw value as hex.
type Extension struct {
	Kind     ExtensionKind `json:"kind" yaml:"kind"`
	Oid      string        `json:"oid" yaml:"oid"`
	Critical bool          `json:"critical" yaml:"critical"`
	Values   []string      `json:"values" yaml:"values"`
}

// Certificate is a read-only view of the leaf certificate presented by the server
type Certificate struct {
	Version            int           `json:"version" yaml:"version"`
	Serial             *big.Int      `json:"serial" yaml:"serial"`
	SignatureAlgorithm string        `json:"signature_algorithm" yaml:"signature_algorithm"`
	SignatureHash      SignatureHash `json:"signature_hash" yaml:"signature_hash"`
	Issuer             string        `json:"issuer" yaml:"issuer"`
	IssuerCN           string        `json:"issuer_cn" yaml:"issuer_cn"`
	Subject            string        `json:"subject" yaml:"subject"`
	SubjectCN          string        `json:"subject_cn" yaml:"subject_cn"`
	ValidFrom          time.Time     `json:"valid_from" yaml:"valid_from"`
	ValidTo            time.Time     `json:"valid_to" yaml:"valid_to"`
	PublicKeyAlgorithm PublicKey     `json:"public_key_algorithm" yaml:"public_key_algorithm"`
	PublicKeyBits      int           `json:"public_key_bits" yaml:"public_key_bits"`
	PublicKeyStrength  int           `json:"public_key_strength" yaml:"public_key_strength"` // Security level in bits
	PublicKeyInfo      string        `json:"public_key_info" yaml:"public_key_info"`
	Extensions         []Extension   `json:"extensions" yaml:"extensions"`
	Sha1Fingerprint    string        `json:"sha1_fingerprint" yaml:"sha1_fingerprint"`
	Sha256Fingerprint  string        `json:"sha256_fingerprint" yaml:"sha256_fingerprint"`
	Raw                []byte        `json:"-" yaml:"-"`
}

// SerialHex returns the serial number in upper case hex
func (c *Certificate) SerialHex() string {
	if c.Serial == nil {
		return ""
	}
	return fmt.Sprintf("%X", c.Serial)
}

// Extension returns the first extension of the given kind
func (c *Certificate) Extension(kind ExtensionKind) (Extension, bool) {
	for _, ext := range c.Extensions {
		if ext.Kind == kind {
			return ext, true
		}
	}
	return Extension{}, false
}

// ParseCertificate builds the certificate view from DER bytes. Anything that is not a parseable X.509 certificate
// is rejected.
func ParseCertificate(logger utils.Logger, der []byte) (*Certificate, error) {
	if len(der) == 0 {
		return nil, fmt.Errorf("empty certificate")
	}
	x509Cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("can not parse certificate: %s", err)
	}

	certificate := &Certificate{
		Version:            x509Cert.Version,
		Serial:             x509Cert.SerialNumber,
		SignatureAlgorithm: x509Cert.SignatureAlgorithm.String(),
		SignatureHash:      makeSignatureHash(x509Cert.SignatureAlgorithm),
		Issuer:             x509Cert.Issuer.String(),
		IssuerCN:           x509Cert.Issuer.CommonName,
		Subject:            x509Cert.Subject.String(),
		SubjectCN:          x509Cert.Subject.CommonName,
		ValidFrom:          x509Cert.NotBefore,
		ValidTo:            x509Cert.NotAfter,
		PublicKeyAlgorithm: makePublicKey(logger, x509Cert.PublicKeyAlgorithm),
		Sha1Fingerprint:    utils.HashSha1(der, ":"),
		Sha256Fingerprint:  utils.HashSha256(der, ":"),
		Raw:                append([]byte(nil), der...),
	}

	// Key size, strength and the key's parameters
	switch pubKey := x509Cert.PublicKey.(type) {
	case *rsa.PublicKey:
		certificate.PublicKeyBits = pubKey.N.BitLen()
		certificate.PublicKeyInfo = fmt.Sprintf("N: %s\nE: %d", pubKey.N.String(), pubKey.E)
	case *dsa.PublicKey:
		certificate.PublicKeyBits = pubKey.P.BitLen()
		certificate.PublicKeyInfo = fmt.Sprintf("P: %s\nQ: %s\nG: %s\nY: %s",
			pubKey.P.String(), pubKey.Q.String(), pubKey.G.String(), pubKey.Y.String(),
		)
	case *ecdsa.PublicKey:
		certificate.PublicKeyBits = pubKey.Curve.Params().BitSize
		certificate.PublicKeyInfo = fmt.Sprintf("Curve: %s\nX: %s\nY: %s",
			pubKey.Curve.Params().Name, pubKey.X.String(), pubKey.Y.String(),
		)
	case ed25519.PublicKey:
		certificate.PublicKeyBits = 256
		certificate.PublicKeyInfo = fmt.Sprintf("Key: %s", utils.HexJoin(pubKey, ":"))
	default:
		logger.Warningf("Unknown public key type '%s' of certificate '%s'.", reflect.TypeOf(x509Cert.PublicKey), certificate.SerialHex())
	}

	switch certificate.PublicKeyAlgorithm {
	case PUB_K_RSA, PUB_K_DSA:
		strength, errGnfs := gnfsComplexity(certificate.PublicKeyBits)
		if errGnfs != nil {
			logger.Warningf("Could not compute GNFS complexity: %s", errGnfs)
			strength = 0
		}
		certificate.PublicKeyStrength = int(strength)
	case PUB_K_ECDSA, PUB_K_ED25519:
		certificate.PublicKeyStrength = int(eccComplexity(certificate.PublicKeyBits))
	}

	certificate.Extensions = makeExtensions(logger, x509Cert)

	return certificate, nil
}

// makeExtensions presents the extensions in certificate order. Values are taken from the fields x509 parsed them
// into, unknown extensions keep their raw value.
func makeExtensions(logger utils.Logger, x509Cert *x509.Certificate) []Extension {
	extensions := make([]Extension, 0, len(x509Cert.Extensions))
	for _, ext := range x509Cert.Extensions {
		extension := Extension{
			Kind:     extensionKindFromOid(ext.Id),
			Oid:      ext.Id.String(),
			Critical: ext.Critical,
		}

		switch extension.Kind {
		case EXT_KeyUsage:
			extension.Values = makeKeyUsageSlice(logger, x509Cert.KeyUsage)
		case EXT_CertificatePolicies:
			for _, policy := range x509Cert.Policies {
				extension.Values = append(extension.Values, fmt.Sprintf("Policy: %s", policy))
			}
			if len(x509Cert.Policies) == 0 {
				for _, policy := range x509Cert.PolicyIdentifiers {
					extension.Values = append(extension.Values, fmt.Sprintf("Policy: %s", policy))
				}
			}
		case EXT_SubjectAltName:
			for _, name := range x509Cert.DNSNames {
				extension.Values = append(extension.Values, "DNS:"+name)
			}
			for _, ip := range x509Cert.IPAddresses {
				extension.Values = append(extension.Values, "IP Address:"+ip.String())
			}
			for _, email := range x509Cert.EmailAddresses {
				extension.Values = append(extension.Values, "email:"+email)
			}
			for _, uri := range x509Cert.URIs {
				extension.Values = append(extension.Values, "URI:"+uri.String())
			}
		case EXT_BasicConstraints:
			if x509Cert.IsCA {
				extension.Values = []string{"CA:TRUE"}
			} else {
				extension.Values = []string{"CA:FALSE"}
			}
			if x509Cert.MaxPathLen > 0 || x509Cert.MaxPathLenZero {
				extension.Values = append(extension.Values, fmt.Sprintf("pathlen:%d", x509Cert.MaxPathLen))
			}
		case EXT_ExtendedKeyUsage:
			extension.Values = makeExtKeyUsageSlice(logger, x509Cert.ExtKeyUsage)
			for _, oid := range x509Cert.UnknownExtKeyUsage {
				extension.Values = append(extension.Values, oid.String())
			}
		case EXT_CrlDistributionPoints:
			for _, url := range x509Cert.CRLDistributionPoints {
				extension.Values = append(extension.Values, "URI:"+url)
			}
		case EXT_AuthorityInfoAccess:
			for _, url := range x509Cert.OCSPServer {
				extension.Values = append(extension.Values, "OCSP - URI:"+url)
			}
			for _, url := range x509Cert.IssuingCertificateURL {
				extension.Values = append(extension.Values, "CA Issuers - URI:"+url)
			}
		case EXT_SubjectKeyIdentifier:
			extension.Values = []string{utils.HexJoin(x509Cert.SubjectKeyId, ":")}
		case EXT_AuthorityKeyIdentifier:
			extension.Values = []string{"keyid:" + utils.HexJoin(x509Cert.AuthorityKeyId, ":")}
		default:
			extension.Values = []string{utils.HexJoin(ext.Value, ":")}
		}

		extensions = append(extensions, extension)
	}
	return extensions
}

var keyUsageMap = map[x509.KeyUsage]string{
	x509.KeyUsageDigitalSignature:  "Digital Signature",
	x509.KeyUsageContentCommitment: "Content Commitment",
	x509.KeyUsageKeyEncipherment:   "Key Encipherment",
	x509.KeyUsageDataEncipherment:  "Data Encipherment",
	x509.KeyUsageKeyAgreement:      "Key Agreement",
	x509.KeyUsageCertSign:          "Cert Sign",
	x509.KeyUsageCRLSign:           "CRL Sign",
	x509.KeyUsageEncipherOnly:      "Encipher Only",
	x509.KeyUsageDecipherOnly:      "Decipher Only",
}

// makeKeyUsageSlice lists the names of the key usage bits set, in bit order
func makeKeyUsageSlice(logger utils.Logger, in x509.KeyUsage) []string {

	// Check that the values are in the correct range. (Hint 2^9 = 512)
	if int(in) < 0 || int(in) >= 512 {
		logger.Warningf("Unknown key usage bits set in '%b'.", in)
		return []string{}
	}

	usages := make([]x509.KeyUsage, 0, len(keyUsageMap))
	for ku := range keyUsageMap {
		if ku&in != 0 {
			usages = append(usages, ku)
		}
	}
	sort.Slice(usages, func(i, j int) bool { return usages[i] < usages[j] })

	ret := make([]string, 0, len(usages))
	for _, ku := range usages {
		ret = append(ret, keyUsageMap[ku])
	}
	return ret
}

var extKeyUsageMap = map[x509.ExtKeyUsage]string{
	x509.ExtKeyUsageAny:                            "Any",
	x509.ExtKeyUsageServerAuth:                     "Server Auth",
	x509.ExtKeyUsageClientAuth:                     "Client Auth",
	x509.ExtKeyUsageCodeSigning:                    "Code Signing",
	x509.ExtKeyUsageEmailProtection:                "Email Protection",
	x509.ExtKeyUsageIPSECEndSystem:                 "IP SEC End System",
	x509.ExtKeyUsageIPSECTunnel:                    "IP SEC Tunnel",
	x509.ExtKeyUsageIPSECUser:                      "IP SEC User",
	x509.ExtKeyUsageTimeStamping:                   "Time Stamping",
	x509.ExtKeyUsageOCSPSigning:                    "OCSP Signing",
	x509.ExtKeyUsageMicrosoftServerGatedCrypto:     "Microsoft Server Gated Crypto",
	x509.ExtKeyUsageNetscapeServerGatedCrypto:      "Netscape Server Gated Crypto",
	x509.ExtKeyUsageMicrosoftCommercialCodeSigning: "Microsoft Commercial Code Signing",
	x509.ExtKeyUsageMicrosoftKernelCodeSigning:     "Microsoft Kernel Code Signing",
}

func makeExtKeyUsageSlice(logger utils.Logger, in []x509.ExtKeyUsage) []string {
	ret := make([]string, 0, len(in))
	for _, k := range in {
		if str, ok := extKeyUsageMap[k]; ok {
			ret = append(ret, str)
		} else {
			logger.Warningf("Unknown extended key usage '%d'.", k)
		}
	}
	return ret
}
