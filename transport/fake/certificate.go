/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package fake

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"math/big"
	"net"
	"time"
)

// OidTestExtension is attached to generated certificates as an extension nobody knows
var OidTestExtension = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 99999, 1}

// NewSelfSignedCertificate returns a DER encoded RSA certificate for the given name. It carries the common
// extensions plus OidTestExtension, so certificate parsing can be tested without a live server.
func NewSelfSignedCertificate(commonName string, bits int) ([]byte, error) {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, err
	}

	publicKey, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, err
	}
	keyId := sha1.Sum(publicKey)

	unknownValue, err := asn1.Marshal("test")
	if err != nil {
		return nil, err
	}

	policy, err := x509.OIDFromInts([]uint64{2, 23, 140, 1, 2, 1})
	if err != nil {
		return nil, err
	}

	notBefore := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	template := &x509.Certificate{
		SerialNumber: big.NewInt(0x1337),
		Subject: pkix.Name{
			CommonName:   commonName,
			Organization: []string{"Test Org"},
			Country:      []string{"DE"},
		},
		NotBefore:             notBefore,
		NotAfter:              notBefore.AddDate(10, 0, 0),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IsCA:                  false,
		SubjectKeyId:          keyId[:],
		DNSNames:              []string{commonName},
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1")},
		CRLDistributionPoints: []string{"http://crl.example.com/test.crl"},
		OCSPServer:            []string{"http://ocsp.example.com"},
		IssuingCertificateURL: []string{"http://ca.example.com/ca.crt"},
		Policies:              []x509.OID{policy},
		PolicyIdentifiers:     []asn1.ObjectIdentifier{{2, 23, 140, 1, 2, 1}},
		ExtraExtensions: []pkix.Extension{
			{Id: OidTestExtension, Critical: false, Value: unknownValue},
		},
	}

	return x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
}
