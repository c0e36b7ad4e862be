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
	"crypto/x509"
	"math/big"
	"testing"
	"time"

	"github.com/coleton/ssl-scan/transport/fake"
	"github.com/coleton/ssl-scan/utils"
	"github.com/davecgh/go-spew/spew"
)

func TestParseCertificate(t *testing.T) {
	der, err := fake.NewSelfSignedCertificate("scan.example.com", 1024)
	if err != nil {
		t.Fatalf("could not generate certificate: %s", err)
	}

	certificate, err := ParseCertificate(utils.NewTestLogger(), der)
	if err != nil {
		t.Fatalf("ParseCertificate() error = '%v'", err)
	}

	if certificate.SubjectCN != "scan.example.com" || certificate.IssuerCN != "scan.example.com" {
		t.Errorf("ParseCertificate() subject = '%s', issuer = '%s'", certificate.SubjectCN, certificate.IssuerCN)
	}
	if certificate.Serial.Cmp(big.NewInt(0x1337)) != 0 || certificate.SerialHex() != "1337" {
		t.Errorf("ParseCertificate() serial = '%s'", certificate.SerialHex())
	}
	if certificate.Version != 3 {
		t.Errorf("ParseCertificate() version = '%d', want = '3'", certificate.Version)
	}
	if certificate.SignatureHash != SIG_H_SHA256 {
		t.Errorf("ParseCertificate() signature hash = '%s', want = '%s'", certificate.SignatureHash, SIG_H_SHA256)
	}
	if !certificate.ValidFrom.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseCertificate() valid from = '%s'", certificate.ValidFrom)
	}
	if certificate.PublicKeyAlgorithm != PUB_K_RSA || certificate.PublicKeyBits != 1024 {
		t.Errorf("ParseCertificate() key = '%s' %d bits", certificate.PublicKeyAlgorithm, certificate.PublicKeyBits)
	}
	if certificate.PublicKeyStrength != 86 {
		t.Errorf("ParseCertificate() strength = '%d', want = '86'", certificate.PublicKeyStrength)
	}
	if certificate.Sha1Fingerprint != utils.HashSha1(der, ":") || len(certificate.Sha1Fingerprint) != 59 {
		t.Errorf("ParseCertificate() fingerprint = '%s'", certificate.Sha1Fingerprint)
	}
	if certificate.Sha256Fingerprint != utils.HashSha256(der, ":") || len(certificate.Sha256Fingerprint) != 95 {
		t.Errorf("ParseCertificate() sha256 fingerprint = '%s'", certificate.Sha256Fingerprint)
	}

	// Recognized extensions and their printable values
	tests := []struct {
		kind       ExtensionKind
		wantLabel  string
		wantValues []string
	}{
		{EXT_KeyUsage, "X509v3 Key Usage", []string{"Digital Signature", "Key Encipherment"}},
		{EXT_ExtendedKeyUsage, "X509v3 Extended Key Usage", []string{"Server Auth"}},
		{EXT_BasicConstraints, "X509v3 Basic Constraints", []string{"CA:FALSE"}},
		{EXT_SubjectAltName, "X509v3 Subject Alternative Name", []string{"DNS:scan.example.com", "IP Address:127.0.0.1"}},
		{EXT_CrlDistributionPoints, "X509v3 CRL Distribution Points", []string{"URI:http://crl.example.com/test.crl"}},
		{EXT_AuthorityInfoAccess, "Authority Information Access", []string{"OCSP - URI:http://ocsp.example.com", "CA Issuers - URI:http://ca.example.com/ca.crt"}},
		{EXT_CertificatePolicies, "X509v3 Certificate Policies", []string{"Policy: 2.23.140.1.2.1"}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			ext, ok := certificate.Extension(tt.kind)
			if !ok {
				t.Fatalf("Extension() missing '%s' in '%s'", tt.kind, spew.Sdump(certificate.Extensions))
			}
			if tt.kind.Label() != tt.wantLabel {
				t.Errorf("Label() = '%s', want = '%s'", tt.kind.Label(), tt.wantLabel)
			}
			if len(ext.Values) != len(tt.wantValues) {
				t.Fatalf("Values = '%v', want = '%v'", ext.Values, tt.wantValues)
			}
			for i := range tt.wantValues {
				if ext.Values[i] != tt.wantValues[i] {
					t.Errorf("Values[%d] = '%s', want = '%s'", i, ext.Values[i], tt.wantValues[i])
				}
			}
		})
	}

	ski, ok := certificate.Extension(EXT_SubjectKeyIdentifier)
	if !ok || len(ski.Values) != 1 || len(ski.Values[0]) != 59 {
		t.Errorf("Extension() subject key identifier = '%v'", ski)
	}

	unrecognized, ok := certificate.Extension(EXT_Unrecognized)
	if !ok {
		t.Fatalf("Extension() missing the unrecognized test extension")
	}
	if unrecognized.Oid != fake.OidTestExtension.String() {
		t.Errorf("Extension() oid = '%s', want = '%s'", unrecognized.Oid, fake.OidTestExtension)
	}
	if unrecognized.Kind.Label() != "" || unrecognized.Kind.String() != "unrecognized" {
		t.Errorf("Extension() kind = '%s' labelled '%s'", unrecognized.Kind, unrecognized.Kind.Label())
	}
	if len(unrecognized.Values) != 1 || unrecognized.Values[0] != "13:04:74:65:73:74" {
		t.Errorf("Extension() values = '%v'", unrecognized.Values)
	}
}

func TestParseCertificate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		der  []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"garbage", []byte("-----BEGIN CERTIFICATE-----")},
		{"truncated-sequence", []byte{0x30, 0x82, 0x01, 0x00, 0x30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCertificate(utils.NewTestLogger(), tt.der)
			if err == nil {
				t.Errorf("ParseCertificate() = '%v', want error", got)
			}
		})
	}
}

func Test_makeKeyUsageSlice(t *testing.T) {
	tests := []struct {
		name string
		in   x509.KeyUsage
		want []string
	}{
		{"none", 0, []string{}},
		{"single", x509.KeyUsageCertSign, []string{"Cert Sign"}},
		{"ordered", x509.KeyUsageCRLSign | x509.KeyUsageDigitalSignature, []string{"Digital Signature", "CRL Sign"}},
		{"out-of-range", 1 << 10, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := makeKeyUsageSlice(utils.NewTestLogger(), tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("makeKeyUsageSlice() = '%v', want = '%v'", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("makeKeyUsageSlice() = '%v', want = '%v'", got, tt.want)
				}
			}
		})
	}
}
