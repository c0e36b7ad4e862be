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
	"reflect"
	"testing"
)

func TestResolveStrong(t *testing.T) {

	// Prepare and run test cases
	tests := []struct {
		name     string
		protocol Protocol
		want     []string
	}{
		{"sslv2", Sslv2, []string{}},
		{"sslv3", Sslv3, []string{"DHE-RSA-AES256-SHA", "AES256-SHA", "AES128-SHA", "DES-CBC3-SHA"}},
		{"tlsv1", Tlsv1, []string{
			"DHE-RSA-AES256-SHA",
			"ECDHE-RSA-AES256-SHA",
			"ECDHE-RSA-AES128-SHA",
			"AES256-SHA",
			"AES128-SHA",
			"DES-CBC3-SHA",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveStrong(Default(), tt.protocol); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveStrong() = '%v', want = '%v'", got, tt.want)
			}
		})
	}
}

func TestResolveStrong_UnsupportedProtocol(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("ResolveStrong() did not panic for an unsupported protocol")
		}
	}()
	ResolveStrong(Default(), PROTO_Unknown)
}

func TestCatalog_Resolve(t *testing.T) {

	// Prepare and run test cases
	tests := []struct {
		name      string
		selection string
		protocol  Protocol
		want      []string
	}{
		{"exact", "AES128-SHA", Sslv3, []string{"AES128-SHA"}},
		{"exact-wrong-protocol", "ECDHE-RSA-AES128-SHA", Sslv3, []string{}},
		{"alias", "RC4:-RC4-MD5", Sslv3, []string{"RC4-SHA", "ADH-RC4-MD5", "EXP-ADH-RC4-MD5", "EXP-RC4-MD5"}},
		{"conjunction", "kRSA+RC4+SHA", Tlsv1, []string{"RC4-SHA"}},
		{"rsa-is-key-exchange-and-authentication", "RSA+AES256", Tlsv1, []string{"AES256-SHA"}},
		{"delete-and-readd", "AES128-SHA:AES256-SHA:-AES128-SHA:AES128-SHA", Sslv3, []string{"AES256-SHA", "AES128-SHA"}},
		{"kill-is-permanent", "!RC4:RC4-SHA:AES128-SHA", Sslv3, []string{"AES128-SHA"}},
		{"order", "AES128-SHA:AES256-SHA:DES-CBC3-SHA:+AES128-SHA", Sslv3, []string{"AES256-SHA", "DES-CBC3-SHA", "AES128-SHA"}},
		{"order-inactive", "AES256-SHA:+AES128-SHA", Sslv3, []string{"AES256-SHA"}},
		{"add-twice", "AES128-SHA:AES256-SHA:AES128-SHA", Sslv3, []string{"AES128-SHA", "AES256-SHA"}},
		{"unknown-word", "BOGUS:AES128-SHA:aRSA+BOGUS", Sslv3, []string{"AES128-SHA"}},
		{"strength", "DES-CBC-SHA:AES128-SHA:AES256-SHA:@STRENGTH", Sslv3, []string{"AES256-SHA", "AES128-SHA", "DES-CBC-SHA"}},
		{"separators", "AES128-SHA, AES256-SHA;DES-CBC3-SHA", Sslv3, []string{"AES128-SHA", "AES256-SHA", "DES-CBC3-SHA"}},
		{"sslv2-md5", "MD5", Sslv2, []string{"DES-CBC3-MD5", "IDEA-CBC-MD5", "RC2-CBC-MD5", "RC4-MD5", "DES-CBC-MD5", "EXP-RC2-CBC-MD5", "EXP-RC4-MD5"}},
		{"sslv2-export", "EXP", Sslv2, []string{"EXP-RC2-CBC-MD5", "EXP-RC4-MD5"}},
		{"anonymous", "aNULL+AES256", Sslv3, []string{"ADH-AES256-SHA"}},
		{"ephemeral-excludes-anonymous", "EDH+AES256", Sslv3, []string{"DHE-RSA-AES256-SHA", "DHE-DSS-AES256-SHA"}},
		{"null", "eNULL", Sslv3, []string{"NULL-SHA", "NULL-MD5"}},
		{"empty", "", Tlsv1, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Default().Resolve(tt.selection, tt.protocol)
			if err != nil {
				t.Errorf("Resolve() error = '%v'", err)
				return
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve() = '%v', want = '%v'", got, tt.want)
			}
		})
	}
}

func TestCatalog_Resolve_All(t *testing.T) {
	got, err := Default().Resolve("ALL", Sslv3)
	if err != nil {
		t.Fatalf("Resolve() error = '%v'", err)
	}
	all := Default().Ciphers(Sslv3)
	if len(got) != len(all)-2 {
		t.Errorf("Resolve(ALL) returned %d ciphers, want %d", len(got), len(all)-2)
	}
	for _, name := range got {
		if name == "NULL-SHA" || name == "NULL-MD5" {
			t.Errorf("Resolve(ALL) must not include '%s'", name)
		}
	}
}

func TestCatalog_Resolve_InvalidProtocol(t *testing.T) {
	if _, err := Default().Resolve("ALL", PROTO_Unknown); err == nil {
		t.Errorf("Resolve() expected error for unknown protocol")
	}
}

func TestCatalog_Ciphers(t *testing.T) {
	c := Default()

	// Every protocol offers ciphers, names are unique within a protocol
	for _, p := range Protocols() {
		names := c.Ciphers(p)
		if len(names) == 0 {
			t.Errorf("Ciphers(%s) is empty", p)
		}
		seen := make(map[string]struct{})
		for _, name := range names {
			if _, ok := seen[name]; ok {
				t.Errorf("Ciphers(%s) contains '%s' twice", p, name)
			}
			seen[name] = struct{}{}
		}
	}

	// Elliptic curve suites are not offered below TLS
	if _, ok := c.Suite(Sslv3, "ECDHE-RSA-AES128-SHA"); ok {
		t.Errorf("Suite() offers ECDHE-RSA-AES128-SHA in SSLv3")
	}
	if _, ok := c.Suite(Tlsv1, "ECDHE-RSA-AES128-SHA"); !ok {
		t.Errorf("Suite() does not offer ECDHE-RSA-AES128-SHA in TLSv1")
	}

	// The same name maps to a different wire id in SSLv2
	v2, ok := c.Suite(Sslv2, "RC4-MD5")
	if !ok || v2.Id != 0x010080 {
		t.Errorf("Suite(SSLv2, RC4-MD5) = '%v'", v2)
	}
	v3, ok := c.Suite(Sslv3, "RC4-MD5")
	if !ok || v3.Id != 0x0004 {
		t.Errorf("Suite(SSLv3, RC4-MD5) = '%v'", v3)
	}
	if got := v2.IdBytes(Sslv2); !reflect.DeepEqual(got, []byte{0x01, 0x00, 0x80}) {
		t.Errorf("IdBytes() = '%x'", got)
	}
	if got := v3.IdBytes(Sslv3); !reflect.DeepEqual(got, []byte{0x00, 0x04}) {
		t.Errorf("IdBytes() = '%x'", got)
	}

	// Lookup by id
	if s, ok := c.SuiteById(Tlsv1, 0xC013); !ok || s.Name != "ECDHE-RSA-AES128-SHA" {
		t.Errorf("SuiteById(0xC013) = '%v'", s)
	}
	if _, ok := c.SuiteById(Sslv3, 0xC013); ok {
		t.Errorf("SuiteById(SSLv3, 0xC013) must not be found")
	}

	// Unknown protocol
	if got := c.Ciphers(PROTO_Unknown); got != nil {
		t.Errorf("Ciphers(unknown) = '%v', want nil", got)
	}
}

func TestNewCatalog_Reduced(t *testing.T) {
	aes, _ := Default().Suite(Tlsv1, "AES128-SHA")
	rc4, _ := Default().Suite(Tlsv1, "RC4-MD5")
	c := NewCatalog([]*Suite{aes, rc4})

	if got := c.Ciphers(Tlsv1); !reflect.DeepEqual(got, []string{"AES128-SHA", "RC4-MD5"}) {
		t.Errorf("Ciphers() = '%v'", got)
	}
	if got := ResolveStrong(c, Tlsv1); !reflect.DeepEqual(got, []string{"AES128-SHA"}) {
		t.Errorf("ResolveStrong() = '%v'", got)
	}
	if got := c.Ciphers(Sslv2); len(got) != 0 {
		t.Errorf("Ciphers(SSLv2) = '%v', want empty", got)
	}
}
