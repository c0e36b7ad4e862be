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
	"encoding/json"
	"testing"
)

func TestParseProtocol(t *testing.T) {

	// Prepare and run test cases
	tests := []struct {
		name    string
		input   string
		want    Protocol
		wantErr bool
	}{
		{"sslv2", "SSLv2", Sslv2, false},
		{"ssl2", "ssl2", Sslv2, false},
		{"sslv3", "sslv3", Sslv3, false},
		{"tlsv1", "TLSv1", Tlsv1, false},
		{"tlsv1.0", " tlsv1.0 ", Tlsv1, false},
		{"tlsv1.2", "TLSv1.2", PROTO_Unknown, true},
		{"empty", "", PROTO_Unknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProtocol(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseProtocol() error = '%v', wantErr = '%v'", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseProtocol() = '%v', want = '%v'", got, tt.want)
			}
		})
	}
}

func TestProtocol_Wire(t *testing.T) {
	for _, p := range Protocols() {
		if got := ProtocolFromWire(p.Wire()); got != p {
			t.Errorf("ProtocolFromWire(%04x) = '%v', want = '%v'", p.Wire(), got, p)
		}
	}
	if got := ProtocolFromWire(0x0303); got != PROTO_Unknown {
		t.Errorf("ProtocolFromWire(0x0303) = '%v', want unknown", got)
	}
	if PROTO_Unknown.Wire() != 0 {
		t.Errorf("Wire() of unknown protocol must be 0")
	}
}

func TestProtocol_Text(t *testing.T) {
	b, err := json.Marshal(map[string]Protocol{"version": Sslv3})
	if err != nil {
		t.Fatalf("Marshal() error = '%v'", err)
	}
	if string(b) != `{"version":"SSLv3"}` {
		t.Errorf("Marshal() = '%s'", b)
	}

	var decoded map[string]Protocol
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = '%v'", err)
	}
	if decoded["version"] != Sslv3 {
		t.Errorf("Unmarshal() = '%v'", decoded["version"])
	}

	if _, err := json.Marshal(PROTO_Unknown); err == nil {
		t.Errorf("Marshal() of unknown protocol expected error")
	}
}

func TestStringers(t *testing.T) {
	if KEX_ECDHE.String() != "ECDHE" || !KEX_ECDHE.ProvidesForwardSecrecy() || KEX_RSA.ProvidesForwardSecrecy() {
		t.Errorf("KeyExchange stringer or forward secrecy broken")
	}
	if ENC_TRIPLE_DES.String() != "3DES" || MAC_MD5.String() != "MD5" || STRENGTH_EXPORT.String() != "EXPORT" {
		t.Errorf("unexpected stringer output")
	}
	if Protocol(9).String() != "Protocol(9)" {
		t.Errorf("unexpected stringer output for unknown protocol: '%s'", Protocol(9))
	}
}
