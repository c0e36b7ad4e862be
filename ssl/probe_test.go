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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coleton/ssl-scan/ciphers"
	"github.com/coleton/ssl-scan/handshake"
	"github.com/coleton/ssl-scan/transport"
	"github.com/coleton/ssl-scan/transport/fake"
)

const testProbeTimeout = 200 * time.Millisecond

func TestAttempt(t *testing.T) {

	// Prepare and run test cases
	tests := []struct {
		name          string
		version       ciphers.Protocol
		cipher        string
		response      fake.Response
		connectErr    error
		wantStatus    Status
		wantKeyLength int
		wantErr       error
	}{
		{"tlsv1-accepted", ciphers.Tlsv1, "ECDHE-RSA-AES128-SHA", fake.Accept(), nil, STATUS_Accepted, 128, nil},
		{"sslv3-accepted", ciphers.Sslv3, "RC4-MD5", fake.Accept(), nil, STATUS_Accepted, 128, nil},
		{"sslv2-accepted", ciphers.Sslv2, "DES-CBC3-MD5", fake.Accept(), nil, STATUS_Accepted, 168, nil},
		{"export-key-length", ciphers.Sslv3, "EXP-RC4-MD5", fake.Accept(), nil, STATUS_Accepted, 40, nil},
		{"null-key-length", ciphers.Tlsv1, "NULL-MD5", fake.Accept(), nil, STATUS_Accepted, 0, nil},
		{"tlsv1-rejected", ciphers.Tlsv1, "AES128-SHA", fake.Reject(), nil, STATUS_Rejected, 128, nil},
		{"sslv2-rejected", ciphers.Sslv2, "RC4-MD5", fake.Reject(), nil, STATUS_Rejected, 128, nil},
		{"other-cipher", ciphers.Tlsv1, "AES128-SHA", fake.Response{Action: fake.ActionAccept, CipherId: 0x0005}, nil, STATUS_Rejected, 128, nil},
		{"downgrade", ciphers.Tlsv1, "AES128-SHA", fake.Response{Action: fake.ActionAccept, Version: ciphers.WireSslv3}, nil, STATUS_Rejected, 128, nil},
		{"fragmented", ciphers.Tlsv1, "AES256-SHA", fake.Response{Action: fake.ActionAccept, Fragment: 5}, nil, STATUS_Accepted, 256, nil},
		{"delayed", ciphers.Tlsv1, "AES256-SHA", fake.Delayed(fake.Accept(), 20*time.Millisecond), nil, STATUS_Accepted, 256, nil},
		{"reset", ciphers.Tlsv1, "AES128-SHA", fake.Reset(), nil, STATUS_Failed, 128, transport.ErrConnectionReset},
		{"silent", ciphers.Tlsv1, "AES128-SHA", fake.Timeout(), nil, STATUS_Failed, 128, transport.ErrTimeout},
		{"too-slow", ciphers.Tlsv1, "AES128-SHA", fake.Delayed(fake.Accept(), time.Second), nil, STATUS_Failed, 128, transport.ErrTimeout},
		{"garbage", ciphers.Tlsv1, "AES128-SHA", fake.Garbage(), nil, STATUS_Failed, 128, handshake.ErrMalformed},
		{"refused", ciphers.Tlsv1, "AES128-SHA", fake.Accept(),
			transport.NewConnectError("localhost", 443, transport.ConnectRefused, nil), STATUS_Failed, 128, transport.ErrRefused},
		{"unresolvable", ciphers.Sslv3, "AES128-SHA", fake.Accept(),
			transport.NewConnectError("localhost", 443, transport.ConnectUnresolvable, nil), STATUS_Failed, 128, transport.ErrUnresolvable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := fake.NewTransport(fake.Always(tt.response))
			if tt.connectErr != nil {
				tr.ConnectFailure = func(string, int) error { return tt.connectErr }
			}

			got := Attempt(context.Background(), tr, "localhost", 443, tt.version, tt.cipher, testProbeTimeout)
			if got.Status != tt.wantStatus {
				t.Errorf("Attempt() status = '%s', want = '%s' (err: %v)", got.Status, tt.wantStatus, got.Err)
			}
			if got.KeyLength != tt.wantKeyLength {
				t.Errorf("Attempt() key length = '%d', want = '%d'", got.KeyLength, tt.wantKeyLength)
			}
			if tt.wantErr != nil && !errors.Is(got.Err, tt.wantErr) {
				t.Errorf("Attempt() error = '%v', want = '%v'", got.Err, tt.wantErr)
			}
			if tt.wantErr == nil && got.Err != nil {
				t.Errorf("Attempt() unexpected error = '%v'", got.Err)
			}
			if got.Status == STATUS_Rejected && got.Reason == "" {
				t.Errorf("Attempt() rejected without reason")
			}
			if tr.Open() != 0 {
				t.Errorf("Attempt() left %d connections open", tr.Open())
			}
		})
	}
}

func TestAttempt_SingleCipherOffered(t *testing.T) {
	var offered []uint32
	tr := fake.NewTransport(fake.ResponderFunc(func(hello *handshake.ClientHello) fake.Response {
		offered = hello.CipherIds
		return fake.Accept()
	}))

	got := Attempt(context.Background(), tr, "example.com", 443, ciphers.Tlsv1, "ECDHE-RSA-AES128-SHA", testProbeTimeout)
	if got.Status != STATUS_Accepted {
		t.Fatalf("Attempt() status = '%s', want = '%s'", got.Status, STATUS_Accepted)
	}
	if len(offered) != 1 || offered[0] != 0xC013 {
		t.Errorf("Attempt() offered '%v', want = '[0xC013]'", offered)
	}
	if tr.Connections() != 1 || tr.Hellos() != 1 {
		t.Errorf("Attempt() used %d connections for %d hellos", tr.Connections(), tr.Hellos())
	}
}

func TestAttempt_Cancelled(t *testing.T) {

	// Already done before the attempt
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tr := fake.NewTransport(fake.Always(fake.Accept()))
	got := Attempt(ctx, tr, "localhost", 443, ciphers.Tlsv1, "AES128-SHA", testProbeTimeout)
	if got.Status != STATUS_Failed || !errors.Is(got.Err, transport.ErrTimeout) {
		t.Errorf("Attempt() = '%s' with '%v', want failed with timeout", got.Status, got.Err)
	}

	// Ending while waiting for the server
	ctx, cancel = context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	tr = fake.NewTransport(fake.Always(fake.Timeout()))
	started := time.Now()
	got = Attempt(ctx, tr, "localhost", 443, ciphers.Tlsv1, "AES128-SHA", 10*time.Second)
	if elapsed := time.Since(started); elapsed > 5*time.Second {
		t.Errorf("Attempt() returned after %s, want early abort", elapsed)
	}
	if got.Status != STATUS_Failed || !errors.Is(got.Err, transport.ErrTimeout) {
		t.Errorf("Attempt() = '%s' with '%v', want failed with timeout", got.Status, got.Err)
	}
	if tr.Open() != 0 {
		t.Errorf("Attempt() left %d connections open", tr.Open())
	}
}

func TestAttempt_UnknownCipherPanics(t *testing.T) {
	tests := []struct {
		name    string
		version ciphers.Protocol
		cipher  string
	}{
		{"unknown-name", ciphers.Tlsv1, "NOT-A-CIPHER"},
		{"wrong-version", ciphers.Sslv3, "ECDHE-RSA-AES128-SHA"},
		{"unknown-version", ciphers.PROTO_Unknown, "AES128-SHA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Attempt() did not panic")
				}
			}()
			tr := fake.NewTransport(fake.Always(fake.Accept()))
			_ = Attempt(context.Background(), tr, "localhost", 443, tt.version, tt.cipher, testProbeTimeout)
		})
	}
}

func Test_retrieveCertificate(t *testing.T) {
	der, err := fake.NewSelfSignedCertificate("localhost", 1024)
	if err != nil {
		t.Fatalf("could not generate certificate: %s", err)
	}
	suites := ciphers.Default().Suites(ciphers.Tlsv1)

	tests := []struct {
		name     string
		response fake.Response
		suites   []*ciphers.Suite
		wantErr  bool
	}{
		{"presented", fake.Accept(der), suites, false},
		{"fragmented", fake.Response{Action: fake.ActionAccept, Certificates: [][]byte{der}, Fragment: 64}, suites, false},
		{"no-certificate", fake.Accept(), suites, true},
		{"rejected", fake.Reject(), suites, true},
		{"silent", fake.Timeout(), suites, true},
		{"no-suites", fake.Accept(der), nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := fake.NewTransport(fake.Always(tt.response))
			got, err := retrieveCertificate(context.Background(), tr, "localhost", 443, ciphers.Tlsv1, tt.suites, testProbeTimeout)
			if (err != nil) != tt.wantErr {
				t.Fatalf("retrieveCertificate() error = '%v', wantErr = '%v'", err, tt.wantErr)
			}
			if !tt.wantErr && string(got) != string(der) {
				t.Errorf("retrieveCertificate() returned a different certificate")
			}
			if tr.Open() != 0 {
				t.Errorf("retrieveCertificate() left %d connections open", tr.Open())
			}
		})
	}
}
