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
	"fmt"
	"sync"
	"testing"

	"github.com/coleton/ssl-scan/ciphers"
	"github.com/coleton/ssl-scan/utils"
	"github.com/davecgh/go-spew/spew"
)

func newTestResult() *Result {
	return NewResult(utils.NewTestLogger(), ciphers.Default())
}

func mustAdd(t *testing.T, r *Result, version ciphers.Protocol, cipher string, status Status) {
	t.Helper()
	if err := r.AddCipher(version, cipher, 128, status); err != nil {
		t.Fatalf("AddCipher() error = '%v'", err)
	}
}

func TestResult_AddCipher(t *testing.T) {

	// Prepare and run test cases
	type args struct {
		version   ciphers.Protocol
		cipher    string
		keyLength int
		status    Status
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{"valid-tlsv1", args{ciphers.Tlsv1, "AES128-SHA", 128, STATUS_Accepted}, false},
		{"valid-sslv2", args{ciphers.Sslv2, "RC4-MD5", 128, STATUS_Rejected}, false},
		{"valid-zero-key-length", args{ciphers.Sslv3, "NULL-MD5", 0, STATUS_Failed}, false},
		{"invalid-version", args{ciphers.PROTO_Unknown, "AES128-SHA", 128, STATUS_Accepted}, true},
		{"invalid-cipher", args{ciphers.Tlsv1, "NOT-A-CIPHER", 128, STATUS_Accepted}, true},
		{"invalid-cipher-for-version", args{ciphers.Sslv3, "ECDHE-RSA-AES128-SHA", 128, STATUS_Accepted}, true},
		{"invalid-sslv2-cipher", args{ciphers.Sslv2, "AES128-SHA", 128, STATUS_Accepted}, true},
		{"invalid-key-length", args{ciphers.Tlsv1, "AES128-SHA", -1, STATUS_Accepted}, true},
		{"invalid-status", args{ciphers.Tlsv1, "AES128-SHA", 128, STATUS_Unknown}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResult()
			err := r.AddCipher(tt.args.version, tt.args.cipher, tt.args.keyLength, tt.args.status)
			if (err != nil) != tt.wantErr {
				t.Errorf("AddCipher() error = '%v', wantErr = '%v'", err, tt.wantErr)
			}
			wantLen := 1
			if tt.wantErr {
				wantLen = 0
			}
			if r.Len() != wantLen {
				t.Errorf("Len() = '%d', want = '%d'", r.Len(), wantLen)
			}
		})
	}
}

func TestResult_WeakIsDerived(t *testing.T) {
	for _, p := range ciphers.Protocols() {
		strong := toSet(ciphers.ResolveStrong(ciphers.Default(), p))
		r := newTestResult()
		for _, name := range ciphers.Default().Ciphers(p) {
			mustAdd(t, r, p, name, STATUS_Accepted)
		}
		for _, record := range r.Records() {
			_, isStrong := strong[record.Cipher]
			if record.Weak == isStrong {
				t.Errorf("%s %s: Weak = '%v', want = '%v'", p, record.Cipher, record.Weak, !isStrong)
			}
		}
		if r.Len() != len(ciphers.Default().Ciphers(p)) {
			t.Errorf("%s: Len() = '%d', want = '%d'", p, r.Len(), len(ciphers.Default().Ciphers(p)))
		}
	}
}

func TestResult_AddCipherIdempotent(t *testing.T) {
	r := newTestResult()
	mustAdd(t, r, ciphers.Tlsv1, "AES128-SHA", STATUS_Accepted)
	mustAdd(t, r, ciphers.Tlsv1, "AES128-SHA", STATUS_Accepted)
	mustAdd(t, r, ciphers.Tlsv1, "AES128-SHA", STATUS_Failed)
	mustAdd(t, r, ciphers.Sslv3, "AES128-SHA", STATUS_Accepted)

	accepted, _ := r.Accepted(AllVersions())
	if len(accepted) != 2 {
		t.Errorf("Accepted() = '%s', want 2 records", spew.Sdump(accepted))
	}
	failed, _ := r.Failed(AllVersions())
	if len(failed) != 1 {
		t.Errorf("Failed() = '%s', want 1 record", spew.Sdump(failed))
	}
	if r.Len() != 3 {
		t.Errorf("Len() = '%d', want = '3'", r.Len())
	}
}

func TestResult_Filters(t *testing.T) {
	r := newTestResult()
	mustAdd(t, r, ciphers.Sslv2, "RC4-MD5", STATUS_Accepted)
	mustAdd(t, r, ciphers.Sslv3, "AES128-SHA", STATUS_Accepted)
	mustAdd(t, r, ciphers.Tlsv1, "AES128-SHA", STATUS_Accepted)
	mustAdd(t, r, ciphers.Tlsv1, "AES256-SHA", STATUS_Rejected)

	// Prepare and run test cases
	tests := []struct {
		name    string
		filter  VersionFilter
		want    int
		wantErr bool
	}{
		{"all", AllVersions(), 3, false},
		{"only-sslv2", OnlyVersion(ciphers.Sslv2), 1, false},
		{"only-tlsv1", OnlyVersion(ciphers.Tlsv1), 1, false},
		{"set", AnyOfVersions(ciphers.Sslv3, ciphers.Tlsv1), 2, false},
		{"set-drops-invalid", AnyOfVersions(ciphers.PROTO_Unknown, ciphers.Sslv2), 1, false},
		{"set-all-invalid-means-all", AnyOfVersions(ciphers.PROTO_Unknown), 3, false},
		{"set-empty-means-all", AnyOfVersions(), 3, false},
		{"invalid-single", OnlyVersion(ciphers.PROTO_Unknown), 0, true},
		{"invalid-zero-value", VersionFilter{}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Accepted(tt.filter)
			if (err != nil) != tt.wantErr {
				t.Errorf("Accepted() error = '%v', wantErr = '%v'", err, tt.wantErr)
				return
			}
			if len(got) != tt.want {
				t.Errorf("Accepted() = '%s', want %d records", spew.Sdump(got), tt.want)
			}
		})
	}

	rejected, _ := r.Rejected(OnlyVersion(ciphers.Tlsv1))
	if len(rejected) != 1 || rejected[0].Cipher != "AES256-SHA" {
		t.Errorf("Rejected() = '%s', want AES256-SHA", spew.Sdump(rejected))
	}
	if got := len(r.Tlsv1()); got != 2 {
		t.Errorf("Tlsv1() = '%d' records, want = '2'", got)
	}
}

func TestResult_Sorted(t *testing.T) {
	r := newTestResult()
	mustAdd(t, r, ciphers.Tlsv1, "DES-CBC3-SHA", STATUS_Failed)
	mustAdd(t, r, ciphers.Tlsv1, "AES128-SHA", STATUS_Rejected)
	mustAdd(t, r, ciphers.Sslv3, "RC4-SHA", STATUS_Accepted)
	mustAdd(t, r, ciphers.Tlsv1, "AES128-SHA", STATUS_Accepted)

	var got []string
	for _, record := range r.Records() {
		got = append(got, fmt.Sprintf("%s/%s/%s", record.Version, record.Cipher, record.Status))
	}
	want := []string{
		"SSLv3/RC4-SHA/accepted",
		"TLSv1/AES128-SHA/accepted",
		"TLSv1/AES128-SHA/rejected",
		"TLSv1/DES-CBC3-SHA/failed",
	}
	if len(got) != len(want) {
		t.Fatalf("Records() = '%v', want = '%v'", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Records()[%d] = '%s', want = '%s'", i, got[i], want[i])
		}
	}
}

func TestResult_Supports(t *testing.T) {

	// Prepare and run test cases
	type record struct {
		version ciphers.Protocol
		cipher  string
		status  Status
	}
	tests := []struct {
		name          string
		records       []record
		wantSslv2     bool
		wantSslv3     bool
		wantTlsv1     bool
		wantWeak      bool
		wantRc4Md5    bool
		wantCompliant bool
	}{
		{"empty", nil, false, false, false, false, false, true},
		{"only-rejected", []record{
			{ciphers.Sslv2, "RC4-MD5", STATUS_Rejected},
			{ciphers.Tlsv1, "RC4-MD5", STATUS_Rejected},
		}, false, false, false, false, false, true},
		{"only-failed", []record{
			{ciphers.Sslv3, "RC4-SHA", STATUS_Failed},
		}, false, false, false, false, false, true},
		{"strong-tlsv1", []record{
			{ciphers.Tlsv1, "ECDHE-RSA-AES128-SHA", STATUS_Accepted},
			{ciphers.Tlsv1, "RC4-SHA", STATUS_Rejected},
		}, false, false, true, false, false, true},
		{"strong-sslv3", []record{
			{ciphers.Sslv3, "AES256-SHA", STATUS_Accepted},
		}, false, true, false, false, false, true},
		{"weak-sslv3", []record{
			{ciphers.Sslv3, "RC4-MD5", STATUS_Accepted},
		}, false, true, false, true, true, false},
		{"sslv2-only-strong-otherwise", []record{
			{ciphers.Sslv2, "DES-CBC3-MD5", STATUS_Accepted},
			{ciphers.Tlsv1, "AES128-SHA", STATUS_Accepted},
		}, true, false, true, true, false, false},
		{"sslv2-rc4-md5", []record{
			{ciphers.Sslv2, "RC4-MD5", STATUS_Accepted},
		}, true, false, false, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResult()
			for _, rec := range tt.records {
				mustAdd(t, r, rec.version, rec.cipher, rec.status)
			}
			if got := r.SupportsSslv2(); got != tt.wantSslv2 {
				t.Errorf("SupportsSslv2() = '%v', want = '%v'", got, tt.wantSslv2)
			}
			if got := r.SupportsSslv3(); got != tt.wantSslv3 {
				t.Errorf("SupportsSslv3() = '%v', want = '%v'", got, tt.wantSslv3)
			}
			if got := r.SupportsTlsv1(); got != tt.wantTlsv1 {
				t.Errorf("SupportsTlsv1() = '%v', want = '%v'", got, tt.wantTlsv1)
			}
			if got := r.SupportsSsl(); got != (tt.wantSslv2 || tt.wantSslv3 || tt.wantTlsv1) {
				t.Errorf("SupportsSsl() = '%v'", got)
			}
			if got := r.SupportsWeakCiphers(); got != tt.wantWeak {
				t.Errorf("SupportsWeakCiphers() = '%v', want = '%v'", got, tt.wantWeak)
			}
			if got := r.SupportsRc4Md5Ciphers(); got != tt.wantRc4Md5 {
				t.Errorf("SupportsRc4Md5Ciphers() = '%v', want = '%v'", got, tt.wantRc4Md5)
			}
			if got := r.StandardsCompliant(); got != tt.wantCompliant {
				t.Errorf("StandardsCompliant() = '%v', want = '%v'\n%s", got, tt.wantCompliant, spew.Sdump(r.Records()))
			}

			// Supports* must agree with the accepted views
			for _, p := range ciphers.Protocols() {
				accepted, _ := r.Accepted(OnlyVersion(p))
				supports := map[ciphers.Protocol]bool{
					ciphers.Sslv2: r.SupportsSslv2(),
					ciphers.Sslv3: r.SupportsSslv3(),
					ciphers.Tlsv1: r.SupportsTlsv1(),
				}[p]
				if supports != (len(accepted) > 0) {
					t.Errorf("Supports %s = '%v' with %d accepted records", p, supports, len(accepted))
				}
			}

			// Weak and strong partition the accepted records
			accepted, _ := r.Accepted(AllVersions())
			if len(r.WeakCiphers())+len(r.StrongCiphers()) != len(accepted) {
				t.Errorf("WeakCiphers() and StrongCiphers() do not partition Accepted()")
			}
		})
	}
}

func TestResult_Rc4Md5(t *testing.T) {
	r := newTestResult()
	mustAdd(t, r, ciphers.Sslv2, "RC4-MD5", STATUS_Rejected)
	mustAdd(t, r, ciphers.Sslv3, "RC4-MD5", STATUS_Failed)
	mustAdd(t, r, ciphers.Tlsv1, "RC4-SHA", STATUS_Accepted)

	if got := len(r.Rc4Md5()); got != 2 {
		t.Errorf("Rc4Md5() = '%s', want 2 records", spew.Sdump(r.Rc4Md5()))
	}
	if r.SupportsRc4Md5Ciphers() {
		t.Errorf("SupportsRc4Md5Ciphers() = 'true' without accepted RC4-MD5")
	}
}

func TestResult_Certificate(t *testing.T) {
	r := newTestResult()
	if err := r.SetCertificateDER([]byte("not a certificate")); err == nil {
		t.Errorf("SetCertificateDER() accepted garbage")
	}
	if err := r.SetCertificateDER(nil); err == nil {
		t.Errorf("SetCertificateDER() accepted empty input")
	}
	if r.Certificate() != nil {
		t.Errorf("Certificate() = '%v', want = 'nil'", r.Certificate())
	}

	r.SetCertificate(&Certificate{SubjectCN: "example.com"})
	if r.Certificate() == nil || r.Certificate().SubjectCN != "example.com" {
		t.Errorf("Certificate() = '%v', want example.com", r.Certificate())
	}
	r.SetCertificate(nil)
	if r.Certificate() != nil {
		t.Errorf("Certificate() = '%v', want = 'nil'", r.Certificate())
	}

	if got := r.SupportedVersions(); len(got) != 3 {
		t.Errorf("SupportedVersions() = '%v'", got)
	}
}

func TestResult_ConcurrentInserts(t *testing.T) {
	r := newTestResult()
	names := ciphers.Default().Ciphers(ciphers.Tlsv1)

	var wg sync.WaitGroup
	for worker := 0; worker < 16; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range names {
				for _, status := range []Status{STATUS_Accepted, STATUS_Rejected, STATUS_Failed} {
					if err := r.AddCipher(ciphers.Tlsv1, name, 0, status); err != nil {
						t.Errorf("AddCipher() error = '%v'", err)
					}
				}
				_ = r.SupportsWeakCiphers()
			}
		}()
	}
	wg.Wait()

	if got, want := r.Len(), 3*len(names); got != want {
		t.Errorf("Len() = '%d', want = '%d'", got, want)
	}
}
