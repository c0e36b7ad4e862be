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
	"sort"
	"sync"

	"github.com/coleton/ssl-scan/ciphers"
	"github.com/coleton/ssl-scan/utils"
)

const cipherRc4Md5 = "RC4-MD5"

type filterKind uint8

const (
	filterInvalid filterKind = iota
	filterAll
	filterSet
)

// VersionFilter restricts result queries to protocol versions. The zero value is not a valid filter.
type VersionFilter struct {
	kind     filterKind
	versions []ciphers.Protocol
	err      error
}

// AllVersions matches records of every version
func AllVersions() VersionFilter {
	return VersionFilter{kind: filterAll}
}

// OnlyVersion matches records of a single version. An unsupported version makes queries fail.
func OnlyVersion(p ciphers.Protocol) VersionFilter {
	if !ciphers.IsValidProtocol(p) {
		return VersionFilter{err: fmt.Errorf("invalid SSL version supplied: '%s'", p)}
	}
	return VersionFilter{kind: filterSet, versions: []ciphers.Protocol{p}}
}

// AnyOfVersions matches records of any of the given versions. Unsupported versions are dropped, if none remain
// the filter matches every version.
func AnyOfVersions(ps ...ciphers.Protocol) VersionFilter {
	var versions []ciphers.Protocol
	for _, p := range ps {
		if ciphers.IsValidProtocol(p) {
			versions = append(versions, p)
		}
	}
	if len(versions) == 0 {
		return AllVersions()
	}
	return VersionFilter{kind: filterSet, versions: versions}
}

func (f VersionFilter) match(p ciphers.Protocol) bool {
	if f.kind == filterAll {
		return true
	}
	for _, v := range f.versions {
		if v == p {
			return true
		}
	}
	return false
}

func (f VersionFilter) validate() error {
	if f.err != nil {
		return f.err
	}
	if f.kind == filterInvalid {
		return fmt.Errorf("unrecognized version filter")
	}
	return nil
}

// Result is the thread-safe aggregate of one host's probe outcomes and certificate. Records are only ever added.
type Result struct {
	logger      utils.Logger
	offered     map[ciphers.Protocol]map[string]struct{} // Ciphers the library offers per version
	strong      map[ciphers.Protocol]map[string]struct{} // Resolved strong cipher selection per version
	mu          sync.Mutex
	records     map[recordKey]CipherRecord
	certificate *Certificate
}

// NewResult prepares an empty result. The library's cipher lists and the strong selection are resolved once here.
func NewResult(logger utils.Logger, lib ciphers.Library) *Result {
	r := &Result{
		logger:  logger,
		offered: make(map[ciphers.Protocol]map[string]struct{}),
		strong:  make(map[ciphers.Protocol]map[string]struct{}),
		records: make(map[recordKey]CipherRecord),
	}
	for _, p := range ciphers.Protocols() {
		r.offered[p] = toSet(lib.Ciphers(p))
		r.strong[p] = toSet(ciphers.ResolveStrong(lib, p))
	}
	return r
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// AddCipher validates and inserts a probe outcome. Whether the cipher is weak is derived from the strong cipher
// selection. Adding an existing (version, cipher, status) combination again has no effect.
func (r *Result) AddCipher(version ciphers.Protocol, cipher string, keyLength int, status Status) error {
	if !ciphers.IsValidProtocol(version) {
		return fmt.Errorf("must be a supported SSL version, got '%s'", version)
	}
	if _, ok := r.offered[version][cipher]; !ok {
		return fmt.Errorf("must be a valid SSL cipher for %s, got '%s'", version, cipher)
	}
	if keyLength < 0 {
		return fmt.Errorf("must supply a valid key length, got %d", keyLength)
	}
	if !IsValidStatus(status) {
		return fmt.Errorf("status must be accepted, rejected or failed, got '%s'", status)
	}

	_, strong := r.strong[version][cipher]
	record := CipherRecord{
		Version:   version,
		Cipher:    cipher,
		KeyLength: keyLength,
		Weak:      !strong,
		Status:    status,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[record.key()]; !exists {
		r.records[record.key()] = record
	}
	return nil
}

// SetCertificate assigns the certificate, nil clears it
func (r *Result) SetCertificate(certificate *Certificate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.certificate = certificate
}

// SetCertificateDER parses and assigns a DER encoded certificate. Invalid data leaves the current one untouched.
func (r *Result) SetCertificateDER(der []byte) error {
	certificate, err := ParseCertificate(r.logger, der)
	if err != nil {
		return err
	}
	r.SetCertificate(certificate)
	return nil
}

func (r *Result) Certificate() *Certificate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.certificate
}

// SupportedVersions returns the protocol versions records can be added for
func (r *Result) SupportedVersions() []ciphers.Protocol {
	return ciphers.Protocols()
}

// Len returns the number of records
func (r *Result) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// selectRecords returns the matching records sorted by version, cipher and status
func (r *Result) selectRecords(match func(CipherRecord) bool) []CipherRecord {
	r.mu.Lock()
	selected := make([]CipherRecord, 0, len(r.records))
	for _, record := range r.records {
		if match(record) {
			selected = append(selected, record)
		}
	}
	r.mu.Unlock()

	sort.Slice(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if a.Version != b.Version {
			return a.Version < b.Version
		}
		if a.Cipher != b.Cipher {
			return a.Cipher < b.Cipher
		}
		return a.Status < b.Status
	})
	return selected
}

func (r *Result) byStatus(status Status, filter VersionFilter) ([]CipherRecord, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	return r.selectRecords(func(record CipherRecord) bool {
		return record.Status == status && filter.match(record.Version)
	}), nil
}

// Records returns all records
func (r *Result) Records() []CipherRecord {
	return r.selectRecords(func(CipherRecord) bool { return true })
}

func (r *Result) Accepted(filter VersionFilter) ([]CipherRecord, error) {
	return r.byStatus(STATUS_Accepted, filter)
}

func (r *Result) Rejected(filter VersionFilter) ([]CipherRecord, error) {
	return r.byStatus(STATUS_Rejected, filter)
}

func (r *Result) Failed(filter VersionFilter) ([]CipherRecord, error) {
	return r.byStatus(STATUS_Failed, filter)
}

// accepted is Accepted for filters known to be valid
func (r *Result) accepted(filter VersionFilter) []CipherRecord {
	records, err := r.Accepted(filter)
	if err != nil {
		panic(err)
	}
	return records
}

func (r *Result) version(p ciphers.Protocol) []CipherRecord {
	return r.selectRecords(func(record CipherRecord) bool { return record.Version == p })
}

// Sslv2 returns the SSLv2 records of any status
func (r *Result) Sslv2() []CipherRecord {
	return r.version(ciphers.Sslv2)
}

// Sslv3 returns the SSLv3 records of any status
func (r *Result) Sslv3() []CipherRecord {
	return r.version(ciphers.Sslv3)
}

// Tlsv1 returns the TLSv1 records of any status
func (r *Result) Tlsv1() []CipherRecord {
	return r.version(ciphers.Tlsv1)
}

// Rc4Md5 returns the RC4-MD5 records of any version and status
func (r *Result) Rc4Md5() []CipherRecord {
	return r.selectRecords(func(record CipherRecord) bool { return record.Cipher == cipherRc4Md5 })
}

// WeakCiphers returns the accepted records of weak ciphers
func (r *Result) WeakCiphers() []CipherRecord {
	return r.selectRecords(func(record CipherRecord) bool {
		return record.Status == STATUS_Accepted && record.Weak
	})
}

// StrongCiphers returns the accepted records of strong ciphers
func (r *Result) StrongCiphers() []CipherRecord {
	return r.selectRecords(func(record CipherRecord) bool {
		return record.Status == STATUS_Accepted && !record.Weak
	})
}

func (r *Result) SupportsSslv2() bool {
	return len(r.accepted(OnlyVersion(ciphers.Sslv2))) > 0
}

func (r *Result) SupportsSslv3() bool {
	return len(r.accepted(OnlyVersion(ciphers.Sslv3))) > 0
}

func (r *Result) SupportsTlsv1() bool {
	return len(r.accepted(OnlyVersion(ciphers.Tlsv1))) > 0
}

// SupportsSsl is true if any version was accepted
func (r *Result) SupportsSsl() bool {
	return r.SupportsSslv2() || r.SupportsSslv3() || r.SupportsTlsv1()
}

func (r *Result) SupportsWeakCiphers() bool {
	return len(r.WeakCiphers()) > 0
}

// SupportsRc4Md5Ciphers is true if RC4-MD5 was accepted in any version. Rejected or failed RC4-MD5 probes do not
// count, unlike the Ruby ssl_scan gem, which reports support for any RC4-MD5 record.
func (r *Result) SupportsRc4Md5Ciphers() bool {
	for _, record := range r.Rc4Md5() {
		if record.Status == STATUS_Accepted {
			return true
		}
	}
	return false
}

// StandardsCompliant is false if the host speaks SSL at all and supports SSLv2 or any weak cipher. A host without
// any protocol support counts as compliant.
func (r *Result) StandardsCompliant() bool {
	if r.SupportsSsl() {
		if r.SupportsSslv2() || r.SupportsWeakCiphers() {
			return false
		}
	}
	return true
}
