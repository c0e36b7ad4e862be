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
	"strings"

	"github.com/coleton/ssl-scan/ciphers"
)

// Status is the outcome of a single cipher probe
type Status uint8

const (
	STATUS_Unknown  Status = iota //
	STATUS_Accepted               // accepted
	STATUS_Rejected               // rejected
	STATUS_Failed                 // failed
)

var statusNames = map[Status]string{
	STATUS_Accepted: "accepted",
	STATUS_Rejected: "rejected",
	STATUS_Failed:   "failed",
}

func IsValidStatus(s Status) bool {
	return s >= STATUS_Accepted && s <= STATUS_Failed
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

func (s Status) MarshalText() ([]byte, error) {
	if !IsValidStatus(s) {
		return nil, fmt.Errorf("invalid status %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if strings.EqualFold(name, string(text)) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown status '%s'", text)
}

// CipherRecord is the immutable outcome of probing one cipher. Records are identified by version, cipher and status.
type CipherRecord struct {
	Version   ciphers.Protocol `json:"version" yaml:"version"`
	Cipher    string           `json:"cipher" yaml:"cipher"`
	KeyLength int              `json:"key_length" yaml:"key_length"`
	Weak      bool             `json:"weak" yaml:"weak"` // Derived from the strong cipher selection when added
	Status    Status           `json:"status" yaml:"status"`
}

func (r CipherRecord) key() recordKey {
	return recordKey{r.Version, r.Cipher, r.Status}
}

type recordKey struct {
	version ciphers.Protocol
	cipher  string
	status  Status
}

// Options select what a scan covers
type Options struct {
	Versions []ciphers.Protocol // Protocol versions to probe, all if empty
	OnlyCert bool               // Skip cipher probing, only fetch the certificate
	NoFailed bool               // Drop failed probes from the result
}

// versions returns the requested protocol versions in ascending order, all supported ones if none are requested
func (o Options) versions() []ciphers.Protocol {
	if len(o.Versions) == 0 {
		return ciphers.Protocols()
	}
	var out []ciphers.Protocol
	for _, p := range ciphers.Protocols() {
		for _, requested := range o.Versions {
			if requested == p {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// ScanError describes a problem of the scan as a whole, as opposed to failed probes which are scan results
type ScanError struct {
	Stage string // Step of the scan the error occurred in, e.g. "certificate"
	Err   error
}

func (e ScanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Err)
}

func (e ScanError) Unwrap() error {
	return e.Err
}
