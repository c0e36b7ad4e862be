/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package report

import (
	"encoding/json"
	"io"

	"github.com/coleton/ssl-scan/ssl"
	"gopkg.in/yaml.v3"
)

// Summary condenses a result into the classification answers
type Summary struct {
	SupportsSslv2      bool `json:"supports_sslv2" yaml:"supports_sslv2"`
	SupportsSslv3      bool `json:"supports_sslv3" yaml:"supports_sslv3"`
	SupportsTlsv1      bool `json:"supports_tlsv1" yaml:"supports_tlsv1"`
	SupportsWeak       bool `json:"supports_weak_ciphers" yaml:"supports_weak_ciphers"`
	SupportsRc4Md5     bool `json:"supports_rc4_md5" yaml:"supports_rc4_md5"`
	StandardsCompliant bool `json:"standards_compliant" yaml:"standards_compliant"`
}

// Document is the machine readable report of one host
type Document struct {
	Host        string             `json:"host" yaml:"host"`
	Status      string             `json:"status,omitempty" yaml:"status,omitempty"`
	Errors      []string           `json:"errors,omitempty" yaml:"errors,omitempty"`
	Summary     *Summary           `json:"summary,omitempty" yaml:"summary,omitempty"`
	Ciphers     []ssl.CipherRecord `json:"ciphers,omitempty" yaml:"ciphers,omitempty"`
	Certificate *ssl.Certificate   `json:"certificate,omitempty" yaml:"certificate,omitempty"`
}

// NewDocument builds the report of a host. The result may be nil if the host could not be scanned.
func NewDocument(host string, status string, result *ssl.Result, errors []string) *Document {
	doc := &Document{
		Host:   host,
		Status: status,
		Errors: errors,
	}
	if result == nil {
		return doc
	}
	doc.Summary = &Summary{
		SupportsSslv2:      result.SupportsSslv2(),
		SupportsSslv3:      result.SupportsSslv3(),
		SupportsTlsv1:      result.SupportsTlsv1(),
		SupportsWeak:       result.SupportsWeakCiphers(),
		SupportsRc4Md5:     result.SupportsRc4Md5Ciphers(),
		StandardsCompliant: result.StandardsCompliant(),
	}
	doc.Ciphers = result.Records()
	doc.Certificate = result.Certificate()
	return doc
}

// WriteJSON writes the documents as an indented JSON array
func WriteJSON(w io.Writer, docs []*Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(docs)
}

// WriteYAML writes the documents as a YAML sequence
func WriteYAML(w io.Writer, docs []*Document) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(docs); err != nil {
		return err
	}
	return encoder.Close()
}
