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
	"fmt"
	"io"
	"strings"

	"github.com/coleton/ssl-scan/ssl"
	"github.com/fatih/color"
)

const timeFormat = "Jan _2 15:04:05 2006 MST"

// painter colors report fragments, or leaves them alone if colors are disabled
type painter struct {
	good    *color.Color
	warn    *color.Color
	bad     *color.Color
	heading *color.Color
}

func newPainter(colored bool) *painter {
	p := &painter{
		good:    color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		bad:     color.New(color.FgRed),
		heading: color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.good, p.warn, p.bad, p.heading} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// errWriter remembers the first write error, so the report can be written without checking every line
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, v ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, v...)
}

// WriteText writes the human readable report of a host: probed ciphers, the compliance summary and the
// certificate. Scan errors are listed last. The result may be nil if the host could not be scanned.
func WriteText(w io.Writer, host string, result *ssl.Result, errors []string, colored bool) error {
	ew := &errWriter{w: w}
	p := newPainter(colored)

	if result != nil {
		ew.printf("%s\n\n", p.heading.Sprintf("Testing SSL server %s", host))
		writeCiphers(ew, p, result)
		writeSummary(ew, p, result)
		if certificate := result.Certificate(); certificate != nil {
			writeCertificate(ew, certificate)
		}
	}
	if len(errors) > 0 {
		ew.printf("%s\n", p.bad.Sprintf("Error[%s]: (%s)", host, strings.Join(errors, " ")))
	}
	return ew.err
}

func writeCiphers(ew *errWriter, p *painter, result *ssl.Result) {
	records := result.Records()
	if len(records) == 0 {
		return
	}
	ew.printf("Supported Server Cipher(s):\n")
	for _, record := range records {
		status := fmt.Sprintf("%-8s", capitalize(record.Status.String()))
		switch record.Status {
		case ssl.STATUS_Accepted:
			if record.Weak {
				status = p.bad.Sprint(status)
			} else {
				status = p.good.Sprint(status)
			}
		case ssl.STATUS_Failed:
			status = p.warn.Sprint(status)
		}
		weak := ""
		if record.Weak {
			weak = "  weak"
		}
		ew.printf("  %s  %-5s  %3d bits  %s%s\n", status, record.Version, record.KeyLength, record.Cipher, weak)
	}
	ew.printf("\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func writeSummary(ew *errWriter, p *painter, result *ssl.Result) {
	yesNo := func(value bool, good bool) string {
		text := "no"
		if value {
			text = "yes"
		}
		if value == good {
			return p.good.Sprint(text)
		}
		return p.bad.Sprint(text)
	}

	ew.printf("Summary:\n")
	ew.printf("  SSLv2 supported: %s\n", yesNo(result.SupportsSslv2(), false))
	ew.printf("  SSLv3 supported: %s\n", yesNo(result.SupportsSslv3(), result.SupportsSslv3()))
	ew.printf("  TLSv1 supported: %s\n", yesNo(result.SupportsTlsv1(), result.SupportsTlsv1()))
	ew.printf("  Weak ciphers: %s\n", yesNo(result.SupportsWeakCiphers(), false))
	ew.printf("  RC4-MD5: %s\n", yesNo(result.SupportsRc4Md5Ciphers(), false))
	ew.printf("  Standards compliant: %s\n", yesNo(result.StandardsCompliant(), true))
	ew.printf("\n")
}

func writeCertificate(ew *errWriter, certificate *ssl.Certificate) {
	ew.printf("SSL Certificate:\n")
	ew.printf("  Version: %d\n", certificate.Version)
	ew.printf("  Serial Number: %s\n", certificate.SerialHex())
	ew.printf("  Signature Algorithm: %s\n", certificate.SignatureAlgorithm)
	ew.printf("  Issuer: %s\n", certificate.Issuer)
	ew.printf("  Not valid before: %s\n", certificate.ValidFrom.UTC().Format(timeFormat))
	ew.printf("  Not valid after: %s\n", certificate.ValidTo.UTC().Format(timeFormat))
	ew.printf("  Subject: %s\n", certificate.Subject)
	ew.printf("  Public Key Algorithm: %s (%d bit, strength %d)\n",
		certificate.PublicKeyAlgorithm, certificate.PublicKeyBits, certificate.PublicKeyStrength)
	for _, line := range strings.Split(certificate.PublicKeyInfo, "\n") {
		if line != "" {
			ew.printf("    %s\n", line)
		}
	}
	ew.printf("  SHA1 Fingerprint: %s\n", certificate.Sha1Fingerprint)
	ew.printf("  SHA256 Fingerprint: %s\n", certificate.Sha256Fingerprint)

	if len(certificate.Extensions) == 0 {
		return
	}
	ew.printf("  X509v3 Extensions:\n")
	for _, ext := range certificate.Extensions {
		name := ext.Kind.Label()
		if name == "" {
			name = ext.Oid
		}
		if ext.Critical {
			name += ": critical"
		} else {
			name += ":"
		}
		ew.printf("    %s\n", name)
		for _, value := range ext.Values {
			ew.printf("      %s\n", value)
		}
	}
}
