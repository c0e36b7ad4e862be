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
	"fmt"
	"time"

	"github.com/coleton/ssl-scan/ciphers"
	"github.com/coleton/ssl-scan/handshake"
	"github.com/coleton/ssl-scan/transport"
)

// ProbeOutcome is the classified result of one handshake attempt
type ProbeOutcome struct {
	Status    Status
	KeyLength int    // Secret bits of the probed cipher
	Reason    string // Why the server refused, for rejected probes
	Err       error  // Transport or decoding error, for failed probes
}

// Attempt performs one handshake offering only the given cipher in the given version. The server either accepts
// exactly this cipher, refuses, or the attempt fails on the way. The connection is closed on every path and gets
// closed early if the context ends, which aborts a pending read. Only an unknown (version, cipher) pair panics.
func Attempt(
	ctx context.Context,
	tr transport.Transport,
	host string,
	port int,
	version ciphers.Protocol,
	cipher string,
	timeout time.Duration,
) ProbeOutcome {

	suite, ok := ciphers.Default().Suite(version, cipher)
	if !ok {
		panic(fmt.Sprintf("cipher '%s' can not be offered in %s", cipher, version))
	}

	outcome := attempt(ctx, tr, host, port, version, suite, timeout)
	outcome.KeyLength = suite.Bits

	// Failures caused by the scan ending are timeouts, whatever the closed connection reported
	if outcome.Status == STATUS_Failed && ctx.Err() != nil {
		outcome.Err = fmt.Errorf("%w: scan ended (%s)", transport.ErrTimeout, outcome.Err)
	}
	return outcome
}

func attempt(
	ctx context.Context,
	tr transport.Transport,
	host string,
	port int,
	version ciphers.Protocol,
	suite *ciphers.Suite,
	timeout time.Duration,
) ProbeOutcome {

	conn, errConnect := tr.Connect(ctx, host, port, timeout)
	if errConnect != nil {
		return ProbeOutcome{Status: STATUS_Failed, Err: errConnect}
	}
	defer func() { _ = conn.Close() }()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	hello, errHello := handshake.NewClientHello(version, host, suite).Marshal()
	if errHello != nil {
		return ProbeOutcome{Status: STATUS_Failed, Err: errHello}
	}
	if errWrite := conn.Write(hello); errWrite != nil {
		return ProbeOutcome{Status: STATUS_Failed, Err: errWrite}
	}

	response, errRead := handshake.ReadServerResponse(conn, version, timeout, false)
	if errRead != nil {
		return ProbeOutcome{Status: STATUS_Failed, Err: errRead}
	}

	if response.Negotiated(version, suite.Id) {
		return ProbeOutcome{Status: STATUS_Accepted}
	}
	if response.Rejected() {
		return ProbeOutcome{Status: STATUS_Rejected, Reason: response.Reason()}
	}
	return ProbeOutcome{
		Status: STATUS_Rejected,
		Reason: fmt.Sprintf("server negotiated 0x%04X in version 0x%04X", response.CipherId, response.Version),
	}
}

// retrieveCertificate performs one handshake offering all given suites and returns the leaf certificate the server
// presented
func retrieveCertificate(
	ctx context.Context,
	tr transport.Transport,
	host string,
	port int,
	version ciphers.Protocol,
	suites []*ciphers.Suite,
	timeout time.Duration,
) ([]byte, error) {

	if len(suites) == 0 {
		return nil, fmt.Errorf("no ciphers to offer in %s", version)
	}

	conn, errConnect := tr.Connect(ctx, host, port, timeout)
	if errConnect != nil {
		return nil, errConnect
	}
	defer func() { _ = conn.Close() }()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	hello, errHello := handshake.NewClientHello(version, host, suites...).Marshal()
	if errHello != nil {
		return nil, errHello
	}
	if errWrite := conn.Write(hello); errWrite != nil {
		return nil, errWrite
	}

	response, errRead := handshake.ReadServerResponse(conn, version, timeout, true)
	if errRead != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: scan ended (%s)", transport.ErrTimeout, errRead)
		}
		return nil, errRead
	}
	if response.Rejected() {
		return nil, fmt.Errorf("server refused the %s handshake: %s", version, response.Reason())
	}
	if len(response.Certificates) == 0 {
		return nil, fmt.Errorf("server did not present a certificate")
	}
	return response.Certificates[0], nil
}
