/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package fake

import (
	"sync/atomic"
	"time"

	"github.com/coleton/ssl-scan/ciphers"
	"github.com/coleton/ssl-scan/handshake"
)

type Action uint8

const (
	ActionAccept  Action = iota // Answer with a server hello
	ActionReject                // Answer with a handshake failure alert, respectively an SSLv2 error
	ActionReset                 // Reset the connection
	ActionTimeout               // Stay silent
	ActionGarbage               // Answer with something that is not SSL/TLS
)

var garbage = []byte("HTTP/1.1 400 Bad Request\r\nConnection: close\r\n\r\n")

// Response scripts the server's reaction to a single client hello
type Response struct {
	Action       Action
	CipherId     uint32        // Cipher to accept, zero selects the first offered one
	Version      uint16        // Version to answer with, zero mirrors the client
	Certificates [][]byte      // Certificates sent along with an accepting server hello
	Delay        time.Duration // Delay before the answer becomes readable
	Fragment     int           // Maximum record payload of the answer, zero for no fragmentation
}

// Accept returns a response accepting the first offered cipher
func Accept(certificates ...[]byte) Response {
	return Response{Action: ActionAccept, Certificates: certificates}
}

func Reject() Response {
	return Response{Action: ActionReject}
}

func Reset() Response {
	return Response{Action: ActionReset}
}

func Timeout() Response {
	return Response{Action: ActionTimeout}
}

func Garbage() Response {
	return Response{Action: ActionGarbage}
}

// Delayed returns the response answering after the given delay
func Delayed(r Response, delay time.Duration) Response {
	r.Delay = delay
	return r
}

// encode returns the bytes the server sends
func (r Response) encode(hello *handshake.ClientHello) ([]byte, error) {
	switch r.Action {
	case ActionAccept:
		cipherId := r.CipherId
		if cipherId == 0 && len(hello.CipherIds) > 0 {
			cipherId = hello.CipherIds[0]
		}
		if hello.Protocol == ciphers.Sslv2 {
			var certificate []byte
			if len(r.Certificates) > 0 {
				certificate = r.Certificates[0]
			}
			return handshake.MarshalV2ServerHello([]uint32{cipherId}, certificate)
		}
		version := r.Version
		if version == 0 {
			version = hello.Version
		}
		return handshake.MarshalServerHello(version, uint16(cipherId), r.Certificates, r.Fragment)
	case ActionReject:
		if hello.Protocol == ciphers.Sslv2 {
			return handshake.MarshalV2Error(handshake.V2ErrorNoCipher)
		}
		return handshake.MarshalAlert(hello.Version, handshake.AlertLevelFatal, handshake.AlertHandshakeFailure)
	case ActionGarbage:
		return garbage, nil
	default:
		return nil, nil
	}
}

// Responder decides how the server reacts to a client hello. Implementations must be safe for concurrent use.
type Responder interface {
	Respond(hello *handshake.ClientHello) Response
}

// ResponderFunc adapts a function to the Responder interface
type ResponderFunc func(hello *handshake.ClientHello) Response

func (f ResponderFunc) Respond(hello *handshake.ClientHello) Response {
	return f(hello)
}

// Always answers every hello the same way
func Always(r Response) Responder {
	return ResponderFunc(func(*handshake.ClientHello) Response {
		return r
	})
}

// RejectAll refuses every handshake
func RejectAll() Responder {
	return Always(Reject())
}

// AcceptOnly emulates a server supporting the given ciphers per protocol. It picks the first offered cipher it
// supports, sends the certificate (if any) along and rejects hellos without a supported cipher.
func AcceptOnly(catalog *ciphers.Catalog, certificate []byte, supported map[ciphers.Protocol][]string) Responder {
	enabled := make(map[ciphers.Protocol]map[uint32]struct{}, len(supported))
	for p, names := range supported {
		enabled[p] = make(map[uint32]struct{}, len(names))
		for _, name := range names {
			if s, ok := catalog.Suite(p, name); ok {
				enabled[p][s.Id] = struct{}{}
			}
		}
	}

	return ResponderFunc(func(hello *handshake.ClientHello) Response {
		for _, id := range hello.CipherIds {
			if _, ok := enabled[hello.Protocol][id]; !ok {
				continue
			}
			r := Response{Action: ActionAccept, CipherId: id}
			if certificate != nil {
				r.Certificates = [][]byte{certificate}
			}
			return r
		}
		return Reject()
	})
}

// Cycle hands out the given responses round robin, in the order the hellos arrive
func Cycle(responses ...Response) Responder {
	var next uint64
	return ResponderFunc(func(*handshake.ClientHello) Response {
		if len(responses) == 0 {
			return Timeout()
		}
		i := atomic.AddUint64(&next, 1) - 1
		return responses[i%uint64(len(responses))]
	})
}

// WithCertificateFetch routes hellos offering more than one cipher, which is what a certificate fetch sends, to a
// dedicated responder. Single cipher probes go to the other one.
func WithCertificateFetch(fetch Responder, probes Responder) Responder {
	return ResponderFunc(func(hello *handshake.ClientHello) Response {
		if len(hello.CipherIds) > 1 {
			return fetch.Respond(hello)
		}
		return probes.Respond(hello)
	})
}
