/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package handshake

import (
	"fmt"
	"time"

	"github.com/coleton/ssl-scan/ciphers"
	"github.com/coleton/ssl-scan/transport"
	"golang.org/x/crypto/cryptobyte"
)

// Reader is the part of a transport connection needed to receive the server's answer
type Reader interface {
	Read(max int, timeout time.Duration) ([]byte, error)
}

type ResponseKind uint8

const (
	ResponseServerHello ResponseKind = iota + 1 // server_hello
	ResponseAlert                               // alert
	ResponseV2Error                             // sslv2_error
)

func (k ResponseKind) String() string {
	switch k {
	case ResponseServerHello:
		return "server_hello"
	case ResponseAlert:
		return "alert"
	case ResponseV2Error:
		return "sslv2_error"
	default:
		return "unknown"
	}
}

// ServerResponse is what the server answered to a client hello
type ServerResponse struct {
	Kind             ResponseKind
	Version          uint16   // Version chosen by the server
	CipherId         uint32   // Suite chosen by the server (SSLv3/TLSv1)
	CipherIds        []uint32 // Cipher kinds shared with the client (SSLv2)
	Certificates     [][]byte // DER encoded certificates, leaf first. Only filled if requested
	AlertLevel       uint8
	AlertDescription uint8
	V2ErrorCode      uint16
}

// Rejected is true if the server refused the handshake
func (r *ServerResponse) Rejected() bool {
	return r.Kind == ResponseAlert || r.Kind == ResponseV2Error
}

// Negotiated reports whether the server agreed on exactly the given protocol and cipher
func (r *ServerResponse) Negotiated(p ciphers.Protocol, cipherId uint32) bool {
	if r.Kind != ResponseServerHello || ciphers.ProtocolFromWire(r.Version) != p {
		return false
	}
	if p == ciphers.Sslv2 {
		for _, id := range r.CipherIds {
			if id == cipherId {
				return true
			}
		}
		return false
	}
	return r.CipherId == cipherId
}

// Reason describes a rejection in human readable form
func (r *ServerResponse) Reason() string {
	switch r.Kind {
	case ResponseAlert:
		return fmt.Sprintf("alert %s", AlertName(r.AlertDescription))
	case ResponseV2Error:
		return fmt.Sprintf("SSLv2 error 0x%04X", r.V2ErrorCode)
	default:
		return r.Kind.String()
	}
}

// responseReader buffers bytes read from the connection. All reads share one deadline.
type responseReader struct {
	conn     Reader
	buf      []byte
	total    int
	deadline time.Time
}

// fill makes sure at least n bytes are buffered
func (r *responseReader) fill(n int) error {
	for len(r.buf) < n {
		remaining := time.Until(r.deadline)
		if remaining <= 0 {
			return fmt.Errorf("%w: no complete response within deadline", transport.ErrTimeout)
		}
		data, err := r.conn.Read(4096, remaining)
		if err != nil {
			return err
		}
		r.total += len(data)
		if r.total > maxResponseLength {
			return fmt.Errorf("%w: response exceeds %d bytes", ErrMalformed, maxResponseLength)
		}
		r.buf = append(r.buf, data...)
	}
	return nil
}

// next consumes n buffered bytes
func (r *responseReader) next(n int) ([]byte, error) {
	if err := r.fill(n); err != nil {
		return nil, err
	}
	out := r.buf[:n]
	r.buf = r.buf[n:]
	return out, nil
}

// ReadServerResponse reads the server's answer to a hello of the given protocol. With wantCertificate the flight
// is followed until the certificate arrived, otherwise reading stops after the server's choice is known. Transport
// errors are returned as they are, undecodable data yields ErrMalformed.
func ReadServerResponse(conn Reader, p ciphers.Protocol, timeout time.Duration, wantCertificate bool) (*ServerResponse, error) {
	r := &responseReader{
		conn:     conn,
		deadline: time.Now().Add(timeout),
	}

	if err := r.fill(1); err != nil {
		return nil, err
	}
	first := r.buf[0]

	switch {
	case first >= recordTypeChangeCipherSpec && first <= recordTypeApplicationData:
		return readTlsResponse(r, wantCertificate)
	case first&0x80 != 0 || p == ciphers.Sslv2:
		return readV2Response(r)
	default:
		return nil, fmt.Errorf("%w: unexpected record type %d", ErrMalformed, first)
	}
}

func readTlsResponse(r *responseReader, wantCertificate bool) (*ServerResponse, error) {
	var response *ServerResponse
	var handshakeBuf []byte

	for {
		header, err := r.next(5)
		if err != nil {
			return nil, err
		}
		contentType := header[0]
		version := uint16(header[1])<<8 | uint16(header[2])
		length := int(header[3])<<8 | int(header[4])
		if length == 0 || length > maxRecordLength {
			return nil, fmt.Errorf("%w: invalid record length %d", ErrMalformed, length)
		}
		payload, err := r.next(length)
		if err != nil {
			return nil, err
		}

		switch contentType {
		case recordTypeAlert:
			if len(payload) < 2 {
				return nil, fmt.Errorf("%w: short alert", ErrMalformed)
			}
			if response != nil {
				// An alert after the server's choice, e.g. a server refusing to continue without client certificate
				if wantCertificate {
					return nil, fmt.Errorf("%w: alert %s before certificate", ErrMalformed, AlertName(payload[1]))
				}
				return response, nil
			}
			return &ServerResponse{
				Kind:             ResponseAlert,
				Version:          version,
				AlertLevel:       payload[0],
				AlertDescription: payload[1],
			}, nil
		case recordTypeHandshake:
			handshakeBuf = append(handshakeBuf, payload...)
		default:
			return nil, fmt.Errorf("%w: unexpected record type %d", ErrMalformed, contentType)
		}

		// Process all complete handshake messages, a message may span several records
		for len(handshakeBuf) >= 4 {
			msgLength := int(handshakeBuf[1])<<16 | int(handshakeBuf[2])<<8 | int(handshakeBuf[3])
			if len(handshakeBuf) < 4+msgLength {
				break
			}
			msgType := handshakeBuf[0]
			body := cryptobyte.String(handshakeBuf[4 : 4+msgLength])
			handshakeBuf = handshakeBuf[4+msgLength:]

			switch msgType {
			case typeServerHello:
				response, err = parseServerHello(body)
				if err != nil {
					return nil, err
				}
				if !wantCertificate {
					return response, nil
				}
			case typeCertificate:
				if response == nil {
					return nil, fmt.Errorf("%w: certificate before server hello", ErrMalformed)
				}
				response.Certificates, err = parseCertificates(body)
				if err != nil {
					return nil, err
				}
				return response, nil
			case typeServerHelloDone:
				if response == nil {
					return nil, fmt.Errorf("%w: server hello done before server hello", ErrMalformed)
				}
				return response, nil
			default:
				if response == nil {
					return nil, fmt.Errorf("%w: unexpected handshake message %d", ErrMalformed, msgType)
				}
			}
		}
	}
}

func parseServerHello(body cryptobyte.String) (*ServerResponse, error) {
	response := &ServerResponse{Kind: ResponseServerHello}
	var random []byte
	var session cryptobyte.String
	var cipherId uint16
	var compression uint8
	if !body.ReadUint16(&response.Version) ||
		!body.ReadBytes(&random, randomSize) ||
		!body.ReadUint8LengthPrefixed(&session) ||
		!body.ReadUint16(&cipherId) ||
		!body.ReadUint8(&compression) {
		return nil, fmt.Errorf("%w: truncated server hello", ErrMalformed)
	}
	response.CipherId = uint32(cipherId)
	return response, nil
}

func parseCertificates(body cryptobyte.String) ([][]byte, error) {
	var list cryptobyte.String
	if !body.ReadUint24LengthPrefixed(&list) {
		return nil, fmt.Errorf("%w: invalid certificate message", ErrMalformed)
	}
	var certificates [][]byte
	for !list.Empty() {
		var der cryptobyte.String
		if !list.ReadUint24LengthPrefixed(&der) {
			return nil, fmt.Errorf("%w: invalid certificate entry", ErrMalformed)
		}
		certificates = append(certificates, append([]byte(nil), der...))
	}
	return certificates, nil
}

func readV2Response(r *responseReader) (*ServerResponse, error) {
	header, err := r.next(2)
	if err != nil {
		return nil, err
	}

	var length, padding int
	if header[0]&0x80 != 0 {
		length = int(header[0]&0x7f)<<8 | int(header[1])
	} else {
		length = int(header[0]&0x3f)<<8 | int(header[1])
		pad, errPad := r.next(1)
		if errPad != nil {
			return nil, errPad
		}
		padding = int(pad[0])
	}
	if length == 0 || padding > length {
		return nil, fmt.Errorf("%w: invalid SSLv2 record length %d", ErrMalformed, length)
	}
	record, err := r.next(length)
	if err != nil {
		return nil, err
	}
	msg := cryptobyte.String(record[:length-padding])

	var msgType uint8
	if !msg.ReadUint8(&msgType) {
		return nil, fmt.Errorf("%w: empty SSLv2 message", ErrMalformed)
	}

	switch msgType {
	case v2TypeError:
		var code uint16
		if !msg.ReadUint16(&code) {
			return nil, fmt.Errorf("%w: truncated SSLv2 error", ErrMalformed)
		}
		return &ServerResponse{Kind: ResponseV2Error, Version: ciphers.WireSslv2, V2ErrorCode: code}, nil
	case v2TypeServerHello:
		var sessionHit, certType uint8
		var version, certLength, specsLength, connIdLength uint16
		if !msg.ReadUint8(&sessionHit) ||
			!msg.ReadUint8(&certType) ||
			!msg.ReadUint16(&version) ||
			!msg.ReadUint16(&certLength) ||
			!msg.ReadUint16(&specsLength) ||
			!msg.ReadUint16(&connIdLength) ||
			specsLength%3 != 0 {
			return nil, fmt.Errorf("%w: invalid SSLv2 server hello", ErrMalformed)
		}
		var certificate, specBytes []byte
		if !msg.ReadBytes(&certificate, int(certLength)) || !msg.ReadBytes(&specBytes, int(specsLength)) {
			return nil, fmt.Errorf("%w: truncated SSLv2 server hello", ErrMalformed)
		}
		response := &ServerResponse{Kind: ResponseServerHello, Version: version}
		if len(certificate) > 0 {
			response.Certificates = [][]byte{append([]byte(nil), certificate...)}
		}
		specs := cryptobyte.String(specBytes)
		for !specs.Empty() {
			var id uint32
			specs.ReadUint24(&id)
			response.CipherIds = append(response.CipherIds, id)
		}
		return response, nil
	default:
		return nil, fmt.Errorf("%w: unexpected SSLv2 message type %d", ErrMalformed, msgType)
	}
}
