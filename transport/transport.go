/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package transport

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Typed errors returned by connections. Callers classify with errors.Is, raw socket errors never leave the package
// unwrapped.
var (
	ErrTimeout         = errors.New("timeout")
	ErrConnectionReset = errors.New("connection reset")
	ErrClosed          = errors.New("connection closed")
	ErrRefused         = errors.New("connection refused")
	ErrUnresolvable    = errors.New("host unresolvable")
	ErrUnreachable     = errors.New("host unreachable")
)

// Transport opens byte stream connections to a target. Implementations must be safe for concurrent use.
type Transport interface {
	Connect(ctx context.Context, host string, port int, timeout time.Duration) (Connection, error)
}

// Connection is a single byte stream, used by exactly one probe. Close may be called from any goroutine and
// unblocks pending reads, which then fail with ErrClosed.
type Connection interface {
	Read(max int, timeout time.Duration) ([]byte, error)
	Write(data []byte) error
	Close() error
}

type ConnectErrorKind uint8

const (
	ConnectOther       ConnectErrorKind = iota // Other
	ConnectUnresolvable                        // Unresolvable
	ConnectRefused                             // Refused
	ConnectTimeout                             // Timeout
	ConnectUnreachable                         // Unreachable
	ConnectCancelled                           // Cancelled
)

var connectErrorKindNames = map[ConnectErrorKind]string{
	ConnectOther:        "other",
	ConnectUnresolvable: "unresolvable",
	ConnectRefused:      "refused",
	ConnectTimeout:      "timeout",
	ConnectUnreachable:  "unreachable",
	ConnectCancelled:    "cancelled",
}

func (k ConnectErrorKind) String() string {
	return connectErrorKindNames[k]
}

// sentinel returns the typed error matching the kind, nil for ConnectOther
func (k ConnectErrorKind) sentinel() error {
	switch k {
	case ConnectUnresolvable:
		return ErrUnresolvable
	case ConnectRefused:
		return ErrRefused
	case ConnectTimeout:
		return ErrTimeout
	case ConnectUnreachable:
		return ErrUnreachable
	case ConnectCancelled:
		return ErrClosed
	default:
		return nil
	}
}

// ConnectError is returned by Transport.Connect. It matches the sentinel of its kind with errors.Is.
type ConnectError struct {
	Host string
	Port int
	Kind ConnectErrorKind
	Err  error
}

func NewConnectError(host string, port int, kind ConnectErrorKind, err error) *ConnectError {
	return &ConnectError{Host: host, Port: port, Kind: kind, Err: err}
}

func (e *ConnectError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("could not connect to %s:%d: %s", e.Host, e.Port, e.Kind)
	}
	return fmt.Sprintf("could not connect to %s:%d: %s (%s)", e.Host, e.Port, e.Kind, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func (e *ConnectError) Is(target error) bool {
	sentinel := e.Kind.sentinel()
	return sentinel != nil && target == sentinel
}
