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
	"io"
	"net"
	"os"
	"strconv"
	"sync"
	"syscall"
	"time"
)

// TcpTransport connects via plain TCP sockets
type TcpTransport struct {
	resolver *net.Resolver
}

func NewTcpTransport() *TcpTransport {
	return &TcpTransport{resolver: net.DefaultResolver}
}

// Connect dials the target. The timeout bounds the connection establishment and is used as write timeout later on.
func (t *TcpTransport) Connect(ctx context.Context, host string, port int, timeout time.Duration) (Connection, error) {
	dialer := net.Dialer{
		Timeout:  timeout,
		Resolver: t.resolver,
	}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, NewConnectError(host, port, classifyConnectError(ctx, err), err)
	}
	return &tcpConnection{
		conn:         conn,
		writeTimeout: timeout,
		closed:       make(chan struct{}),
	}, nil
}

// classifyConnectError maps dial errors to their kind
func classifyConnectError(ctx context.Context, err error) ConnectErrorKind {
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &dnsErr) && !dnsErr.IsTimeout:
		return ConnectUnresolvable
	case errors.Is(err, syscall.ECONNREFUSED):
		return ConnectRefused
	case errors.Is(err, syscall.EHOSTUNREACH), errors.Is(err, syscall.ENETUNREACH):
		return ConnectUnreachable
	case errors.Is(err, context.Canceled) || (ctx != nil && errors.Is(ctx.Err(), context.Canceled)):
		return ConnectCancelled
	case isTimeout(err):
		return ConnectTimeout
	default:
		return ConnectOther
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// classifyIoError maps read and write errors to the typed errors of the package
func classifyIoError(err error) error {
	switch {
	case errors.Is(err, net.ErrClosed):
		return fmt.Errorf("%w: %s", ErrClosed, err)
	case isTimeout(err):
		return fmt.Errorf("%w: %s", ErrTimeout, err)
	default:
		// EOF, ECONNRESET, EPIPE and anything else ending the stream
		return fmt.Errorf("%w: %s", ErrConnectionReset, err)
	}
}

type tcpConnection struct {
	conn         net.Conn
	writeTimeout time.Duration
	closeOnce    sync.Once
	closed       chan struct{}
}

func (c *tcpConnection) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

// Read returns between one and max bytes. A zero timeout waits indefinitely.
func (c *tcpConnection) Read(max int, timeout time.Duration) ([]byte, error) {
	if c.isClosed() {
		return nil, ErrClosed
	}
	if max <= 0 {
		return nil, fmt.Errorf("invalid read size %d", max)
	}

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return nil, classifyIoError(err)
	}

	buf := make([]byte, max)
	n, err := c.conn.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	if c.isClosed() {
		return nil, ErrClosed
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return nil, classifyIoError(err)
}

func (c *tcpConnection) Write(data []byte) error {
	if c.isClosed() {
		return ErrClosed
	}

	var deadline time.Time
	if c.writeTimeout > 0 {
		deadline = time.Now().Add(c.writeTimeout)
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return classifyIoError(err)
	}

	if _, err := c.conn.Write(data); err != nil {
		if c.isClosed() {
			return ErrClosed
		}
		return classifyIoError(err)
	}
	return nil
}

// Close is idempotent
func (c *tcpConnection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closed)
		err = c.conn.Close()
	})
	return err
}
