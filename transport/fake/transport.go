/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

// Package fake provides an in-process Transport driven by scripted server answers. Connections decode the client
// hello written to them and ask a Responder how to react, no sockets are involved.
package fake

import (
	"context"
	"sync"
	"time"

	"github.com/coleton/ssl-scan/handshake"
	"github.com/coleton/ssl-scan/transport"
)

// Transport implements transport.Transport. It is safe for concurrent use and counts what it was asked to do, so
// tests can verify the traffic a scan produced.
type Transport struct {
	Responder Responder

	// ConnectFailure, if set, is consulted for every connection attempt. A non-nil error is returned by Connect.
	ConnectFailure func(host string, port int) error

	mu           sync.Mutex
	connections  int
	hellos       int
	unrestricted int
	open         int
	maxOpen      int
}

// NewTransport returns a transport answering with the given responder
func NewTransport(responder Responder) *Transport {
	return &Transport{Responder: responder}
}

// Connect opens a fake connection. It fails if the context is already done or ConnectFailure says so.
func (t *Transport) Connect(ctx context.Context, host string, port int, timeout time.Duration) (transport.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, transport.NewConnectError(host, port, transport.ConnectCancelled, err)
	}
	if t.ConnectFailure != nil {
		if err := t.ConnectFailure(host, port); err != nil {
			return nil, err
		}
	}

	t.mu.Lock()
	t.connections++
	t.open++
	if t.open > t.maxOpen {
		t.maxOpen = t.open
	}
	t.mu.Unlock()

	return &connection{
		transport: t,
		closed:    make(chan struct{}),
	}, nil
}

// Connections returns the number of connections opened so far
func (t *Transport) Connections() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connections
}

// Hellos returns the number of client hellos received so far
func (t *Transport) Hellos() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hellos
}

// Unrestricted returns the number of client hellos offering more than one cipher, which is what a certificate
// fetch sends
func (t *Transport) Unrestricted() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unrestricted
}

// Open returns the number of connections not closed yet
func (t *Transport) Open() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.open
}

// MaxOpen returns the highest number of simultaneously open connections
func (t *Transport) MaxOpen() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.maxOpen
}

func (t *Transport) respond(hello *handshake.ClientHello) Response {
	t.mu.Lock()
	t.hellos++
	if len(hello.CipherIds) > 1 {
		t.unrestricted++
	}
	responder := t.Responder
	t.mu.Unlock()

	if responder == nil {
		return Response{Action: ActionTimeout}
	}
	return responder.Respond(hello)
}

func (t *Transport) release() {
	t.mu.Lock()
	t.open--
	t.mu.Unlock()
}
