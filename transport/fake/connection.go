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
	"fmt"
	"sync"
	"time"

	"github.com/coleton/ssl-scan/handshake"
	"github.com/coleton/ssl-scan/transport"
)

// connection is a scripted server side. The answer is prepared as soon as a complete client hello was written.
type connection struct {
	transport *Transport

	mu       sync.Mutex
	received []byte
	answered bool
	action   Action
	pending  []byte
	readyAt  time.Time

	closeOnce sync.Once
	closed    chan struct{}
}

func (c *connection) Write(data []byte) error {
	select {
	case <-c.closed:
		return transport.ErrClosed
	default:
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.answered {
		return nil
	}
	c.received = append(c.received, data...)
	hello, err := handshake.ParseClientHello(c.received)
	if err != nil {
		// Incomplete or not a hello at all, the server keeps waiting
		return nil
	}

	response := c.transport.respond(hello)
	pending, err := response.encode(hello)
	if err != nil {
		return fmt.Errorf("could not encode scripted response: %w", err)
	}
	c.answered = true
	c.action = response.Action
	c.pending = pending
	c.readyAt = time.Now().Add(response.Delay)
	return nil
}

// Read returns the prepared answer. Without data the call blocks until the timeout elapses or the connection gets
// closed, just like a silent server.
func (c *connection) Read(max int, timeout time.Duration) ([]byte, error) {
	if max <= 0 {
		return nil, fmt.Errorf("invalid read size %d", max)
	}

	c.mu.Lock()
	action := c.action
	wait := time.Until(c.readyAt)
	silent := !c.answered || action == ActionTimeout || (action != ActionReset && len(c.pending) == 0)
	c.mu.Unlock()

	var timer <-chan time.Time
	switch {
	case silent:
		if timeout > 0 {
			timer = time.After(timeout)
		}
		select {
		case <-c.closed:
			return nil, transport.ErrClosed
		case <-timer:
			return nil, fmt.Errorf("%w: no data within %s", transport.ErrTimeout, timeout)
		}
	case wait > 0:
		if timeout > 0 && timeout < wait {
			select {
			case <-c.closed:
				return nil, transport.ErrClosed
			case <-time.After(timeout):
				return nil, fmt.Errorf("%w: no data within %s", transport.ErrTimeout, timeout)
			}
		}
		select {
		case <-c.closed:
			return nil, transport.ErrClosed
		case <-time.After(wait):
		}
	default:
		select {
		case <-c.closed:
			return nil, transport.ErrClosed
		default:
		}
	}

	if action == ActionReset {
		return nil, fmt.Errorf("%w: by peer", transport.ErrConnectionReset)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.pending)
	if n > max {
		n = max
	}
	out := append([]byte(nil), c.pending[:n]...)
	c.pending = c.pending[n:]
	return out, nil
}

func (c *connection) Close() error {
	c.closeOnce.Do(func() {
		close(c.closed)
		c.transport.release()
	})
	return nil
}
