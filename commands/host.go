/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package commands

import (
	"context"
	"fmt"
	"net"

	"github.com/coleton/ssl-scan/ciphers"
	"github.com/coleton/ssl-scan/ssl"
	"github.com/coleton/ssl-scan/transport"
	"github.com/coleton/ssl-scan/utils"
	"github.com/google/uuid"
)

// Resolver looks up the addresses of a hostname. *net.Resolver satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Host scans a single host[:port] target and keeps what the scan produced
type Host struct {
	Id      string // Scan id, also used to tag log messages
	Target  string // Target as given
	Address string // Normalized host, IP or ASCII hostname
	Port    int

	logger    utils.Logger
	options   ssl.Options
	config    Config
	transport transport.Transport
	resolver  Resolver
	library   ciphers.Library

	resolved []string
	errors   []string
	status   string
	result   *ssl.Result
}

// NewHost validates the target and prepares the scan. A nil transport selects TCP, a nil resolver the system's.
func NewHost(
	logger utils.Logger,
	target string,
	options ssl.Options,
	config Config,
	tr transport.Transport,
	resolver Resolver,
) (*Host, error) {

	// Check the target and apply the default port
	address, port, errTarget := utils.SplitTarget(target, utils.DefaultTlsPort)
	if errTarget != nil {
		return nil, fmt.Errorf("invalid host '%s': %s", target, errTarget)
	}
	if errConfig := config.Validate(); errConfig != nil {
		return nil, errConfig
	}
	for _, p := range options.Versions {
		if !ciphers.IsValidProtocol(p) {
			return nil, fmt.Errorf("invalid SSL version '%s'", p)
		}
	}

	if tr == nil {
		tr = transport.NewTcpTransport()
	}
	if resolver == nil {
		resolver = net.DefaultResolver
	}

	id := uuid.NewString()
	return &Host{
		Id:        id,
		Target:    target,
		Address:   address,
		Port:      port,
		logger:    utils.NewTaggedLogger(logger, fmt.Sprintf("%s %s:%d", id[:8], address, port)),
		options:   options,
		config:    config,
		transport: tr,
		resolver:  resolver,
		library:   ciphers.Default(),
	}, nil
}

// Execute resolves the host and runs the scan. An error is returned if the host could not be scanned at all,
// problems of a completed scan are available via Errors.
func (h *Host) Execute(ctx context.Context) error {
	h.status = utils.StatusRunning

	// Resolve hostnames first, there is no point in sending probes to a name that does not exist
	if !utils.IsValidIp(h.Address) {
		lookupCtx, cancel := context.WithTimeout(ctx, h.config.ProbeTimeout)
		addresses, errLookup := h.resolver.LookupHost(lookupCtx, h.Address)
		cancel()
		if errLookup != nil {
			h.status = utils.StatusNotReachable
			errResolve := fmt.Errorf("could not resolve '%s': %s", h.Address, errLookup)
			h.errors = append(h.errors, errResolve.Error())
			h.logger.Infof("%s", errResolve)
			return errResolve
		}
		h.resolved = addresses
		h.logger.Debugf("Resolved to %v.", addresses)
	}

	// Budget left by the caller's context caps the scan timeout
	timeout := h.config.ScanTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = utils.CapTimeout(timeout, deadline)
		if timeout <= 0 {
			h.status = utils.StatusDeadline
			return fmt.Errorf("no time left to scan '%s:%d'", h.Address, h.Port)
		}
	}

	scanner, errScanner := ssl.NewScanner(
		h.logger,
		h.transport,
		h.library,
		h.Address,
		h.Port,
		h.options,
		h.config.Workers,
		h.config.ProbeTimeout,
		h.config.RateLimit,
	)
	if errScanner != nil {
		h.status = utils.StatusFailed
		return errScanner
	}

	res := scanner.RunContext(ctx, timeout)
	h.status = res.Status
	if res.Exception {
		h.errors = append(h.errors, "scan crashed, see log for details")
		return fmt.Errorf("scan of '%s:%d' crashed: %s", h.Address, h.Port, res.Status)
	}
	for _, errScan := range res.Errors {
		h.errors = append(h.errors, errScan.Error())
	}
	h.result = res.Data

	// Partial results of an aborted scan are kept, the caller still learns it was aborted
	if res.Status == utils.StatusCancelled {
		return fmt.Errorf("scan of '%s:%d' aborted: %w", h.Address, h.Port, ctx.Err())
	}
	return nil
}

// Errors returns the problems encountered, in the order they were reported
func (h *Host) Errors() []string {
	return h.errors
}

// Results returns the scan result, nil if the host was not scanned
func (h *Host) Results() *ssl.Result {
	return h.result
}

// Status returns the final scan status, empty before Execute
func (h *Host) Status() string {
	return h.status
}

// Resolved returns the addresses the hostname resolved to, nil for IP targets
func (h *Host) Resolved() []string {
	return h.resolved
}

func (h *Host) String() string {
	if utils.IsValidIpV6(h.Address) {
		return fmt.Sprintf("[%s]:%d", h.Address, h.Port)
	}
	return fmt.Sprintf("%s:%d", h.Address, h.Port)
}
