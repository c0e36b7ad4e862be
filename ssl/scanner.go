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
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/coleton/ssl-scan/ciphers"
	"github.com/coleton/ssl-scan/transport"
	"github.com/coleton/ssl-scan/utils"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

const Label = "Ssl"

const (
	stageConnect     = "connect"
	stageCertificate = "certificate"
)

type ScanResult struct {
	Data      *Result
	Errors    []ScanError // Problems of the scan as a whole. Results are only meaningful if there are none.
	Status    string      // Final scan status (success or graceful error). Should be stored along with the scan results.
	Exception bool        // Indicates if something went wrong badly and results shall be discarded. This should never be
	// true, because all errors should be handled gracefully. Logging an error message should always precede setting
	// this flag! This flag may additionally come along with a message put into the status attribute.
}

type Scanner struct {
	Label        string
	Started      time.Time
	Finished     time.Time
	logger       utils.Logger
	transport    transport.Transport
	library      ciphers.Library
	target       string
	port         int
	options      Options
	workers      int
	probeTimeout time.Duration
	rateLimit    float64   // Probes per second, zero for no limit
	deadline     time.Time // Time when the scanner has to abort
}

// probeItem is one (version, cipher) combination of the work set
type probeItem struct {
	version ciphers.Protocol
	suite   *ciphers.Suite
}

func NewScanner(
	logger utils.Logger, // Can be any logger implementing our minimalistic interface. Wrap your logger to satisfy the interface, if necessary (like utils.TestLogger).
	tr transport.Transport,
	library ciphers.Library, // Cipher capability, its ciphers must be known to the handshake codec
	target string,
	port int,
	options Options,
	workers int, // Maximum number of simultaneous connections to the target
	probeTimeout time.Duration, // Timeout of each network operation of a probe
	rateLimit float64, // Maximum number of probes started per second, zero for no limit
) (*Scanner, error) {

	// Check whether input target is valid
	if !utils.IsValidAddress(target) {
		return nil, fmt.Errorf("invalid target '%s'", target)
	}
	if !utils.IsValidPort(port) {
		return nil, fmt.Errorf("invalid port '%d'", port)
	}
	if tr == nil {
		return nil, fmt.Errorf("transport required")
	}
	if library == nil {
		return nil, fmt.Errorf("cipher library required")
	}
	for _, p := range options.Versions {
		if !ciphers.IsValidProtocol(p) {
			return nil, fmt.Errorf("invalid SSL version '%s'", p)
		}
	}
	if workers < 1 {
		return nil, fmt.Errorf("at least one worker required")
	}
	if probeTimeout <= 0 {
		return nil, fmt.Errorf("invalid probe timeout '%s'", probeTimeout)
	}
	if rateLimit < 0 {
		return nil, fmt.Errorf("invalid rate limit '%f'", rateLimit)
	}

	// Initiate scanner with sanitized input values
	scan := Scanner{
		Label:        Label,
		logger:       logger,
		transport:    tr,
		library:      library,
		target:       strings.TrimSpace(target), // Address to be scanned (might be IPv4, IPv6 or hostname)
		port:         port,
		options:      options,
		workers:      workers,
		probeTimeout: probeTimeout,
		rateLimit:    rateLimit,
	}

	// Return scan struct
	return &scan, nil
}

// Run starts scan execution and returns when all probes finished or the timeout elapsed. Probes still pending at
// that point are recorded as failed.
func (s *Scanner) Run(timeout time.Duration) *ScanResult {
	return s.RunContext(context.Background(), timeout)
}

// RunContext is Run, additionally aborting once ctx is done. Probes pending at that point are recorded as failed.
func (s *Scanner) RunContext(ctx context.Context, timeout time.Duration) (res *ScanResult) {

	// Recover potential panics to gracefully shut down scan
	defer func() {
		if r := recover(); r != nil {

			// Log exception with stacktrace
			s.logger.Errorf(fmt.Sprintf("Unexpected error: %s", r))

			// Build error status from error message and formatted stacktrace
			errMsg := fmt.Sprintf("%s%s", r, utils.StacktraceIndented("\t"))

			// Return result set indicating exception
			res = &ScanResult{
				nil,
				nil,
				errMsg,
				true,
			}
		}
	}()

	// Set scan started flag and calculate deadline
	s.Started = time.Now()
	s.deadline = time.Now().Add(timeout)
	s.logger.Infof("Started  scan of %s:%d.", s.target, s.port)

	// Execute scan logic
	res = s.execute(ctx)

	// Log scan completion message
	s.Finished = time.Now()
	duration := s.Finished.Sub(s.Started).Minutes()
	s.logger.Infof("Finished scan of %s:%d in %fm.", s.target, s.port, duration)

	// Return result set
	return res
}

// workSet returns the (version, cipher) combinations to probe. A cipher of the library the codec can not put on
// the wire is a programming error.
func (s *Scanner) workSet() []probeItem {
	if s.options.OnlyCert {
		return nil
	}
	var work []probeItem
	for _, p := range s.options.versions() {
		for _, name := range s.library.Ciphers(p) {
			suite, ok := ciphers.Default().Suite(p, name)
			if !ok {
				panic(fmt.Sprintf("cipher '%s' of the library can not be offered in %s", name, p))
			}
			work = append(work, probeItem{version: p, suite: suite})
		}
	}
	return work
}

func (s *Scanner) execute(parent context.Context) *ScanResult {

	// Prepare the aggregate and the work set before anything is sent
	result := NewResult(s.logger, s.library)
	work := s.workSet()

	ctx, cancel := context.WithDeadline(parent, s.deadline)
	defer cancel()

	collector := &errorCollector{}
	var wg sync.WaitGroup

	// Fetch the certificate alongside the probes
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer collector.catch()
		if errCert := s.fetchCertificate(ctx, result); errCert != nil {
			s.logger.Debugf("Could not retrieve certificate: %s", errCert)
			if errors.Is(errCert, transport.ErrUnresolvable) {
				collector.addUnreachable(ScanError{Stage: stageConnect, Err: errCert})
			} else {
				collector.add(ScanError{Stage: stageCertificate, Err: errCert})
			}
		}
	}()

	// Dispatch probes, bounded by the number of workers and optionally paced
	s.logger.Debugf("Probing %d ciphers with %d workers.", len(work), s.workers)
	sem := semaphore.NewWeighted(int64(s.workers))
	var limiter *rate.Limiter
	if s.rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.rateLimit), 1)
	}

	dispatched := 0
	for _, item := range work {
		if ctx.Err() != nil {
			break
		}
		if limiter != nil {
			if errWait := limiter.Wait(ctx); errWait != nil {
				break
			}
		}
		if errAcquire := sem.Acquire(ctx, 1); errAcquire != nil {
			break
		}
		dispatched++

		wg.Add(1)
		go func(item probeItem) {
			defer wg.Done()
			defer sem.Release(1)
			defer collector.catch()
			outcome := Attempt(ctx, s.transport, s.target, s.port, item.version, item.suite.Name, s.probeTimeout)
			s.record(result, collector, item, outcome)
		}(item)
	}

	// Probes not dispatched before the deadline or abort are failed without being attempted
	for _, item := range work[dispatched:] {
		s.record(result, collector, item, ProbeOutcome{
			Status:    STATUS_Failed,
			KeyLength: item.suite.Bits,
			Err:       fmt.Errorf("%w: scan ended before the probe started", transport.ErrTimeout),
		})
	}

	wg.Wait()
	collector.repanic()

	status := utils.StatusCompleted
	if ctx.Err() != nil {
		status = utils.StatusDeadline
		if errors.Is(parent.Err(), context.Canceled) {
			status = utils.StatusCancelled
		}
		s.logger.Debugf("Scan ended early (%s), %d of %d probes dispatched.", status, dispatched, len(work))
	}
	if collector.unreachable {
		status = utils.StatusNotReachable
	}

	return &ScanResult{
		Data:   result,
		Errors: collector.errors,
		Status: status,
	}
}

// record inserts a probe outcome. Connect errors describing the host instead of the probe are collected once.
func (s *Scanner) record(result *Result, collector *errorCollector, item probeItem, outcome ProbeOutcome) {
	if outcome.Err != nil && errors.Is(outcome.Err, transport.ErrUnresolvable) {
		collector.addUnreachable(ScanError{Stage: stageConnect, Err: outcome.Err})
		return
	}

	switch outcome.Status {
	case STATUS_Accepted:
		s.logger.Debugf("%s %s accepted.", item.version, item.suite.Name)
	case STATUS_Rejected:
		s.logger.Debugf("%s %s rejected: %s", item.version, item.suite.Name, outcome.Reason)
	case STATUS_Failed:
		s.logger.Debugf("%s %s failed: %s", item.version, item.suite.Name, outcome.Err)
		if s.options.NoFailed {
			return
		}
	}

	if errAdd := result.AddCipher(item.version, item.suite.Name, outcome.KeyLength, outcome.Status); errAdd != nil {
		panic(fmt.Sprintf("could not add probe outcome: %s", errAdd))
	}
}

// fetchCertificate retrieves the leaf certificate with one handshake offering all ciphers of the highest requested
// version
func (s *Scanner) fetchCertificate(ctx context.Context, result *Result) error {
	versions := s.options.versions()
	version := versions[len(versions)-1]

	var suites []*ciphers.Suite
	for _, name := range s.library.Ciphers(version) {
		if suite, ok := ciphers.Default().Suite(version, name); ok {
			suites = append(suites, suite)
		}
	}

	der, err := retrieveCertificate(ctx, s.transport, s.target, s.port, version, suites, s.probeTimeout)
	if err != nil {
		return err
	}
	return result.SetCertificateDER(der)
}

// errorCollector gathers scan errors and panics from the scan's goroutines
type errorCollector struct {
	mu          sync.Mutex
	errors      []ScanError
	unreachable bool
	crash       string
}

func (c *errorCollector) add(err ScanError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, err)
}

// addUnreachable adds the error, unless the host was already reported unreachable
func (c *errorCollector) addUnreachable(err ScanError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unreachable {
		return
	}
	c.unreachable = true
	c.errors = append(c.errors, err)
}

// catch keeps the first panic of a goroutine, to be raised again by the scan goroutine
func (c *errorCollector) catch() {
	if r := recover(); r != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.crash == "" {
			c.crash = fmt.Sprintf("%s%s", r, utils.StacktraceIndented("\t"))
		}
	}
}

func (c *errorCollector) repanic() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.crash != "" {
		panic(c.crash)
	}
}
