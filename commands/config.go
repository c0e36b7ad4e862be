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
	"fmt"
	"time"
)

// Config holds the tuning knobs of a host scan. The CLI fills it from flags, environment and config file.
type Config struct {
	Workers      int           `mapstructure:"workers" yaml:"workers"`           // Simultaneous connections per host
	ProbeTimeout time.Duration `mapstructure:"timeout" yaml:"timeout"`           // Timeout of each network operation
	ScanTimeout  time.Duration `mapstructure:"scan_timeout" yaml:"scan_timeout"` // Time budget of a whole host scan
	RateLimit    float64       `mapstructure:"rate" yaml:"rate"`                 // Probes per second, zero for no limit
}

// DefaultConfig returns the settings used if nothing else is configured
func DefaultConfig() Config {
	return Config{
		Workers:      16,
		ProbeTimeout: 5 * time.Second,
		ScanTimeout:  10 * time.Minute,
		RateLimit:    0,
	}
}

// Validate checks that the values can drive a scan
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("probe timeout must be positive, got %s", c.ProbeTimeout)
	}
	if c.ScanTimeout <= 0 {
		return fmt.Errorf("scan timeout must be positive, got %s", c.ScanTimeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative, got %f", c.RateLimit)
	}
	return nil
}
