/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package _test

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// Settings necessary for some unit tests
var settings *Settings
var settingsErr error // Indicates if settings initialization failed
var once sync.Once

// Settings holds the unit test settings of tests talking to real servers. They are taken from the environment,
// tests depending on them are skipped if they are missing.
type Settings struct {
	LiveTarget   string        // host[:port] of a reachable TLS server, SSLSCAN_TEST_TARGET
	ProbeTimeout time.Duration // Timeout of each network operation, SSLSCAN_TEST_TIMEOUT
	Workers      int           // Simultaneous connections to the live target, SSLSCAN_TEST_WORKERS
}

func GetSettings() (*Settings, error) {

	// Initialize unit test settings if not done yet
	once.Do(func() {
		settings = &Settings{
			LiveTarget:   os.Getenv("SSLSCAN_TEST_TARGET"),
			ProbeTimeout: 5 * time.Second,
			Workers:      4,
		}

		// Check if settings are valid
		if settings.LiveTarget == "" {
			settingsErr = fmt.Errorf("SSLSCAN_TEST_TARGET not set")
			return
		}
		if raw := os.Getenv("SSLSCAN_TEST_TIMEOUT"); raw != "" {
			timeout, err := time.ParseDuration(raw)
			if err != nil || timeout <= 0 {
				settingsErr = fmt.Errorf("invalid SSLSCAN_TEST_TIMEOUT '%s'", raw)
				return
			}
			settings.ProbeTimeout = timeout
		}
		if raw := os.Getenv("SSLSCAN_TEST_WORKERS"); raw != "" {
			workers, err := strconv.Atoi(raw)
			if err != nil || workers < 1 {
				settingsErr = fmt.Errorf("invalid SSLSCAN_TEST_WORKERS '%s'", raw)
				return
			}
			settings.Workers = workers
		}
	})

	// Return settings
	return settings, settingsErr
}
