/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package utils

import (
	"testing"
	"time"
)

func TestCapTimeout(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		deadline time.Time
		min      time.Duration
		max      time.Duration
	}{
		{"no-deadline", 5 * time.Second, time.Time{}, 5 * time.Second, 5 * time.Second},
		{"deadline-later", 5 * time.Second, time.Now().Add(time.Hour), 5 * time.Second, 5 * time.Second},
		{"deadline-earlier", time.Hour, time.Now().Add(10 * time.Second), 9 * time.Second, 10 * time.Second},
		{"deadline-passed", time.Hour, time.Now().Add(-time.Second), 0, 0},
		{"no-timeout", 0, time.Now().Add(10 * time.Second), 9 * time.Second, 10 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CapTimeout(tt.timeout, tt.deadline)
			if got < tt.min || got > tt.max {
				t.Errorf("CapTimeout() = '%v', want between '%v' and '%v'", got, tt.min, tt.max)
			}
		})
	}
}
