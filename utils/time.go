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
	"time"
)

// CapTimeout returns the given timeout, shortened to the time remaining until the deadline if the deadline would
// be hit earlier. A zero deadline does not cap anything. The result is never negative.
func CapTimeout(timeout time.Duration, deadline time.Time) time.Duration {
	if deadline.IsZero() {
		return timeout
	}
	remaining := time.Until(deadline)
	if remaining < 0 {
		return 0
	}
	if timeout <= 0 || remaining < timeout {
		return remaining
	}
	return timeout
}
