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

const (
	// Active states
	StatusRunning = "Running" // Scan is in progress

	// Success states
	StatusCompleted    = "Completed"               // Scan ran through without significant issues
	StatusDeadline     = "Completed With Deadline" // Deadline (scan timeout) reached, pending probes marked failed
	StatusCancelled    = "Cancelled"               // Scan aborted by the caller, pending probes marked failed
	StatusNotReachable = "Not Reachable"           // Host could not be resolved or no connection could be established

	// Error states
	StatusFailed = "Failed" // Scan crashed, see exception flag and status message
)
