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
	"fmt"
	"runtime/debug"
	"strings"
)

// StacktraceIndented returns the current goroutine's stack trace with every line prefixed, so it can be appended
// to a log message or a scan status without breaking the surrounding layout:
//
//	Stacktrace:
//		| goroutine 21 [running]:
//		| github.com/coleton/ssl-scan/ssl.(*Scanner).Run.func1()
//		| 	/src/ssl-scan/ssl/scanner.go:142 +0x6a
func StacktraceIndented(indent string) string {
	trace := strings.Trim(string(debug.Stack()), "\n")
	return fmt.Sprintf(
		"\n%sStacktrace:\n%s\t| %s",
		indent,
		indent,
		strings.ReplaceAll(trace, "\n", "\n"+indent+"\t| "),
	)
}
