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
	"io"

	"github.com/coleton/ssl-scan/utils"
)

// ReadTargets reads a newline delimited host list. Blank lines are skipped. Going beyond the plain host lists of
// the Ruby ssl_scan gem, '#' comment lines are skipped as well and repeated hosts are only returned once. Entries
// are returned as written, they get validated by NewHost.
func ReadTargets(r io.Reader) ([]string, error) {
	lines, err := utils.ReadLines(r)
	if err != nil {
		return nil, err
	}
	return utils.UniqueStrings(lines), nil
}
