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
	"bufio"
	"io"
	"strings"
)

// UniqueStrings gets rid of redundant elements, keeping the order of first occurrence
func UniqueStrings(elements []string) []string {
	encountered := make(map[string]struct{}, len(elements))
	var result []string
	for _, element := range elements {
		if _, ok := encountered[element]; ok {
			continue
		}
		encountered[element] = struct{}{}
		result = append(result, element)
	}
	return result
}

// ReadLines reads newline delimited entries, trims surrounding whitespace and drops empty lines. Lines starting
// with '#' are treated as comments.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
