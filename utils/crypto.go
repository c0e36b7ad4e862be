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
	"bytes"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
)

// HexJoin formats a digest as upper case hex bytes joined by the given separator
func HexJoin(digest []byte, separator string) string {
	hexified := make([][]byte, len(digest))
	for i, b := range digest {
		hexified[i] = []byte(fmt.Sprintf("%02X", b))
	}
	return string(bytes.Join(hexified, []byte(separator)))
}

// HashSha1 returns the sha1 of a byte sequence, e.g. a certificate's DER encoding
func HashSha1(data []byte, separator string) string {
	hash := sha1.Sum(data)
	return HexJoin(hash[:], separator)
}

// HashSha256 returns the sha256 of a byte sequence
func HashSha256(data []byte, separator string) string {
	hash := sha256.Sum256(data)
	return HexJoin(hash[:], separator)
}
