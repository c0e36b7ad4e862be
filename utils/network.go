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
	"net"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// DefaultTlsPort is used when a target does not name a port explicitly
const DefaultTlsPort = 443

var (
	firstCharRegex = regexp.MustCompile(`^[[:alnum:]]`)
	lastCharRegex  = regexp.MustCompile(`[[:alpha:]]$`)
	hostnameRegex  = regexp.MustCompile(`^[[:alnum:]][[:alnum:]\-]{0,61}[[:alnum:]]?|[[:alpha:]]?$`)
)

// IsValidHostname determines whether a given hostname is a plausible one
func IsValidHostname(hostname string) bool {

	// convert to lower case, as cases don't have semantic in domains
	hostname = strings.ToLower(hostname)

	// Return false on empty strings
	if len(hostname) == 0 {
		return false
	}

	// Return false if invalid start character
	if !firstCharRegex.MatchString(hostname) {
		return false
	}

	// Return false if invalid end
	if !lastCharRegex.MatchString(hostname) {
		return false
	}

	// Return false if hostname does not match RFC1035
	if !hostnameRegex.MatchString(hostname) {
		return false
	}

	// Return false if hostname is actually an IPv4/6 address
	if net.ParseIP(hostname) != nil {
		return false
	}

	// Return false on strings with invalid characters
	for _, fChar := range []string{" ", "=", ":", "?", "!", "\\", "/", "\x00", "\\x00"} {
		if strings.Contains(hostname, fChar) {
			return false
		}
	}

	// Return true as valid hostname
	return true
}

// IsValidIp determines whether a given string is a valid IPv4/IPv6 address
func IsValidIp(s string) bool {
	return net.ParseIP(s) != nil
}

// IsValidIpV4 determines whether a given string is a valid IPv4 address
func IsValidIpV4(s string) bool {
	return IsValidIp(s) && strings.Count(s, ":") < 2
}

// IsValidIpV6 determines whether a given string is a valid IPv6 address
func IsValidIpV6(s string) bool {
	return IsValidIp(s) && strings.Count(s, ":") >= 2
}

// IsValidAddress determines whether a given string is a valid IPv4, IPv6 or hostname, but NOT a network range
func IsValidAddress(s string) bool {
	if IsValidIp(s) {
		return true
	} else if IsValidHostname(s) {
		return true
	}
	return false
}

// IsValidPort determines whether a given integer is a usable TCP port
func IsValidPort(port int) bool {
	return port > 0 && port <= 65535
}

// NormalizeHostname converts internationalized domain names into their ASCII (punycode) representation and lower
// cases them. IP addresses are returned unchanged.
func NormalizeHostname(host string) (string, error) {
	host = strings.TrimSpace(host)
	host = strings.TrimSuffix(host, ".")
	if IsValidIp(host) {
		return host, nil
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("invalid hostname '%s': %s", host, err)
	}
	return strings.ToLower(ascii), nil
}

// SplitTarget splits a "host" or "host:port" target into its components. IPv6 addresses must be enclosed in
// brackets if a port is given, a bare IPv6 address is accepted without port. The default port is applied if none
// is given. The host part is normalized and validated.
func SplitTarget(target string, defaultPort int) (string, int, error) {

	target = strings.TrimSpace(target)
	if target == "" {
		return "", 0, fmt.Errorf("empty target")
	}

	host := target
	port := defaultPort

	switch {
	case IsValidIpV6(target):
		// Bare IPv6 address, no port
	case strings.HasPrefix(target, "[") && strings.HasSuffix(target, "]"):
		host = target[1 : len(target)-1]
	default:
		if strings.Contains(target, ":") {
			h, p, err := net.SplitHostPort(target)
			if err != nil {
				return "", 0, fmt.Errorf("invalid target '%s': %s", target, err)
			}
			portNum, errConv := strconv.Atoi(p)
			if errConv != nil || !IsValidPort(portNum) {
				return "", 0, fmt.Errorf("invalid port '%s'", p)
			}
			host = h
			port = portNum
		}
	}

	host, err := NormalizeHostname(host)
	if err != nil {
		return "", 0, err
	}
	if !IsValidAddress(host) {
		return "", 0, fmt.Errorf("invalid host '%s'", host)
	}
	if !IsValidPort(port) {
		return "", 0, fmt.Errorf("invalid port '%d'", port)
	}

	return host, port, nil
}
