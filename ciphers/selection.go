/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package ciphers

import (
	"sort"
	"strings"
)

type selectionOp uint8

const (
	opAdd   selectionOp = iota // Append inactive matches to the end of the list
	opOrder                    // '+' Move active matches to the end of the list
	opDel                      // '-' Deactivate matches, they may be added again later
	opKill                     // '!' Remove matches permanently
)

type matcher func(*Suite) bool

func not(m matcher) matcher {
	return func(s *Suite) bool { return !m(s) }
}

func kx(k ...KeyExchange) matcher {
	return func(s *Suite) bool {
		for _, candidate := range k {
			if s.Kx == candidate {
				return true
			}
		}
		return false
	}
}

func au(a Authentication) matcher { return func(s *Suite) bool { return s.Au == a } }
func enc(e Encryption) matcher { return func(s *Suite) bool { return s.Enc == e } }
func mac(m Mac) matcher { return func(s *Suite) bool { return s.Mac == m } }
func strength(st Strength) matcher { return func(s *Suite) bool { return s.Strength == st } }
func protocol(p Protocol) matcher { return func(s *Suite) bool { return s.OfferedIn(p) } }
func algBits(e Encryption, bits int) matcher {
	return func(s *Suite) bool { return s.Enc == e && s.AlgBits == bits }
}

func and(matchers ...matcher) matcher {
	return func(s *Suite) bool {
		for _, m := range matchers {
			if !m(s) {
				return false
			}
		}
		return true
	}
}

// aliases maps OpenSSL's cipher list keywords to the suites they stand for
var aliases = map[string]matcher{
	"ALL":             not(enc(ENC_NONE)),
	"COMPLEMENTOFALL": enc(ENC_NONE),
	"DEFAULT":         and(not(enc(ENC_NONE)), not(au(AUTH_NONE))),

	"HIGH":     strength(STRENGTH_HIGH),
	"MEDIUM":   strength(STRENGTH_MEDIUM),
	"LOW":      strength(STRENGTH_LOW),
	"EXP":      strength(STRENGTH_EXPORT),
	"EXPORT":   strength(STRENGTH_EXPORT),
	"EXPORT40": and(strength(STRENGTH_EXPORT), func(s *Suite) bool { return s.Bits == 40 }),
	"NULL":     enc(ENC_NONE),
	"eNULL":    enc(ENC_NONE),
	"aNULL":    au(AUTH_NONE),

	"kRSA": kx(KEX_RSA),
	"aRSA": au(AUTH_RSA),
	"RSA":  and(kx(KEX_RSA), au(AUTH_RSA)),

	"kEDH":  kx(KEX_DHE),
	"kDHE":  kx(KEX_DHE),
	"EDH":   and(kx(KEX_DHE), not(au(AUTH_NONE))),
	"DHE":   and(kx(KEX_DHE), not(au(AUTH_NONE))),
	"ADH":   and(kx(KEX_DHE), au(AUTH_NONE)),
	"DH":    kx(KEX_DHE, KEX_DH_RSA, KEX_DH_DSS),
	"kDHr":  kx(KEX_DH_RSA),
	"kDHd":  kx(KEX_DH_DSS),
	"aDSS":  au(AUTH_DSS),
	"DSS":   au(AUTH_DSS),
	"aECDH": au(AUTH_ECDH),

	"kEECDH": kx(KEX_ECDHE),
	"kECDHE": kx(KEX_ECDHE),
	"EECDH":  and(kx(KEX_ECDHE), not(au(AUTH_NONE))),
	"ECDHE":  and(kx(KEX_ECDHE), not(au(AUTH_NONE))),
	"AECDH":  and(kx(KEX_ECDHE), au(AUTH_NONE)),
	"kECDH":  kx(KEX_ECDH_RSA, KEX_ECDH_ECDSA),
	"ECDH":   kx(KEX_ECDH_RSA, KEX_ECDH_ECDSA, KEX_ECDHE),
	"aECDSA": au(AUTH_ECDSA),
	"ECDSA":  au(AUTH_ECDSA),

	"kPSK": kx(KEX_PSK),
	"aPSK": au(AUTH_PSK),
	"PSK":  kx(KEX_PSK),
	"kSRP": kx(KEX_SRP),
	"SRP":  kx(KEX_SRP),

	"DES":         enc(ENC_DES),
	"3DES":        enc(ENC_TRIPLE_DES),
	"RC4":         enc(ENC_RC4),
	"RC2":         enc(ENC_RC2),
	"IDEA":        enc(ENC_IDEA),
	"SEED":        enc(ENC_SEED),
	"AES":         enc(ENC_AES),
	"AES128":      algBits(ENC_AES, 128),
	"AES256":      algBits(ENC_AES, 256),
	"AESGCM":      and(enc(ENC_AES), func(s *Suite) bool { return s.EncMode == ENC_M_GCM }),
	"CAMELLIA":    enc(ENC_CAMELLIA),
	"CAMELLIA128": algBits(ENC_CAMELLIA, 128),
	"CAMELLIA256": algBits(ENC_CAMELLIA, 256),

	"MD5":    mac(MAC_MD5),
	"SHA":    mac(MAC_SHA1),
	"SHA1":   mac(MAC_SHA1),
	"SHA256": mac(MAC_SHA256),
	"SHA384": mac(MAC_SHA384),

	"SSLv2": protocol(Sslv2),
	"SSLv3": protocol(Sslv3),
	"TLSv1": protocol(Tlsv1),
}

// splitSelection splits a selection string into its rules. OpenSSL accepts colons, commas, semicolons and spaces
// as separators.
func splitSelection(selection string) []string {
	return strings.FieldsFunc(selection, func(r rune) bool {
		return r == ':' || r == ',' || r == ';' || r == ' '
	})
}

// compileRule translates a single rule into its operation and matcher. Rules referencing unknown keywords are
// ignored, just like OpenSSL does.
func compileRule(rule string, byName map[string]*Suite) (selectionOp, matcher, bool) {
	op := opAdd
	switch rule[0] {
	case '!':
		op = opKill
		rule = rule[1:]
	case '-':
		op = opDel
		rule = rule[1:]
	case '+':
		op = opOrder
		rule = rule[1:]
	}
	if rule == "" {
		return op, nil, false
	}

	// A single word may name a cipher exactly
	if s, ok := byName[rule]; ok {
		return op, func(candidate *Suite) bool { return candidate == s }, true
	}

	words := strings.Split(rule, "+")
	matchers := make([]matcher, 0, len(words))
	for _, word := range words {
		m, ok := aliases[word]
		if !ok {
			return op, nil, false
		}
		matchers = append(matchers, m)
	}
	return op, and(matchers...), true
}

type selectionEntry struct {
	suite  *Suite
	active bool
}

// applySelection evaluates the selection string against the given suites, which define the initial order. It
// returns the suites active after the last rule, in list order.
func applySelection(suites []*Suite, selection string) []*Suite {

	// Prepare the initial list, nothing is active yet
	list := make([]*selectionEntry, 0, len(suites))
	byName := make(map[string]*Suite, len(suites))
	for _, s := range suites {
		list = append(list, &selectionEntry{suite: s})
		byName[s.Name] = s
	}

	for _, rule := range splitSelection(selection) {

		// Special commands
		if strings.HasPrefix(rule, "@") {
			if rule == "@STRENGTH" {
				sort.SliceStable(list, func(i, j int) bool {
					return list[i].suite.Bits > list[j].suite.Bits
				})
			}
			continue
		}

		op, m, ok := compileRule(rule, byName)
		if !ok {
			continue
		}

		var moved, kept []*selectionEntry
		for _, entry := range list {
			if !m(entry.suite) {
				kept = append(kept, entry)
				continue
			}
			switch op {
			case opAdd:
				if entry.active {
					kept = append(kept, entry)
					continue
				}
				entry.active = true
				moved = append(moved, entry)
			case opOrder:
				if !entry.active {
					kept = append(kept, entry)
					continue
				}
				moved = append(moved, entry)
			case opDel:
				if !entry.active {
					kept = append(kept, entry)
					continue
				}
				entry.active = false
				moved = append(moved, entry)
			case opKill:
				// Dropped from the list for good
			}
		}

		switch op {
		case opDel:
			// Deactivated ciphers move to the front, so re-adding them restores their original preference
			list = append(moved, kept...)
		default:
			list = append(kept, moved...)
		}
	}

	var selected []*Suite
	for _, entry := range list {
		if entry.active {
			selected = append(selected, entry.suite)
		}
	}
	return selected
}
