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
	"fmt"
	"sync"
)

// Library is the crypto capability the scanner relies on. It answers which cipher names can be offered for a
// protocol version and resolves OpenSSL style selection strings against that universe.
type Library interface {
	Ciphers(p Protocol) []string
	Resolve(selection string, p Protocol) ([]string, error)
}

// Catalog is the Library backed by the suite table of the handshake codec. Next to the two Library functions it
// provides the suite details needed to put a cipher on the wire.
type Catalog struct {
	suites []*Suite
	byName map[Protocol]map[string]*Suite
	byId   map[Protocol]map[uint32]*Suite
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the shared catalog of all suites the codec supports. It is read-only and safe for concurrent use.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = NewCatalog(suiteTable)
	})
	return defaultCatalog
}

// NewCatalog builds a catalog from a custom suite table, e.g. to emulate a reduced crypto capability.
func NewCatalog(suites []*Suite) *Catalog {
	c := &Catalog{
		suites: suites,
		byName: make(map[Protocol]map[string]*Suite),
		byId:   make(map[Protocol]map[uint32]*Suite),
	}
	for _, p := range Protocols() {
		c.byName[p] = make(map[string]*Suite)
		c.byId[p] = make(map[uint32]*Suite)
	}
	for _, s := range suites {
		for _, p := range s.Protocols {
			if !IsValidProtocol(p) {
				continue
			}
			c.byName[p][s.Name] = s
			c.byId[p][s.Id] = s
		}
	}
	return c
}

// Suites returns the suites offered in the given protocol in preference order
func (c *Catalog) Suites(p Protocol) []*Suite {
	suites := make([]*Suite, 0, len(c.byName[p]))
	for _, s := range c.suites {
		if s.OfferedIn(p) {
			suites = append(suites, s)
		}
	}
	return suites
}

// Ciphers returns the names of all ciphers offered in the given protocol, nil for unknown protocols
func (c *Catalog) Ciphers(p Protocol) []string {
	if !IsValidProtocol(p) {
		return nil
	}
	suites := c.Suites(p)
	names := make([]string, 0, len(suites))
	for _, s := range suites {
		names = append(names, s.Name)
	}
	return names
}

// Suite looks up a cipher by its OpenSSL name within a protocol
func (c *Catalog) Suite(p Protocol, name string) (*Suite, bool) {
	s, ok := c.byName[p][name]
	return s, ok
}

// SuiteById looks up a cipher by its wire id within a protocol
func (c *Catalog) SuiteById(p Protocol, id uint32) (*Suite, bool) {
	s, ok := c.byId[p][id]
	return s, ok
}

// Resolve applies an OpenSSL cipher selection string to the ciphers offered in the given protocol and returns the
// selected cipher names in order. The result may be empty.
func (c *Catalog) Resolve(selection string, p Protocol) ([]string, error) {
	if !IsValidProtocol(p) {
		return nil, fmt.Errorf("can not resolve ciphers for unsupported protocol '%s'", p)
	}
	selected := applySelection(c.Suites(p), selection)
	names := make([]string, 0, len(selected))
	for _, s := range selected {
		names = append(names, s.Name)
	}
	return names, nil
}

// StrongCipherSelection is the strong cipher rule set from the OWASP Transport Layer Protection Cheat Sheet
// ("Only Support Strong Cryptographic Ciphers"). Ciphers not selected by it are considered weak.
const StrongCipherSelection = "EDH+aRSA+AESGCM:EDH+aRSA+AES:DHE-RSA-AES256-SHA" +
	":EECDH+aRSA+AESGCM:EECDH+aRSA+AES:ECDHE-RSA-AES256-SHA" +
	":ECDHE-RSA-AES128-SHA:RSA+AESGCM:RSA+AES+SHA:DES-CBC3-SHA" +
	":-DHE-RSA-AES128-SHA:!aNULL:!eNULL:!LOW:!MD5:!EXP:!PSK:!DSS" +
	":!RC4:!SEED:!ECDSA:!ADH:!IDEA"

// ResolveStrong resolves the strong cipher selection for the given protocol. Asking for an unsupported protocol is
// a programming error and panics.
func ResolveStrong(lib Library, p Protocol) []string {
	if !IsValidProtocol(p) {
		panic(fmt.Sprintf("strong ciphers requested for unsupported protocol '%s'", p))
	}
	strong, err := lib.Resolve(StrongCipherSelection, p)
	if err != nil {
		panic(fmt.Sprintf("could not resolve strong ciphers for '%s': %s", p, err))
	}
	return strong
}
