/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package ssl

import (
	"fmt"
	"math"
	"sync"

	"github.com/cockroachdb/apd"
)

// DO NOT alter!
// Strength of the most common key lengths when attacked with the GNFS. Saves the costly computation.
var commonGnfsComplexities = map[int]float64{
	512:   63.929344,
	1024:  86.7661192,
	2048:  116.883813,
	3072:  138.736281,
	4096:  156.496953,
	7680:  203.018736,
	8192:  208.472486,
	15360: 269.384773,
	16384: 276.518407,
}

// Constants of the GNFS formula, initialized once
var (
	gnfsOnce        sync.Once
	gnfsInitErr     error
	two             = apd.New(2, 0)
	sixtyFourNinths = new(apd.Decimal)
	oneThird        = new(apd.Decimal)
	twoThirds       = new(apd.Decimal)
	log10Two        = new(apd.Decimal)
)

const acceptableConditions = apd.Inexact | apd.Rounded

func gnfsContext() *apd.Context {
	c := apd.BaseContext
	c.Precision = 7
	return &c
}

func initGnfsConstants() error {
	for _, constant := range []struct {
		d     *apd.Decimal
		value float64
	}{
		{sixtyFourNinths, 64. / 9.},
		{oneThird, 1. / 3.},
		{twoThirds, 2. / 3.},
	} {
		if _, err := constant.d.SetFloat64(constant.value); err != nil {
			return fmt.Errorf("can not set %f: %s", constant.value, err)
		}
	}

	res, err := gnfsContext().Log10(log10Two, two)
	if err != nil {
		return fmt.Errorf("can not compute Log10(2): %s", err)
	}
	return checkConditions(res)
}

// gnfsComplexity returns the strength in bits of an RSA or DSA key of the given length, which is the complexity of
// factoring it with the general number field sieve. math/big has no logarithm, hence apd.
func gnfsComplexity(bits int) (float64, error) {
	if complexity, ok := commonGnfsComplexities[bits]; ok {
		return complexity, nil
	}
	if bits <= 0 {
		return 0, fmt.Errorf("invalid key length %d", bits)
	}

	gnfsOnce.Do(func() {
		gnfsInitErr = initGnfsConstants()
	})
	if gnfsInitErr != nil {
		return -1, fmt.Errorf("could not init GNFS constants: %s", gnfsInitErr)
	}

	c := gnfsContext()
	n := new(apd.Decimal)
	x := new(apd.Decimal)
	y := new(apd.Decimal)
	z := new(apd.Decimal)

	// (64/9 * ln(n))^(1/3) * ln(ln(n))^(2/3), converted from base e to base 2
	steps := []struct {
		name string
		op   func() (apd.Condition, error)
	}{
		{"n = 2^bits", func() (apd.Condition, error) { return c.Pow(n, two, apd.New(int64(bits), 0)) }},
		{"ln(n)", func() (apd.Condition, error) { return c.Ln(n, n) }},
		{"64/9 * ln(n)", func() (apd.Condition, error) { return c.Mul(x, sixtyFourNinths, n) }},
		{"x^(1/3)", func() (apd.Condition, error) { return c.Pow(x, x, oneThird) }},
		{"ln(ln(n))", func() (apd.Condition, error) { return c.Ln(y, n) }},
		{"y^(2/3)", func() (apd.Condition, error) { return c.Pow(y, y, twoThirds) }},
		{"x * y", func() (apd.Condition, error) { return c.Mul(z, x, y) }},
		{"exp(z)", func() (apd.Condition, error) { return c.Exp(z, z) }},
		{"log10(z)", func() (apd.Condition, error) { return c.Log10(z, z) }},
		{"log2(z)", func() (apd.Condition, error) { return c.Quo(z, z, log10Two) }},
	}
	for _, step := range steps {
		res, err := step.op()
		if err != nil {
			return -1, fmt.Errorf("can not compute %s: %s", step.name, err)
		}
		if errCond := checkConditions(res); errCond != nil {
			return -1, fmt.Errorf("can not compute %s: %s", step.name, errCond)
		}
	}

	complexity, err := z.Float64()
	if err != nil {
		return -1, fmt.Errorf("can not get the result's float value: %s", err)
	}
	return complexity, nil
}

// checkConditions fails on apd conditions other than rounding
func checkConditions(condition apd.Condition) error {
	unacceptable := condition &^ acceptableConditions
	if unacceptable > 0 {
		return fmt.Errorf("unacceptable conditions were returned (%s)", unacceptable)
	}
	return nil
}

// eccComplexity returns the strength in bits of an elliptic curve key of the given field size
func eccComplexity(bits int) float64 {
	return math.Floor(float64(bits) / 2.)
}
