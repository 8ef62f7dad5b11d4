// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package randints generates reproducible slices of ints with a variety
// of distributions for use when testing and benchmarking sorts.
package randints

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMaxValue is used when Generate is called with a maxValue <= 0.
const DefaultMaxValue = 10000

// Distribution determines the shape of the generated values.
type Distribution int

const (
	// Uniform values in [-maxValue, maxValue].
	Uniform Distribution = iota
	// Zipf distributed values in [0, maxValue], heavily skewed to
	// small values and hence with many duplicates.
	Zipf
	// FewUnique values drawn from at most five distinct values.
	FewUnique
	// Sorted is Uniform in non-decreasing order.
	Sorted
	// Reversed is Uniform in non-increasing order.
	Reversed
	// Constant repeats a single value.
	Constant
)

var distributionNames = []string{"uniform", "zipf", "few-unique", "sorted", "reversed", "constant"}

// String implements fmt.Stringer.
func (d Distribution) String() string {
	if d < 0 || int(d) >= len(distributionNames) {
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
	return distributionNames[d]
}

// Distributions returns all of the supported distributions.
func Distributions() []Distribution {
	d := make([]Distribution, len(distributionNames))
	for i := range d {
		d[i] = Distribution(i)
	}
	return d
}

// Names returns the names of all of the supported distributions.
func Names() []string {
	return slices.Clone(distributionNames)
}

// ParseDistribution returns the Distribution with the given name.
func ParseDistribution(name string) (Distribution, error) {
	idx := slices.Index(distributionNames, strings.ToLower(strings.TrimSpace(name)))
	if idx < 0 {
		return 0, fmt.Errorf("unrecognised distribution: %q is not one of: %s", name, strings.Join(distributionNames, ", "))
	}
	return Distribution(idx), nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Distribution) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Distribution) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	nd, err := ParseDistribution(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = nd
	return nil
}

// Generate returns n values with distribution d. The same seed always
// produces the same values.
func Generate(d Distribution, seed int64, n, maxValue int) []int {
	if maxValue <= 0 {
		maxValue = DefaultMaxValue
	}
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	switch d {
	case Zipf:
		gen := rand.NewZipf(rnd, 1.1, 1, uint64(maxValue))
		for i := range r {
			r[i] = int(gen.Uint64())
		}
	case FewUnique:
		k := min(maxValue, 4) + 1
		for i := range r {
			r[i] = rnd.Intn(k)
		}
	case Constant:
		v := rnd.Intn(maxValue + 1)
		for i := range r {
			r[i] = v
		}
	default:
		for i := range r {
			r[i] = rnd.Intn(2*maxValue+1) - maxValue
		}
	}
	switch d {
	case Sorted:
		slices.Sort(r)
	case Reversed:
		slices.Sort(r)
		slices.Reverse(r)
	}
	return r
}
