// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package intsort provides two in-place, non-recursive, sorts for slices of
// ints: Partition, a quicksort that keeps its pending sub-ranges on an
// explicit work-list, and Heap, which pushes every element onto a binary
// min-heap and pops them back in increasing order.
//
// Neither sort is stable. Both sort the first n elements of the supplied
// slice and validate n before modifying anything:
//
//	if err := intsort.Partition(xs, len(xs)); err != nil {
//		...
//	}
//
// By default at most DefaultMaxLen elements may be sorted, WithMaxLen
// can be used to change or remove that limit.
package intsort

import (
	"fmt"
	"slices"

	"cloudeng.io/errors"
)

// DefaultMaxLen is the default maximum number of elements that can
// be sorted.
const DefaultMaxLen = 1000

var (
	// ErrCapacityExceeded is returned when the number of elements to
	// be sorted exceeds the configured maximum.
	ErrCapacityExceeded = errors.New("intsort: capacity exceeded")
	// ErrInvalidLength is returned when the number of elements to be
	// sorted is negative or larger than the supplied slice.
	ErrInvalidLength = errors.New("intsort: invalid length")
)

type options struct {
	maxLen int
	stats  *Stats
}

// Option represents the options that can be passed to Partition and Heap.
type Option func(*options)

// WithMaxLen sets the maximum number of elements that will be sorted.
// A value of zero or less removes the limit.
func WithMaxLen(n int) Option {
	return func(o *options) {
		o.maxLen = n
	}
}

// WithStats requests that statistics for the sort be written to s. Any
// existing contents of s are overwritten.
func WithStats(s *Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

func newOptions(opts []Option) options {
	o := options{maxLen: DefaultMaxLen}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func validate(xs []int, n int, o options) error {
	errs := errors.M{}
	if n < 0 {
		errs.Append(fmt.Errorf("%w: %v is negative", ErrInvalidLength, n))
	}
	if n > len(xs) {
		errs.Append(fmt.Errorf("%w: %v is greater than the slice length of %v", ErrInvalidLength, n, len(xs)))
	}
	if o.maxLen > 0 && n > o.maxLen {
		errs.Append(fmt.Errorf("%w: %v is greater than the maximum of %v", ErrCapacityExceeded, n, o.maxLen))
	}
	return errs.Err()
}

// Func is the signature shared by Partition and Heap.
type Func func(xs []int, n int, opts ...Option) error

var algorithms = map[string]Func{
	"partition": Partition,
	"heap":      Heap,
}

// Algorithms returns the sorted names of the available sorts.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for k := range algorithms {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the sort with the specified name.
func Lookup(name string) (Func, bool) {
	fn, ok := algorithms[name]
	return fn, ok
}
