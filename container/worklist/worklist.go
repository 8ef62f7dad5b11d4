// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package worklist provides a LIFO work-list of pending index ranges.
package worklist

import (
	"fmt"
	"iter"

	"cloudeng.io/errors"
	"cloudeng.io/intsort/internal/intfmt"
	"cloudeng.io/intsort/internal/invariants"
)

var (
	// ErrEmpty is the panic value (wrapped) when a range is requested
	// from an empty work-list.
	ErrEmpty = errors.New("worklist: empty")
	// ErrInvalidRange is the panic value (wrapped) when a range that
	// cannot refer to a slice is pushed onto a work-list.
	ErrInvalidRange = errors.New("worklist: invalid range")
)

// Range represents the inclusive index range [Start, End]. A range with
// End < Start is empty.
type Range struct {
	Start, End int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("(%d, %d)", r.Start, r.End)
}

// valid reports whether r can describe a, possibly empty, sub-slice.
func (r Range) valid() bool {
	return r.Start >= 0 && r.End >= r.Start-1
}

// Ranges is a stack of Range values; the front of the list is the most
// recently pushed range. The zero value is an empty list ready for use.
type Ranges struct {
	stack []Range // front is the last element.
}

type options struct {
	sliceCap int
}

// Option represents the options that can be passed to New.
type Option func(*options)

// WithSliceCap sets the initial capacity of the slice used to hold
// pending ranges.
func WithSliceCap(n int) Option {
	return func(o *options) {
		o.sliceCap = n
	}
}

// New returns a new, empty, instance of Ranges.
func New(opts ...Option) *Ranges {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return &Ranges{stack: make([]Range, 0, o.sliceCap)}
}

// Len returns the number of pending ranges.
func (w *Ranges) Len() int {
	return len(w.stack)
}

// IsEmpty returns true if there are no pending ranges.
func (w *Ranges) IsEmpty() bool {
	return len(w.stack) == 0
}

// PushFront adds r to the front of the list. It panics with an error
// wrapping ErrInvalidRange if r has a negative start or an end more than
// one before its start.
func (w *Ranges) PushFront(r Range) {
	if !r.valid() {
		panic(fmt.Errorf("%w: %v", ErrInvalidRange, r))
	}
	w.stack = append(w.stack, r)
	w.check()
}

// PopFront removes and returns the range at the front of the list. It
// panics with an error wrapping ErrEmpty if the list is empty.
func (w *Ranges) PopFront() Range {
	n := len(w.stack) - 1
	if n < 0 {
		panic(fmt.Errorf("%w: pop", ErrEmpty))
	}
	r := w.stack[n]
	w.stack = w.stack[:n]
	w.check()
	return r
}

// Head returns the range at the front of the list without removing it.
// It panics with an error wrapping ErrEmpty if the list is empty.
func (w *Ranges) Head() Range {
	if len(w.stack) == 0 {
		panic(fmt.Errorf("%w: head", ErrEmpty))
	}
	return w.stack[len(w.stack)-1]
}

// Forward returns an iterator over the pending ranges, from front to back.
func (w *Ranges) Forward() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for i := len(w.stack) - 1; i >= 0; i-- {
			if !yield(w.stack[i]) {
				return
			}
		}
	}
}

// String returns the pending ranges, front first, as {(s0, e0), ...}.
func (w *Ranges) String() string {
	return intfmt.Seq(w.Forward())
}

func (w *Ranges) check() {
	if !invariants.Enabled {
		return
	}
	if err := w.validate(); err != nil {
		panic(err)
	}
}

func (w *Ranges) validate() error {
	for i, r := range w.stack {
		if !r.valid() {
			return fmt.Errorf("%w: entry %v: %v", ErrInvalidRange, len(w.stack)-1-i, r)
		}
	}
	return nil
}
