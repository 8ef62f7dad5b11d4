// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intsort

import "log/slog"

// Stats records the work performed by a single call to Partition or Heap.
type Stats struct {
	// Partitions is the number of ranges that were partitioned.
	Partitions int
	// Swaps is the number of element exchanges.
	Swaps int
	// Pushes and Pops count the operations on the auxiliary structure,
	// the work-list for Partition and the heap for Heap.
	Pushes, Pops int
	// MaxDepth is the largest number of entries held by the auxiliary
	// structure at any one time.
	MaxDepth int
}

func (s *Stats) pushed(depth int) {
	if s == nil {
		return
	}
	s.Pushes++
	s.MaxDepth = max(s.MaxDepth, depth)
}

func (s *Stats) popped() {
	if s != nil {
		s.Pops++
	}
}

func (s *Stats) swapped() {
	if s != nil {
		s.Swaps++
	}
}

func (s *Stats) partitioned() {
	if s != nil {
		s.Partitions++
	}
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("partitions", s.Partitions),
		slog.Int("swaps", s.Swaps),
		slog.Int("pushes", s.Pushes),
		slog.Int("pops", s.Pops),
		slog.Int("max_depth", s.MaxDepth),
	)
}
