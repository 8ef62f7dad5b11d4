// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !intsort_invariants

package invariants

// Enabled is true when invariant checking is compiled in.
const Enabled = false
