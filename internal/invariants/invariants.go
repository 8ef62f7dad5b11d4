// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package invariants controls whether the containers verify their
// structural invariants after every mutation. Verification is O(n) per
// operation and is only enabled when built with the intsort_invariants
// tag, for example:
//
//	go test -tags intsort_invariants ./...
package invariants
