// Copyright 2025 The lazymat Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat

import "fmt"

// factor stores one replication factor of a view. A factor is either
// fixed at the construction site or deferred to a runtime value; both
// cases are read through value(), and the declared field keeps the
// construction-site view of the factor (Dynamic when deferred) for trait
// computation.
type factor struct {
	declared int // factor as declared at the construction site
	n        int // live value, always >= 1
}

// newFixedFactor seeds a factor from a count fixed at the construction
// site. The Dynamic sentinel is rejected here: the fixed-factor path must
// know both factors.
func newFixedFactor(n int) factor {
	if n == Dynamic {
		panic("mat: fixed replication factor is Dynamic; use NewReplicateDynamic for run-time factors")
	}
	checkFactor(n)
	return factor{declared: n, n: n}
}

// newRuntimeFactor seeds a factor from a runtime count. The declared
// factor stays Dynamic so the view's traits report dynamic bounds.
func newRuntimeFactor(n int) factor {
	checkFactor(n)
	return factor{declared: Dynamic, n: n}
}

func checkFactor(n int) {
	if n < 1 {
		panic(fmt.Sprintf("mat: replication factor must be >= 1, got %d", n))
	}
}

// value returns the live factor.
func (f factor) value() int { return f.n }

// isOne reports whether the factor is declared to be exactly 1, meaning
// the axis holds a single tile and index folding can be skipped. A
// runtime factor that happens to be 1 still folds; only a declared 1
// enables the fast path.
func (f factor) isOne() bool { return f.declared == 1 }
