// Copyright 2025 The lazymat Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat

import "fmt"

// Dynamic is the reserved sentinel for a size or replication factor that
// is not known until run time.
const Dynamic = -1

// Dims holds the statically declared row and column bounds of an
// expression. Either bound may be Dynamic.
type Dims struct {
	Rows, Cols int
}

// IsStatic reports whether both bounds are known.
func (d Dims) IsStatic() bool {
	return d.Rows != Dynamic && d.Cols != Dynamic
}

// String returns a human-readable form, with "?" for dynamic bounds.
func (d Dims) String() string {
	return fmt.Sprintf("%sx%s", dimString(d.Rows), dimString(d.Cols))
}

func dimString(n int) string {
	if n == Dynamic {
		return "?"
	}
	return fmt.Sprintf("%d", n)
}

// mulDim multiplies two bounds; the product of anything with Dynamic is
// Dynamic.
func mulDim(a, b int) int {
	if a == Dynamic || b == Dynamic {
		return Dynamic
	}
	return a * b
}

// Flags is a bitset of expression capability flags.
type Flags uint8

const (
	// FlagRowMajor marks expressions traversed most efficiently row by row.
	FlagRowMajor Flags = 1 << iota
	// FlagAligned marks expressions whose storage is aligned for
	// vectorized reads.
	FlagAligned
	// FlagWritable marks expressions whose cells may be assigned.
	FlagWritable
)

// HereditaryFlags is the subset of flags a view inherits from its base.
// Read-path properties survive wrapping; alignment and writability do not,
// since a view computes coordinates rather than exposing base storage.
const HereditaryFlags = FlagRowMajor

// Cost is the declared cost of reading one element of an expression,
// measured in dense-container reads.
type Cost int

// CostDenseRead is the cost of reading a cell of a concrete container.
const CostDenseRead Cost = 1

// Traits is the static declaration an expression makes about itself:
// shape bounds, capability flags, and per-element read cost. The
// expression framework consumes it for dispatch and optimization
// decisions; it carries no runtime state.
type Traits struct {
	// Dims are the compile-time-known bounds, Dynamic where unknown.
	Dims Dims
	// MaxDims are upper bounds on the runtime shape. Expressions in this
	// package are exact-sized, so MaxDims always equals Dims.
	MaxDims Dims
	// Flags are the expression's capability flags.
	Flags Flags
	// Cost is the per-element read cost.
	Cost Cost
}

// ReplicateDims computes the declared bounds of a replication view from
// its base's bounds and the declared factors. Each axis is independent: a
// Dynamic factor or a Dynamic base bound yields a Dynamic result bound,
// otherwise the bound is the exact product.
func ReplicateDims(base Dims, rowFactor, colFactor int) Dims {
	return Dims{
		Rows: mulDim(base.Rows, rowFactor),
		Cols: mulDim(base.Cols, colFactor),
	}
}

// replicateTraits derives a replication view's traits from its base's.
// Reading a replicated cell costs exactly one base-cell read, so the cost
// passes through unchanged.
func replicateTraits(base Traits, rowFactor, colFactor int) Traits {
	dims := ReplicateDims(base.Dims, rowFactor, colFactor)
	return Traits{
		Dims:    dims,
		MaxDims: dims,
		Flags:   base.Flags & HereditaryFlags,
		Cost:    base.Cost,
	}
}
