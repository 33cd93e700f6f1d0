// Copyright 2025 The lazymat Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat

import "fmt"

// Replicate is a lazy tiling of a base expression: it behaves as if the
// base were copied rowFactor x colFactor times into a grid, with every
// read mapped back into the base by modular index arithmetic. The tiled
// data is never stored; a read of the view costs exactly one base read.
//
// The base expression type is a type parameter, so passing an expression
// of the wrong type at a construction site fails to compile. The view is
// immutable after construction and is itself an Expression, so it nests
// inside other expressions or materializes into a Dense.
type Replicate[T Scalar, E Expression[T]] struct {
	base      E
	rowFactor factor
	colFactor factor
	mode      foldMode
}

// foldMode selects which axes At must fold. It is resolved once at
// construction from the declared factors.
type foldMode uint8

const (
	foldBoth     foldMode = iota // fold rows and columns
	foldColsOnly                 // row factor declared 1: fold columns only
	foldRowsOnly                 // column factor declared 1: fold rows only
)

// NewReplicate constructs a view whose factors are fixed at this call
// site. Panics if either factor is the Dynamic sentinel or is < 1; use
// NewReplicateDynamic when a factor is only known at run time.
func NewReplicate[T Scalar, E Expression[T]](base E, rowFactor, colFactor int) *Replicate[T, E] {
	return newReplicate[T](base, newFixedFactor(rowFactor), newFixedFactor(colFactor))
}

// NewReplicateDynamic constructs a view from factors supplied at run
// time. The view's traits report dynamic bounds on both axes. Panics if
// either factor is < 1.
func NewReplicateDynamic[T Scalar, E Expression[T]](base E, rowFactor, colFactor int) *Replicate[T, E] {
	return newReplicate[T](base, newRuntimeFactor(rowFactor), newRuntimeFactor(colFactor))
}

// Direction selects the axis a directional replication expands.
type Direction int

const (
	// Vertical stacks copies below one another, expanding rows.
	Vertical Direction = iota
	// Horizontal lays copies side by side, expanding columns.
	Horizontal
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		return "Unknown"
	}
}

// ReplicateDirection replicates base k times along the chosen axis. The
// other axis keeps a factor fixed at 1, so its indices are forwarded to
// the base without folding.
func ReplicateDirection[T Scalar, E Expression[T]](base E, dir Direction, k int) *Replicate[T, E] {
	switch dir {
	case Vertical:
		return newReplicate[T](base, newRuntimeFactor(k), newFixedFactor(1))
	case Horizontal:
		return newReplicate[T](base, newFixedFactor(1), newRuntimeFactor(k))
	default:
		panic(fmt.Sprintf("mat: unknown direction %d", int(dir)))
	}
}

// ReplicateRows stacks k copies of base vertically: the result has
// k*base.Rows() rows and base.Cols() columns.
func ReplicateRows[T Scalar, E Expression[T]](base E, k int) *Replicate[T, E] {
	return ReplicateDirection[T](base, Vertical, k)
}

// ReplicateCols lays k copies of base side by side: the result has
// base.Rows() rows and k*base.Cols() columns.
func ReplicateCols[T Scalar, E Expression[T]](base E, k int) *Replicate[T, E] {
	return ReplicateDirection[T](base, Horizontal, k)
}

func newReplicate[T Scalar, E Expression[T]](base E, rowFactor, colFactor factor) *Replicate[T, E] {
	mode := foldBoth
	switch {
	case rowFactor.isOne():
		mode = foldColsOnly
	case colFactor.isOne():
		mode = foldRowsOnly
	}
	return &Replicate[T, E]{
		base:      base,
		rowFactor: rowFactor,
		colFactor: colFactor,
		mode:      mode,
	}
}

// Rows returns base.Rows() times the row factor.
func (r *Replicate[T, E]) Rows() int { return r.base.Rows() * r.rowFactor.value() }

// Cols returns base.Cols() times the column factor.
func (r *Replicate[T, E]) Cols() int { return r.base.Cols() * r.colFactor.value() }

// At maps the output coordinate back into the base by folding each index
// modulo the base extent on that axis. An axis whose factor is declared 1
// holds exactly one tile, so its incoming index is already within base
// range and is forwarded untouched, skipping the modulo.
func (r *Replicate[T, E]) At(i, j int) T {
	switch r.mode {
	case foldColsOnly:
		return r.base.At(i, j%r.base.Cols())
	case foldRowsOnly:
		return r.base.At(i%r.base.Rows(), j)
	default:
		return r.base.At(i%r.base.Rows(), j%r.base.Cols())
	}
}

// Base returns the wrapped expression.
func (r *Replicate[T, E]) Base() E { return r.base }

// RowFactor returns the live row replication factor.
func (r *Replicate[T, E]) RowFactor() int { return r.rowFactor.value() }

// ColFactor returns the live column replication factor.
func (r *Replicate[T, E]) ColFactor() int { return r.colFactor.value() }

// Traits declares the view's static bounds from the declared factors
// (Dynamic where a factor or base bound is deferred), the base's
// hereditary flags, and the base's per-element read cost.
func (r *Replicate[T, E]) Traits() Traits {
	return replicateTraits(TraitsOf[T](r.base), r.rowFactor.declared, r.colFactor.declared)
}

// String returns a human-readable representation of the view.
func (r *Replicate[T, E]) String() string {
	return fmt.Sprintf("Replicate(%dx%d of %dx%d base)", r.Rows(), r.Cols(), r.base.Rows(), r.base.Cols())
}
