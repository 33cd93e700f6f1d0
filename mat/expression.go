// Copyright 2025 The lazymat Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat

// Scalar is a constraint for supported matrix element types.
type Scalar interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64
}

// Expression is a lazy two-dimensional expression: a composable object
// exposing its shape and per-element read access, representing a
// yet-unevaluated computation over a matrix or vector.
//
// Rows and Cols are pure O(1) queries. At must accept any coordinate in
// [0, Rows()) x [0, Cols()) and is expected to be cheap enough to call
// once per output cell during materialization.
//
// Whether an expression is embedded in another by value or by reference is
// decided by the expression type itself: containers like Dense implement
// Expression on their pointer receiver and are referenced, lightweight
// views are plain values and are copied.
type Expression[T Scalar] interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the element at row i, column j.
	At(i, j int) T
}

// TraitsProvider is implemented by expressions that declare static traits
// (compile-time shape bounds, capability flags, per-element read cost) for
// the expression framework to dispatch on.
type TraitsProvider interface {
	Traits() Traits
}

// TraitsOf returns e's declared traits, or fully dynamic conservative
// traits when e declares none.
func TraitsOf[T Scalar](e Expression[T]) Traits {
	if tp, ok := any(e).(TraitsProvider); ok {
		return tp.Traits()
	}
	return Traits{
		Dims:    Dims{Dynamic, Dynamic},
		MaxDims: Dims{Dynamic, Dynamic},
		Cost:    CostDenseRead,
	}
}
