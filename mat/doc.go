// Copyright 2025 The lazymat Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mat provides lazy two-dimensional expressions for the lazymat
// library.
//
// # Overview
//
// An Expression is a composable, unevaluated view of a matrix: it exposes
// its shape and per-element read access, and computes nothing until a cell
// is read. This package provides:
//   - The generic Expression[T] capability interface
//   - Dense[T], a concrete row-major container
//   - Replicate[T, E], a lazy tiling view over any expression
//   - Materialize, which evaluates an expression into a Dense
//
// # Basic Usage
//
//	base, _ := mat.DenseFromSlice([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
//
//	// Lazy 2x2 tiling: a virtual 4x6 matrix, nothing copied.
//	tiled := base.Replicate(2, 2)
//	v := tiled.At(3, 5) // == base.At(1, 2) == 6
//
//	// Evaluate into a concrete container.
//	out := mat.Materialize[float32](tiled)
//
// # Replication
//
// Replicate behaves as if the base were copied rowFactor x colFactor times
// into a grid. Reads are mapped back into the base by modular arithmetic,
// so the view costs no memory and a read costs exactly one base read.
// Directional helpers broadcast along a single axis:
//
//	row, _ := mat.DenseFromSlice([]float32{7, 8, 9}, 1, 3)
//	stacked := mat.ReplicateRows[float32](row, 3) // 3x3, every row [7 8 9]
//
// # Static and Dynamic Factors
//
// A replication factor is either fixed when the view is constructed
// (NewReplicate) or deferred to a runtime value (NewReplicateDynamic and
// the Replicate/ReplicateRows/ReplicateCols helpers). Both paths share the
// same accessors and produce identical shapes and coefficients; the fixed
// path additionally lets the view skip the modulo on an axis whose factor
// is known to be 1. The reserved Dynamic sentinel marks a deferred factor
// and is rejected by the fixed-factor constructor.
//
// # Concurrency
//
// Views are immutable after construction and add no synchronization:
// concurrent reads of the same view are safe whenever concurrent reads of
// its base are.
package mat
