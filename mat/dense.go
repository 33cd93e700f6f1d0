// Copyright 2025 The lazymat Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat

import (
	"fmt"
	"strings"
)

// Dense is a concrete row-major matrix. It implements Expression on its
// pointer receiver, so views embed it by reference rather than by copy.
type Dense[T Scalar] struct {
	rows, cols int
	data       []T
}

// NewDense creates a zeroed rows x cols matrix.
func NewDense[T Scalar](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid shape %dx%d: dimensions must be > 0", rows, cols)
	}
	return &Dense[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}, nil
}

// DenseFromSlice creates a rows x cols matrix from row-major data.
// The slice is copied into the matrix's own storage.
func DenseFromSlice[T Scalar](data []T, rows, cols int) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("shape %dx%d requires %d elements, but got %d", rows, cols, rows*cols, len(data))
	}
	copy(m.data, data)
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.cols }

// At returns the element at row i, column j.
// Panics if the indices are out of bounds.
func (m *Dense[T]) At(i, j int) T {
	return m.data[m.index(i, j)]
}

// Set assigns the element at row i, column j.
// Panics if the indices are out of bounds.
func (m *Dense[T]) Set(value T, i, j int) {
	m.data[m.index(i, j)] = value
}

func (m *Dense[T]) index(i, j int) int {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("row index %d out of bounds (rows %d)", i, m.rows))
	}
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("column index %d out of bounds (cols %d)", j, m.cols))
	}
	return i*m.cols + j
}

// Data returns the matrix's row-major backing slice.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the matrix.
func (m *Dense[T]) Data() []T { return m.data }

// Clone creates a deep copy of the matrix.
func (m *Dense[T]) Clone() *Dense[T] {
	out := &Dense[T]{
		rows: m.rows,
		cols: m.cols,
		data: make([]T, len(m.data)),
	}
	copy(out.data, m.data)
	return out
}

// Equal reports whether m and other have the same shape and elements.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Replicate returns a lazy view tiling m rowFactor x colFactor times.
// The factors are runtime values; panics if either is < 1.
func (m *Dense[T]) Replicate(rowFactor, colFactor int) *Replicate[T, *Dense[T]] {
	return NewReplicateDynamic[T](m, rowFactor, colFactor)
}

// Traits declares the container's traits: runtime-sized exact bounds and
// the full set of storage flags.
func (m *Dense[T]) Traits() Traits {
	return Traits{
		Dims:    Dims{Dynamic, Dynamic},
		MaxDims: Dims{Dynamic, Dynamic},
		Flags:   FlagRowMajor | FlagAligned | FlagWritable,
		Cost:    CostDenseRead,
	}
}

// String returns a human-readable representation of the matrix.
func (m *Dense[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dense %dx%d", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		b.WriteString("\n")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.cols+j])
		}
	}
	return b.String()
}
