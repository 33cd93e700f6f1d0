// Copyright 2025 The lazymat Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat

import (
	"fmt"

	"github.com/lazymat/lazymat/internal/parallel"
)

// Materialize evaluates e once per cell into a freshly allocated Dense.
// Rows are swept in parallel chunks when the output is large enough for
// the overhead to pay off.
func Materialize[T Scalar](e Expression[T]) *Dense[T] {
	out, err := NewDense[T](e.Rows(), e.Cols())
	if err != nil {
		panic(fmt.Sprintf("mat: cannot materialize expression: %v", err))
	}
	materializeInto(out, e, parallel.DefaultConfig())
	return out
}

// MaterializeInto evaluates e into dst, which must already have e's
// shape.
func MaterializeInto[T Scalar](dst *Dense[T], e Expression[T]) error {
	if dst.Rows() != e.Rows() || dst.Cols() != e.Cols() {
		return fmt.Errorf("shape mismatch: destination is %dx%d, expression is %dx%d",
			dst.Rows(), dst.Cols(), e.Rows(), e.Cols())
	}
	materializeInto(dst, e, parallel.DefaultConfig())
	return nil
}

func materializeInto[T Scalar](dst *Dense[T], e Expression[T], cfg parallel.Config) {
	cols := dst.cols
	parallel.ForRows(dst.rows, cols, func(i int) {
		row := dst.data[i*cols : (i+1)*cols]
		for j := range row {
			row[j] = e.At(i, j)
		}
	}, cfg)
}
