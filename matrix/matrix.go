// Copyright 2026 The numgrid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the matrix value types used by numgrid
// operations.
//
// Two storage representations are available:
//   - Dense: every element stored in a flat row-major buffer
//   - Sparse: compressed sparse row storage of explicit entries only
//
// Raw nested slices ([][]float64) are also accepted everywhere a matrix is;
// FromRows is the constructor the dispatch layer routes them through.
//
// Example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	s, _ := matrix.SparseFromRows([][]float64{{0, 5}, {0, 0}})
//	sum, _ := ops.Add(a, s)
package matrix

import (
	"github.com/numgrid/numgrid/internal/matrix"
)

// Matrix is the read interface shared by all matrix representations.
type Matrix = matrix.Matrix

// Dense is a row-major dense matrix.
type Dense = matrix.Dense

// Sparse is a compressed sparse row matrix.
type Sparse = matrix.Sparse

// SparseBuilder assembles a sparse matrix from row-major ordered entries.
type SparseBuilder = matrix.SparseBuilder

// Sentinel errors reported by constructors and combination engines.
var (
	ErrInvalidShape      = matrix.ErrInvalidShape
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrRagged            = matrix.ErrRagged
	ErrNotScalar         = matrix.ErrNotScalar
)

// NewDense creates a zero-filled dense matrix.
func NewDense(rows, cols int) (*Dense, error) {
	return matrix.NewDense(rows, cols)
}

// FromRows wraps a raw nested slice into a dense matrix.
func FromRows(rows [][]float64) (*Dense, error) {
	return matrix.FromRows(rows)
}

// NewSparse creates an empty sparse matrix.
func NewSparse(rows, cols int) (*Sparse, error) {
	return matrix.NewSparse(rows, cols)
}

// SparseFromRows builds a sparse matrix from a raw nested slice, storing
// only nonzero elements.
func SparseFromRows(rows [][]float64) (*Sparse, error) {
	return matrix.SparseFromRows(rows)
}

// FromDense converts a dense matrix to sparse form, dropping zeros.
func FromDense(d *Dense) *Sparse {
	return matrix.FromDense(d)
}

// NewSparseBuilder creates a builder for a rows x cols sparse matrix.
func NewSparseBuilder(rows, cols int) *SparseBuilder {
	return matrix.NewSparseBuilder(rows, cols)
}

// ToScalar coerces a value in a scalar position to float64.
func ToScalar(v any) (float64, error) {
	return matrix.ToScalar(v)
}

// SameShape reports whether two matrices have identical dimensions.
func SameShape(a, b Matrix) bool {
	return matrix.SameShape(a, b)
}
