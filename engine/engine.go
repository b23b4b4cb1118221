// Copyright 2026 The numgrid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine exposes the combination algorithms that apply an
// elementwise operator across matrix operands. Operator definitions pick
// from these when filling in suite.Options; the choice encodes how the
// operator treats implicit sparse zeros.
package engine

import (
	"github.com/numgrid/numgrid/dispatch"
	"github.com/numgrid/numgrid/internal/engine"
	"github.com/numgrid/numgrid/matrix"
)

// Op is the elementwise scalar operator the engines apply.
type Op = engine.Op

// Algorithm is the combination-algorithm shape consumed by suite.Options.
type Algorithm = engine.Algorithm

// FuncOp adapts a plain scalar function to an Op.
func FuncOp(f func(a, b float64) float64) Op {
	return engine.FuncOp(f)
}

// DispatchOp adapts an assembled dispatch function to an Op by applying it
// to scalar pairs.
func DispatchOp(fn *dispatch.Function) Op {
	return engine.DispatchOp(fn)
}

// DensePair combines two equal-shaped dense matrices elementwise.
func DensePair(x, y *matrix.Dense, op Op) (*matrix.Dense, error) {
	return engine.DensePair(x, y, op)
}

// MixedScalar combines a dense matrix with a scalar elementwise, honoring
// the flip flag for non-commutative operators.
func MixedScalar(x *matrix.Dense, v any, op Op, flip bool) (*matrix.Dense, error) {
	return engine.MixedScalar(x, v, op, flip)
}

// Sparse combination algorithms. The Pattern/Intersect variants are exact
// only when off-pattern results are zero (or, for DenseSparsePattern, equal
// to the dense operand); the Full variants are always exact and produce
// dense results.
var (
	PatternUnion         Algorithm = engine.PatternUnion
	PatternIntersect     Algorithm = engine.PatternIntersect
	SparseSparseFull     Algorithm = engine.SparseSparseFull
	DenseSparsePattern   Algorithm = engine.DenseSparsePattern
	DenseSparseFull      Algorithm = engine.DenseSparseFull
	DenseSparseIntersect Algorithm = engine.DenseSparseIntersect
	SparseScalarPattern  Algorithm = engine.SparseScalarPattern
	SparseScalarFull     Algorithm = engine.SparseScalarFull
)
