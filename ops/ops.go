// Copyright 2026 The numgrid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the built-in elementwise operations over matrices,
// raw nested slices, and scalars.
//
// Example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	s, _ := matrix.SparseFromRows([][]float64{{0, 5}, {0, 0}})
//	sum, _ := ops.Add(a, s)
package ops

import (
	"github.com/numgrid/numgrid/dispatch"
	"github.com/numgrid/numgrid/internal/ops"
)

// Default is the registry holding the built-in operations.
var Default = ops.Default

// Add computes x + y elementwise.
func Add(x, y any) (any, error) { return ops.Add(x, y) }

// Subtract computes x - y elementwise.
func Subtract(x, y any) (any, error) { return ops.Subtract(x, y) }

// DotMultiply computes x .* y elementwise.
func DotMultiply(x, y any) (any, error) { return ops.DotMultiply(x, y) }

// DotDivide computes x ./ y elementwise.
func DotDivide(x, y any) (any, error) { return ops.DotDivide(x, y) }

// Mod computes the elementwise remainder of x / y.
func Mod(x, y any) (any, error) { return ops.Mod(x, y) }

// NewRegistry builds a fresh registry with all built-in operations
// registered.
func NewRegistry() *dispatch.Registry {
	return ops.NewRegistry()
}
