// Copyright 2026 The numgrid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgrid/numgrid/dispatch"
	"github.com/numgrid/numgrid/engine"
	"github.com/numgrid/numgrid/matrix"
	"github.com/numgrid/numgrid/ops"
	"github.com/numgrid/numgrid/suite"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"add", "subtract", "dotMultiply", "dotDivide", "mod"} {
		_, ok := ops.Default.Lookup(name)
		assert.True(t, ok, name)
	}
}

func TestMixedRepresentations(t *testing.T) {
	d, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	s, err := matrix.SparseFromRows([][]float64{{0, 10}, {0, 0}})
	require.NoError(t, err)

	got, err := ops.Add(d, s)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 12}, {3, 4}}, got.(*matrix.Dense).ToRows())

	got, err = ops.Subtract([][]float64{{5, 5}}, 2.0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 3}}, got)
}

// TestCustomOperator defines an operation the way the built-ins are
// defined: a scalar rule, a suite of sparse algorithms, and a registry.
func TestCustomOperator(t *testing.T) {
	maxSigs := dispatch.NewSignatureMap()
	maxSigs.Put(dispatch.Sig(dispatch.TagNumber, dispatch.TagNumber), func(x, y any) (any, error) {
		a, err := matrix.ToScalar(x)
		if err != nil {
			return nil, err
		}
		b, err := matrix.ToScalar(y)
		if err != nil {
			return nil, err
		}
		return max(a, b), nil
	})
	maxFn, err := dispatch.NewFunction("max", maxSigs)
	require.NoError(t, err)

	reg := dispatch.NewRegistry()
	reg.MustRegister("max", suite.Build(suite.Options{
		Op:           maxFn,
		SparseSparse: engine.PatternUnion,
		DenseSparse:  engine.DenseSparsePattern,
		SparseScalar: engine.SparseScalarFull,
		ScalarTag:    dispatch.TagNumber,
	}))

	got, err := reg.Call("max", [][]float64{{1, 9}}, [][]float64{{4, 2}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{4, 9}}, got)

	s, err := matrix.SparseFromRows([][]float64{{-3, 0}})
	require.NoError(t, err)
	got, err = reg.Call("max", s, 1.0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}}, got.(*matrix.Dense).ToRows())
}
