// Package ops defines the built-in elementwise operations. Each operator is
// a scalar rule plus a selection of sparse combination algorithms; the
// suite builder turns that into the full dispatch table.
package ops

import (
	"math"

	"github.com/numgrid/numgrid/internal/dispatch"
	"github.com/numgrid/numgrid/internal/engine"
	"github.com/numgrid/numgrid/internal/matrix"
	"github.com/numgrid/numgrid/internal/suite"
)

// Default holds the built-in operations.
var Default = NewRegistry()

// Add computes x + y elementwise.
func Add(x, y any) (any, error) { return Default.Call("add", x, y) }

// Subtract computes x - y elementwise.
func Subtract(x, y any) (any, error) { return Default.Call("subtract", x, y) }

// DotMultiply computes x .* y elementwise.
func DotMultiply(x, y any) (any, error) { return Default.Call("dotMultiply", x, y) }

// DotDivide computes x ./ y elementwise.
func DotDivide(x, y any) (any, error) { return Default.Call("dotDivide", x, y) }

// Mod computes the elementwise remainder of x / y.
func Mod(x, y any) (any, error) { return Default.Call("mod", x, y) }

// NewRegistry builds a registry with all built-in operations registered.
// Tests use fresh registries; everyone else shares Default.
func NewRegistry() *dispatch.Registry {
	r := dispatch.NewRegistry()

	// add: implicit zeros are preserved by the pattern algorithms, so the
	// sparse-producing variants are exact. SparseDense and ScalarSparse
	// default from their dense/sparse counterparts.
	r.MustRegister("add", suite.Build(suite.Options{
		Op:           numberFn("add", func(a, b float64) float64 { return a + b }),
		SparseSparse: engine.PatternUnion,
		DenseSparse:  engine.DenseSparsePattern,
		SparseScalar: engine.SparseScalarFull,
		ScalarTag:    dispatch.TagNumber,
	}))

	// subtract: the defaulted SparseDense would copy dense values where
	// the sparse operand has no entry, which is wrong under a flipped
	// non-commutative operator (0 - d is -d, not d). Supply the full
	// algorithm explicitly.
	r.MustRegister("subtract", suite.Build(suite.Options{
		Op:           numberFn("subtract", func(a, b float64) float64 { return a - b }),
		SparseSparse: engine.PatternUnion,
		DenseSparse:  engine.DenseSparsePattern,
		SparseDense:  engine.DenseSparseFull,
		SparseScalar: engine.SparseScalarFull,
		ScalarTag:    dispatch.TagNumber,
	}))

	// dotMultiply: products off a sparse pattern are zero, so every
	// sparse-involving form stays sparse.
	r.MustRegister("dotMultiply", suite.Build(suite.Options{
		Op:           numberFn("dotMultiply", func(a, b float64) float64 { return a * b }),
		SparseSparse: engine.PatternIntersect,
		DenseSparse:  engine.DenseSparseIntersect,
		SparseScalar: engine.SparseScalarPattern,
		ScalarTag:    dispatch.TagNumber,
	}))

	// dotDivide: implicit zeros divide to ±Inf or NaN, so matrix divisors
	// need the full algorithms. A sparse dividend over a scalar stays on
	// the pattern (0/k is 0), but scalar-over-sparse must be full, hence
	// the explicit ScalarSparse override of the SparseScalar default.
	r.MustRegister("dotDivide", suite.Build(suite.Options{
		Op:              numberFn("dotDivide", func(a, b float64) float64 { return a / b }),
		SparseSparse:    engine.SparseSparseFull,
		DenseSparse:     engine.DenseSparseFull,
		SparseScalar:    engine.SparseScalarPattern,
		ScalarSparse:    engine.SparseScalarFull,
		ScalarSparseSet: true,
		ScalarTag:       dispatch.TagNumber,
	}))

	// mod: built without a closed operator. The matrix handlers resolve
	// the operation through the self reference, so the scalar rule added
	// below participates in every matrix combination.
	modSigs := suite.Build(suite.Options{
		SparseSparse:    engine.SparseSparseFull,
		DenseSparse:     engine.DenseSparseFull,
		SparseScalar:    engine.SparseScalarPattern,
		ScalarSparse:    engine.SparseScalarFull,
		ScalarSparseSet: true,
		ScalarTag:       dispatch.TagNumber,
	})
	modSigs.Put(dispatch.Sig(dispatch.TagNumber, dispatch.TagNumber), scalarHandler(math.Mod))
	r.MustRegister("mod", modSigs)

	return r
}

// numberFn wraps a plain scalar function into a dispatch function with a
// single (number, number) signature. The suite builder merges that
// signature into the operator's table, so the assembled operation also
// accepts plain scalars.
func numberFn(name string, f func(a, b float64) float64) *dispatch.Function {
	sigs := dispatch.NewSignatureMap()
	sigs.Put(dispatch.Sig(dispatch.TagNumber, dispatch.TagNumber), scalarHandler(f))
	fn, err := dispatch.NewFunction(name, sigs)
	if err != nil {
		panic(err)
	}
	return fn
}

func scalarHandler(f func(a, b float64) float64) dispatch.Handler {
	return func(x, y any) (any, error) {
		a, err := matrix.ToScalar(x)
		if err != nil {
			return nil, err
		}
		b, err := matrix.ToScalar(y)
		if err != nil {
			return nil, err
		}
		return f(a, b), nil
	}
}
