// Package engine implements the combination algorithms that apply an
// elementwise operator across dense and sparse matrix operands. The suite
// builder selects and wires these; it never looks inside them.
package engine

import (
	"github.com/numgrid/numgrid/internal/dispatch"
	"github.com/numgrid/numgrid/internal/matrix"
)

// Op is the elementwise scalar operator the engines apply to each pair of
// elements.
type Op func(a, b float64) (float64, error)

// FuncOp adapts a plain scalar function to an Op.
func FuncOp(f func(a, b float64) float64) Op {
	return func(a, b float64) (float64, error) {
		return f(a, b), nil
	}
}

// DispatchOp adapts an assembled dispatch function to an Op by applying it
// to scalar pairs. This is how a matrix combination recursively invokes the
// operator's own scalar rules: the dispatch function resolves the
// (number, number) signature the operator was defined with.
func DispatchOp(fn *dispatch.Function) Op {
	return func(a, b float64) (float64, error) {
		v, err := fn.Call(a, b)
		if err != nil {
			return 0, err
		}
		return matrix.ToScalar(v)
	}
}

// apply honors the flip flag: flipped invocations reverse the logical
// argument order without reversing the positional one, which preserves
// non-commutative semantics.
func apply(op Op, a, b float64, flip bool) (float64, error) {
	if flip {
		return op(b, a)
	}
	return op(a, b)
}

// Algorithm is the shape the suite builder's options fields take: a
// combination algorithm for one matrix operand, one matrix-or-scalar
// operand, the operator, and the flip flag.
type Algorithm func(m matrix.Matrix, v any, op Op, flip bool) (any, error)
