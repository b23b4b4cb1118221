package engine

import (
	"fmt"

	"github.com/numgrid/numgrid/internal/matrix"
)

// The sparse combination algorithms below all share the Algorithm shape so
// the suite builder can wire any of them into a dispatch table. Which one
// is correct for a given operator depends on how the operator treats
// implicit zeros: pattern algorithms are exact only when off-pattern
// results are known in advance (op(d, 0) = d for the dense-copy variants,
// op(d, 0) = 0 for the sparse-producing ones).

func shapeCheck(name string, a, b matrix.Matrix) error {
	if !matrix.SameShape(a, b) {
		return fmt.Errorf("%s: %dx%d vs %dx%d: %w",
			name, a.Rows(), a.Cols(), b.Rows(), b.Cols(), matrix.ErrDimensionMismatch)
	}
	return nil
}

// PatternUnion combines two sparse matrices over the union of their
// patterns, producing a sparse result. Positions absent from both patterns
// are assumed to combine to zero.
func PatternUnion(m matrix.Matrix, v any, op Op, flip bool) (any, error) {
	x, y := m.(*matrix.Sparse), v.(*matrix.Sparse)
	if err := shapeCheck("pattern union", x, y); err != nil {
		return nil, err
	}
	b := matrix.NewSparseBuilder(x.Rows(), x.Cols())
	for i := 0; i < x.Rows(); i++ {
		xc, xv := x.Row(i)
		yc, yv := y.Row(i)
		var p, q int
		for p < len(xc) || q < len(yc) {
			var j int
			var a, bv float64
			switch {
			case q >= len(yc) || (p < len(xc) && xc[p] < yc[q]):
				j, a, bv = xc[p], xv[p], 0
				p++
			case p >= len(xc) || yc[q] < xc[p]:
				j, a, bv = yc[q], 0, yv[q]
				q++
			default:
				j, a, bv = xc[p], xv[p], yv[q]
				p++
				q++
			}
			r, err := apply(op, a, bv, flip)
			if err != nil {
				return nil, err
			}
			b.Append(i, j, r)
		}
	}
	return b.Build(), nil
}

// PatternIntersect combines two sparse matrices over the intersection of
// their patterns, producing a sparse result. Positions absent from either
// pattern are assumed to combine to zero.
func PatternIntersect(m matrix.Matrix, v any, op Op, flip bool) (any, error) {
	x, y := m.(*matrix.Sparse), v.(*matrix.Sparse)
	if err := shapeCheck("pattern intersect", x, y); err != nil {
		return nil, err
	}
	b := matrix.NewSparseBuilder(x.Rows(), x.Cols())
	for i := 0; i < x.Rows(); i++ {
		xc, xv := x.Row(i)
		yc, yv := y.Row(i)
		var p, q int
		for p < len(xc) && q < len(yc) {
			switch {
			case xc[p] < yc[q]:
				p++
			case yc[q] < xc[p]:
				q++
			default:
				r, err := apply(op, xv[p], yv[q], flip)
				if err != nil {
					return nil, err
				}
				b.Append(i, xc[p], r)
				p++
				q++
			}
		}
	}
	return b.Build(), nil
}

// SparseSparseFull combines two sparse matrices over every position,
// producing a dense result. Needed when implicit zeros combine to nonzero
// values, as in division.
func SparseSparseFull(m matrix.Matrix, v any, op Op, flip bool) (any, error) {
	x, y := m.(*matrix.Sparse), v.(*matrix.Sparse)
	if err := shapeCheck("sparse full", x, y); err != nil {
		return nil, err
	}
	return DensePair(x.ToDense(), y.ToDense(), flipOp(op, flip))
}

// DenseSparsePattern combines a dense matrix with a sparse one by applying
// the operator on the sparse pattern only; off-pattern elements keep the
// dense operand's value. Exact when op(d, 0) = d, as for addition.
func DenseSparsePattern(m matrix.Matrix, v any, op Op, flip bool) (any, error) {
	x, y := m.(*matrix.Dense), v.(*matrix.Sparse)
	if err := shapeCheck("dense/sparse pattern", x, y); err != nil {
		return nil, err
	}
	out := x.Clone()
	for i := 0; i < y.Rows(); i++ {
		yc, yv := y.Row(i)
		for k, j := range yc {
			r, err := apply(op, x.At(i, j), yv[k], flip)
			if err != nil {
				return nil, err
			}
			out.Set(i, j, r)
		}
	}
	return out, nil
}

// DenseSparseFull combines a dense matrix with a sparse one over every
// position, producing a dense result. Required whenever op(d, 0) differs
// from d, as for subtraction under a flipped call.
func DenseSparseFull(m matrix.Matrix, v any, op Op, flip bool) (any, error) {
	x, y := m.(*matrix.Dense), v.(*matrix.Sparse)
	if err := shapeCheck("dense/sparse full", x, y); err != nil {
		return nil, err
	}
	return DensePair(x, y.ToDense(), flipOp(op, flip))
}

// DenseSparseIntersect combines a dense matrix with a sparse one on the
// sparse pattern, producing a sparse result. Exact when op(d, 0) = 0, as
// for multiplication.
func DenseSparseIntersect(m matrix.Matrix, v any, op Op, flip bool) (any, error) {
	x, y := m.(*matrix.Dense), v.(*matrix.Sparse)
	if err := shapeCheck("dense/sparse intersect", x, y); err != nil {
		return nil, err
	}
	b := matrix.NewSparseBuilder(y.Rows(), y.Cols())
	for i := 0; i < y.Rows(); i++ {
		yc, yv := y.Row(i)
		for k, j := range yc {
			r, err := apply(op, x.At(i, j), yv[k], flip)
			if err != nil {
				return nil, err
			}
			b.Append(i, j, r)
		}
	}
	return b.Build(), nil
}

// SparseScalarPattern combines a sparse matrix with a scalar on the
// pattern only, producing a sparse result. Exact when op(0, s) = 0.
func SparseScalarPattern(m matrix.Matrix, v any, op Op, flip bool) (any, error) {
	x := m.(*matrix.Sparse)
	s, err := matrix.ToScalar(v)
	if err != nil {
		return nil, err
	}
	b := matrix.NewSparseBuilder(x.Rows(), x.Cols())
	for i := 0; i < x.Rows(); i++ {
		xc, xv := x.Row(i)
		for k, j := range xc {
			r, err := apply(op, xv[k], s, flip)
			if err != nil {
				return nil, err
			}
			b.Append(i, j, r)
		}
	}
	return b.Build(), nil
}

// SparseScalarFull combines a sparse matrix with a scalar over every
// position, producing a dense result.
func SparseScalarFull(m matrix.Matrix, v any, op Op, flip bool) (any, error) {
	x := m.(*matrix.Sparse)
	return MixedScalar(x.ToDense(), v, op, flip)
}

// flipOp bakes the flip flag into an Op for delegation to engines that take
// operands in positional order.
func flipOp(op Op, flip bool) Op {
	if !flip {
		return op
	}
	return func(a, b float64) (float64, error) {
		return op(b, a)
	}
}
