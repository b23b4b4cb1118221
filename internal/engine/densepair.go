package engine

import (
	"fmt"

	"github.com/numgrid/numgrid/internal/matrix"
	"github.com/numgrid/numgrid/internal/parallel"
)

// parallelCfg is shared by the dense kernels. Elementwise loops are memory
// bound; the chunk threshold keeps small matrices on the calling goroutine.
var parallelCfg = parallel.DefaultConfig()

// DensePair combines two equal-shaped dense matrices elementwise.
// It is commutativity-agnostic: operands are applied in the order given.
func DensePair(x, y *matrix.Dense, op Op) (*matrix.Dense, error) {
	if !matrix.SameShape(x, y) {
		return nil, fmt.Errorf("dense pair: %dx%d vs %dx%d: %w",
			x.Rows(), x.Cols(), y.Rows(), y.Cols(), matrix.ErrDimensionMismatch)
	}
	out, err := matrix.NewDense(x.Rows(), x.Cols())
	if err != nil {
		return nil, err
	}
	xd, yd, od := x.Data(), y.Data(), out.Data()
	err = parallel.ForErr(len(xd), func(i int) error {
		v, err := op(xd[i], yd[i])
		if err != nil {
			return err
		}
		od[i] = v
		return nil
	}, parallelCfg)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MixedScalar combines a dense matrix with a scalar elementwise. When flip
// is set the logical argument order was (scalar, matrix): the operator is
// applied as op(scalar, element) even though the matrix arrives first
// positionally.
func MixedScalar(x *matrix.Dense, v any, op Op, flip bool) (*matrix.Dense, error) {
	s, err := matrix.ToScalar(v)
	if err != nil {
		return nil, err
	}
	out, err := matrix.NewDense(x.Rows(), x.Cols())
	if err != nil {
		return nil, err
	}
	xd, od := x.Data(), out.Data()
	err = parallel.ForErr(len(xd), func(i int) error {
		r, err := apply(op, xd[i], s, flip)
		if err != nil {
			return err
		}
		od[i] = r
		return nil
	}, parallelCfg)
	if err != nil {
		return nil, err
	}
	return out, nil
}
