// Package suite builds the multiple-dispatch signature table for a binary
// elementwise matrix operation. Given which shape-specific combination
// algorithms an operator supports, Build produces the complete, correctly
// defaulted set of type-pair entries a dispatch registry needs to route the
// operation across dense, sparse, raw-array, and scalar operands.
package suite

import (
	"github.com/numgrid/numgrid/internal/dispatch"
	"github.com/numgrid/numgrid/internal/engine"
	"github.com/numgrid/numgrid/internal/matrix"
)

// Options describes the shape-specific combination algorithms available to
// one operator. Every field is optional; any combination of absent fields
// is a valid configuration that simply yields fewer entries.
type Options struct {
	// Op is the elementwise scalar operator to close over. When nil, the
	// produced handlers are context-bound instead: they resolve the
	// operator through the self reference attached to the returned map,
	// which the registry binds once the full entry point is assembled.
	Op *dispatch.Function

	// SparseSparse combines (sparse, sparse) operands.
	SparseSparse engine.Algorithm

	// DenseSparse combines (dense, sparse) operands.
	DenseSparse engine.Algorithm

	// SparseDense combines (sparse, dense) operands. Defaults to
	// DenseSparse, invoked with swapped positional order and the flip flag
	// set.
	SparseDense engine.Algorithm

	// SparseScalar combines (sparse, scalar) operands.
	SparseScalar engine.Algorithm

	// ScalarSparse combines (scalar, sparse) operands. Defaults to
	// SparseScalar unless ScalarSparseSet marks the field as deliberately
	// assigned, in which case its value is used as given, nil included.
	ScalarSparse    engine.Algorithm
	ScalarSparseSet bool

	// DenseScalar gates whether dense-scalar entries are registered at
	// all; it defaults to SparseScalar. The function value itself is never
	// invoked: dense-scalar traffic always goes through the mixed/scalar
	// engine directly.
	DenseScalar engine.Algorithm

	// ScalarTag is the dispatch tag accepted in scalar positions.
	// Defaults to the wildcard tag.
	ScalarTag dispatch.Tag
}

// Build produces the signature map for opts. It is pure and total: no
// combination of present and absent fields fails.
//
// Dense-family entries are always present. Entries involving sparse or
// scalar positions appear only when the corresponding algorithm (or its
// default source) is supplied. If Op carries pre-existing signatures of its
// own, those are merged in last and win any key collision.
func Build(opts Options) *dispatch.SignatureMap {
	sd := opts.SparseDense
	if sd == nil {
		sd = opts.DenseSparse
	}
	ds := opts.DenseScalar
	if ds == nil {
		ds = opts.SparseScalar
	}
	sS := opts.ScalarSparse
	if !opts.ScalarSparseSet {
		sS = opts.SparseScalar
	}
	scalar := opts.ScalarTag
	if scalar == "" {
		scalar = dispatch.TagAny
	}

	sigs := dispatch.NewSignatureMap()

	// Binding mode. With Op present every handler closes over the operator
	// directly. Without it, handlers read through a once-settable self
	// reference so that, by call time, they apply the fully assembled
	// entry point, including any scalar entries merged in after this
	// builder ran.
	var opAt func() engine.Op
	if opts.Op != nil {
		closed := engine.DispatchOp(opts.Op)
		opAt = func() engine.Op { return closed }
	} else {
		self := dispatch.NewRef()
		sigs.BindSelf(self)
		opAt = func() engine.Op { return engine.DispatchOp(self.Resolve()) }
	}

	// Dense family, registered unconditionally. Raw arrays are wrapped
	// into dense matrices on the way in; array-to-array results are
	// unwrapped back to raw rows.
	sigs.Put(dispatch.Sig(dispatch.TagDense, dispatch.TagDense), func(x, y any) (any, error) {
		return engine.DensePair(x.(*matrix.Dense), y.(*matrix.Dense), opAt())
	})
	sigs.Put(dispatch.Sig(dispatch.TagArray, dispatch.TagArray), func(x, y any) (any, error) {
		dx, dy, err := wrapPair(x, y)
		if err != nil {
			return nil, err
		}
		out, err := engine.DensePair(dx, dy, opAt())
		if err != nil {
			return nil, err
		}
		return out.ToRows(), nil
	})
	sigs.Put(dispatch.Sig(dispatch.TagArray, dispatch.TagDense), func(x, y any) (any, error) {
		dx, err := wrap(x)
		if err != nil {
			return nil, err
		}
		return engine.DensePair(dx, y.(*matrix.Dense), opAt())
	})
	sigs.Put(dispatch.Sig(dispatch.TagDense, dispatch.TagArray), func(x, y any) (any, error) {
		dy, err := wrap(y)
		if err != nil {
			return nil, err
		}
		return engine.DensePair(x.(*matrix.Dense), dy, opAt())
	})

	// Sparse-involving entries, gated on the supplied algorithms.
	if opts.SparseSparse != nil {
		ss := opts.SparseSparse
		sigs.Put(dispatch.Sig(dispatch.TagSparse, dispatch.TagSparse), func(x, y any) (any, error) {
			return ss(x.(*matrix.Sparse), y, opAt(), false)
		})
	}
	if opts.DenseSparse != nil {
		dsAlg := opts.DenseSparse
		sigs.Put(dispatch.Sig(dispatch.TagDense, dispatch.TagSparse), func(x, y any) (any, error) {
			return dsAlg(x.(*matrix.Dense), y, opAt(), false)
		})
		sigs.Put(dispatch.Sig(dispatch.TagArray, dispatch.TagSparse), func(x, y any) (any, error) {
			dx, err := wrap(x)
			if err != nil {
				return nil, err
			}
			return dsAlg(dx, y, opAt(), false)
		})
	}
	if sd != nil {
		sdAlg := sd
		// The algorithm always receives (dense, sparse); the flip flag
		// records that the caller's logical order was (sparse, dense).
		sigs.Put(dispatch.Sig(dispatch.TagSparse, dispatch.TagDense), func(x, y any) (any, error) {
			return sdAlg(y.(*matrix.Dense), x, opAt(), true)
		})
		sigs.Put(dispatch.Sig(dispatch.TagSparse, dispatch.TagArray), func(x, y any) (any, error) {
			dy, err := wrap(y)
			if err != nil {
				return nil, err
			}
			return sdAlg(dy, x, opAt(), true)
		})
	}

	// Scalar entries. Dense-scalar forms never invoke the gating
	// algorithm's value: the mixed/scalar engine serves them directly.
	if ds != nil {
		sigs.Put(dispatch.Sig(dispatch.TagDense, scalar), func(x, y any) (any, error) {
			return engine.MixedScalar(x.(*matrix.Dense), y, opAt(), false)
		})
		sigs.Put(dispatch.Sig(scalar, dispatch.TagDense), func(x, y any) (any, error) {
			return engine.MixedScalar(y.(*matrix.Dense), x, opAt(), true)
		})
		sigs.Put(dispatch.Sig(dispatch.TagArray, scalar), func(x, y any) (any, error) {
			dx, err := wrap(x)
			if err != nil {
				return nil, err
			}
			out, err := engine.MixedScalar(dx, y, opAt(), false)
			if err != nil {
				return nil, err
			}
			return out.ToRows(), nil
		})
		sigs.Put(dispatch.Sig(scalar, dispatch.TagArray), func(x, y any) (any, error) {
			dy, err := wrap(y)
			if err != nil {
				return nil, err
			}
			out, err := engine.MixedScalar(dy, x, opAt(), true)
			if err != nil {
				return nil, err
			}
			return out.ToRows(), nil
		})
	}
	if opts.SparseScalar != nil {
		ssAlg := opts.SparseScalar
		sigs.Put(dispatch.Sig(dispatch.TagSparse, scalar), func(x, y any) (any, error) {
			return ssAlg(x.(*matrix.Sparse), y, opAt(), false)
		})
	}
	if sS != nil {
		sSAlg := sS
		sigs.Put(dispatch.Sig(scalar, dispatch.TagSparse), func(x, y any) (any, error) {
			return sSAlg(y.(*matrix.Sparse), x, opAt(), true)
		})
	}

	// The operator's own pre-existing signatures win over anything built
	// above, so an operator defined as a scalar function keeps control of
	// its scalar dispatch while gaining matrix behavior.
	if opts.Op != nil {
		sigs.Merge(opts.Op.Signatures())
	}
	return sigs
}

// wrap routes a raw nested slice through the matrix constructor; dense
// matrices pass through unchanged.
func wrap(v any) (*matrix.Dense, error) {
	if d, ok := v.(*matrix.Dense); ok {
		return d, nil
	}
	return matrix.FromRows(v.([][]float64))
}

func wrapPair(x, y any) (*matrix.Dense, *matrix.Dense, error) {
	dx, err := wrap(x)
	if err != nil {
		return nil, nil, err
	}
	dy, err := wrap(y)
	if err != nil {
		return nil, nil, err
	}
	return dx, dy, nil
}
