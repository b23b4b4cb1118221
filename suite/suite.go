// Copyright 2026 The numgrid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package suite builds multiple-dispatch signature tables for binary
// elementwise matrix operations.
//
// An operator is described by suite.Options: its scalar rule and the sparse
// combination algorithms it supports. Build fills in the defaulting chain
// (SparseDense from DenseSparse, ScalarSparse and the dense-scalar gate
// from SparseScalar), wires the flip flag for the swapped-order entries,
// and returns the complete signature map ready for registration:
//
//	sigs := suite.Build(suite.Options{
//	    Op:           addFn,
//	    SparseSparse: engine.PatternUnion,
//	    DenseSparse:  engine.DenseSparsePattern,
//	    SparseScalar: engine.SparseScalarFull,
//	    ScalarTag:    dispatch.TagNumber,
//	})
//	registry.MustRegister("add", sigs)
//
// When Options.Op is nil the handlers are context-bound: they resolve the
// operator through the self reference carried by the returned map, which
// the registry binds once the complete entry point, including any scalar
// signatures added after Build, is assembled.
package suite

import (
	"github.com/numgrid/numgrid/dispatch"
	"github.com/numgrid/numgrid/internal/suite"
)

// Options describes the shape-specific combination algorithms available to
// one operator. Every field is optional.
type Options = suite.Options

// Build produces the signature map for opts.
func Build(opts Options) *dispatch.SignatureMap {
	return suite.Build(opts)
}
