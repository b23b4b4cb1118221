// Copyright 2026 The numgrid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dispatch provides the multiple-dispatch runtime that routes a
// binary operation to the handler matching its argument types.
//
// Operations are registered as signature maps, usually produced by the
// suite package, and invoked through a Registry:
//
//	reg := dispatch.NewRegistry()
//	reg.MustRegister("add", suite.Build(opts))
//	sum, err := reg.Call("add", a, b)
package dispatch

import (
	"github.com/numgrid/numgrid/internal/dispatch"
)

// Tag names a set of accepted concrete types in the dispatch vocabulary.
type Tag = dispatch.Tag

// The closed tag vocabulary.
const (
	TagDense   = dispatch.TagDense
	TagSparse  = dispatch.TagSparse
	TagArray   = dispatch.TagArray
	TagNumber  = dispatch.TagNumber
	TagBoolean = dispatch.TagBoolean
	TagAny     = dispatch.TagAny
)

// Signature identifies the accepted types of the two operands of an entry.
type Signature = dispatch.Signature

// Handler combines two positional operands into a result.
type Handler = dispatch.Handler

// SignatureMap accumulates the entries of an operation before assembly.
type SignatureMap = dispatch.SignatureMap

// Function is a fully assembled multiple-dispatch entry point.
type Function = dispatch.Function

// Ref is a once-settable handle to a Function still being assembled.
type Ref = dispatch.Ref

// Registry holds named dispatch functions.
type Registry = dispatch.Registry

// Errors reported by the runtime.
var (
	ErrNoMatch          = dispatch.ErrNoMatch
	ErrDuplicate        = dispatch.ErrDuplicate
	ErrUnknownOperation = dispatch.ErrUnknownOperation
)

// TagOf returns the dispatch tag for a runtime value.
func TagOf(v any) Tag {
	return dispatch.TagOf(v)
}

// Sig is a convenience constructor for a Signature.
func Sig(left, right Tag) Signature {
	return dispatch.Sig(left, right)
}

// NewSignatureMap creates an empty signature map.
func NewSignatureMap() *SignatureMap {
	return dispatch.NewSignatureMap()
}

// NewFunction assembles a Function from a signature map, binding any self
// reference the map carries.
func NewFunction(name string, sigs *SignatureMap) (*Function, error) {
	return dispatch.NewFunction(name, sigs)
}

// NewRef creates an unbound reference cell.
func NewRef() *Ref {
	return dispatch.NewRef()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return dispatch.NewRegistry()
}
