// Package dispatch implements a small multiple-dispatch runtime for binary
// operations. Operations are registered as maps from type-pair signatures to
// handlers; calls are routed by the runtime tags of the two arguments.
package dispatch

import "github.com/numgrid/numgrid/internal/matrix"

// Tag names a set of accepted concrete types in the dispatch vocabulary.
type Tag string

// The closed vocabulary used by signature keys. TagAny is a wildcard that
// matches every argument; TagUnknown is only ever produced by TagOf, never
// used as a key.
const (
	TagDense   Tag = "DenseMatrix"
	TagSparse  Tag = "SparseMatrix"
	TagArray   Tag = "Array"
	TagNumber  Tag = "number"
	TagBoolean Tag = "boolean"
	TagAny     Tag = "any"
	TagUnknown Tag = "unknown"
)

// TagOf returns the dispatch tag for a runtime value.
func TagOf(v any) Tag {
	switch v.(type) {
	case *matrix.Dense:
		return TagDense
	case *matrix.Sparse:
		return TagSparse
	case [][]float64:
		return TagArray
	case float64, float32, int, int32, int64, uint:
		return TagNumber
	case bool:
		return TagBoolean
	default:
		return TagUnknown
	}
}
