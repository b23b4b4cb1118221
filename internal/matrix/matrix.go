// Package matrix provides the core matrix value types for the numgrid library.
package matrix

// Matrix is the read interface shared by all matrix representations.
//
// At returns the logical element at (i, j), including implicit zeros for
// sparse representations. Implementations panic on out-of-range indices;
// index validity is a caller contract, not a runtime condition.
type Matrix interface {
	Rows() int
	Cols() int
	At(i, j int) float64
}

// SameShape reports whether two matrices have identical dimensions.
func SameShape(a, b Matrix) bool {
	return a.Rows() == b.Rows() && a.Cols() == b.Cols()
}
