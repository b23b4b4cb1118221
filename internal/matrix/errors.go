package matrix

import "errors"

// Sentinel errors returned by constructors and combination engines.
// Callers match them with errors.Is; wrapping adds the failing operation.
var (
	// ErrInvalidShape means a requested dimension is zero or negative.
	ErrInvalidShape = errors.New("invalid matrix shape")

	// ErrDimensionMismatch means two operands have incompatible shapes.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrRagged means a nested-slice input has rows of unequal length.
	ErrRagged = errors.New("ragged rows")

	// ErrNotScalar means a value in a scalar position has no numeric
	// interpretation.
	ErrNotScalar = errors.New("value is not a scalar")
)
