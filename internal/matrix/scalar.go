package matrix

import "fmt"

// ToScalar coerces a dispatch argument in a scalar position to float64.
// Signatures registered under the wildcard scalar tag can receive any
// value; non-numeric input is reported as ErrNotScalar.
func ToScalar(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("cannot use %T in a scalar position: %w", v, ErrNotScalar)
	}
}
