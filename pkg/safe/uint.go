// Package safe provides helpers for validated numeric conversions.
package safe

import (
	"fmt"
	"math"
)

// Signed lists the signed integer kinds accepted by Uint64.
type Signed interface {
	~int | ~int32 | ~int64
}

// Uint64 converts a signed integer to uint64, rejecting negatives.
func Uint64[T Signed](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Positive returns v when it is a finite number greater than zero.
func Positive(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("value %v is not finite", v)
	}
	if v <= 0 {
		return 0, fmt.Errorf("value %v is not positive", v)
	}
	return v, nil
}

// NonNegative returns v when it is a finite number greater than or equal to zero.
func NonNegative(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("value %v is not finite", v)
	}
	if v < 0 {
		return 0, fmt.Errorf("value %v is negative", v)
	}
	return v, nil
}
