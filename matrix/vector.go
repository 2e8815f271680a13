package matrix

// CloneVector returns a deep copy of v (nil stays nil).
// Complexity: O(n).
func CloneVector(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// GrowVector returns a copy of v extended by extra zero entries.
// Stage 1 (Validate): extra must be non-negative.
// Stage 2 (Execute): allocate exactly once and copy.
// Complexity: O(n+extra).
func GrowVector(v []float64, extra int) ([]float64, error) {
	if extra < 0 {
		return nil, ErrInvalidDimensions
	}
	out := make([]float64, len(v)+extra)
	copy(out, v)

	return out, nil
}

// Dot returns the inner product of a and b.
// Stage 1 (Validate): equal lengths.
// Stage 2 (Execute): accumulate left to right (deterministic rounding order).
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var (
		sum float64
		i   int
	)
	for i = 0; i < len(a); i++ {
		sum += a[i] * b[i]
	}

	return sum, nil
}
