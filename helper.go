package adcs

import "gonum.org/v1/gonum/floats/scalar"

const (
	// relError is the componentwise tolerance of the Equals methods.
	relError = 1e-12
	// normTolerance bounds how far an attitude quaternion may drift off the
	// unit sphere before Validate flags it.
	normTolerance = 1e-10
)

// floatEqual returns whether a and b match within the given absolute
// tolerance.
func floatEqual(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}

// vectorsEqual returns whether both slices match element by element within
// the given absolute tolerance.
func vectorsEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}
