package adcs

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Inertia defines a symmetric inertia tensor in Voigt notation. The six
// degrees of freedom map onto the full matrix as
//
//	J = [[ J1 J6 J5 ]
//	     [ J6 J2 J4 ]
//	     [ J5 J4 J3 ]]
//
// Physical validity requires the matrix to be positive-definite; the dynamics
// assume it but do not check (a singular tensor propagates non-finite values).
type Inertia struct {
	J1, J2, J3, J4, J5, J6 float64
}

// NewInertia returns a new inertia tensor from its Voigt components.
func NewInertia(j1, j2, j3, j4, j5, j6 float64) Inertia {
	return Inertia{j1, j2, j3, j4, j5, j6}
}

// NewIsotropicInertia returns the inertia tensor of a spherically symmetric
// body, s times the identity.
func NewIsotropicInertia(s float64) Inertia {
	return Inertia{J1: s, J2: s, J3: s}
}

// Matrix returns the full symmetric matrix form of this tensor.
func (j Inertia) Matrix() *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		j.J1, j.J6, j.J5,
		j.J6, j.J2, j.J4,
		j.J5, j.J4, j.J3,
	})
}

// det returns the determinant of the tensor, expanded along the first row.
func (j Inertia) det() float64 {
	return j.J1*(j.J2*j.J3-j.J4*j.J4) +
		j.J6*(j.J4*j.J5-j.J3*j.J6) +
		j.J5*(j.J4*j.J6-j.J2*j.J5)
}

// inverse returns the tensor inverse in Voigt notation, the symmetric
// cofactor matrix divided by the determinant. A singular tensor yields
// non-finite components.
func (j Inertia) inverse() Inertia {
	det := j.det()
	return Inertia{
		J1: (j.J2*j.J3 - j.J4*j.J4) / det,
		J2: (j.J1*j.J3 - j.J5*j.J5) / det,
		J3: (j.J1*j.J2 - j.J6*j.J6) / det,
		J4: (j.J5*j.J6 - j.J1*j.J4) / det,
		J5: (j.J4*j.J6 - j.J2*j.J5) / det,
		J6: (j.J5*j.J4 - j.J3*j.J6) / det,
	}
}

// Validate returns an error if this tensor is not positive-definite.
// Advisory only, the integrators never call it.
func (j Inertia) Validate() error {
	var chol mat.Cholesky
	if !chol.Factorize(j.Matrix()) {
		return fmt.Errorf("inertia tensor is not positive-definite: %s", j)
	}
	return nil
}

func (j Inertia) String() string {
	return fmt.Sprintf("[%10.6f %10.6f %10.6f]\n[%10.6f %10.6f %10.6f]\n[%10.6f %10.6f %10.6f]",
		j.J1, j.J6, j.J5,
		j.J6, j.J2, j.J4,
		j.J5, j.J4, j.J3)
}
