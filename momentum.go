package adcs

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// AngularMomentum defines an angular momentum vector in N·m·s, given in the
// body frame. It is a derived, diagnostic quantity and is not part of the
// integrated state; AngularVelocity.Diff uses it only as the J ω product.
type AngularMomentum struct {
	X, Y, Z float64
}

// NewAngularMomentum returns a new AngularMomentum from its components.
func NewAngularMomentum(x, y, z float64) AngularMomentum {
	return AngularMomentum{x, y, z}
}

// ZeroAngularMomentum returns the zero angular momentum vector.
func ZeroAngularMomentum() AngularMomentum {
	return AngularMomentum{}
}

// NewAngularMomentumFromProduct returns H = J ω for the given inertia tensor
// and angular velocity, expanded in Voigt notation.
func NewAngularMomentumFromProduct(inertia Inertia, w AngularVelocity) AngularMomentum {
	return AngularMomentum{
		X: inertia.J1*w.X + inertia.J6*w.Y + inertia.J5*w.Z,
		Y: inertia.J6*w.X + inertia.J2*w.Y + inertia.J4*w.Z,
		Z: inertia.J5*w.X + inertia.J4*w.Y + inertia.J3*w.Z,
	}
}

func (h AngularMomentum) vector() r3.Vector {
	return r3.Vector{X: h.X, Y: h.Y, Z: h.Z}
}

// Add returns the componentwise sum of both vectors.
func (h AngularMomentum) Add(o AngularMomentum) AngularMomentum {
	return AngularMomentum{h.X + o.X, h.Y + o.Y, h.Z + o.Z}
}

// Sub returns the componentwise difference of both vectors.
func (h AngularMomentum) Sub(o AngularMomentum) AngularMomentum {
	return AngularMomentum{h.X - o.X, h.Y - o.Y, h.Z - o.Z}
}

// Neg returns the negation of this vector.
func (h AngularMomentum) Neg() AngularMomentum {
	return AngularMomentum{-h.X, -h.Y, -h.Z}
}

// Scale returns this vector scaled by s.
func (h AngularMomentum) Scale(s float64) AngularMomentum {
	return AngularMomentum{s * h.X, s * h.Y, s * h.Z}
}

// Norm returns the Euclidean norm of this vector.
func (h AngularMomentum) Norm() float64 {
	return h.vector().Norm()
}

// Rotate returns this vector rotated by the given unit quaternion.
func (h AngularMomentum) Rotate(q Quaternion) AngularMomentum {
	x, y, z := rotateVector(q, h.X, h.Y, h.Z)
	return AngularMomentum{x, y, z}
}

// Equals returns true if both vectors match component by component.
func (h AngularMomentum) Equals(o AngularMomentum) bool {
	return math.Abs(h.X-o.X) < relError &&
		math.Abs(h.Y-o.Y) < relError &&
		math.Abs(h.Z-o.Z) < relError
}

func (h AngularMomentum) String() string {
	return fmt.Sprintf("i%1.6f + j%1.6f + k%1.6f", h.X, h.Y, h.Z)
}
