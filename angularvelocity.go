package adcs

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// AngularVelocity defines an angular rate vector in rad/s, given in the body
// frame.
type AngularVelocity struct {
	X, Y, Z float64
}

// NewAngularVelocity returns a new AngularVelocity from its components.
func NewAngularVelocity(x, y, z float64) AngularVelocity {
	return AngularVelocity{x, y, z}
}

func (w AngularVelocity) vector() r3.Vector {
	return r3.Vector{X: w.X, Y: w.Y, Z: w.Z}
}

// Add returns the componentwise sum of both vectors.
func (w AngularVelocity) Add(o AngularVelocity) AngularVelocity {
	return AngularVelocity{w.X + o.X, w.Y + o.Y, w.Z + o.Z}
}

// Sub returns the componentwise difference of both vectors.
func (w AngularVelocity) Sub(o AngularVelocity) AngularVelocity {
	return AngularVelocity{w.X - o.X, w.Y - o.Y, w.Z - o.Z}
}

// Neg returns the negation of this vector.
func (w AngularVelocity) Neg() AngularVelocity {
	return AngularVelocity{-w.X, -w.Y, -w.Z}
}

// Scale returns this vector scaled by s.
func (w AngularVelocity) Scale(s float64) AngularVelocity {
	return AngularVelocity{s * w.X, s * w.Y, s * w.Z}
}

// Norm returns the Euclidean norm of this vector.
func (w AngularVelocity) Norm() float64 {
	return w.vector().Norm()
}

// Rotate returns this vector rotated by the given unit quaternion.
func (w AngularVelocity) Rotate(q Quaternion) AngularVelocity {
	x, y, z := rotateVector(q, w.X, w.Y, w.Z)
	return AngularVelocity{x, y, z}
}

// Diff returns the angular acceleration of a rigid body with the given
// inertia tensor under the given applied torque, per Euler's equations:
//
//	ω̇ = J^-1 (τ - ω × (J ω))
//
// A singular inertia tensor yields non-finite components.
func (w AngularVelocity) Diff(inertia Inertia, torque Torque) AngularVelocity {
	h := NewAngularMomentumFromProduct(inertia, w)

	// Gyroscopic contribution, -(ω × Jω), applied as a torque.
	gyro := w.vector().Cross(h.vector())
	t := torque.Add(Torque{-gyro.X, -gyro.Y, -gyro.Z})

	inv := inertia.inverse()
	return AngularVelocity{
		X: inv.J1*t.X + inv.J6*t.Y + inv.J5*t.Z,
		Y: inv.J6*t.X + inv.J2*t.Y + inv.J4*t.Z,
		Z: inv.J5*t.X + inv.J4*t.Y + inv.J3*t.Z,
	}
}

// Equals returns true if both vectors match component by component.
func (w AngularVelocity) Equals(o AngularVelocity) bool {
	return math.Abs(w.X-o.X) < relError &&
		math.Abs(w.Y-o.Y) < relError &&
		math.Abs(w.Z-o.Z) < relError
}

func (w AngularVelocity) String() string {
	return fmt.Sprintf("i%1.6f + j%1.6f + k%1.6f", w.X, w.Y, w.Z)
}
