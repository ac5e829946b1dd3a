package adcs

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion defines a quaternion with scalar part W and vector part X, Y, Z.
// When normalized it encodes a rotation from the body frame to the inertial
// frame; general quaternions carry no norm invariant.
type Quaternion struct {
	W, X, Y, Z float64
}

// NewQuaternion returns a new Quaternion from its four components.
func NewQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{w, x, y, z}
}

// IdentityQuaternion returns the unit quaternion (1, 0, 0, 0).
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// NewQuaternionFromVector returns the pure quaternion (0, x, y, z).
func NewQuaternionFromVector(x, y, z float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z}
}

// NewQuaternionFromRotation returns the unit quaternion encoding a rotation of
// the given angle (in radians) about the given axis. The axis is rescaled to
// unit norm; a zero axis yields a non-finite quaternion.
func NewQuaternionFromRotation(angle, x, y, z float64) Quaternion {
	c := math.Cos(angle / 2)
	s := math.Sin(angle / 2)
	a := NewQuaternionFromVector(x, y, z).Normalize()
	return Quaternion{W: c, X: s * a.X, Y: s * a.Y, Z: s * a.Z}
}

func (q Quaternion) number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func newQuaternionFromNumber(n quat.Number) Quaternion {
	return Quaternion{W: n.Real, X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}

// Add returns the componentwise sum of both quaternions.
func (q Quaternion) Add(o Quaternion) Quaternion {
	return newQuaternionFromNumber(quat.Add(q.number(), o.number()))
}

// Sub returns the componentwise difference of both quaternions.
func (q Quaternion) Sub(o Quaternion) Quaternion {
	return newQuaternionFromNumber(quat.Sub(q.number(), o.number()))
}

// Neg returns the negation of this quaternion.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Scale returns this quaternion scaled by s.
func (q Quaternion) Scale(s float64) Quaternion {
	return newQuaternionFromNumber(quat.Scale(s, q.number()))
}

// Mul returns the Hamilton product of both quaternions. The product is
// associative and not commutative; rotations compose as qTotal = qLater
// multiplied by qEarlier.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return newQuaternionFromNumber(quat.Mul(q.number(), o.number()))
}

// Norm returns the Euclidean norm of this quaternion.
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.number())
}

// Normalize returns the unit quaternion in the direction of this quaternion.
// The zero quaternion yields non-finite components.
func (q Quaternion) Normalize() Quaternion {
	return q.Scale(1 / q.Norm())
}

// Inv returns the quaternion inverse, the conjugate divided by the squared
// norm. For a unit quaternion this equals the conjugate.
func (q Quaternion) Inv() Quaternion {
	return newQuaternionFromNumber(quat.Inv(q.number()))
}

// Diff returns the time derivative of this attitude quaternion given an
// angular velocity in the body frame, one half of q times (0, ω).
func (q Quaternion) Diff(w AngularVelocity) Quaternion {
	omega := NewQuaternionFromVector(w.X, w.Y, w.Z)
	return q.Mul(omega).Scale(0.5)
}

// Equals returns true if both quaternions match component by component.
func (q Quaternion) Equals(o Quaternion) bool {
	return math.Abs(q.W-o.W) < relError &&
		math.Abs(q.X-o.X) < relError &&
		math.Abs(q.Y-o.Y) < relError &&
		math.Abs(q.Z-o.Z) < relError
}

// Validate returns an error if this quaternion does not have unit norm within
// tolerance. Advisory only, the integrators never call it.
func (q Quaternion) Validate() error {
	if math.Abs(q.Norm()-1) > normTolerance {
		return fmt.Errorf("quaternion norm %1.12f is not unit", q.Norm())
	}
	return nil
}

func (q Quaternion) String() string {
	return fmt.Sprintf("%1.6f + i%1.6f + j%1.6f + k%1.6f", q.W, q.X, q.Y, q.Z)
}

// rotateVector applies the sandwich q v q^-1 to the vector (x, y, z) lifted to
// a pure quaternion, and returns the vector part of the result.
func rotateVector(q Quaternion, x, y, z float64) (float64, float64, float64) {
	p := q.number()
	r := quat.Mul(quat.Mul(p, quat.Number{Imag: x, Jmag: y, Kmag: z}), quat.Inv(p))
	return r.Imag, r.Jmag, r.Kmag
}
