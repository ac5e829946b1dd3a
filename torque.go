package adcs

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Torque defines a torque vector in N·m, given in the body frame.
type Torque struct {
	X, Y, Z float64
}

// NewTorque returns a new Torque from its components.
func NewTorque(x, y, z float64) Torque {
	return Torque{x, y, z}
}

// ZeroTorque returns the zero torque vector.
func ZeroTorque() Torque {
	return Torque{}
}

func (t Torque) vector() r3.Vector {
	return r3.Vector{X: t.X, Y: t.Y, Z: t.Z}
}

// Add returns the componentwise sum of both vectors.
func (t Torque) Add(o Torque) Torque {
	return Torque{t.X + o.X, t.Y + o.Y, t.Z + o.Z}
}

// Sub returns the componentwise difference of both vectors.
func (t Torque) Sub(o Torque) Torque {
	return Torque{t.X - o.X, t.Y - o.Y, t.Z - o.Z}
}

// Neg returns the negation of this vector.
func (t Torque) Neg() Torque {
	return Torque{-t.X, -t.Y, -t.Z}
}

// Scale returns this vector scaled by s.
func (t Torque) Scale(s float64) Torque {
	return Torque{s * t.X, s * t.Y, s * t.Z}
}

// Norm returns the Euclidean norm of this vector.
func (t Torque) Norm() float64 {
	return t.vector().Norm()
}

// Rotate returns this vector rotated by the given unit quaternion.
func (t Torque) Rotate(q Quaternion) Torque {
	x, y, z := rotateVector(q, t.X, t.Y, t.Z)
	return Torque{x, y, z}
}

// Equals returns true if both vectors match component by component.
func (t Torque) Equals(o Torque) bool {
	return math.Abs(t.X-o.X) < relError &&
		math.Abs(t.Y-o.Y) < relError &&
		math.Abs(t.Z-o.Z) < relError
}

func (t Torque) String() string {
	return fmt.Sprintf("i%1.6f + j%1.6f + k%1.6f", t.X, t.Y, t.Z)
}
