package adcs

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestQuaternionAlgebra(t *testing.T) {
	a := NewQuaternion(0.3, -1.2, 0.7, 2.1)
	b := NewQuaternion(1.1, 0.4, -0.5, 0.9)
	c := NewQuaternion(-0.8, 2.2, 1.3, -0.1)
	// Associativity of addition.
	lhs := a.Add(b).Add(c)
	rhs := a.Add(b.Add(c))
	if !vectorsEqual([]float64{lhs.W, lhs.X, lhs.Y, lhs.Z}, []float64{rhs.W, rhs.X, rhs.Y, rhs.Z}, 1e-9) {
		t.Fatalf("addition is not associative: %s != %s", lhs, rhs)
	}
	// Additive inverse.
	zero := a.Add(a.Neg())
	if !zero.Equals(Quaternion{}) {
		t.Fatalf("a + (-a) = %s, expected zero", zero)
	}
	// Subtraction against negation.
	if !a.Sub(b).Equals(a.Add(b.Neg())) {
		t.Fatal("a - b does not match a + (-b)")
	}
}

func TestQuaternionProduct(t *testing.T) {
	i := NewQuaternion(0, 1, 0, 0)
	j := NewQuaternion(0, 0, 1, 0)
	k := NewQuaternion(0, 0, 0, 1)
	// Hamilton's defining relations.
	if !i.Mul(j).Equals(k) {
		t.Fatalf("i*j = %s, expected k", i.Mul(j))
	}
	if !j.Mul(i).Equals(k.Neg()) {
		t.Fatalf("j*i = %s, expected -k", j.Mul(i))
	}
	if !i.Mul(i).Equals(NewQuaternion(-1, 0, 0, 0)) {
		t.Fatalf("i*i = %s, expected -1", i.Mul(i))
	}
	// Identity element.
	q := NewQuaternion(0.3, -1.2, 0.7, 2.1)
	unit := IdentityQuaternion()
	if !q.Mul(unit).Equals(q) || !unit.Mul(q).Equals(q) {
		t.Fatal("unit quaternion is not the multiplicative identity")
	}
	// Associativity, non-commutativity.
	a := NewQuaternion(1.1, 0.4, -0.5, 0.9)
	b := NewQuaternion(-0.8, 2.2, 1.3, -0.1)
	pq := q.Mul(a).Mul(b)
	qp := q.Mul(a.Mul(b))
	if !vectorsEqual([]float64{pq.W, pq.X, pq.Y, pq.Z}, []float64{qp.W, qp.X, qp.Y, qp.Z}, 1e-9) {
		t.Fatalf("multiplication is not associative: %s != %s", pq, qp)
	}
	if a.Mul(b).Equals(b.Mul(a)) {
		t.Fatal("multiplication of generic quaternions should not commute")
	}
}

func TestQuaternionNormalization(t *testing.T) {
	q := NewQuaternion(3, -4, 12, 84)
	if !floatEqual(q.Normalize().Norm(), 1, 1e-9) {
		t.Fatalf("normalized quaternion has norm %1.12f", q.Normalize().Norm())
	}
	once := q.Normalize()
	twice := once.Normalize()
	if !vectorsEqual([]float64{once.W, once.X, once.Y, once.Z}, []float64{twice.W, twice.X, twice.Y, twice.Z}, 1e-15) {
		t.Fatal("normalize is not idempotent")
	}
	if err := once.Validate(); err != nil {
		t.Fatalf("normalized quaternion failed validation: %s", err)
	}
	if err := q.Validate(); err == nil {
		t.Fatal("non-unit quaternion passed validation")
	}
}

func TestQuaternionInverse(t *testing.T) {
	q := NewQuaternionFromRotation(0.7, 1, 2, 3)
	unit := q.Mul(q.Inv())
	if !floatEqual(unit.W, 1, 1e-9) || !floatEqual(unit.X, 0, 1e-9) ||
		!floatEqual(unit.Y, 0, 1e-9) || !floatEqual(unit.Z, 0, 1e-9) {
		t.Fatalf("q * inv(q) = %s, expected unit", unit)
	}
	// For a non-unit quaternion the inverse still satisfies q * inv(q) = 1.
	p := NewQuaternion(2, -1, 0.5, 3)
	unit = p.Mul(p.Inv())
	if !floatEqual(unit.W, 1, 1e-9) || !floatEqual(unit.X, 0, 1e-9) {
		t.Fatalf("q * inv(q) = %s for general q, expected unit", unit)
	}
}

func TestQuaternionFromRotation(t *testing.T) {
	for _, axis := range [][3]float64{{1, 0, 0}, {0, 3, 0}, {1, 1, 0}, {-2, 0.5, 7}} {
		q := NewQuaternionFromRotation(math.Pi/3, axis[0], axis[1], axis[2])
		if !floatEqual(q.Norm(), 1, 1e-9) {
			t.Fatalf("rotation quaternion about %v has norm %1.12f", axis, q.Norm())
		}
	}
	// Half angle convention: a rotation of π about Z is (0, 0, 0, 1).
	q := NewQuaternionFromRotation(math.Pi, 0, 0, 1)
	if !floatEqual(q.W, 0, 1e-9) || !floatEqual(q.Z, 1, 1e-9) {
		t.Fatalf("π rotation about Z gave %s", q)
	}
}

func TestQuaternionDiff(t *testing.T) {
	// At identity attitude, the kinematic derivative is half the rate lifted
	// to a pure quaternion.
	ω := NewAngularVelocity(0.2, -0.4, 0.6)
	qDot := IdentityQuaternion().Diff(ω)
	if !qDot.Equals(NewQuaternion(0, 0.1, -0.2, 0.3)) {
		t.Fatalf("kinematic derivative at identity is %s", qDot)
	}
}

func TestRotationRoundTrip(t *testing.T) {
	q := NewQuaternionFromRotation(math.Pi/3, 1, 1, 0)
	v := NewAngularVelocity(1, 0, 0)
	back := v.Rotate(q).Rotate(q.Inv())
	if !vectorsEqual([]float64{back.X, back.Y, back.Z}, []float64{1, 0, 0}, 1e-12) {
		t.Fatalf("round trip moved the vector to %s", back)
	}
}

func TestRotationAgainstMathgl(t *testing.T) {
	angle := 0.7
	axis := mgl64.Vec3{1, 2, 3}.Normalize()
	ref := mgl64.QuatRotate(angle, axis).Rotate(mgl64.Vec3{0.3, -1.1, 0.25})

	q := NewQuaternionFromRotation(angle, 1, 2, 3)
	got := NewAngularVelocity(0.3, -1.1, 0.25).Rotate(q)
	if !vectorsEqual([]float64{got.X, got.Y, got.Z}, []float64{ref.X(), ref.Y(), ref.Z()}, 1e-12) {
		t.Fatalf("sandwich rotation %s does not match mathgl %v", got, ref)
	}
}
