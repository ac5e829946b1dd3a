package adcs

import "github.com/ChristopherRabotin/ode"

/* Bridge to the generic fixed-step solvers of the ode package. */

// flatBody exposes the coupled attitude and angular velocity equations as an
// ode.Integrable over a flat state vector: the four quaternion components,
// the three body rates, and the three damper rates when a damper is present.
type flatBody struct {
	state State
	max   uint64
}

// GetState returns the flattened state vector.
func (b *flatBody) GetState() []float64 {
	f := []float64{
		b.state.Attitude.W, b.state.Attitude.X, b.state.Attitude.Y, b.state.Attitude.Z,
		b.state.Velocity.X, b.state.Velocity.Y, b.state.Velocity.Z,
	}
	if b.state.Damper != nil {
		f = append(f, b.state.Damper.Velocity.X, b.state.Damper.Velocity.Y, b.state.Damper.Velocity.Z)
	}
	return f
}

// SetState writes a completed step back. The attitude is renormalized here
// because a flat vector solver cannot hold the unit-norm invariant itself.
func (b *flatBody) SetState(i uint64, f []float64) {
	b.state.Attitude = NewQuaternion(f[0], f[1], f[2], f[3]).Normalize()
	b.state.Velocity = NewAngularVelocity(f[4], f[5], f[6])
	if b.state.Damper != nil {
		d := *b.state.Damper
		d.Velocity = NewAngularVelocity(f[7], f[8], f[9])
		b.state.Damper = &d
	}
}

// Stop ends the propagation once the requested number of steps completed.
func (b *flatBody) Stop(i uint64) bool {
	return i >= b.max
}

// Func evaluates the derivatives of the flat state vector.
func (b *flatBody) Func(t float64, f []float64) []float64 {
	s := b.state
	s.Attitude = NewQuaternion(f[0], f[1], f[2], f[3])
	s.Velocity = NewAngularVelocity(f[4], f[5], f[6])
	if s.Damper != nil {
		d := *s.Damper
		d.Velocity = NewAngularVelocity(f[7], f[8], f[9])
		s.Damper = &d
	}
	qDot, wDot, damperAccel := Dynamics(s)
	out := []float64{
		qDot.W, qDot.X, qDot.Y, qDot.Z,
		wDot.X, wDot.Y, wDot.Z,
	}
	if s.Damper != nil {
		out = append(out, damperAccel.X, damperAccel.Y, damperAccel.Z)
	}
	return out
}

// PropagateODE advances the state by the given number of steps of size h
// using the generic RK4 of the ode package. The package integrators are
// preferred for long horizons because they renormalize the attitude inside
// every stage; this entry point serves callers already built around
// ode.Integrable.
func PropagateODE(s State, h float64, steps int) State {
	b := &flatBody{state: s, max: uint64(steps)}
	ode.NewRK4(0, h, b).Solve()
	b.state.Time = s.Time + float64(steps)*h
	return b.state
}
