package adcs

// Integrator advances a state by one fixed time step.
type Integrator interface {
	// Step advances the state by the integrator's step size. The attitude
	// quaternion of the returned state is renormalized.
	Step(s State) State
	// StepSize returns the fixed step size in seconds.
	StepSize() float64
}

// Dynamics returns the time derivatives of the state: attitude derivative,
// body angular acceleration, and damper angular acceleration (zero when no
// damper is present). All integrators share this routine.
func Dynamics(s State) (Quaternion, AngularVelocity, AngularVelocity) {
	torque := s.Torque
	var damperAccel AngularVelocity
	if s.Damper != nil {
		// The damper applies its viscous torque to the body and receives the
		// opposite torque, Newton's third law in shared body coordinates.
		coupling := s.Damper.Torque(s.Velocity)
		torque = torque.Add(coupling)
		damperAccel = s.Damper.Velocity.Diff(s.Damper.Inertia, coupling.Neg())
	}
	qDot := s.Attitude.Diff(s.Velocity)
	wDot := s.Velocity.Diff(s.Inertia, torque)
	return qDot, wDot, damperAccel
}

// advance returns a copy of s moved h along the given derivatives, with the
// attitude renormalized. Time is left untouched; Step owns the clock.
func advance(s State, h float64, qDot Quaternion, wDot, damperAccel AngularVelocity) State {
	next := s
	next.Attitude = s.Attitude.Add(qDot.Scale(h)).Normalize()
	next.Velocity = s.Velocity.Add(wDot.Scale(h))
	if s.Damper != nil {
		d := *s.Damper
		d.Velocity = s.Damper.Velocity.Add(damperAccel.Scale(h))
		next.Damper = &d
	}
	return next
}

// ForwardEuler integrates rigid-body motion with the explicit first-order
// Euler method.
type ForwardEuler struct {
	h float64
}

// NewForwardEuler returns a forward Euler integrator with step size h seconds.
func NewForwardEuler(h float64) ForwardEuler {
	return ForwardEuler{h}
}

// StepSize returns the fixed step size in seconds.
func (fe ForwardEuler) StepSize() float64 {
	return fe.h
}

// Step advances the state by one Euler step.
func (fe ForwardEuler) Step(s State) State {
	qDot, wDot, damperAccel := Dynamics(s)
	next := advance(s, fe.h, qDot, wDot, damperAccel)
	next.Time = s.Time + fe.h
	return next
}

func (fe ForwardEuler) String() string {
	return "Euler"
}

// RungeKutta4 integrates rigid-body motion with the classical fourth-order
// Runge-Kutta method. Every intermediate stage renormalizes the attitude so
// the sandwich rotation and the gyroscopic coupling stay on the unit sphere.
type RungeKutta4 struct {
	h float64
}

// NewRungeKutta4 returns a fourth-order Runge-Kutta integrator with step size
// h seconds.
func NewRungeKutta4(h float64) RungeKutta4 {
	return RungeKutta4{h}
}

// StepSize returns the fixed step size in seconds.
func (rk RungeKutta4) StepSize() float64 {
	return rk.h
}

// Step advances the state by one Runge-Kutta step.
func (rk RungeKutta4) Step(s State) State {
	k1q, k1w, k1d := Dynamics(s)
	k2q, k2w, k2d := Dynamics(advance(s, 0.5*rk.h, k1q, k1w, k1d))
	k3q, k3w, k3d := Dynamics(advance(s, 0.5*rk.h, k2q, k2w, k2d))
	k4q, k4w, k4d := Dynamics(advance(s, rk.h, k3q, k3w, k3d))

	qDot := k1q.Add(k2q.Scale(2)).Add(k3q.Scale(2)).Add(k4q).Scale(1.0 / 6.0)
	wDot := k1w.Add(k2w.Scale(2)).Add(k3w.Scale(2)).Add(k4w).Scale(1.0 / 6.0)
	damperAccel := k1d.Add(k2d.Scale(2)).Add(k3d.Scale(2)).Add(k4d).Scale(1.0 / 6.0)

	next := advance(s, rk.h, qDot, wDot, damperAccel)
	next.Time = s.Time + rk.h
	return next
}

func (rk RungeKutta4) String() string {
	return "RK4"
}
