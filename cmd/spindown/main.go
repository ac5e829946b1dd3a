package main

import (
	"flag"
	"os"

	"adcs"

	kitlog "github.com/go-kit/kit/log"
)

var (
	step     = flag.Float64("step", 0.01, "integration step size in seconds")
	duration = flag.Float64("duration", 100, "simulated duration in seconds")
	inertia  = flag.Float64("damperInertia", 0.1, "damper inertia in kg·m²")
	coeff    = flag.Float64("damperCoeff", 0.5, "viscous damping coefficient in N·m·s/rad")
)

func main() {
	flag.Parse()
	logger := kitlog.With(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout)), "cmd", "spindown")

	// Tumbling asymmetric body with an internal damper.
	body := adcs.NewInertia(2, 1, 3, 0, 0, 0)
	s := adcs.NewState(body)
	s.Velocity = adcs.NewAngularVelocity(0.3, 1.0, 0.1)
	s.Damper = adcs.NewKaneDamper(*inertia, *coeff)
	logger.Log("level", "info", "ω0(rad/s)", s.Velocity, "E0(J)", s.KineticEnergy())

	hist := make(chan adcs.State, 1000)
	prop := adcs.NewPropagation(s, adcs.NewRungeKutta4(*step), nil, *duration, hist)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		i := 0
		for snap := range hist {
			if i%1000 == 0 {
				logger.Log("level", "info", "t(s)", snap.Time, "ω(rad/s)", snap.Velocity, "E(J)", snap.KineticEnergy())
			}
			i++
		}
	}()
	prop.Propagate()
	<-drained

	final := prop.State
	logger.Log("level", "notice", "status", "finished",
		"t(s)", final.Time, "ω(rad/s)", final.Velocity, "ωd(rad/s)", final.Damper.Velocity,
		"E(J)", final.KineticEnergy(), "|q|", final.Attitude.Norm())

	// Cross-check against the generic flat-vector solver.
	alt := adcs.PropagateODE(s, *step, int(*duration / *step))
	logger.Log("level", "info", "check", "ode", "ω(rad/s)", alt.Velocity, "E(J)", alt.KineticEnergy())
}
