package adcs

import (
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

/* Handles the rotational propagations. */

// TorqueLaw provides the torque applied to the body at a given simulation
// time.
type TorqueLaw interface {
	Control(t float64) Torque
}

// ConstantTorque is the torque law applying the same torque at all times.
type ConstantTorque Torque

// Control implements TorqueLaw.
func (c ConstantTorque) Control(t float64) Torque {
	return Torque(c)
}

// Propagation advances a state with a fixed-step integrator over a time
// horizon.
type Propagation struct {
	State      State      // Current state. Replaced wholesale at each step.
	Integrator Integrator // Fixed-step integrator advancing the state.
	Law        TorqueLaw  // Optional applied-torque law. Nil keeps the state's torque.
	end        float64
	histChan   chan<- State
	stopChan   chan bool
	logger     kitlog.Logger
	done       bool
}

// NewPropagation returns a new Propagation of the given state over a duration
// in seconds. If histChan is not nil, every state snapshot is streamed to it,
// starting with the initial one; the channel is closed when the propagation
// ends. The caller must drain it or size its buffer for the whole horizon.
func NewPropagation(s State, integ Integrator, law TorqueLaw, duration float64, histChan chan<- State) *Propagation {
	logger := kitlog.With(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout)), "integ", integ)
	p := &Propagation{
		State:      s,
		Integrator: integ,
		Law:        law,
		end:        s.Time + duration,
		histChan:   histChan,
		stopChan:   make(chan bool, 1),
		logger:     logger,
	}
	// Write the first data point.
	if histChan != nil {
		histChan <- s
	}
	return p
}

// LogStatus logs the current time, momentum and energy of the body.
func (p *Propagation) LogStatus() {
	p.logger.Log("level", "info", "subsys", "prop", "t(s)", p.State.Time,
		"H(N.m.s)", p.State.Momentum().Norm(), "E(J)", p.State.KineticEnergy())
}

// Propagate starts the propagation. Blocking.
func (p *Propagation) Propagate() {
	// Status report ticker for long runs.
	p.LogStatus()
	ticker := time.NewTicker(1 * time.Minute)
	go func() {
		for range ticker.C {
			if p.done {
				break
			}
			p.LogStatus()
		}
	}()
	h := p.Integrator.StepSize()
	// The half-step guard keeps accumulated floating point time from adding
	// or dropping a step.
	for p.State.Time < p.end-h/2 {
		select {
		case <-p.stopChan:
			p.done = true
		default:
			if p.Law != nil {
				p.State.Torque = p.Law.Control(p.State.Time)
			}
			p.State = p.Integrator.Step(p.State)
			if p.histChan != nil {
				p.histChan <- p.State
			}
		}
		if p.done {
			break
		}
	}
	p.done = true
	ticker.Stop()
	if p.histChan != nil {
		close(p.histChan)
	}
	p.logger.Log("level", "notice", "subsys", "prop", "status", "finished", "t(s)", p.State.Time)
}

// StopPropagation stops the propagation before the horizon is reached.
func (p *Propagation) StopPropagation() {
	p.stopChan <- true
}
