package ports

import "github.com/aretw0/stagger/pkg/domain"

// Stepper interpolates transitioning nodes by one frame.
// The sequencer decides whether a node starts; the stepper decides how it moves.
type Stepper interface {
	// Step returns a new snapshot with every transitioning node moved forward.
	// Implementations must keep progress monotonic and within [0, 1], and clear
	// Transitioning once a node settles at 1.0.
	Step(snap domain.Snapshot) domain.Snapshot
}
