package motion

import (
	"time"

	"github.com/aretw0/stagger/pkg/domain"
)

// DefaultDuration is how long a Linear stepper takes from 0 to 1.
const DefaultDuration = 400 * time.Millisecond

// Linear moves transitioning nodes toward 1.0 at constant speed.
type Linear struct {
	delta float64
}

// NewLinear creates a stepper that covers the full range in d at fps frames per second.
func NewLinear(d time.Duration, fps int) *Linear {
	if d <= 0 {
		d = DefaultDuration
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	frames := d.Seconds() * float64(fps)
	if frames < 1 {
		frames = 1
	}
	return &Linear{delta: 1.0 / frames}
}

// Step advances every transitioning node by one frame.
func (l *Linear) Step(snap domain.Snapshot) domain.Snapshot {
	next := snap.Clone()
	for i, n := range next {
		if !n.Transitioning {
			continue
		}
		p := n.Progress + l.delta
		if p >= 1.0-1e-9 {
			next[i].Progress = 1.0
			next[i].Velocity = 0
			next[i].Transitioning = false
			continue
		}
		next[i].Progress = p
		next[i].Velocity = l.delta
	}
	return next
}

// Instant settles every transitioning node in a single frame.
type Instant struct{}

// Step implements ports.Stepper.
func (Instant) Step(snap domain.Snapshot) domain.Snapshot {
	next := snap.Clone()
	for i := range next {
		if next[i].Transitioning {
			next[i].Progress = 1.0
			next[i].Velocity = 0
			next[i].Transitioning = false
		}
	}
	return next
}
