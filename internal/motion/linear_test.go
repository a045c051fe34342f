package motion_test

import (
	"testing"
	"time"

	"github.com/aretw0/stagger/internal/motion"
	"github.com/aretw0/stagger/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestLinear_SettlesAfterDuration(t *testing.T) {
	l := motion.NewLinear(100*time.Millisecond, 50) // 5 frames
	snap := domain.Snapshot{{Key: "n", Transitioning: true}, {Key: "idle"}}

	for frame := 1; frame <= 4; frame++ {
		snap = l.Step(snap)
		assert.InDelta(t, float64(frame)*0.2, snap[0].Progress, 1e-9)
		assert.True(t, snap[0].Transitioning)
	}

	snap = l.Step(snap)
	assert.Equal(t, 1.0, snap[0].Progress)
	assert.Equal(t, domain.PhaseSettled, snap[0].Phase())
	assert.Equal(t, domain.PhaseIdle, snap[1].Phase())
}

func TestLinear_Defaults(t *testing.T) {
	l := motion.NewLinear(0, 0)
	next := l.Step(domain.Snapshot{{Key: "n", Transitioning: true}})
	assert.InDelta(t, 1.0/(motion.DefaultDuration.Seconds()*motion.DefaultFPS), next[0].Progress, 1e-9)
}

func TestInstant(t *testing.T) {
	snap := domain.Snapshot{{Key: "a", Progress: 0.3, Transitioning: true}, {Key: "b"}}

	next := motion.Instant{}.Step(snap)

	assert.Equal(t, domain.PhaseSettled, next[0].Phase())
	assert.Equal(t, domain.PhaseIdle, next[1].Phase())
	assert.True(t, snap[0].Transitioning, "input must not be modified")
}
