package registry_test

import (
	"testing"
	"time"

	"github.com/aretw0/stagger/internal/motion"
	"github.com/aretw0/stagger/pkg/domain"
	"github.com/aretw0/stagger/pkg/ports"
	"github.com/aretw0/stagger/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r := registry.Default()
	assert.Equal(t, []string{"instant", "linear", "spring"}, r.Names())

	settings := registry.Settings{FPS: 60, Stiffness: 170, Damping: 26, Duration: time.Second}

	spring, err := r.New("spring", settings)
	require.NoError(t, err)
	assert.IsType(t, &motion.Spring{}, spring)

	linear, err := r.New("linear", settings)
	require.NoError(t, err)
	next := linear.Step(domain.Snapshot{{Key: "n", Transitioning: true}})
	assert.InDelta(t, 1.0/60, next[0].Progress, 1e-9)

	instant, err := r.New("instant", settings)
	require.NoError(t, err)
	assert.True(t, instant.Step(domain.Snapshot{{Key: "n", Transitioning: true}}).Settled())
}

func TestRegistry_Unknown(t *testing.T) {
	_, err := registry.NewRegistry().New("bounce", registry.Settings{})
	assert.ErrorContains(t, err, "stepper not found: bounce")
}

func TestRegistry_Overwrite(t *testing.T) {
	r := registry.Default()
	called := false
	r.Register("spring", func(registry.Settings) ports.Stepper {
		called = true
		return motion.Instant{}
	})

	_, err := r.New("spring", registry.Settings{})
	require.NoError(t, err)
	assert.True(t, called)
}
