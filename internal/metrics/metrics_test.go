package metrics_test

import (
	"testing"
	"time"

	"github.com/aretw0/stagger/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Register(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveTick(2*time.Millisecond, 3)
	m.Triggers.WithLabelValues("a").Inc()
	m.Settles.WithLabelValues("a").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 6)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Ticks))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.NodesSettled))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Triggers.WithLabelValues("a")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AdvanceDuration))
}

func TestMetrics_NilRegisterer(t *testing.T) {
	m := metrics.New(nil)
	m.ValidationFailures.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures))
}
