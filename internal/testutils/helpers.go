// Package testutils holds steppers and fixtures shared by the test suites.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/stagger/internal/motion"
	"github.com/aretw0/stagger/pkg/domain"
	"github.com/stretchr/testify/require"
)

// StepFunc adapts a function to ports.Stepper.
type StepFunc func(domain.Snapshot) domain.Snapshot

// Step implements ports.Stepper.
func (f StepFunc) Step(s domain.Snapshot) domain.Snapshot { return f(s) }

// Jump settles every transitioning node in a single frame, so a chain of N
// nodes settles in exactly N ticks.
var Jump = StepFunc(motion.Instant{}.Step)

// Frozen never moves anything, so a started scene never settles.
var Frozen = StepFunc(func(s domain.Snapshot) domain.Snapshot { return s.Clone() })

// IntroScene is a two-node YAML scene: "tagline" starts when "logo" is halfway.
const IntroScene = `name: intro
nodes:
  - key: logo
  - key: tagline
    after: logo
    at: 0.5
`

// WriteScene writes content to name inside a fresh temp dir and returns its path.
// It fails the test immediately on error.
func WriteScene(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write scene")

	return path
}
