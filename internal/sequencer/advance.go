// Package sequencer decides, once per tick, which nodes may start moving toward completion.
package sequencer

import (
	"fmt"

	"github.com/aretw0/stagger/internal/validator"
	"github.com/aretw0/stagger/pkg/domain"
)

// Advance produces the next snapshot from prev.
//
// Every idle node whose predecessor has reached its trigger threshold is marked
// as transitioning toward 1.0. Nodes without a predecessor are always eligible.
// All other nodes are carried over unchanged. Eligibility is read from prev only,
// so a chain of N nodes cascades over N ticks.
//
// prev is never modified. A malformed snapshot yields a validation error and no output.
func Advance(prev domain.Snapshot) (domain.Snapshot, error) {
	if err := validator.Validate(prev); err != nil {
		return nil, fmt.Errorf("advance: %w", err)
	}

	idx := prev.Index()
	next := prev.Clone()

	for i, n := range prev {
		if n.Started() {
			continue
		}
		if precedingProgress(prev, idx, n) >= n.Threshold() {
			next[i].Transitioning = true
		}
	}

	return next, nil
}

// Eligible reports whether n may start given the snapshot it lives in.
// A predecessor missing from snap makes the node ineligible.
func Eligible(snap domain.Snapshot, n domain.Node) bool {
	idx := snap.Index()
	if _, ok := idx[n.Predecessor()]; n.HasPredecessor() && !ok {
		return false
	}
	return precedingProgress(snap, idx, n) >= n.Threshold()
}

func precedingProgress(snap domain.Snapshot, idx map[string]int, n domain.Node) float64 {
	if !n.HasPredecessor() {
		return 1.0
	}
	return snap[idx[n.Predecessor()]].Progress
}
