package domain

// SnapshotDiff represents the changes between two consecutive snapshots.
// It is designed to be serialized to JSON for partial updates on the host.
type SnapshotDiff struct {
	// Triggered lists nodes that left Idle during the tick, in snapshot order.
	Triggered []string `json:"triggered,omitempty"`

	// Settled lists nodes that reached 1.0 during the tick, in snapshot order.
	Settled []string `json:"settled,omitempty"`

	// Progress holds the new progress of every node whose value changed.
	Progress map[string]float64 `json:"progress,omitempty"`
}

// Diff calculates the difference between oldSnap and newSnap, matching nodes by key.
// If oldSnap is nil, every node of newSnap is treated as new (initial load).
// Returns nil when nothing changed.
func Diff(oldSnap, newSnap Snapshot) *SnapshotDiff {
	if newSnap == nil {
		return nil
	}

	prev := make(map[string]Node, len(oldSnap))
	for _, n := range oldSnap {
		prev[n.Key] = n
	}

	diff := &SnapshotDiff{}
	for _, n := range newSnap {
		old, existed := prev[n.Key]

		if n.Started() && (!existed || !old.Started()) {
			diff.Triggered = append(diff.Triggered, n.Key)
		}
		if n.Phase() == PhaseSettled && (!existed || old.Phase() != PhaseSettled) {
			diff.Settled = append(diff.Settled, n.Key)
		}
		if !existed || old.Progress != n.Progress {
			if diff.Progress == nil {
				diff.Progress = make(map[string]float64)
			}
			diff.Progress[n.Key] = n.Progress
		}
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *SnapshotDiff) IsEmpty() bool {
	return len(d.Triggered) == 0 &&
		len(d.Settled) == 0 &&
		len(d.Progress) == 0
}
