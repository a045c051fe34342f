package validator

import (
	"math"
	"strings"

	"github.com/aretw0/stagger/pkg/domain"
)

// Validate checks a snapshot for malformed nodes: empty or duplicate keys,
// out-of-range values, self references, dangling predecessors and cycles.
// All failures are collected into a *domain.AggregateError.
func Validate(snap domain.Snapshot) error {
	var errs []error

	seen := make(map[string]bool, len(snap))
	for _, n := range snap {
		if n.Key == "" {
			errs = append(errs, &domain.ValidationError{Field: "key", Kind: domain.ErrEmptyKey})
			continue
		}
		if seen[n.Key] {
			errs = append(errs, &domain.ValidationError{Key: n.Key, Field: "key", Kind: domain.ErrDuplicateKey})
			continue
		}
		seen[n.Key] = true
	}

	for _, n := range snap {
		if !inUnitRange(n.Progress) {
			errs = append(errs, &domain.ValidationError{Key: n.Key, Field: "progress", Kind: domain.ErrOutOfRange, Value: n.Progress})
		}
		if n.TriggerThreshold != nil && !inUnitRange(*n.TriggerThreshold) {
			errs = append(errs, &domain.ValidationError{Key: n.Key, Field: "trigger_threshold", Kind: domain.ErrOutOfRange, Value: *n.TriggerThreshold})
		}

		if !n.HasPredecessor() {
			continue
		}
		pred := n.Predecessor()
		switch {
		case pred == n.Key:
			errs = append(errs, &domain.ValidationError{Key: n.Key, Field: "predecessor_key", Kind: domain.ErrSelfPredecessor, Value: pred})
		case !seen[pred]:
			errs = append(errs, &domain.ValidationError{Key: n.Key, Field: "predecessor_key", Kind: domain.ErrDanglingPredecessor, Value: pred})
		}
	}

	errs = append(errs, findCycles(snap)...)

	if len(errs) > 0 {
		return &domain.AggregateError{Errors: errs}
	}
	return nil
}

// Specs validates scene definitions before any snapshot is built.
func Specs(specs []domain.NodeSpec) error {
	return Validate(domain.NewSnapshot(specs))
}

func inUnitRange(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// findCycles walks the predecessor function. Each node has at most one outgoing
// edge, so a walk either ends at a root, a dangling reference, or re-enters itself.
// Self references are reported separately and skipped here.
func findCycles(snap domain.Snapshot) []error {
	const (
		unvisited = iota
		visiting
		done
	)

	next := make(map[string]string, len(snap))
	for _, n := range snap {
		if n.HasPredecessor() && n.Predecessor() != n.Key {
			next[n.Key] = n.Predecessor()
		}
	}

	var errs []error
	state := make(map[string]int, len(snap))

	for _, n := range snap {
		if state[n.Key] != unvisited {
			continue
		}

		var path []string
		cur := n.Key
		for {
			if state[cur] == done {
				break
			}
			if state[cur] == visiting {
				// Trim the tail that leads into the loop
				start := 0
				for i, k := range path {
					if k == cur {
						start = i
						break
					}
				}
				loop := append(append([]string{}, path[start:]...), cur)
				errs = append(errs, &domain.ValidationError{
					Key:    cur,
					Field:  "predecessor_key",
					Kind:   domain.ErrCycle,
					Detail: strings.Join(loop, " -> "),
				})
				break
			}
			state[cur] = visiting
			path = append(path, cur)

			nxt, ok := next[cur]
			if !ok {
				break
			}
			cur = nxt
		}

		for _, k := range path {
			state[k] = done
		}
	}

	return errs
}
