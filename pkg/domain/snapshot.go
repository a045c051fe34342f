package domain

// Snapshot is the full ordered collection of nodes at a given tick.
// Snapshots are treated as immutable: every tick produces a new one.
type Snapshot []Node

// NewSnapshot builds the initial snapshot for a scene. Every node starts idle at progress 0.
func NewSnapshot(specs []NodeSpec) Snapshot {
	snap := make(Snapshot, 0, len(specs))
	for _, spec := range specs {
		snap = append(snap, NewNode(spec))
	}
	return snap
}

// Clone returns a copy that can be modified without affecting s.
// Optional fields are never written through their pointers, so they are shared.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}

// Index maps each key to its position. With duplicate keys the last one wins;
// callers that care validate first.
func (s Snapshot) Index() map[string]int {
	idx := make(map[string]int, len(s))
	for i, n := range s {
		idx[n.Key] = i
	}
	return idx
}

// Get looks a node up by key.
func (s Snapshot) Get(key string) (Node, bool) {
	for _, n := range s {
		if n.Key == key {
			return n, true
		}
	}
	return Node{}, false
}

// Keys returns the node keys in order.
func (s Snapshot) Keys() []string {
	keys := make([]string, len(s))
	for i, n := range s {
		keys[i] = n.Key
	}
	return keys
}

// Specs returns the static definitions of all nodes, in order.
func (s Snapshot) Specs() []NodeSpec {
	specs := make([]NodeSpec, len(s))
	for i, n := range s {
		specs[i] = n.Spec()
	}
	return specs
}

// Settled reports whether every node has reached 1.0 and stopped moving.
func (s Snapshot) Settled() bool {
	for _, n := range s {
		if n.Phase() != PhaseSettled {
			return false
		}
	}
	return true
}

// Count returns how many nodes are in the given phase.
func (s Snapshot) Count(p Phase) int {
	c := 0
	for _, n := range s {
		if n.Phase() == p {
			c++
		}
	}
	return c
}
