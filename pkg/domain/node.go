package domain

// DefaultTriggerThreshold is the predecessor progress at which a node without
// an explicit threshold is allowed to start.
const DefaultTriggerThreshold = 0.95

// Phase describes where a node is in its lifecycle.
type Phase string

const (
	PhaseIdle          Phase = "idle"          // Waiting for its predecessor
	PhaseTransitioning Phase = "transitioning" // Moving toward 1.0
	PhaseSettled       Phase = "settled"       // Progress reached 1.0
)

// Node is a named unit of animatable state.
type Node struct {
	// Key identifies the node. It must be unique within a snapshot and stable across ticks.
	Key string `json:"key"`

	// Progress is the interpolated completion in [0, 1].
	Progress float64 `json:"progress"`

	// PredecessorKey names the node whose progress gates this one.
	// Nil means the node is eligible immediately.
	PredecessorKey *string `json:"predecessor_key,omitempty"`

	// TriggerThreshold is the predecessor progress required to start.
	// Nil means DefaultTriggerThreshold.
	TriggerThreshold *float64 `json:"trigger_threshold,omitempty"`

	// Transitioning is set once the node has been triggered toward 1.0 and
	// cleared by the stepper when it settles.
	Transitioning bool `json:"transitioning,omitempty"`

	// Velocity is scratch state for the stepper. The sequencer never reads it.
	Velocity float64 `json:"velocity,omitempty"`
}

// Threshold returns the effective trigger threshold.
func (n Node) Threshold() float64 {
	if n.TriggerThreshold == nil {
		return DefaultTriggerThreshold
	}
	return *n.TriggerThreshold
}

// HasPredecessor reports whether the node waits on another node.
func (n Node) HasPredecessor() bool {
	return n.PredecessorKey != nil
}

// Predecessor returns the predecessor key, or "" when there is none.
func (n Node) Predecessor() string {
	if n.PredecessorKey == nil {
		return ""
	}
	return *n.PredecessorKey
}

// Phase derives the lifecycle phase from progress and the transition flag.
func (n Node) Phase() Phase {
	switch {
	case n.Progress >= 1.0 && !n.Transitioning:
		return PhaseSettled
	case n.Transitioning:
		return PhaseTransitioning
	default:
		return PhaseIdle
	}
}

// Started reports whether the node has been triggered at some point.
func (n Node) Started() bool {
	return n.Transitioning || n.Progress >= 1.0
}

// NodeSpec is the static definition of a node, as authored in a scene.
type NodeSpec struct {
	Key              string   `json:"key" yaml:"key" mapstructure:"key"`
	After            string   `json:"after,omitempty" yaml:"after,omitempty" mapstructure:"after"`
	TriggerThreshold *float64 `json:"at,omitempty" yaml:"at,omitempty" mapstructure:"at"`
}

// NewNode creates an idle node from its definition.
func NewNode(spec NodeSpec) Node {
	n := Node{Key: spec.Key}
	if spec.After != "" {
		after := spec.After
		n.PredecessorKey = &after
	}
	if spec.TriggerThreshold != nil {
		at := *spec.TriggerThreshold
		n.TriggerThreshold = &at
	}
	return n
}

// Spec returns the static definition of the node.
func (n Node) Spec() NodeSpec {
	spec := NodeSpec{Key: n.Key, After: n.Predecessor()}
	if n.TriggerThreshold != nil {
		at := *n.TriggerThreshold
		spec.TriggerThreshold = &at
	}
	return spec
}

// Float returns a pointer to v, for optional thresholds.
func Float(v float64) *float64 {
	return &v
}

// String returns a pointer to s, for optional predecessor keys.
func String(s string) *string {
	return &s
}
