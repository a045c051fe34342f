package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeTrigger EventType = "node_trigger"
	EventNodeSettle  EventType = "node_settle"
	EventTick        EventType = "tick"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Tick      int       `json:"tick"`
}

// NodeEvent reports a phase change of a single node.
type NodeEvent struct {
	EventBase
	Key         string  `json:"key"`
	Predecessor string  `json:"predecessor,omitempty"`
	Progress    float64 `json:"progress"`
}

// TickEvent is emitted once per completed tick.
type TickEvent struct {
	EventBase
	Snapshot Snapshot      `json:"-"`
	Elapsed  time.Duration `json:"elapsed"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnTrigger func(context.Context, *NodeEvent)
	OnSettle  func(context.Context, *NodeEvent)
	OnTick    func(context.Context, *TickEvent)
}
