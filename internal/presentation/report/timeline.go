// Package report records when each node of a scene started and settled.
package report

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aretw0/stagger/pkg/domain"
)

// Entry is the recorded history of one node. A zero tick means "not yet".
type Entry struct {
	Key         string
	Predecessor string
	Triggered   int
	Settled     int
}

// Timeline collects trigger and settle ticks from engine hooks.
type Timeline struct {
	mu      sync.Mutex
	order   []string
	entries map[string]*Entry
	ticks   int
}

// NewTimeline creates a timeline. Passing the scene keeps rows in scene order;
// otherwise rows appear in the order nodes were first seen.
func NewTimeline(specs []domain.NodeSpec) *Timeline {
	t := &Timeline{entries: make(map[string]*Entry)}
	for _, s := range specs {
		t.entry(s.Key).Predecessor = s.After
	}
	return t
}

// Hooks returns lifecycle hooks feeding this timeline.
// Existing hooks are chained and called first.
func (t *Timeline) Hooks(next domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTrigger: func(ctx context.Context, e *domain.NodeEvent) {
			if next.OnTrigger != nil {
				next.OnTrigger(ctx, e)
			}
			t.mu.Lock()
			defer t.mu.Unlock()
			en := t.entry(e.Key)
			en.Predecessor = e.Predecessor
			en.Triggered = e.Tick
		},
		OnSettle: func(ctx context.Context, e *domain.NodeEvent) {
			if next.OnSettle != nil {
				next.OnSettle(ctx, e)
			}
			t.mu.Lock()
			defer t.mu.Unlock()
			t.entry(e.Key).Settled = e.Tick
		},
		OnTick: func(ctx context.Context, e *domain.TickEvent) {
			if next.OnTick != nil {
				next.OnTick(ctx, e)
			}
			t.mu.Lock()
			defer t.mu.Unlock()
			t.ticks = e.Tick
		},
	}
}

// Entries returns a copy of the recorded rows.
func (t *Timeline) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Entry, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, *t.entries[k])
	}
	return out
}

// Markdown renders the timeline as a table, ready for glamour.
func (t *Timeline) Markdown(title string) string {
	entries := t.Entries()

	t.mu.Lock()
	ticks := t.ticks
	t.mu.Unlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "%d nodes, %d ticks.\n\n", len(entries), ticks)
	sb.WriteString("| Node | After | Triggered | Settled |\n")
	sb.WriteString("|------|-------|-----------|---------|\n")
	for _, e := range entries {
		after := e.Predecessor
		if after == "" {
			after = "-"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", e.Key, after, tickCell(e.Triggered), tickCell(e.Settled))
	}
	return sb.String()
}

func tickCell(tick int) string {
	if tick == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", tick)
}

func (t *Timeline) entry(key string) *Entry {
	if e, ok := t.entries[key]; ok {
		return e
	}
	e := &Entry{Key: key}
	t.entries[key] = e
	t.order = append(t.order, key)
	return e
}
