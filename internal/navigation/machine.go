// Package navigation models the page's hash navigation and menu as an explicit
// state machine, independent of the animation sequencer.
package navigation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/stagger/pkg/domain"
)

// Machine holds the set of known views. It is immutable; transitions return new states.
type Machine struct {
	views       []string
	defaultView string
}

// Option configures a Machine.
type Option func(*Machine)

// WithDefaultView sets the view shown for an empty hash (default: domain.DefaultView).
func WithDefaultView(view string) Option {
	return func(m *Machine) {
		m.defaultView = view
	}
}

// New creates a machine over the given content views.
func New(views []string, opts ...Option) (*Machine, error) {
	m := &Machine{
		views:       slices.Clone(views),
		defaultView: domain.DefaultView,
	}
	for _, opt := range opts {
		opt(m)
	}

	if len(m.views) == 0 {
		return nil, fmt.Errorf("navigation requires at least one view")
	}
	seen := make(map[string]bool, len(m.views))
	for _, v := range m.views {
		if v == "" || strings.HasPrefix(v, "#") {
			return nil, fmt.Errorf("invalid view name %q", v)
		}
		if seen[v] {
			return nil, fmt.Errorf("duplicate view %q", v)
		}
		seen[v] = true
	}
	if !seen[m.defaultView] {
		return nil, fmt.Errorf("default view %q: %w", m.defaultView, domain.ErrUnknownView)
	}

	return m, nil
}

// Initial returns the state of a freshly loaded page with no hash.
func (m *Machine) Initial() domain.ViewState {
	return domain.ViewState{Current: m.defaultView}
}

// Views returns the known views, in declaration order.
func (m *Machine) Views() []string {
	return slices.Clone(m.views)
}

// Apply computes the state that follows event. The input state is not modified.
// Changing the view always collapses the menu.
func (m *Machine) Apply(state domain.ViewState, event domain.NavEvent) (domain.ViewState, error) {
	switch event.Type {
	case domain.NavHashChanged:
		view, err := m.Resolve(event.Hash)
		if err != nil {
			return state, err
		}
		return domain.ViewState{Current: view, MenuExpanded: false}, nil

	case domain.NavToggleMenu:
		state.MenuExpanded = !state.MenuExpanded
		return state, nil

	case domain.NavCollapseMenu:
		state.MenuExpanded = false
		return state, nil

	default:
		return state, fmt.Errorf("unsupported navigation event %q", event.Type)
	}
}

// Replay applies events in order, stopping at the first error.
func (m *Machine) Replay(state domain.ViewState, events ...domain.NavEvent) (domain.ViewState, error) {
	for i, ev := range events {
		next, err := m.Apply(state, ev)
		if err != nil {
			return state, fmt.Errorf("event %d: %w", i, err)
		}
		state = next
	}
	return state, nil
}

// Resolve maps a location hash ("#about", "about" or "") to a known view.
func (m *Machine) Resolve(hash string) (string, error) {
	view := strings.TrimPrefix(strings.TrimSpace(hash), "#")
	if view == "" {
		return m.defaultView, nil
	}
	if !slices.Contains(m.views, view) {
		return "", fmt.Errorf("%q: %w", view, domain.ErrUnknownView)
	}
	return view, nil
}

// Visible reports whether the content tab for view is shown in state.
func (m *Machine) Visible(state domain.ViewState, view string) bool {
	return state.Current == view
}

// Selected returns the nav item that carries the selected marker, which is
// always the current view.
func (m *Machine) Selected(state domain.ViewState) string {
	return state.Current
}
