/*
Package domain contains the core domain models of the stagger sequencer.

It defines the animation nodes, the immutable per-tick snapshots they live in,
and the navigation view state of the host page. This package is kept pure and
free of external dependencies like I/O or timing, following Hexagonal
Architecture principles.

# Key Entities

  - Node: A named unit of animatable state with an optional predecessor and trigger threshold.
  - Snapshot: The ordered collection of nodes at a given tick.
  - SnapshotDiff: What changed between two ticks (triggers, settles, progress).
  - ViewState: Which content tab is shown and whether the menu is expanded.
*/
package domain
