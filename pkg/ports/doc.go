/*
Package ports defines the driven ports (interfaces) of the stagger engine.

These interfaces decouple the core logic from external implementations, allowing
the engine to work with various scene sources and interpolation strategies.

# Key Interfaces

  - SceneLoader: Responsible for loading node definitions (e.g., from YAML or Memory).
  - Stepper: Moves transitioning nodes forward by one frame (e.g., a spring).
  - Sequencer: The per-frame engine contract consumed by hosts.
*/
package ports
